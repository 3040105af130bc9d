package update_settings

import (
	"errors"
	"net/http"

	"github.com/ateliernature/animations-booking/internal/api/handlers"
	"github.com/ateliernature/animations-booking/internal/domain"
	settingsSvc "github.com/ateliernature/animations-booking/internal/service/settings"
)

const (
	msgInvalidRequestBody = "corps de requête invalide"
	msgInvalidSettings    = "réglages invalides"
)

type Handler struct {
	service SettingsService
	logger  Logger
}

func NewHandler(service SettingsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PUT /api/v1/settings
// Документ настроек сохраняется целиком, как его прислала админ-панель
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var settings domain.AppSettings
	if err := handlers.DecodeJSON(r, &settings); err != nil {
		h.logger.Warn("PUT /settings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if err := h.service.Save(r.Context(), &settings); err != nil {
		switch {
		case errors.Is(err, settingsSvc.ErrInvalidInput):
			h.logger.Warn("PUT /settings - Invalid settings: %v", err)
			handlers.RespondBadRequest(w, msgInvalidSettings)

		default:
			h.logger.Error("PUT /settings - Failed to save settings: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /settings - Settings saved (year=%s)", settings.ActiveYear)
	handlers.RespondJSON(w, http.StatusOK, &settings)
}
