package get_settings

import (
	"net/http"

	"github.com/ateliernature/animations-booking/internal/api/handlers"
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

// Handle GET /api/v1/settings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	settings, err := h.service.Load(r.Context())
	if err != nil {
		h.logger.Error("GET /settings - Failed to load settings: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /settings - Settings returned (year=%s)", settings.ActiveYear)
	handlers.RespondJSON(w, http.StatusOK, publicView(settings))
}
