package remove_animator

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/ateliernature/animations-booking/internal/api/handlers"
	settingsSvc "github.com/ateliernature/animations-booking/internal/service/settings"
)

const (
	msgAnimatorNotFound = "animateur introuvable"
	msgAnimatorInUse    = "des animations sont encore attribuées à cet animateur"
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

// Handle DELETE /api/v1/animators/{name}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)["name"]

	if err := h.service.RemoveAnimator(r.Context(), name); err != nil {
		switch {
		case errors.Is(err, settingsSvc.ErrAnimatorNotFound):
			h.logger.Warn("DELETE /animators - Animator not found: %q", name)
			handlers.RespondNotFound(w, msgAnimatorNotFound)

		case errors.Is(err, settingsSvc.ErrAnimatorInUse):
			h.logger.Warn("DELETE /animators - Animator in use: %q", name)
			handlers.RespondError(w, http.StatusConflict, msgAnimatorInUse)

		case errors.Is(err, settingsSvc.ErrInvalidInput):
			h.logger.Warn("DELETE /animators - Invalid name: %v", err)
			handlers.RespondBadRequest(w, msgAnimatorNotFound)

		default:
			h.logger.Error("DELETE /animators - Failed to remove %q: %v", name, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /animators - Removed %q", name)
	handlers.RespondNoContent(w)
}
