package rename_animator

import (
	"errors"
	"net/http"

	"github.com/ateliernature/animations-booking/internal/api/handlers"
	settingsSvc "github.com/ateliernature/animations-booking/internal/service/settings"
)

const (
	msgInvalidRequestBody = "corps de requête invalide"
	msgInvalidInput       = "noms d'animateur invalides"
	msgAnimatorNotFound   = "animateur introuvable"
	msgAnimatorExists     = "un animateur porte déjà ce nom"
)

// RenameRequest HTTP request model
type RenameRequest struct {
	OldName string `json:"oldName"`
	NewName string `json:"newName"`
}

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

// Handle POST /api/v1/animators/rename
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req RenameRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /animators/rename - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if err := h.service.RenameAnimator(r.Context(), req.OldName, req.NewName); err != nil {
		switch {
		case errors.Is(err, settingsSvc.ErrAnimatorNotFound):
			h.logger.Warn("POST /animators/rename - Animator not found: %q", req.OldName)
			handlers.RespondNotFound(w, msgAnimatorNotFound)

		case errors.Is(err, settingsSvc.ErrAnimatorExists):
			h.logger.Warn("POST /animators/rename - Name already taken: %q", req.NewName)
			handlers.RespondError(w, http.StatusConflict, msgAnimatorExists)

		case errors.Is(err, settingsSvc.ErrInvalidInput):
			h.logger.Warn("POST /animators/rename - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /animators/rename - Failed to rename %q -> %q: %v",
				req.OldName, req.NewName, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /animators/rename - Renamed %q -> %q", req.OldName, req.NewName)
	handlers.RespondNoContent(w)
}
