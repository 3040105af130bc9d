package delete_animation

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/ateliernature/animations-booking/internal/api/handlers"
	animationsSvc "github.com/ateliernature/animations-booking/internal/service/animations"
)

const (
	msgAnimationNotFound = "animation introuvable"
	msgAnimationInUse    = "des réservations existent pour cette animation"
)

type Handler struct {
	service AnimationsService
	logger  Logger
}

func NewHandler(service AnimationsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle DELETE /api/v1/animations/{id}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	if err := h.service.Delete(r.Context(), id); err != nil {
		switch {
		case errors.Is(err, animationsSvc.ErrAnimationNotFound):
			h.logger.Warn("DELETE /animations - Animation not found: id=%s", id)
			handlers.RespondNotFound(w, msgAnimationNotFound)

		case errors.Is(err, animationsSvc.ErrAnimationInUse):
			h.logger.Warn("DELETE /animations - Animation in use: id=%s", id)
			handlers.RespondError(w, http.StatusConflict, msgAnimationInUse)

		default:
			h.logger.Error("DELETE /animations - Failed to delete animation: id=%s, error=%v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /animations - Animation deleted: id=%s", id)
	handlers.RespondNoContent(w)
}
