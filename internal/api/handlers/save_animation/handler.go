package save_animation

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/ateliernature/animations-booking/internal/api/handlers"
	"github.com/ateliernature/animations-booking/internal/domain"
	animationsSvc "github.com/ateliernature/animations-booking/internal/service/animations"
)

const (
	msgInvalidRequestBody = "corps de requête invalide"
	msgInvalidInput       = "données d'animation invalides"
	msgUnknownAnimator    = "cet animateur n'existe pas dans les réglages"
	msgAnimationNotFound  = "animation introuvable"
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

// Handle POST /api/v1/animations и PUT /api/v1/animations/{id}
// Пустой ID означает создание, заполненный - полную перезапись
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var animation domain.Animation
	if err := handlers.DecodeJSON(r, &animation); err != nil {
		h.logger.Warn("%s /animations - Invalid request body: %v", r.Method, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if id, ok := mux.Vars(r)["id"]; ok {
		animation.ID = id
	}

	saved, err := h.service.Save(r.Context(), &animation)
	if err != nil {
		switch {
		case errors.Is(err, animationsSvc.ErrUnknownAnimator):
			h.logger.Warn("%s /animations - Unknown animator %q", r.Method, animation.Animator)
			handlers.RespondBadRequest(w, msgUnknownAnimator)

		case errors.Is(err, animationsSvc.ErrAnimationNotFound):
			h.logger.Warn("%s /animations - Animation not found: id=%s", r.Method, animation.ID)
			handlers.RespondNotFound(w, msgAnimationNotFound)

		case errors.Is(err, animationsSvc.ErrInvalidInput):
			h.logger.Warn("%s /animations - Invalid input: %v", r.Method, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("%s /animations - Failed to save animation: %v", r.Method, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	status := http.StatusOK
	if r.Method == http.MethodPost {
		status = http.StatusCreated
	}

	h.logger.Info("%s /animations - Animation saved: id=%s, title=%q", r.Method, saved.ID, saved.Title)
	handlers.RespondJSON(w, status, saved)
}
