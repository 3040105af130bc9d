package list_animations

import (
	"net/http"

	"github.com/ateliernature/animations-booking/internal/api/handlers"
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

// Handle GET /api/v1/animations
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	animations, err := h.service.List(r.Context())
	if err != nil {
		h.logger.Error("GET /animations - Failed to list animations: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /animations - Returned %d animations", len(animations))
	handlers.RespondJSON(w, http.StatusOK, animations)
}
