package reorder_animations

import (
	"errors"
	"net/http"

	"github.com/ateliernature/animations-booking/internal/api/handlers"
	animationsSvc "github.com/ateliernature/animations-booking/internal/service/animations"
)

const (
	msgInvalidRequestBody = "corps de requête invalide"
	msgInvalidOrder       = "la liste ne correspond pas aux animations existantes"
)

// ReorderRequest HTTP request model
type ReorderRequest struct {
	IDs []string `json:"ids"` // полный список id в новом порядке
}

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

// Handle POST /api/v1/animations/reorder
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req ReorderRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /animations/reorder - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if err := h.service.Reorder(r.Context(), req.IDs); err != nil {
		switch {
		case errors.Is(err, animationsSvc.ErrInvalidInput):
			h.logger.Warn("POST /animations/reorder - Invalid order: %v", err)
			handlers.RespondBadRequest(w, msgInvalidOrder)

		default:
			h.logger.Error("POST /animations/reorder - Failed to reorder: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /animations/reorder - Reordered %d animations", len(req.IDs))
	handlers.RespondNoContent(w)
}
