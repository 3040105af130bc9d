package get_changelog

import (
	"net/http"

	"github.com/ateliernature/animations-booking/internal/api/handlers"
)

type Handler struct {
	service JournalService
	logger  Logger
}

func NewHandler(service JournalService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/changelog
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	entries, err := h.service.List(r.Context())
	if err != nil {
		h.logger.Error("GET /changelog - Failed to list entries: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /changelog - Returned %d entries", len(entries))
	handlers.RespondJSON(w, http.StatusOK, entries)
}
