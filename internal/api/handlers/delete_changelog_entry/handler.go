package delete_changelog_entry

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/ateliernature/animations-booking/internal/api/handlers"
	journalSvc "github.com/ateliernature/animations-booking/internal/service/journal"
)

const msgEntryNotFound = "entrée de journal introuvable"

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

// Handle DELETE /api/v1/changelog/{id}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	if err := h.service.Remove(r.Context(), id); err != nil {
		switch {
		case errors.Is(err, journalSvc.ErrEntryNotFound):
			h.logger.Warn("DELETE /changelog - Entry not found: id=%s", id)
			handlers.RespondNotFound(w, msgEntryNotFound)

		default:
			h.logger.Error("DELETE /changelog - Failed to delete entry: id=%s, error=%v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /changelog - Entry deleted: id=%s", id)
	handlers.RespondNoContent(w)
}
