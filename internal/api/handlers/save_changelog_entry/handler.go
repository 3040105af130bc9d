package save_changelog_entry

import (
	"errors"
	"net/http"

	"github.com/ateliernature/animations-booking/internal/api/handlers"
	"github.com/ateliernature/animations-booking/internal/domain"
	journalSvc "github.com/ateliernature/animations-booking/internal/service/journal"
)

const (
	msgInvalidRequestBody = "corps de requête invalide"
	msgInvalidEntry       = "entrée de journal invalide"
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

// Handle POST /api/v1/changelog
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var entry domain.ChangelogEntry
	if err := handlers.DecodeJSON(r, &entry); err != nil {
		h.logger.Warn("POST /changelog - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	saved, err := h.service.Save(r.Context(), &entry)
	if err != nil {
		switch {
		case errors.Is(err, journalSvc.ErrInvalidInput):
			h.logger.Warn("POST /changelog - Invalid entry: %v", err)
			handlers.RespondBadRequest(w, msgInvalidEntry)

		default:
			h.logger.Error("POST /changelog - Failed to save entry: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /changelog - Entry saved: id=%s", saved.ID)
	handlers.RespondJSON(w, http.StatusCreated, saved)
}
