package get_available_slots

import (
	"errors"
	"net/http"

	"github.com/ateliernature/animations-booking/internal/api/handlers"
	getAvailableSlots "github.com/ateliernature/animations-booking/internal/usecase/get_available_slots"
)

const (
	msgAnimationNotFound = "animation introuvable"
	msgBadSchoolYear     = "l'année scolaire active est mal configurée"
	msgBadRange          = "période invalide (format attendu : AAAA-MM-JJ)"
)

type Handler struct {
	useCase GetAvailableSlotsUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailableSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/available-slots?animationId=...&from=...&to=...
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	req := &getAvailableSlots.Request{}
	query := r.URL.Query()
	if id := query.Get("animationId"); id != "" {
		req.AnimationID = &id
	}
	if from := query.Get("from"); from != "" {
		req.FromDate = &from
	}
	if to := query.Get("to"); to != "" {
		req.ToDate = &to
	}

	result, err := h.useCase.Execute(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, getAvailableSlots.ErrInvalidInput):
			h.logger.Warn("GET /available-slots - Invalid range: %v", err)
			handlers.RespondBadRequest(w, msgBadRange)

		case errors.Is(err, getAvailableSlots.ErrAnimationNotFound):
			h.logger.Warn("GET /available-slots - Animation not found")
			handlers.RespondNotFound(w, msgAnimationNotFound)

		case errors.Is(err, getAvailableSlots.ErrInvalidSchoolYear):
			h.logger.Error("GET /available-slots - Invalid school year: %v", err)
			handlers.RespondError(w, http.StatusServiceUnavailable, msgBadSchoolYear)

		default:
			h.logger.Error("GET /available-slots - Failed to get slots: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /available-slots - Returned %d slots (%d distinct)",
		len(result.Slots), result.DistinctCount)
	handlers.RespondJSON(w, http.StatusOK, result)
}
