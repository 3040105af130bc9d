package generate_bookings

import (
	"errors"
	"net/http"

	"github.com/ateliernature/animations-booking/internal/api/handlers"
	generateBookings "github.com/ateliernature/animations-booking/internal/usecase/generate_bookings"
)

const (
	msgInvalidRequestBody = "corps de requête invalide"
	msgInvalidInput       = "paramètres de génération invalides"
	msgBadSchoolYear      = "l'année scolaire active est mal configurée"
)

// GenerateRequest HTTP request model
type GenerateRequest struct {
	Count  int      `json:"count"`
	Months []string `json:"months,omitempty"` // "YYYY-MM"
}

type Handler struct {
	useCase GenerateBookingsUseCase
	logger  Logger
}

func NewHandler(useCase GenerateBookingsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings/generate
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req GenerateRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings/generate - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &generateBookings.Request{
		Count:  req.Count,
		Months: req.Months,
	})
	if err != nil {
		switch {
		case errors.Is(err, generateBookings.ErrInvalidInput):
			h.logger.Warn("POST /bookings/generate - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, generateBookings.ErrInvalidSchoolYear):
			h.logger.Error("POST /bookings/generate - Invalid school year: %v", err)
			handlers.RespondError(w, http.StatusServiceUnavailable, msgBadSchoolYear)

		default:
			h.logger.Error("POST /bookings/generate - Failed to generate: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings/generate - requested=%d, generated=%d, saved=%d",
		result.Requested, result.Generated, result.Saved)
	handlers.RespondJSON(w, http.StatusOK, result)
}
