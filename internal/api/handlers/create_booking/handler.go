package create_booking

import (
	"errors"
	"net/http"

	"github.com/ateliernature/animations-booking/internal/api/handlers"
	createBooking "github.com/ateliernature/animations-booking/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody  = "corps de requête invalide"
	msgInvalidInput        = "données de réservation invalides"
	msgAnimationNotFound   = "animation introuvable"
	msgInvalidTimeSlot     = "horaire invalide"
	msgSlotNotAvailable    = "ce créneau n'est plus disponible"
	msgDateNotBookable     = "cette date n'est pas ouverte à la réservation"
	msgAnimatorUnavailable = "l'animateur n'est pas disponible pour ce créneau"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest())
	if err != nil {
		switch {
		case errors.Is(err, createBooking.ErrSlotNotAvailable):
			h.logger.Warn("POST /bookings - Slot not available: date=%s, time=%d", req.Date, req.Time)
			handlers.RespondError(w, http.StatusConflict, msgSlotNotAvailable)

		case errors.Is(err, createBooking.ErrAnimationNotFound):
			h.logger.Warn("POST /bookings - Animation not found: id=%s", req.AnimationID)
			handlers.RespondNotFound(w, msgAnimationNotFound)

		case errors.Is(err, createBooking.ErrDateNotBookable):
			h.logger.Warn("POST /bookings - Date not bookable: date=%s", req.Date)
			handlers.RespondError(w, http.StatusConflict, msgDateNotBookable)

		case errors.Is(err, createBooking.ErrAnimatorUnavailable):
			h.logger.Warn("POST /bookings - Animator unavailable: date=%s, time=%d", req.Date, req.Time)
			handlers.RespondError(w, http.StatusConflict, msgAnimatorUnavailable)

		case errors.Is(err, createBooking.ErrInvalidTimeSlot):
			h.logger.Warn("POST /bookings - Invalid time slot: time=%d", req.Time)
			handlers.RespondBadRequest(w, msgInvalidTimeSlot)

		case errors.Is(err, createBooking.ErrInvalidInput):
			h.logger.Warn("POST /bookings - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /bookings - Failed to create booking: date=%s, time=%d, error=%v",
				req.Date, req.Time, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings - Booking created successfully: booking_id=%s, date=%s, time=%d",
		result.ID, result.Date, result.Time)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
