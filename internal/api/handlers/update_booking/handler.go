package update_booking

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/ateliernature/animations-booking/internal/api/handlers"
	"github.com/ateliernature/animations-booking/internal/domain"
	bookingsSvc "github.com/ateliernature/animations-booking/internal/service/bookings"
)

const (
	msgInvalidRequestBody = "corps de requête invalide"
	msgInvalidInput       = "données de réservation invalides"
	msgBookingNotFound    = "réservation introuvable"
	msgSlotConflict       = "le créneau demandé est déjà occupé"
)

type Handler struct {
	service BookingsService
	logger  Logger
}

func NewHandler(service BookingsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PUT /api/v1/bookings/{id}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var booking domain.Booking
	if err := handlers.DecodeJSON(r, &booking); err != nil {
		h.logger.Warn("PUT /bookings - Invalid request body: id=%s, error=%v", id, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}
	booking.ID = id

	if err := h.service.Update(r.Context(), &booking); err != nil {
		switch {
		case errors.Is(err, bookingsSvc.ErrBookingNotFound):
			h.logger.Warn("PUT /bookings - Booking not found: id=%s", id)
			handlers.RespondNotFound(w, msgBookingNotFound)

		case errors.Is(err, bookingsSvc.ErrSlotConflict):
			h.logger.Warn("PUT /bookings - Slot conflict: id=%s, date=%s, time=%d",
				id, booking.Date, booking.Time)
			handlers.RespondError(w, http.StatusConflict, msgSlotConflict)

		case errors.Is(err, bookingsSvc.ErrInvalidInput):
			h.logger.Warn("PUT /bookings - Invalid input: id=%s, error=%v", id, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("PUT /bookings - Failed to update booking: id=%s, error=%v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /bookings - Booking updated: id=%s", id)
	handlers.RespondJSON(w, http.StatusOK, &booking)
}
