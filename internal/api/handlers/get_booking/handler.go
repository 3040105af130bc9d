package get_booking

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/ateliernature/animations-booking/internal/api/handlers"
	bookingsSvc "github.com/ateliernature/animations-booking/internal/service/bookings"
)

const msgBookingNotFound = "réservation introuvable"

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

// Handle GET /api/v1/bookings/{id}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	booking, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, bookingsSvc.ErrBookingNotFound):
			h.logger.Warn("GET /bookings - Booking not found: id=%s", id)
			handlers.RespondNotFound(w, msgBookingNotFound)

		default:
			h.logger.Error("GET /bookings - Failed to get booking: id=%s, error=%v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /bookings - Booking returned: id=%s", id)
	handlers.RespondJSON(w, http.StatusOK, booking)
}
