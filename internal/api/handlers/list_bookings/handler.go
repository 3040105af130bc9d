package list_bookings

import (
	"errors"
	"net/http"

	"github.com/ateliernature/animations-booking/internal/api/handlers"
	"github.com/ateliernature/animations-booking/internal/domain"
	bookingsSvc "github.com/ateliernature/animations-booking/internal/service/bookings"
)

const (
	msgInvalidFilter = "paramètres de filtre invalides"
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

// Handle GET /api/v1/bookings?from=...&to=...&busStatus=...&needBus=1
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	filter := domain.BookingsFilter{}
	query := r.URL.Query()

	if from := query.Get("from"); from != "" {
		filter.FromDate = &from
	}
	if to := query.Get("to"); to != "" {
		filter.ToDate = &to
	}
	if raw := query.Get("busStatus"); raw != "" {
		status := domain.BusStatus(raw)
		if !status.Valid() {
			h.logger.Warn("GET /bookings - Invalid bus status: %q", raw)
			handlers.RespondBadRequest(w, msgInvalidFilter)
			return
		}
		filter.BusStatus = &status
	}
	if query.Get("needBus") == "1" {
		filter.NeedBus = true
	}

	bookings, err := h.service.List(r.Context(), filter)
	if err != nil {
		switch {
		case errors.Is(err, bookingsSvc.ErrInvalidInput):
			h.logger.Warn("GET /bookings - Invalid filter: %v", err)
			handlers.RespondBadRequest(w, msgInvalidFilter)

		default:
			h.logger.Error("GET /bookings - Failed to list bookings: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /bookings - Returned %d bookings", len(bookings))
	handlers.RespondJSON(w, http.StatusOK, bookings)
}
