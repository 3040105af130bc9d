package export_bus_sheets

import (
	"errors"
	"net/http"

	"github.com/ateliernature/animations-booking/internal/api/handlers"
	exportBusSheets "github.com/ateliernature/animations-booking/internal/usecase/export_bus_sheets"
)

const (
	msgInvalidRange = "période invalide, dates attendues au format YYYY-MM-DD"
	msgNoBookings   = "aucune réservation avec bus sur la période"
)

type Handler struct {
	useCase ExportBusSheetsUseCase
	logger  Logger
}

func NewHandler(useCase ExportBusSheetsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/bookings/bus-sheets?from=...&to=...
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	req := &exportBusSheets.Request{}
	if from := r.URL.Query().Get("from"); from != "" {
		req.FromDate = &from
	}
	if to := r.URL.Query().Get("to"); to != "" {
		req.ToDate = &to
	}

	result, err := h.useCase.Execute(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, exportBusSheets.ErrInvalidInput):
			h.logger.Warn("GET /bookings/bus-sheets - Invalid range: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRange)

		case errors.Is(err, exportBusSheets.ErrNoBookings):
			h.logger.Warn("GET /bookings/bus-sheets - No bus bookings for the period")
			handlers.RespondNotFound(w, msgNoBookings)

		default:
			h.logger.Error("GET /bookings/bus-sheets - Failed to export: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /bookings/bus-sheets - Exported %d bookings (%d bytes)",
		result.Count, len(result.PDF))

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", "attachment; filename="+result.FileName)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(result.PDF)
}
