package export_bus_sheets

import (
	"bytes"
	"context"
	"fmt"

	"github.com/phpdave11/gofpdf"

	"github.com/ateliernature/animations-booking/internal/domain"
	"github.com/ateliernature/animations-booking/pkg/dates"
)

// Бронирований на страницу: три блока по ~80 мм на листе A4
const bookingsPerPage = 3

// UseCase use case для выгрузки маршрутных листов автобусов в PDF
type UseCase struct {
	bookingRepo BookingRepository
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(bookingRepo BookingRepository, logger Logger) *UseCase {
	return &UseCase{bookingRepo: bookingRepo, logger: logger}
}

// Execute выполняет use case выгрузки маршрутных листов
// В документ попадают только бронирования, которым нужен автобус,
// в хронологическом порядке
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if err := validateRange(req); err != nil {
		uc.logger.Warn("ExportBusSheets: validation failed: %v", err)
		return nil, err
	}

	filter := domain.BookingsFilter{
		FromDate: req.FromDate,
		ToDate:   req.ToDate,
		NeedBus:  true,
	}
	bookings, err := uc.bookingRepo.List(ctx, filter)
	if err != nil {
		uc.logger.Error("ExportBusSheets: failed to list bookings: %v", err)
		return nil, fmt.Errorf("%w: failed to list bookings: %v", ErrInternal, err)
	}
	if len(bookings) == 0 {
		uc.logger.Warn("ExportBusSheets: no bus bookings for the period")
		return nil, ErrNoBookings
	}

	pdfBytes, err := renderSheets(bookings)
	if err != nil {
		uc.logger.Error("ExportBusSheets: failed to render PDF: %v", err)
		return nil, fmt.Errorf("%w: failed to render PDF: %v", ErrInternal, err)
	}

	uc.logger.Info("ExportBusSheets: rendered %d bookings, %d bytes", len(bookings), len(pdfBytes))

	return &Response{
		FileName: fileName(req),
		PDF:      pdfBytes,
		Count:    len(bookings),
	}, nil
}

func validateRange(req *Request) error {
	if req.FromDate != nil {
		if _, err := dates.ParseDay(*req.FromDate); err != nil {
			return fmt.Errorf("%w: from must be YYYY-MM-DD", ErrInvalidInput)
		}
	}
	if req.ToDate != nil {
		if _, err := dates.ParseDay(*req.ToDate); err != nil {
			return fmt.Errorf("%w: to must be YYYY-MM-DD", ErrInvalidInput)
		}
	}
	if req.FromDate != nil && req.ToDate != nil && *req.FromDate > *req.ToDate {
		return fmt.Errorf("%w: from is after to", ErrInvalidInput)
	}
	return nil
}

func fileName(req *Request) string {
	name := "feuilles-bus"
	if req.FromDate != nil {
		name += "-" + *req.FromDate
	}
	if req.ToDate != nil {
		name += "-" + *req.ToDate
	}
	return name + ".pdf"
}

// renderSheets строит PDF: по три блока на страницу A4, каждый блок -
// одна поездка с данными школы и состоянием автобуса
func renderSheets(bookings []*domain.Booking) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	// Встроенные шрифты gofpdf ждут cp1252, французские буквы идут
	// через транслятор
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	for i, b := range bookings {
		if i%bookingsPerPage == 0 {
			pdf.AddPage()
			pdf.SetFont("Arial", "B", 16)
			pdf.Cell(0, 10, tr("Feuilles de route — transport scolaire"))
			pdf.Ln(14)
		}

		pdf.SetFont("Arial", "B", 13)
		pdf.Cell(0, 8, tr(fmt.Sprintf("%s — %dh — %s", b.Date, b.Time, b.AnimationTitle)))
		pdf.Ln(8)

		pdf.SetFont("Arial", "", 11)
		pdf.Cell(0, 7, tr(fmt.Sprintf("École : %s (%s)", b.SchoolName, b.Commune)))
		pdf.Ln(7)
		pdf.Cell(0, 7, tr(fmt.Sprintf("Enseignant(e) : %s — classe %s — tél. %s",
			b.TeacherName, b.ClassLevel, b.PhoneNumber)))
		pdf.Ln(7)
		pdf.Cell(0, 7, tr(fmt.Sprintf("Effectif : %d élèves, %d accompagnateurs",
			b.StudentCount, b.AdultCount)))
		pdf.Ln(7)

		status := "en attente"
		if b.BusStatus == domain.BusStatusValidated {
			status = "validé"
		}
		line := "Bus : " + status
		if b.BusCost > 0 {
			line += fmt.Sprintf(" — %.2f EUR", b.BusCost)
		}
		pdf.Cell(0, 7, tr(line))
		pdf.Ln(7)

		if b.BusInfo != "" {
			pdf.MultiCell(0, 6, tr("Consignes : "+b.BusInfo), "", "L", false)
		}
		pdf.Ln(8)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
