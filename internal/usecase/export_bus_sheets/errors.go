package export_bus_sheets

import "errors"

var (
	// ErrNoBookings возвращается, когда нет бронирований с автобусом
	// для выбранного периода
	ErrNoBookings = errors.New("export_bus_sheets: no bus bookings for the period")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("export_bus_sheets: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("export_bus_sheets: internal error")
)
