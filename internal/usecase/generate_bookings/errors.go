package generate_bookings

import "errors"

var (
	// ErrInvalidSchoolYear возвращается, когда активный учебный год в
	// настройках не парсится как "YYYY-YYYY"
	ErrInvalidSchoolYear = errors.New("generate_bookings: invalid school year in settings")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("generate_bookings: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("generate_bookings: internal error")
)
