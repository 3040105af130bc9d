package get_available_slots

import "errors"

var (
	// ErrInvalidSchoolYear возвращается, когда активный учебный год в
	// настройках не парсится как "YYYY-YYYY"
	ErrInvalidSchoolYear = errors.New("get_available_slots: invalid school year in settings")

	// ErrAnimationNotFound возвращается, когда запрошенная анимация не найдена
	ErrAnimationNotFound = errors.New("get_available_slots: animation not found")

	// ErrInvalidInput возвращается при некорректных параметрах запроса
	ErrInvalidInput = errors.New("get_available_slots: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("get_available_slots: internal error")
)
