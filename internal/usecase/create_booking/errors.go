package create_booking

import "errors"

var (
	// ErrAnimationNotFound возвращается, когда анимация не найдена
	ErrAnimationNotFound = errors.New("create_booking: animation not found")

	// ErrInvalidTimeSlot возвращается, когда час не входит в настроенный набор слотов
	ErrInvalidTimeSlot = errors.New("create_booking: invalid time slot")

	// ErrSlotNotAvailable возвращается, когда слот уже занят (точный слот,
	// послеобеденный блок или день аниматора)
	ErrSlotNotAvailable = errors.New("create_booking: slot is not available")

	// ErrDateNotBookable возвращается, когда дата закрыта календарными правилами
	// (день недели, каникулы или срок предварительной записи)
	ErrDateNotBookable = errors.New("create_booking: date is not bookable")

	// ErrAnimatorUnavailable возвращается, когда аниматор недоступен в этот слот
	ErrAnimatorUnavailable = errors.New("create_booking: animator is not available")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)
