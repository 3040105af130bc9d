package animations

import "errors"

var (
	// ErrAnimationNotFound возвращается, когда анимация не найдена
	ErrAnimationNotFound = errors.New("animations.service: animation not found")

	// ErrAnimationInUse возвращается при попытке удалить анимацию,
	// на которую ссылаются бронирования
	ErrAnimationInUse = errors.New("animations.service: animation has bookings")

	// ErrUnknownAnimator возвращается, когда указанный аниматор
	// отсутствует в глобальном списке аниматоров
	ErrUnknownAnimator = errors.New("animations.service: unknown animator")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("animations.service: invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("animations.service: internal error")
)
