package settings

import "errors"

var (
	// ErrAnimatorNotFound возвращается, когда аниматор не найден в списке
	ErrAnimatorNotFound = errors.New("settings.service: animator not found")

	// ErrAnimatorExists возвращается, когда новое имя аниматора уже занято
	ErrAnimatorExists = errors.New("settings.service: animator already exists")

	// ErrAnimatorInUse возвращается при попытке удалить аниматора,
	// закрепленного за анимациями
	ErrAnimatorInUse = errors.New("settings.service: animator has animations")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("settings.service: invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("settings.service: internal error")
)
