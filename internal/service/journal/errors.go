package journal

import "errors"

var (
	// ErrEntryNotFound возвращается, когда запись журнала не найдена
	ErrEntryNotFound = errors.New("journal.service: entry not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("journal.service: invalid input")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("journal.service: internal error")
)
