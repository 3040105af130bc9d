package mailer

import "errors"

var (
	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("mailer client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от сервиса
	ErrInvalidResponse = errors.New("mailer client: invalid response")

	// ErrRejected возвращается, когда почтовый сервис отклонил сообщение
	ErrRejected = errors.New("mailer client: message rejected")
)
