package mediahost

import "errors"

var (
	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("mediahost client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от сервиса
	ErrInvalidResponse = errors.New("mediahost client: invalid response")

	// ErrUnsupportedMedia возвращается, когда хостинг отклонил формат файла
	ErrUnsupportedMedia = errors.New("mediahost client: unsupported media type")
)
