package changelog

import "errors"

var (
	// ErrEntryNotFound возвращается, когда запись журнала не найдена
	ErrEntryNotFound = errors.New("changelog.repository: entry not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("changelog.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("changelog.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("changelog.repository: failed to scan row")

	// ErrEncodeDoc возвращается при ошибке сериализации документа
	ErrEncodeDoc = errors.New("changelog.repository: failed to encode document")

	// ErrDecodeDoc возвращается при ошибке десериализации документа
	ErrDecodeDoc = errors.New("changelog.repository: failed to decode document")
)
