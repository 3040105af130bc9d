package animation

import "errors"

var (
	// ErrAnimationNotFound возвращается, когда анимация не найдена
	ErrAnimationNotFound = errors.New("animation.repository: animation not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("animation.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("animation.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("animation.repository: failed to scan row")

	// ErrEncodeDoc возвращается при ошибке сериализации документа
	ErrEncodeDoc = errors.New("animation.repository: failed to encode document")

	// ErrDecodeDoc возвращается при ошибке десериализации документа
	ErrDecodeDoc = errors.New("animation.repository: failed to decode document")
)
