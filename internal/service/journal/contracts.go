package journal

import (
	"context"

	"github.com/ateliernature/animations-booking/internal/domain"
)

// ChangelogRepository интерфейс хранилища записей журнала изменений
type ChangelogRepository interface {
	Save(ctx context.Context, e *domain.ChangelogEntry) error
	List(ctx context.Context) ([]*domain.ChangelogEntry, error)
	Remove(ctx context.Context, id string) error
}

// Logger интерфейс для логирования
type Logger interface {
	Debug(format string, v ...interface{})
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
