package settings

import (
	"context"

	"github.com/ateliernature/animations-booking/internal/domain"
)

// SettingsRepository интерфейс репозитория настроек
type SettingsRepository interface {
	Get(ctx context.Context) (*domain.AppSettings, error)
	Save(ctx context.Context, s *domain.AppSettings) error
}

// AnimationRepository интерфейс репозитория анимаций
// Нужен для миграции денормализованных ссылок на имя аниматора
type AnimationRepository interface {
	CountByAnimator(ctx context.Context, animator string) (int, error)
	RenameAnimator(ctx context.Context, oldName, newName string) (int64, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
