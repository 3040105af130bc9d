package animations

import (
	"context"

	"github.com/ateliernature/animations-booking/internal/domain"
)

// AnimationRepository интерфейс репозитория анимаций
type AnimationRepository interface {
	Save(ctx context.Context, a *domain.Animation) error
	GetByID(ctx context.Context, id string) (*domain.Animation, error)
	List(ctx context.Context) ([]*domain.Animation, error)
	Remove(ctx context.Context, id string) error
}

// BookingRepository интерфейс репозитория бронирований
// Нужен для блокировки удаления анимаций с бронированиями
type BookingRepository interface {
	CountByAnimation(ctx context.Context, animationID string) (int, error)
}

// SettingsRepository интерфейс репозитория настроек
type SettingsRepository interface {
	Get(ctx context.Context) (*domain.AppSettings, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
