package get_available_slots

import (
	"context"
	"time"

	"github.com/ateliernature/animations-booking/internal/availability"
)

// SnapshotProvider интерфейс для получения актуального снапшота доступности
type SnapshotProvider interface {
	Get(ctx context.Context) (*availability.Snapshot, error)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
