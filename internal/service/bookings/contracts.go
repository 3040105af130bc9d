package bookings

import (
	"context"

	"github.com/ateliernature/animations-booking/internal/availability"
	"github.com/ateliernature/animations-booking/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	Save(ctx context.Context, b *domain.Booking) error
	GetByID(ctx context.Context, id string) (*domain.Booking, error)
	List(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error)
	Remove(ctx context.Context, id string) error
}

// SnapshotProvider выдает актуальный снапшот для проверки конфликтов
type SnapshotProvider interface {
	Get(ctx context.Context) (*availability.Snapshot, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
