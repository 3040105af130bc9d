package get_booking

import (
	"context"

	"github.com/ateliernature/animations-booking/internal/domain"
)

type BookingsService interface {
	GetByID(ctx context.Context, id string) (*domain.Booking, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
