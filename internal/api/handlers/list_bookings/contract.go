package list_bookings

import (
	"context"

	"github.com/ateliernature/animations-booking/internal/domain"
)

type BookingsService interface {
	List(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
