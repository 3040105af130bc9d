package generate_bookings

import (
	"context"

	generateBookings "github.com/ateliernature/animations-booking/internal/usecase/generate_bookings"
)

type GenerateBookingsUseCase interface {
	Execute(ctx context.Context, req *generateBookings.Request) (*generateBookings.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
