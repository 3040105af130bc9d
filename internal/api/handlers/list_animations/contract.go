package list_animations

import (
	"context"

	"github.com/ateliernature/animations-booking/internal/domain"
)

type AnimationsService interface {
	List(ctx context.Context) ([]*domain.Animation, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
