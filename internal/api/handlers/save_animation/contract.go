package save_animation

import (
	"context"

	"github.com/ateliernature/animations-booking/internal/domain"
)

type AnimationsService interface {
	Save(ctx context.Context, a *domain.Animation) (*domain.Animation, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
