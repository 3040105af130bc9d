package get_settings

import (
	"context"

	"github.com/ateliernature/animations-booking/internal/domain"
)

type SettingsService interface {
	Load(ctx context.Context) (*domain.AppSettings, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
