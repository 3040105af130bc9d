package update_settings

import (
	"context"

	"github.com/ateliernature/animations-booking/internal/domain"
)

type SettingsService interface {
	Save(ctx context.Context, settings *domain.AppSettings) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
