package remove_animator

import "context"

type SettingsService interface {
	RemoveAnimator(ctx context.Context, name string) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
