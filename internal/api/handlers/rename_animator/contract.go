package rename_animator

import "context"

type SettingsService interface {
	RenameAnimator(ctx context.Context, oldName, newName string) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
