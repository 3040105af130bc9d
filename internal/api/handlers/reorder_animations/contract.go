package reorder_animations

import "context"

type AnimationsService interface {
	Reorder(ctx context.Context, ids []string) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
