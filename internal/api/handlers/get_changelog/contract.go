package get_changelog

import (
	"context"

	"github.com/ateliernature/animations-booking/internal/domain"
)

type JournalService interface {
	List(ctx context.Context) ([]*domain.ChangelogEntry, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
