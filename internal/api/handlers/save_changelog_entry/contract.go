package save_changelog_entry

import (
	"context"

	"github.com/ateliernature/animations-booking/internal/domain"
)

type JournalService interface {
	Save(ctx context.Context, e *domain.ChangelogEntry) (*domain.ChangelogEntry, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
