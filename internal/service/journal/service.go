package journal

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/ateliernature/animations-booking/internal/domain"
	changelogRepo "github.com/ateliernature/animations-booking/internal/infra/storage/changelog"
	"github.com/ateliernature/animations-booking/pkg/dates"
)

// Service сервис журнала изменений платформы
type Service struct {
	repo   ChangelogRepository
	logger Logger
}

// NewService создает новый экземпляр сервиса журнала
func NewService(repo ChangelogRepository, logger Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

// List возвращает записи журнала, новые сверху
func (s *Service) List(ctx context.Context) ([]*domain.ChangelogEntry, error) {
	entries, err := s.repo.List(ctx)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}
	return entries, nil
}

// Save сохраняет запись журнала; пустой ID означает новую запись
func (s *Service) Save(ctx context.Context, e *domain.ChangelogEntry) (*domain.ChangelogEntry, error) {
	if strings.TrimSpace(e.Title) == "" {
		return nil, fmt.Errorf("%w: title is required", ErrInvalidInput)
	}
	if e.Date != "" {
		if _, err := dates.ParseDay(e.Date); err != nil {
			return nil, fmt.Errorf("%w: date must be YYYY-MM-DD", ErrInvalidInput)
		}
	}
	if e.ID == "" {
		e.ID = uuid.NewString()
	}

	if err := s.repo.Save(ctx, e); err != nil {
		s.logger.Error("Save: repository error: %v", err)
		return nil, fmt.Errorf("%w: Save - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Save: changelog entry %s saved", e.ID)
	return e, nil
}

// Remove удаляет запись журнала по ID
func (s *Service) Remove(ctx context.Context, id string) error {
	if err := s.repo.Remove(ctx, id); err != nil {
		if errors.Is(err, changelogRepo.ErrEntryNotFound) {
			return fmt.Errorf("%w: %s", ErrEntryNotFound, id)
		}
		s.logger.Error("Remove: repository error: %v", err)
		return fmt.Errorf("%w: Remove - repository error: %v", ErrInternal, err)
	}
	s.logger.Info("Remove: changelog entry %s removed", id)
	return nil
}
