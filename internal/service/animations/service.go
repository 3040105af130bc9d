package animations

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/ateliernature/animations-booking/internal/domain"
	animationRepo "github.com/ateliernature/animations-booking/internal/infra/storage/animation"
	settingsRepo "github.com/ateliernature/animations-booking/internal/infra/storage/settings"
)

// Service сервис для управления анимациями
type Service struct {
	animationRepo AnimationRepository
	bookingRepo   BookingRepository
	settingsRepo  SettingsRepository
	logger        Logger
}

// NewService создает новый экземпляр сервиса анимаций
func NewService(
	animationRepo AnimationRepository,
	bookingRepo BookingRepository,
	settingsRepo SettingsRepository,
	logger Logger,
) *Service {
	return &Service{
		animationRepo: animationRepo,
		bookingRepo:   bookingRepo,
		settingsRepo:  settingsRepo,
		logger:        logger,
	}
}

// List возвращает все анимации в порядке отображения
func (s *Service) List(ctx context.Context) ([]*domain.Animation, error) {
	animations, err := s.animationRepo.List(ctx)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}
	return animations, nil
}

// Save создает или обновляет анимацию
// Новой анимации присваивается id и следующий индекс порядка (плотный ряд)
func (s *Service) Save(ctx context.Context, a *domain.Animation) (*domain.Animation, error) {
	if strings.TrimSpace(a.Title) == "" {
		return nil, fmt.Errorf("%w: title is required", ErrInvalidInput)
	}

	// Аниматор (если указан) должен существовать в глобальном списке
	// Хранилище это не проверяет, ответственность на сервисе
	if a.HasAnimator() {
		settings, err := s.settingsRepo.Get(ctx)
		if err != nil && !errors.Is(err, settingsRepo.ErrSettingsNotFound) {
			s.logger.Error("Save: failed to load settings: %v", err)
			return nil, fmt.Errorf("%w: Save - load settings: %v", ErrInternal, err)
		}
		if settings == nil || !settings.HasAnimator(a.Animator) {
			s.logger.Warn("Save: unknown animator %q for animation %q", a.Animator, a.Title)
			return nil, fmt.Errorf("%w: %s", ErrUnknownAnimator, a.Animator)
		}
	}

	if a.ID == "" {
		existing, err := s.animationRepo.List(ctx)
		if err != nil {
			s.logger.Error("Save: failed to list animations: %v", err)
			return nil, fmt.Errorf("%w: Save - list animations: %v", ErrInternal, err)
		}
		a.ID = uuid.NewString()
		a.Order = len(existing)
	}

	if err := s.animationRepo.Save(ctx, a); err != nil {
		s.logger.Error("Save: repository error for animation id=%s: %v", a.ID, err)
		return nil, fmt.Errorf("%w: Save - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Save: saved animation id=%s title=%q order=%d", a.ID, a.Title, a.Order)
	return a, nil
}

// Reorder переписывает индексы порядка по переданному списку id
// Список должен быть перестановкой всех существующих анимаций
func (s *Service) Reorder(ctx context.Context, ids []string) error {
	existing, err := s.animationRepo.List(ctx)
	if err != nil {
		s.logger.Error("Reorder: failed to list animations: %v", err)
		return fmt.Errorf("%w: Reorder - list animations: %v", ErrInternal, err)
	}

	if len(ids) != len(existing) {
		return fmt.Errorf("%w: expected %d ids, got %d", ErrInvalidInput, len(existing), len(ids))
	}

	byID := make(map[string]*domain.Animation, len(existing))
	for _, a := range existing {
		byID[a.ID] = a
	}

	for index, id := range ids {
		a, ok := byID[id]
		if !ok {
			return fmt.Errorf("%w: unknown animation id %s", ErrInvalidInput, id)
		}
		delete(byID, id)

		if a.Order == index {
			continue
		}
		a.Order = index
		if err := s.animationRepo.Save(ctx, a); err != nil {
			s.logger.Error("Reorder: failed to save animation id=%s: %v", a.ID, err)
			return fmt.Errorf("%w: Reorder - save animation: %v", ErrInternal, err)
		}
	}

	s.logger.Info("Reorder: reindexed %d animations", len(ids))
	return nil
}

// Delete удаляет анимацию
// Удаление блокируется, пока на анимацию ссылаются бронирования:
// сначала нужно удалить или переназначить зависимые бронирования
func (s *Service) Delete(ctx context.Context, id string) error {
	count, err := s.bookingRepo.CountByAnimation(ctx, id)
	if err != nil {
		s.logger.Error("Delete: failed to count bookings for animation id=%s: %v", id, err)
		return fmt.Errorf("%w: Delete - count bookings: %v", ErrInternal, err)
	}
	if count > 0 {
		s.logger.Warn("Delete: animation id=%s blocked, %d bookings reference it", id, count)
		return fmt.Errorf("%w: %d bookings", ErrAnimationInUse, count)
	}

	if err := s.animationRepo.Remove(ctx, id); err != nil {
		if errors.Is(err, animationRepo.ErrAnimationNotFound) {
			return ErrAnimationNotFound
		}
		s.logger.Error("Delete: repository error for animation id=%s: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: removed animation id=%s", id)
	return nil
}
