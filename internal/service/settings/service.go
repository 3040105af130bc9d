package settings

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/ateliernature/animations-booking/internal/availability"
	"github.com/ateliernature/animations-booking/internal/domain"
	settingsRepo "github.com/ateliernature/animations-booking/internal/infra/storage/settings"
)

// Service сервис для работы с глобальным документом настроек
type Service struct {
	settingsRepo  SettingsRepository
	animationRepo AnimationRepository
	logger        Logger
}

// NewService создает новый экземпляр сервиса настроек
func NewService(
	settingsRepo SettingsRepository,
	animationRepo AnimationRepository,
	logger Logger,
) *Service {
	return &Service{
		settingsRepo:  settingsRepo,
		animationRepo: animationRepo,
		logger:        logger,
	}
}

// Load загружает документ настроек; при отсутствии возвращает дефолтные
func (s *Service) Load(ctx context.Context) (*domain.AppSettings, error) {
	settings, err := s.settingsRepo.Get(ctx)
	if err != nil {
		if errors.Is(err, settingsRepo.ErrSettingsNotFound) {
			s.logger.Warn("Load: settings document missing, returning defaults")
			return domain.DefaultSettings(time.Now()), nil
		}
		s.logger.Error("Load: repository error: %v", err)
		return nil, fmt.Errorf("%w: Load - repository error: %v", ErrInternal, err)
	}
	return settings, nil
}

// Save валидирует и сохраняет документ настроек целиком
func (s *Service) Save(ctx context.Context, settings *domain.AppSettings) error {
	if err := validateSettings(settings); err != nil {
		s.logger.Warn("Save: validation failed: %v", err)
		return err
	}

	if err := s.settingsRepo.Save(ctx, settings); err != nil {
		s.logger.Error("Save: repository error: %v", err)
		return fmt.Errorf("%w: Save - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Save: settings saved (year=%s, holidays=%d, animators=%d)",
		settings.ActiveYear, len(settings.Holidays), len(settings.Animators))
	return nil
}

// RenameAnimator переименовывает аниматора как единый шаг миграции:
// запись в списке аниматоров, ключ карты animatorSettings и
// денормализованные ссылки во всех анимациях
func (s *Service) RenameAnimator(ctx context.Context, oldName, newName string) error {
	oldName = strings.TrimSpace(oldName)
	newName = strings.TrimSpace(newName)
	if oldName == "" || newName == "" {
		return fmt.Errorf("%w: animator names are required", ErrInvalidInput)
	}
	if oldName == newName {
		return fmt.Errorf("%w: names are identical", ErrInvalidInput)
	}

	settings, err := s.Load(ctx)
	if err != nil {
		return err
	}

	if !settings.HasAnimator(oldName) {
		return fmt.Errorf("%w: %s", ErrAnimatorNotFound, oldName)
	}
	if settings.HasAnimator(newName) {
		return fmt.Errorf("%w: %s", ErrAnimatorExists, newName)
	}

	for i := range settings.Animators {
		if settings.Animators[i].Name == oldName {
			settings.Animators[i].Name = newName
		}
	}
	if constraints, ok := settings.AnimatorSettings[oldName]; ok {
		settings.AnimatorSettings[newName] = constraints
		delete(settings.AnimatorSettings, oldName)
	}

	// Сначала документ настроек, затем денормализованные ссылки: если
	// второй шаг упадет, подписка доставит расхождение и его видно в
	// панели; обратный порядок оставил бы ссылки на несуществующее имя
	if err := s.settingsRepo.Save(ctx, settings); err != nil {
		s.logger.Error("RenameAnimator: failed to save settings: %v", err)
		return fmt.Errorf("%w: RenameAnimator - save settings: %v", ErrInternal, err)
	}

	updated, err := s.animationRepo.RenameAnimator(ctx, oldName, newName)
	if err != nil {
		s.logger.Error("RenameAnimator: failed to rewrite animations: %v", err)
		return fmt.Errorf("%w: RenameAnimator - rewrite animations: %v", ErrInternal, err)
	}

	s.logger.Info("RenameAnimator: %q -> %q, %d animations rewritten", oldName, newName, updated)
	return nil
}

// RemoveAnimator удаляет аниматора из списка и его настройки доступности
// Удаление блокируется, пока аниматор закреплен за анимациями
func (s *Service) RemoveAnimator(ctx context.Context, name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Errorf("%w: animator name is required", ErrInvalidInput)
	}

	count, err := s.animationRepo.CountByAnimator(ctx, name)
	if err != nil {
		s.logger.Error("RemoveAnimator: failed to count animations: %v", err)
		return fmt.Errorf("%w: RemoveAnimator - count animations: %v", ErrInternal, err)
	}
	if count > 0 {
		s.logger.Warn("RemoveAnimator: %q blocked, %d animations reference it", name, count)
		return fmt.Errorf("%w: %d animations", ErrAnimatorInUse, count)
	}

	settings, err := s.Load(ctx)
	if err != nil {
		return err
	}
	if !settings.HasAnimator(name) {
		return fmt.Errorf("%w: %s", ErrAnimatorNotFound, name)
	}

	animators := settings.Animators[:0]
	for _, a := range settings.Animators {
		if a.Name != name {
			animators = append(animators, a)
		}
	}
	settings.Animators = animators
	delete(settings.AnimatorSettings, name)

	if err := s.settingsRepo.Save(ctx, settings); err != nil {
		s.logger.Error("RemoveAnimator: failed to save settings: %v", err)
		return fmt.Errorf("%w: RemoveAnimator - save settings: %v", ErrInternal, err)
	}

	s.logger.Info("RemoveAnimator: removed %q", name)
	return nil
}

func validateSettings(settings *domain.AppSettings) error {
	if _, err := availability.ParseSchoolYear(settings.ActiveYear); err != nil {
		return fmt.Errorf("%w: activeYear must be \"YYYY-YYYY\"", ErrInvalidInput)
	}

	if settings.BookingLeadTime != nil {
		lead := *settings.BookingLeadTime
		if lead < domain.MinBookingLeadTime || lead > domain.MaxBookingLeadTime {
			return fmt.Errorf("%w: bookingLeadTime must be between %d and %d",
				ErrInvalidInput, domain.MinBookingLeadTime, domain.MaxBookingLeadTime)
		}
	}

	for _, d := range settings.AllowedDays {
		if d < 0 || d > 6 {
			return fmt.Errorf("%w: allowed day %d out of range", ErrInvalidInput, d)
		}
	}

	for i := range settings.Holidays {
		h := &settings.Holidays[i]
		if h.StartDate > h.EndDate {
			return fmt.Errorf("%w: holiday %q ends before it starts", ErrInvalidInput, h.Name)
		}
	}

	return nil
}
