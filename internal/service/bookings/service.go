package bookings

import (
	"context"
	"errors"
	"fmt"

	"github.com/ateliernature/animations-booking/internal/availability"
	"github.com/ateliernature/animations-booking/internal/domain"
	bookingRepo "github.com/ateliernature/animations-booking/internal/infra/storage/booking"
	"github.com/ateliernature/animations-booking/pkg/dates"
)

// Service сервис для административных операций над бронированиями
type Service struct {
	bookingRepo BookingRepository
	snapshots   SnapshotProvider
	logger      Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(
	bookingRepo BookingRepository,
	snapshots SnapshotProvider,
	logger Logger,
) *Service {
	return &Service{
		bookingRepo: bookingRepo,
		snapshots:   snapshots,
		logger:      logger,
	}
}

// List возвращает бронирования с фильтрацией по периоду и статусу автобуса
func (s *Service) List(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error) {
	if filter.FromDate != nil {
		if _, err := dates.ParseDay(*filter.FromDate); err != nil {
			return nil, fmt.Errorf("%w: invalid from date", ErrInvalidInput)
		}
	}
	if filter.ToDate != nil {
		if _, err := dates.ParseDay(*filter.ToDate); err != nil {
			return nil, fmt.Errorf("%w: invalid to date", ErrInvalidInput)
		}
	}

	bookings, err := s.bookingRepo.List(ctx, filter)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}
	return bookings, nil
}

// GetByID получает бронирование по ID
func (s *Service) GetByID(ctx context.Context, id string) (*domain.Booking, error) {
	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			return nil, ErrBookingNotFound
		}
		s.logger.Error("GetByID: repository error for booking id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}
	return booking, nil
}

// Update сохраняет административные правки бронирования
// При переносе на другой слот правила эксклюзивности проверяются заново
// против актуального набора бронирований без самого редактируемого
// Календарные ограничения (предзапись, выходные) на админские правки
// не распространяются
func (s *Service) Update(ctx context.Context, b *domain.Booking) error {
	if b.ID == "" {
		return fmt.Errorf("%w: id is required", ErrInvalidInput)
	}
	if _, err := dates.ParseDay(b.Date); err != nil {
		return fmt.Errorf("%w: invalid date", ErrInvalidInput)
	}
	if b.BusStatus != "" && !b.BusStatus.Valid() {
		return fmt.Errorf("%w: invalid bus status %q", ErrInvalidInput, b.BusStatus)
	}

	existing, err := s.bookingRepo.GetByID(ctx, b.ID)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			return ErrBookingNotFound
		}
		s.logger.Error("Update: repository error for booking id=%s: %v", b.ID, err)
		return fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	moved := existing.Date != b.Date || existing.Time != b.Time || existing.AnimationID != b.AnimationID
	if moved {
		if err := s.checkSlot(ctx, b); err != nil {
			return err
		}
	}

	if err := s.bookingRepo.Save(ctx, b); err != nil {
		s.logger.Error("Update: failed to save booking id=%s: %v", b.ID, err)
		return fmt.Errorf("%w: Update - save booking: %v", ErrInternal, err)
	}

	s.logger.Info("Update: saved booking id=%s date=%s time=%d busStatus=%s",
		b.ID, b.Date, b.Time, b.BusStatus)
	return nil
}

// Delete удаляет бронирование
func (s *Service) Delete(ctx context.Context, id string) error {
	if err := s.bookingRepo.Remove(ctx, id); err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			return ErrBookingNotFound
		}
		s.logger.Error("Delete: repository error for booking id=%s: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: removed booking id=%s", id)
	return nil
}

// checkSlot проверяет правила эксклюзивности для нового слота бронирования,
// исключив само бронирование из набора существующих
func (s *Service) checkSlot(ctx context.Context, b *domain.Booking) error {
	snap, err := s.snapshots.Get(ctx)
	if err != nil {
		s.logger.Error("checkSlot: failed to get snapshot: %v", err)
		return fmt.Errorf("%w: checkSlot - get snapshot: %v", ErrInternal, err)
	}

	all, err := s.bookingRepo.List(ctx, domain.BookingsFilter{})
	if err != nil {
		s.logger.Error("checkSlot: failed to list bookings: %v", err)
		return fmt.Errorf("%w: checkSlot - list bookings: %v", ErrInternal, err)
	}

	others := make([]*domain.Booking, 0, len(all))
	for _, existing := range all {
		if existing.ID != b.ID {
			others = append(others, existing)
		}
	}

	var animation *domain.Animation
	for _, a := range snap.Animations {
		if a.ID == b.AnimationID {
			animation = a
			break
		}
	}
	if animation == nil {
		return fmt.Errorf("%w: unknown animation id %s", ErrInvalidInput, b.AnimationID)
	}

	scoped := availability.NewSnapshot(snap.Settings, snap.Animations, others)
	if !availability.SlotFree(animation, b.Date, b.Time, scoped) {
		s.logger.Warn("checkSlot: conflict for booking id=%s at %s %dh", b.ID, b.Date, b.Time)
		return ErrSlotConflict
	}
	if !availability.AnimatorAvailable(animation.Animator, b.Date, b.Time, snap.Settings) {
		s.logger.Warn("checkSlot: animator %q unavailable at %s %dh", animation.Animator, b.Date, b.Time)
		return ErrSlotConflict
	}

	return nil
}
