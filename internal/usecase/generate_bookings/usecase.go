package generate_bookings

import (
	"context"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/google/uuid"

	"github.com/ateliernature/animations-booking/internal/availability"
	"github.com/ateliernature/animations-booking/internal/domain"
)

// UseCase use case для генерации случайных тестовых бронирований
type UseCase struct {
	bookingRepo  BookingRepository
	snapshots    SnapshotProvider
	timeProvider TimeProvider
	rng          *rand.Rand
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(bookingRepo BookingRepository, snapshots SnapshotProvider, logger Logger) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		snapshots:    snapshots,
		timeProvider: &RealTimeProvider{},
		rng: rand.New(rand.NewPCG(
			uint64(time.Now().UnixNano()),
			uint64(time.Now().UnixNano()>>32),
		)),
		logger: logger,
	}
}

// Execute выполняет use case генерации бронирований
//
// Кандидаты перечисляются из снапшота, перемешиваются и выбираются по
// одному; ClaimSet гарантирует согласованность внутри пакета (точный слот,
// послеобеденный блок, день аниматора) без перечитывания снапшота.
// Нехватка свободных слотов не считается ошибкой, она видна в отчете
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if req.Count < 1 || req.Count > MaxCount {
		return nil, fmt.Errorf("%w: count must be between 1 and %d", ErrInvalidInput, MaxCount)
	}

	now := uc.timeProvider.Now()

	snap, err := uc.snapshots.Get(ctx)
	if err != nil {
		uc.logger.Error("GenerateBookings: failed to load snapshot: %v", err)
		return nil, fmt.Errorf("%w: failed to load snapshot: %v", ErrInternal, err)
	}

	year, err := availability.ParseSchoolYear(snap.Settings.ActiveYear)
	if err != nil {
		uc.logger.Error("GenerateBookings: bad activeYear %q: %v", snap.Settings.ActiveYear, err)
		return nil, fmt.Errorf("%w: %q", ErrInvalidSchoolYear, snap.Settings.ActiveYear)
	}

	months := year.RemainingMonths(now)
	if len(req.Months) > 0 {
		months, err = filterMonths(months, req.Months)
		if err != nil {
			return nil, err
		}
	}

	candidates := availability.Enumerate(snap, now, months)
	uc.rng.Shuffle(len(candidates), func(i, j int) {
		candidates[i], candidates[j] = candidates[j], candidates[i]
	})

	claims := availability.NewClaimSet()
	response := &Response{Requested: req.Count, IDs: make([]string, 0, req.Count)}

	for _, slot := range candidates {
		if response.Generated == req.Count {
			break
		}
		if claims.Conflicts(slot.Day, slot.Hour, slot.Animation.Animator) {
			continue
		}
		claims.Claim(slot.Day, slot.Hour, slot.Animation.Animator)

		booking := uc.newFakeBooking(slot)
		response.Generated++

		if err := uc.bookingRepo.Save(ctx, booking); err != nil {
			uc.logger.Warn("GenerateBookings: failed to save booking %s: %v", booking.ID, err)
			continue
		}
		response.Saved++
		response.IDs = append(response.IDs, booking.ID)
	}

	if response.Generated < response.Requested {
		uc.logger.Warn("GenerateBookings: only %d of %d slots could be filled",
			response.Generated, response.Requested)
	}
	uc.logger.Info("GenerateBookings: requested=%d, generated=%d, saved=%d",
		response.Requested, response.Generated, response.Saved)

	return response, nil
}

// newFakeBooking собирает правдоподобное бронирование для выбранного слота
func (uc *UseCase) newFakeBooking(slot availability.Slot) *domain.Booking {
	contact := newFakeContact(uc.rng)
	noBus := uc.rng.IntN(4) == 0 // примерно четверть школ добирается сама

	booking := &domain.Booking{
		ID:             uuid.NewString(),
		AnimationID:    slot.Animation.ID,
		AnimationTitle: slot.Animation.Title,
		Date:           slot.Day,
		Time:           slot.Hour,
		TeacherName:    contact.TeacherName,
		ClassLevel:     pick(uc.rng, fakeClasses),
		Commune:        pick(uc.rng, fakeCommunes),
		SchoolName:     pick(uc.rng, fakeSchoolNames),
		PhoneNumber:    contact.PhoneNumber,
		Email:          contact.Email,
		StudentCount:   20 + uc.rng.IntN(11), // 20-30
		AdultCount:     2 + uc.rng.IntN(3),   // 2-4
		NoBusRequired:  noBus,
	}
	if !noBus {
		booking.BusInfo = pick(uc.rng, fakeBusNotes)
		booking.BusStatus = domain.BusStatusPending
	}
	return booking
}

// filterMonths оставляет только выбранные месяцы "YYYY-MM" из списка.
// Выбор может быть несвязным (например, ноябрь и февраль); хронологический
// порядок сохраняется, дубликаты в выборе схлопываются
func filterMonths(months []availability.Month, raw []string) ([]availability.Month, error) {
	selected := make(map[availability.Month]struct{}, len(raw))
	for _, r := range raw {
		parsed, err := time.Parse("2006-01", r)
		if err != nil {
			return nil, fmt.Errorf("%w: month must be YYYY-MM", ErrInvalidInput)
		}

		m := availability.Month{Year: parsed.Year(), Month: parsed.Month()}
		remaining := false
		for _, rm := range months {
			if rm == m {
				remaining = true
				break
			}
		}
		if !remaining {
			return nil, fmt.Errorf("%w: month %s is outside the remaining school year", ErrInvalidInput, r)
		}
		selected[m] = struct{}{}
	}

	filtered := months[:0]
	for _, m := range months {
		if _, ok := selected[m]; ok {
			filtered = append(filtered, m)
		}
	}
	return filtered, nil
}
