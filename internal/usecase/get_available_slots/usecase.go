package get_available_slots

import (
	"context"
	"fmt"
	"sort"

	"github.com/ateliernature/animations-booking/internal/availability"
	"github.com/ateliernature/animations-booking/pkg/dates"
)

// UseCase use case для перечисления доступных слотов активного учебного года
type UseCase struct {
	snapshots    SnapshotProvider
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(snapshots SnapshotProvider, logger Logger) *UseCase {
	return &UseCase{
		snapshots:    snapshots,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case получения доступных слотов
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if err := validateRange(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	now := uc.timeProvider.Now()

	snap, err := uc.snapshots.Get(ctx)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to load snapshot: %v", err)
		return nil, fmt.Errorf("%w: failed to load snapshot: %v", ErrInternal, err)
	}

	year, err := availability.ParseSchoolYear(snap.Settings.ActiveYear)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: bad activeYear %q: %v", snap.Settings.ActiveYear, err)
		return nil, fmt.Errorf("%w: %q", ErrInvalidSchoolYear, snap.Settings.ActiveYear)
	}

	if req.AnimationID != nil {
		found := false
		for _, a := range snap.Animations {
			if a.ID == *req.AnimationID {
				found = true
				break
			}
		}
		if !found {
			uc.logger.Warn("GetAvailableSlots: animation id=%s not found", *req.AnimationID)
			return nil, ErrAnimationNotFound
		}
	}

	slots := availability.Enumerate(snap, now, year.RemainingMonths(now))
	filtered := slots[:0]
	for _, s := range slots {
		if req.AnimationID != nil && s.Animation.ID != *req.AnimationID {
			continue
		}
		// канонический формат дня сортируется лексикографически
		if req.FromDate != nil && s.Day < *req.FromDate {
			continue
		}
		if req.ToDate != nil && s.Day > *req.ToDate {
			continue
		}
		filtered = append(filtered, s)
	}
	slots = filtered

	items := make([]SlotItem, 0, len(slots))
	for _, s := range slots {
		items = append(items, SlotItem{
			AnimationID:    s.Animation.ID,
			AnimationTitle: s.Animation.Title,
			Date:           s.Day,
			Time:           s.Hour,
		})
	}

	byMonth := make([]MonthCount, 0)
	for month, count := range availability.DistinctCountByMonth(slots) {
		byMonth = append(byMonth, MonthCount{
			Year:  month.Year,
			Month: int(month.Month),
			Count: count,
		})
	}
	sort.Slice(byMonth, func(i, j int) bool {
		if byMonth[i].Year != byMonth[j].Year {
			return byMonth[i].Year < byMonth[j].Year
		}
		return byMonth[i].Month < byMonth[j].Month
	})

	uc.logger.Info("GetAvailableSlots: year=%s, slots=%d, distinct=%d",
		snap.Settings.ActiveYear, len(items), availability.DistinctCount(slots))

	return &Response{
		SchoolYear:    snap.Settings.ActiveYear,
		Slots:         items,
		DistinctCount: availability.DistinctCount(slots),
		ByMonth:       byMonth,
	}, nil
}

func validateRange(req *Request) error {
	if req.FromDate != nil {
		if _, err := dates.ParseDay(*req.FromDate); err != nil {
			return fmt.Errorf("%w: from must be YYYY-MM-DD", ErrInvalidInput)
		}
	}
	if req.ToDate != nil {
		if _, err := dates.ParseDay(*req.ToDate); err != nil {
			return fmt.Errorf("%w: to must be YYYY-MM-DD", ErrInvalidInput)
		}
	}
	if req.FromDate != nil && req.ToDate != nil && *req.FromDate > *req.ToDate {
		return fmt.Errorf("%w: from is after to", ErrInvalidInput)
	}
	return nil
}
