package get_available_slots

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ateliernature/animations-booking/internal/availability"
	"github.com/ateliernature/animations-booking/internal/domain"
	"github.com/ateliernature/animations-booking/pkg/ptr"
)

type fakeSnapshotProvider struct {
	snap *availability.Snapshot
}

func (p *fakeSnapshotProvider) Get(_ context.Context) (*availability.Snapshot, error) {
	return p.snap, nil
}

type fixedTime struct{ t time.Time }

func (f fixedTime) Now() time.Time { return f.t }

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func fixture(bookings []*domain.Booking) *UseCase {
	settings := &domain.AppSettings{
		ActiveYear:      "2025-2026",
		BookingLeadTime: ptr.Ptr(0),
	}
	animations := []*domain.Animation{
		{ID: "anim-1", Title: "Découverte de la mare", Animator: "Sophie"},
		{ID: "anim-2", Title: "Land art"},
	}
	snap := availability.NewSnapshot(settings, animations, bookings)

	uc := NewUseCase(&fakeSnapshotProvider{snap: snap}, nopLogger{})
	// конец учебного года: остается только июнь 2026
	uc.timeProvider = fixedTime{t: time.Date(2026, 6, 1, 10, 0, 0, 0, time.Local)}
	return uc
}

func TestExecuteListsRemainingYear(t *testing.T) {
	uc := fixture(nil)

	resp, err := uc.Execute(context.Background(), &Request{})
	require.NoError(t, err)

	assert.Equal(t, "2025-2026", resp.SchoolYear)
	require.NotEmpty(t, resp.Slots)

	// июнь 2026: вторники 2, 9, 16, 23, 30 и четверги 4, 11, 18, 25
	for _, s := range resp.Slots {
		assert.Equal(t, "2026-06", s.Date[:7])
	}
	// 9 дней * 3 различимых слота (9h, 10h, послеобеденный блок)
	assert.Equal(t, 27, resp.DistinctCount)

	require.Len(t, resp.ByMonth, 1)
	assert.Equal(t, 2026, resp.ByMonth[0].Year)
	assert.Equal(t, 6, resp.ByMonth[0].Month)
	assert.Equal(t, 27, resp.ByMonth[0].Count)
}

func TestExecuteFiltersByAnimation(t *testing.T) {
	uc := fixture(nil)

	resp, err := uc.Execute(context.Background(), &Request{AnimationID: ptr.Ptr("anim-2")})
	require.NoError(t, err)

	require.NotEmpty(t, resp.Slots)
	for _, s := range resp.Slots {
		assert.Equal(t, "anim-2", s.AnimationID)
		assert.Equal(t, "Land art", s.AnimationTitle)
	}
}

func TestExecuteExcludesBookedSlots(t *testing.T) {
	booked := []*domain.Booking{
		{ID: "b1", AnimationID: "anim-1", Date: "2026-06-02", Time: 9},
	}
	uc := fixture(booked)

	resp, err := uc.Execute(context.Background(), &Request{})
	require.NoError(t, err)

	for _, s := range resp.Slots {
		assert.False(t, s.Date == "2026-06-02" && s.Time == 9,
			"booked slot leaked into the listing")
	}
}

func TestExecuteFiltersByDateRange(t *testing.T) {
	uc := fixture(nil)

	resp, err := uc.Execute(context.Background(), &Request{
		FromDate: ptr.Ptr("2026-06-08"),
		ToDate:   ptr.Ptr("2026-06-14"),
	})
	require.NoError(t, err)

	// допустимые дни в этом окне: вторник 9 и четверг 11
	require.NotEmpty(t, resp.Slots)
	for _, s := range resp.Slots {
		assert.Contains(t, []string{"2026-06-09", "2026-06-11"}, s.Date)
	}
	assert.Equal(t, 6, resp.DistinctCount)
}

func TestExecuteRejectsBadRange(t *testing.T) {
	uc := fixture(nil)
	ctx := context.Background()

	_, err := uc.Execute(ctx, &Request{FromDate: ptr.Ptr("08/06/2026")})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(ctx, &Request{
		FromDate: ptr.Ptr("2026-06-14"),
		ToDate:   ptr.Ptr("2026-06-08"),
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestExecuteUnknownAnimation(t *testing.T) {
	uc := fixture(nil)

	_, err := uc.Execute(context.Background(), &Request{AnimationID: ptr.Ptr("ghost")})
	assert.ErrorIs(t, err, ErrAnimationNotFound)
}

func TestExecuteBadSchoolYear(t *testing.T) {
	settings := &domain.AppSettings{ActiveYear: "bientôt"}
	snap := availability.NewSnapshot(settings, nil, nil)
	uc := NewUseCase(&fakeSnapshotProvider{snap: snap}, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{})
	assert.ErrorIs(t, err, ErrInvalidSchoolYear)
}
