package generate_bookings

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ateliernature/animations-booking/internal/availability"
	"github.com/ateliernature/animations-booking/internal/domain"
	"github.com/ateliernature/animations-booking/pkg/ptr"
)

type fakeBookingRepo struct {
	saved   []*domain.Booking
	failAll bool
}

func (r *fakeBookingRepo) Save(_ context.Context, b *domain.Booking) error {
	if r.failAll {
		return errors.New("db down")
	}
	r.saved = append(r.saved, b)
	return nil
}

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

func generatorFixture(bookings []*domain.Booking) (*UseCase, *fakeBookingRepo) {
	settings := &domain.AppSettings{
		ActiveYear:      "2025-2026",
		BookingLeadTime: ptr.Ptr(0),
		Animators:       []domain.Animator{{Name: "Sophie"}, {Name: "Marc"}},
	}
	animations := []*domain.Animation{
		{ID: "anim-1", Title: "Découverte de la mare", Animator: "Sophie"},
		{ID: "anim-2", Title: "Les petites bêtes du sol", Animator: "Marc"},
	}

	repo := &fakeBookingRepo{}
	uc := NewUseCase(repo, &fakeSnapshotProvider{
		snap: availability.NewSnapshot(settings, animations, bookings),
	}, nopLogger{})
	uc.timeProvider = fixedTime{t: time.Date(2025, time.October, 25, 10, 0, 0, 0, time.Local)}
	return uc, repo
}

func TestExecuteGeneratesRequestedCount(t *testing.T) {
	uc, repo := generatorFixture(nil)

	resp, err := uc.Execute(context.Background(), &Request{Count: 10})
	require.NoError(t, err)

	assert.Equal(t, 10, resp.Requested)
	assert.Equal(t, 10, resp.Generated)
	assert.Equal(t, 10, resp.Saved)
	assert.Len(t, repo.saved, 10)
	assert.Len(t, resp.IDs, 10)
}

func TestExecuteBatchIsSelfConsistent(t *testing.T) {
	uc, repo := generatorFixture(nil)

	_, err := uc.Execute(context.Background(), &Request{Count: 60})
	require.NoError(t, err)

	// replay the batch through a fresh claim set: every record must have
	// been compatible with the ones generated before it
	animators := map[string]string{"anim-1": "Sophie", "anim-2": "Marc"}
	claims := availability.NewClaimSet()
	for _, b := range repo.saved {
		assert.False(t, claims.Conflicts(b.Date, b.Time, animators[b.AnimationID]),
			"booking %s conflicts inside its own batch (date=%s, time=%d)", b.ID, b.Date, b.Time)
		claims.Claim(b.Date, b.Time, animators[b.AnimationID])
	}
}

func TestExecuteRespectsExistingBookings(t *testing.T) {
	existing := []*domain.Booking{
		{ID: "b1", AnimationID: "anim-1", Date: "2025-11-04", Time: 14},
	}
	uc, repo := generatorFixture(existing)

	_, err := uc.Execute(context.Background(), &Request{Count: 40})
	require.NoError(t, err)

	for _, b := range repo.saved {
		if b.Date != "2025-11-04" {
			continue
		}
		// the afternoon band is taken, and Sophie is busy all day
		assert.False(t, domain.IsAfternoonHour(b.Time), "afternoon double-booked")
		assert.NotEqual(t, "anim-1", b.AnimationID, "Sophie double-booked")
	}
}

func TestExecuteReportsShortfall(t *testing.T) {
	uc, repo := generatorFixture(nil)

	// a single month cannot hold that many mutually compatible bookings:
	// two animators, Tuesdays and Thursdays only
	resp, err := uc.Execute(context.Background(), &Request{Count: MaxCount, Months: []string{"2025-11"}})
	require.NoError(t, err)

	assert.Equal(t, MaxCount, resp.Requested)
	assert.Less(t, resp.Generated, resp.Requested)
	assert.Equal(t, resp.Generated, resp.Saved)
	assert.Len(t, repo.saved, resp.Saved)
}

func TestExecuteMonthFilter(t *testing.T) {
	uc, repo := generatorFixture(nil)

	resp, err := uc.Execute(context.Background(), &Request{Count: 5, Months: []string{"2025-12"}})
	require.NoError(t, err)
	require.Equal(t, 5, resp.Saved)

	for _, b := range repo.saved {
		assert.Equal(t, "2025-12", b.Date[:7])
	}
}

func TestExecuteDisjointMonthSelection(t *testing.T) {
	uc, repo := generatorFixture(nil)

	// несвязный выбор: ноябрь и февраль, декабрь и январь не затрагиваются
	resp, err := uc.Execute(context.Background(), &Request{
		Count:  20,
		Months: []string{"2025-11", "2026-02"},
	})
	require.NoError(t, err)
	require.Equal(t, 20, resp.Saved)

	seen := make(map[string]bool)
	for _, b := range repo.saved {
		seen[b.Date[:7]] = true
		assert.Contains(t, []string{"2025-11", "2026-02"}, b.Date[:7])
	}
	assert.True(t, seen["2025-11"], "november is empty")
	assert.True(t, seen["2026-02"], "february is empty")
}

func TestExecuteMonthOutsideYearRejected(t *testing.T) {
	uc, _ := generatorFixture(nil)

	for _, month := range []string{"2025-08", "2026-07", "decembre"} {
		_, err := uc.Execute(context.Background(), &Request{Count: 5, Months: []string{month}})
		assert.ErrorIs(t, err, ErrInvalidInput, "month %q", month)
	}

	// один месяц вне года отклоняет весь запрос
	_, err := uc.Execute(context.Background(), &Request{Count: 5, Months: []string{"2025-11", "2025-09"}})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestExecuteCountBounds(t *testing.T) {
	uc, _ := generatorFixture(nil)

	for _, count := range []int{0, -3, MaxCount + 1} {
		_, err := uc.Execute(context.Background(), &Request{Count: count})
		assert.ErrorIs(t, err, ErrInvalidInput, "count %d", count)
	}
}

func TestExecuteFakeDataLooksPlausible(t *testing.T) {
	uc, repo := generatorFixture(nil)

	_, err := uc.Execute(context.Background(), &Request{Count: 15})
	require.NoError(t, err)

	for _, b := range repo.saved {
		assert.NotEmpty(t, b.TeacherName)
		assert.Contains(t, b.Email, "@ecole-fictive.fr")
		assert.Regexp(t, `^06\d{8}$`, b.PhoneNumber)
		assert.GreaterOrEqual(t, b.StudentCount, 20)
		assert.LessOrEqual(t, b.StudentCount, 30)
		assert.GreaterOrEqual(t, b.AdultCount, 2)
		assert.LessOrEqual(t, b.AdultCount, 4)
		assert.NotEmpty(t, b.AnimationTitle)

		if b.NoBusRequired {
			assert.Empty(t, b.BusStatus)
		} else {
			assert.Equal(t, domain.BusStatusPending, b.BusStatus)
			assert.NotEmpty(t, b.BusInfo)
		}
	}
}

func TestExecutePartialSaveTolerated(t *testing.T) {
	uc, repo := generatorFixture(nil)
	repo.failAll = true

	resp, err := uc.Execute(context.Background(), &Request{Count: 5})
	require.NoError(t, err)

	assert.Equal(t, 5, resp.Generated)
	assert.Equal(t, 0, resp.Saved)
	assert.Empty(t, resp.IDs)
}
