package bookings

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ateliernature/animations-booking/internal/availability"
	"github.com/ateliernature/animations-booking/internal/domain"
	bookingRepo "github.com/ateliernature/animations-booking/internal/infra/storage/booking"
)

type fakeBookingRepo struct {
	byID  map[string]*domain.Booking
	saved []*domain.Booking
}

func newFakeBookingRepo(bookings ...*domain.Booking) *fakeBookingRepo {
	r := &fakeBookingRepo{byID: make(map[string]*domain.Booking)}
	for _, b := range bookings {
		r.byID[b.ID] = b
	}
	return r
}

func (r *fakeBookingRepo) Save(_ context.Context, b *domain.Booking) error {
	r.saved = append(r.saved, b)
	r.byID[b.ID] = b
	return nil
}

func (r *fakeBookingRepo) GetByID(_ context.Context, id string) (*domain.Booking, error) {
	b, ok := r.byID[id]
	if !ok {
		return nil, bookingRepo.ErrBookingNotFound
	}
	return b, nil
}

func (r *fakeBookingRepo) List(_ context.Context, _ domain.BookingsFilter) ([]*domain.Booking, error) {
	out := make([]*domain.Booking, 0, len(r.byID))
	for _, b := range r.byID {
		out = append(out, b)
	}
	return out, nil
}

func (r *fakeBookingRepo) Remove(_ context.Context, id string) error {
	if _, ok := r.byID[id]; !ok {
		return bookingRepo.ErrBookingNotFound
	}
	delete(r.byID, id)
	return nil
}

type fakeSnapshotProvider struct {
	snap *availability.Snapshot
}

func (p *fakeSnapshotProvider) Get(_ context.Context) (*availability.Snapshot, error) {
	return p.snap, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func serviceFixture(bookings ...*domain.Booking) (*Service, *fakeBookingRepo) {
	settings := &domain.AppSettings{ActiveYear: "2025-2026"}
	animations := []*domain.Animation{
		{ID: "anim-1", Title: "Découverte de la mare", Animator: "Sophie"},
		{ID: "anim-2", Title: "Land art"},
	}

	repo := newFakeBookingRepo(bookings...)
	snap := availability.NewSnapshot(settings, animations, bookings)
	return NewService(repo, &fakeSnapshotProvider{snap: snap}, nopLogger{}), repo
}

func TestUpdateKeepsSlotWithoutRecheck(t *testing.T) {
	b := &domain.Booking{ID: "b1", AnimationID: "anim-1", Date: "2025-11-04", Time: 9, SchoolName: "École Pasteur"}
	svc, repo := serviceFixture(b)

	// правки без переноса: меняется только школа
	edited := *b
	edited.SchoolName = "École Victor Hugo"

	require.NoError(t, svc.Update(context.Background(), &edited))
	require.Len(t, repo.saved, 1)
	assert.Equal(t, "École Victor Hugo", repo.saved[0].SchoolName)
}

func TestUpdateMoveToFreeSlot(t *testing.T) {
	b := &domain.Booking{ID: "b1", AnimationID: "anim-1", Date: "2025-11-04", Time: 9}
	svc, repo := serviceFixture(b)

	edited := *b
	edited.Date = "2025-11-06"

	// перенос на свободный день проходит, самоконфликта нет
	require.NoError(t, svc.Update(context.Background(), &edited))
	assert.Len(t, repo.saved, 1)
}

func TestUpdateMoveOntoTakenSlot(t *testing.T) {
	b1 := &domain.Booking{ID: "b1", AnimationID: "anim-1", Date: "2025-11-04", Time: 9}
	b2 := &domain.Booking{ID: "b2", AnimationID: "anim-2", Date: "2025-11-06", Time: 10}
	svc, _ := serviceFixture(b1, b2)

	edited := *b1
	edited.Date = "2025-11-06"
	edited.Time = 10

	assert.ErrorIs(t, svc.Update(context.Background(), &edited), ErrSlotConflict)
}

func TestUpdateMoveOntoAnimatorDayConflict(t *testing.T) {
	b1 := &domain.Booking{ID: "b1", AnimationID: "anim-2", Date: "2025-11-04", Time: 10}
	b2 := &domain.Booking{ID: "b2", AnimationID: "anim-1", Date: "2025-11-06", Time: 9}
	svc, _ := serviceFixture(b1, b2)

	// переносим b1 на анимацию Софи в день, где Софи уже занята
	edited := *b1
	edited.AnimationID = "anim-1"
	edited.Date = "2025-11-06"
	edited.Time = 14

	assert.ErrorIs(t, svc.Update(context.Background(), &edited), ErrSlotConflict)
}

func TestUpdateIgnoresCalendarRules(t *testing.T) {
	// воскресенье в прошлом: форма школы такое не пропустит,
	// но админ переносит без календарных ограничений
	b := &domain.Booking{ID: "b1", AnimationID: "anim-2", Date: "2025-11-04", Time: 9}
	svc, repo := serviceFixture(b)

	edited := *b
	edited.Date = "2025-11-02"

	require.NoError(t, svc.Update(context.Background(), &edited))
	assert.Len(t, repo.saved, 1)
}

func TestUpdateValidation(t *testing.T) {
	b := &domain.Booking{ID: "b1", AnimationID: "anim-1", Date: "2025-11-04", Time: 9}
	svc, _ := serviceFixture(b)
	ctx := context.Background()

	noID := *b
	noID.ID = ""
	assert.ErrorIs(t, svc.Update(ctx, &noID), ErrInvalidInput)

	badDate := *b
	badDate.Date = "04/11/2025"
	assert.ErrorIs(t, svc.Update(ctx, &badDate), ErrInvalidInput)

	badStatus := *b
	badStatus.BusStatus = "confirmed"
	assert.ErrorIs(t, svc.Update(ctx, &badStatus), ErrInvalidInput)

	missing := *b
	missing.ID = "ghost"
	assert.ErrorIs(t, svc.Update(ctx, &missing), ErrBookingNotFound)
}

func TestDelete(t *testing.T) {
	b := &domain.Booking{ID: "b1", AnimationID: "anim-1", Date: "2025-11-04", Time: 9}
	svc, repo := serviceFixture(b)
	ctx := context.Background()

	require.NoError(t, svc.Delete(ctx, "b1"))
	assert.Empty(t, repo.byID)

	assert.ErrorIs(t, svc.Delete(ctx, "b1"), ErrBookingNotFound)
}

func TestListValidatesDates(t *testing.T) {
	svc, _ := serviceFixture()
	bad := "demain"

	_, err := svc.List(context.Background(), domain.BookingsFilter{FromDate: &bad})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
