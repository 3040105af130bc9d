package animations

import (
	"context"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ateliernature/animations-booking/internal/domain"
	animationRepo "github.com/ateliernature/animations-booking/internal/infra/storage/animation"
)

type fakeAnimationRepo struct {
	byID map[string]*domain.Animation
}

func newFakeAnimationRepo(animations ...*domain.Animation) *fakeAnimationRepo {
	r := &fakeAnimationRepo{byID: make(map[string]*domain.Animation)}
	for _, a := range animations {
		r.byID[a.ID] = a
	}
	return r
}

func (r *fakeAnimationRepo) Save(_ context.Context, a *domain.Animation) error {
	copied := *a
	r.byID[a.ID] = &copied
	return nil
}

func (r *fakeAnimationRepo) GetByID(_ context.Context, id string) (*domain.Animation, error) {
	a, ok := r.byID[id]
	if !ok {
		return nil, animationRepo.ErrAnimationNotFound
	}
	return a, nil
}

func (r *fakeAnimationRepo) List(_ context.Context) ([]*domain.Animation, error) {
	out := make([]*domain.Animation, 0, len(r.byID))
	for _, a := range r.byID {
		out = append(out, a)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Order < out[j].Order })
	return out, nil
}

func (r *fakeAnimationRepo) Remove(_ context.Context, id string) error {
	if _, ok := r.byID[id]; !ok {
		return animationRepo.ErrAnimationNotFound
	}
	delete(r.byID, id)
	return nil
}

type fakeBookingCounter struct {
	counts map[string]int
}

func (r *fakeBookingCounter) CountByAnimation(_ context.Context, animationID string) (int, error) {
	return r.counts[animationID], nil
}

type fakeSettingsRepo struct {
	settings *domain.AppSettings
}

func (r *fakeSettingsRepo) Get(_ context.Context) (*domain.AppSettings, error) {
	return r.settings, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func animationsFixture() (*Service, *fakeAnimationRepo, *fakeBookingCounter) {
	repo := newFakeAnimationRepo(
		&domain.Animation{ID: "anim-1", Title: "Découverte de la mare", Animator: "Sophie", Order: 0},
		&domain.Animation{ID: "anim-2", Title: "Land art", Order: 1},
	)
	bookings := &fakeBookingCounter{counts: map[string]int{"anim-1": 3}}
	settings := &fakeSettingsRepo{settings: &domain.AppSettings{
		Animators: []domain.Animator{{Name: "Sophie"}},
	}}
	return NewService(repo, bookings, settings, nopLogger{}), repo, bookings
}

func TestSaveNewAnimationGetsIDAndOrder(t *testing.T) {
	svc, repo, _ := animationsFixture()

	saved, err := svc.Save(context.Background(), &domain.Animation{Title: "Oiseaux du bocage"})
	require.NoError(t, err)

	assert.NotEmpty(t, saved.ID)
	assert.Equal(t, 2, saved.Order, "appended at the end of the display order")
	assert.Len(t, repo.byID, 3)
}

func TestSaveRejectsUnknownAnimator(t *testing.T) {
	svc, _, _ := animationsFixture()

	_, err := svc.Save(context.Background(), &domain.Animation{
		Title:    "Oiseaux du bocage",
		Animator: "Inconnu",
	})
	assert.ErrorIs(t, err, ErrUnknownAnimator)
}

func TestSaveRequiresTitle(t *testing.T) {
	svc, _, _ := animationsFixture()

	_, err := svc.Save(context.Background(), &domain.Animation{Title: "  "})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestReorder(t *testing.T) {
	svc, repo, _ := animationsFixture()

	require.NoError(t, svc.Reorder(context.Background(), []string{"anim-2", "anim-1"}))

	assert.Equal(t, 0, repo.byID["anim-2"].Order)
	assert.Equal(t, 1, repo.byID["anim-1"].Order)
}

func TestReorderRejectsNonPermutation(t *testing.T) {
	svc, _, _ := animationsFixture()
	ctx := context.Background()

	assert.ErrorIs(t, svc.Reorder(ctx, []string{"anim-1"}), ErrInvalidInput)
	assert.ErrorIs(t, svc.Reorder(ctx, []string{"anim-1", "ghost"}), ErrInvalidInput)
	assert.ErrorIs(t, svc.Reorder(ctx, []string{"anim-1", "anim-1"}), ErrInvalidInput)
}

func TestDeleteBlockedByBookings(t *testing.T) {
	svc, repo, _ := animationsFixture()

	err := svc.Delete(context.Background(), "anim-1")
	assert.ErrorIs(t, err, ErrAnimationInUse)
	assert.Contains(t, repo.byID, "anim-1")
}

func TestDeleteUnreferenced(t *testing.T) {
	svc, repo, _ := animationsFixture()
	ctx := context.Background()

	require.NoError(t, svc.Delete(ctx, "anim-2"))
	assert.NotContains(t, repo.byID, "anim-2")

	assert.ErrorIs(t, svc.Delete(ctx, "anim-2"), ErrAnimationNotFound)
}
