package settings

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ateliernature/animations-booking/internal/domain"
	settingsRepo "github.com/ateliernature/animations-booking/internal/infra/storage/settings"
	"github.com/ateliernature/animations-booking/pkg/ptr"
)

type fakeSettingsRepo struct {
	doc   *domain.AppSettings
	saved *domain.AppSettings
}

func (r *fakeSettingsRepo) Get(_ context.Context) (*domain.AppSettings, error) {
	if r.doc == nil {
		return nil, settingsRepo.ErrSettingsNotFound
	}
	return r.doc, nil
}

func (r *fakeSettingsRepo) Save(_ context.Context, s *domain.AppSettings) error {
	r.saved = s
	r.doc = s
	return nil
}

type fakeAnimationRepo struct {
	countByAnimator map[string]int
	renamedOld      string
	renamedNew      string
}

func (r *fakeAnimationRepo) CountByAnimator(_ context.Context, animator string) (int, error) {
	return r.countByAnimator[animator], nil
}

func (r *fakeAnimationRepo) RenameAnimator(_ context.Context, oldName, newName string) (int64, error) {
	r.renamedOld = oldName
	r.renamedNew = newName
	return int64(r.countByAnimator[oldName]), nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func settingsFixture() (*Service, *fakeSettingsRepo, *fakeAnimationRepo) {
	repo := &fakeSettingsRepo{
		doc: &domain.AppSettings{
			ActiveYear: "2025-2026",
			Animators:  []domain.Animator{{Name: "Sophie"}, {Name: "Marc"}},
			AnimatorSettings: map[string]domain.AnimatorSettings{
				"Sophie": {InactiveSlots: []int{15}},
			},
		},
	}
	animRepo := &fakeAnimationRepo{countByAnimator: map[string]int{"Sophie": 2}}
	return NewService(repo, animRepo, nopLogger{}), repo, animRepo
}

func TestLoadReturnsDefaultsWhenMissing(t *testing.T) {
	svc := NewService(&fakeSettingsRepo{}, &fakeAnimationRepo{}, nopLogger{})

	settings, err := svc.Load(context.Background())
	require.NoError(t, err)
	assert.Regexp(t, `^\d{4}-\d{4}$`, settings.ActiveYear)
	assert.Equal(t, domain.DefaultBookingLeadTime, settings.LeadTimeDays())
}

func TestSaveValidation(t *testing.T) {
	svc, repo, _ := settingsFixture()

	cases := map[string]*domain.AppSettings{
		"bad school year": {ActiveYear: "2025-2027"},
		"negative lead time": {
			ActiveYear:      "2025-2026",
			BookingLeadTime: ptr.Ptr(-1),
		},
		"weekday out of range": {
			ActiveYear:  "2025-2026",
			AllowedDays: []int{2, 7},
		},
		"holiday ends before start": {
			ActiveYear: "2025-2026",
			Holidays: []domain.Holiday{
				{Name: "Noël", StartDate: "2026-01-04", EndDate: "2025-12-20"},
			},
		},
	}

	for name, settings := range cases {
		err := svc.Save(context.Background(), settings)
		assert.ErrorIs(t, err, ErrInvalidInput, name)
	}
	assert.Nil(t, repo.saved, "nothing must be persisted on validation failure")
}

func TestSaveAcceptsValidDocument(t *testing.T) {
	svc, repo, _ := settingsFixture()

	doc := &domain.AppSettings{
		ActiveYear:      "2026-2027",
		BookingLeadTime: ptr.Ptr(21),
		AllowedDays:     []int{1, 2, 4},
		Holidays: []domain.Holiday{
			{Name: "Toussaint", StartDate: "2026-10-17", EndDate: "2026-11-01"},
		},
	}
	require.NoError(t, svc.Save(context.Background(), doc))
	assert.Equal(t, doc, repo.saved)
}

func TestRenameAnimatorMigratesEverything(t *testing.T) {
	svc, repo, animRepo := settingsFixture()

	err := svc.RenameAnimator(context.Background(), "Sophie", "Sophie Durand")
	require.NoError(t, err)

	require.NotNil(t, repo.saved)
	assert.True(t, repo.saved.HasAnimator("Sophie Durand"))
	assert.False(t, repo.saved.HasAnimator("Sophie"))

	// карта ограничений переезжает под новое имя
	assert.Contains(t, repo.saved.AnimatorSettings, "Sophie Durand")
	assert.NotContains(t, repo.saved.AnimatorSettings, "Sophie")

	// и денормализованные ссылки в анимациях переписаны
	assert.Equal(t, "Sophie", animRepo.renamedOld)
	assert.Equal(t, "Sophie Durand", animRepo.renamedNew)
}

func TestRenameAnimatorErrors(t *testing.T) {
	svc, _, _ := settingsFixture()
	ctx := context.Background()

	assert.ErrorIs(t, svc.RenameAnimator(ctx, "Inconnue", "Nouvelle"), ErrAnimatorNotFound)
	assert.ErrorIs(t, svc.RenameAnimator(ctx, "Sophie", "Marc"), ErrAnimatorExists)
	assert.ErrorIs(t, svc.RenameAnimator(ctx, "Sophie", "Sophie"), ErrInvalidInput)
	assert.ErrorIs(t, svc.RenameAnimator(ctx, "", "X"), ErrInvalidInput)
}

func TestRemoveAnimatorBlockedWhileReferenced(t *testing.T) {
	svc, repo, _ := settingsFixture()

	err := svc.RemoveAnimator(context.Background(), "Sophie")
	assert.ErrorIs(t, err, ErrAnimatorInUse)
	assert.Nil(t, repo.saved)
}

func TestRemoveAnimatorUnreferenced(t *testing.T) {
	svc, repo, _ := settingsFixture()

	err := svc.RemoveAnimator(context.Background(), "Marc")
	require.NoError(t, err)

	require.NotNil(t, repo.saved)
	assert.False(t, repo.saved.HasAnimator("Marc"))
	assert.True(t, repo.saved.HasAnimator("Sophie"))
}
