package create_booking

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ateliernature/animations-booking/internal/availability"
	"github.com/ateliernature/animations-booking/internal/domain"
	"github.com/ateliernature/animations-booking/internal/integrations/mailer"
	"github.com/ateliernature/animations-booking/pkg/ptr"
)

type fakeBookingRepo struct {
	saved []*domain.Booking
}

func (r *fakeBookingRepo) Save(_ context.Context, b *domain.Booking) error {
	r.saved = append(r.saved, b)
	return nil
}

type fakeSnapshotProvider struct {
	snap *availability.Snapshot
}

func (p *fakeSnapshotProvider) Get(_ context.Context) (*availability.Snapshot, error) {
	return p.snap, nil
}

type fakeMailer struct {
	sent []*mailer.Message
}

func (m *fakeMailer) Send(_ context.Context, msg *mailer.Message) error {
	m.sent = append(m.sent, msg)
	return nil
}

type fixedTime struct{ t time.Time }

func (f fixedTime) Now() time.Time { return f.t }

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func fixture(bookings []*domain.Booking) (*UseCase, *fakeBookingRepo, *fakeMailer) {
	settings := &domain.AppSettings{
		ActiveYear:      "2025-2026",
		BookingLeadTime: ptr.Ptr(14),
		AdminEmail:      "admin@atelier-nature.fr",
		Animators:       []domain.Animator{{Name: "Sophie"}},
		AnimatorSettings: map[string]domain.AnimatorSettings{
			"Sophie": {InactiveSlots: []int{15}},
		},
	}
	animations := []*domain.Animation{
		{ID: "anim-1", Title: "Découverte de la mare", Animator: "Sophie"},
		{ID: "anim-2", Title: "Land art"},
	}

	repo := &fakeBookingRepo{}
	mail := &fakeMailer{}
	uc := NewUseCase(repo, &fakeSnapshotProvider{
		snap: availability.NewSnapshot(settings, animations, bookings),
	}, mail, nopLogger{})
	uc.timeProvider = fixedTime{t: time.Date(2025, time.October, 25, 10, 0, 0, 0, time.Local)}
	return uc, repo, mail
}

func validRequest() *Request {
	return &Request{
		AnimationID:  "anim-1",
		Date:         "2025-11-13", // Thursday, two weeks ahead of "now"
		Time:         9,
		TeacherName:  "Claire Dubois",
		ClassLevel:   "CE2",
		Commune:      "Lille",
		SchoolName:   "École Pasteur",
		PhoneNumber:  "0612345678",
		Email:        "claire.dubois@ecole.fr",
		StudentCount: 25,
		AdultCount:   3,
		BusInfo:      "Départ 8h30 devant l'école",
	}
}

func TestExecuteCreatesBooking(t *testing.T) {
	uc, repo, _ := fixture(nil)

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	require.Len(t, repo.saved, 1)
	saved := repo.saved[0]

	assert.NotEmpty(t, resp.ID)
	assert.Equal(t, saved.ID, resp.ID)
	assert.Equal(t, "Découverte de la mare", saved.AnimationTitle)
	assert.Equal(t, "2025-11-13", saved.Date)
	assert.Equal(t, 9, saved.Time)
	assert.Equal(t, domain.BusStatusPending, saved.BusStatus)
}

func TestExecuteNoBusSkipsBusStatus(t *testing.T) {
	uc, repo, _ := fixture(nil)

	req := validRequest()
	req.NoBusRequired = true
	req.BusInfo = ""

	_, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)

	require.Len(t, repo.saved, 1)
	assert.Empty(t, repo.saved[0].BusStatus)
}

func TestExecuteSendsBothEmails(t *testing.T) {
	uc, _, mail := fixture(nil)

	_, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	require.Len(t, mail.sent, 2)
	assert.Equal(t, "claire.dubois@ecole.fr", mail.sent[0].To)
	assert.Equal(t, mailer.TemplateBookingConfirmation, mail.sent[0].Template)
	assert.Equal(t, "admin@atelier-nature.fr", mail.sent[1].To)
	assert.Equal(t, mailer.TemplateAdminNotification, mail.sent[1].Template)
}

func TestExecuteSlotTakenConflict(t *testing.T) {
	existing := []*domain.Booking{
		{ID: "b1", AnimationID: "anim-2", Date: "2025-11-13", Time: 9},
	}
	uc, repo, _ := fixture(existing)

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrSlotNotAvailable)
	assert.Empty(t, repo.saved)
}

func TestExecuteAnimatorBusySameDay(t *testing.T) {
	existing := []*domain.Booking{
		{ID: "b1", AnimationID: "anim-1", Date: "2025-11-13", Time: 10},
	}
	uc, _, _ := fixture(existing)

	// different hour, same day, same animator
	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrSlotNotAvailable)
}

func TestExecuteAfternoonBandConflict(t *testing.T) {
	existing := []*domain.Booking{
		{ID: "b1", AnimationID: "anim-2", Date: "2025-11-13", Time: 15},
	}
	uc, _, _ := fixture(existing)

	req := validRequest()
	req.AnimationID = "anim-2" // unassigned animation, only the band rule applies
	req.Time = 14

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrSlotNotAvailable)
}

func TestExecuteLeadTimeRejected(t *testing.T) {
	uc, _, _ := fixture(nil)

	req := validRequest()
	req.Date = "2025-11-04" // a Tuesday, but only 10 days ahead

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrDateNotBookable)
}

func TestExecuteDisallowedWeekdayRejected(t *testing.T) {
	uc, _, _ := fixture(nil)

	req := validRequest()
	req.Date = "2025-11-12" // Wednesday

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrDateNotBookable)
}

func TestExecuteAnimatorInactiveHour(t *testing.T) {
	uc, _, _ := fixture(nil)

	req := validRequest()
	req.Time = 15 // Sophie never works 15h

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrAnimatorUnavailable)
}

func TestExecuteUnknownAnimation(t *testing.T) {
	uc, _, _ := fixture(nil)

	req := validRequest()
	req.AnimationID = "missing"

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrAnimationNotFound)
}

func TestExecuteUnknownTimeSlot(t *testing.T) {
	uc, _, _ := fixture(nil)

	req := validRequest()
	req.Time = 11

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidTimeSlot)
}

func TestExecuteValidation(t *testing.T) {
	uc, _, _ := fixture(nil)

	cases := map[string]func(*Request){
		"missing animation": func(r *Request) { r.AnimationID = "" },
		"bad date":          func(r *Request) { r.Date = "13/11/2025" },
		"missing teacher":   func(r *Request) { r.TeacherName = " " },
		"missing school":    func(r *Request) { r.SchoolName = "" },
		"bad email":         func(r *Request) { r.Email = "not-an-email" },
		"too many students": func(r *Request) { r.StudentCount = 500 },
		"no students":       func(r *Request) { r.StudentCount = 0 },
	}

	for name, mutate := range cases {
		req := validRequest()
		mutate(req)
		_, err := uc.Execute(context.Background(), req)
		assert.ErrorIs(t, err, ErrInvalidInput, name)
	}
}
