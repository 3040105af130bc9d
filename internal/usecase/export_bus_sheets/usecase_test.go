package export_bus_sheets

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ateliernature/animations-booking/internal/domain"
	"github.com/ateliernature/animations-booking/pkg/ptr"
)

type fakeBookingRepo struct {
	bookings   []*domain.Booking
	lastFilter domain.BookingsFilter
}

func (r *fakeBookingRepo) List(_ context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error) {
	r.lastFilter = filter
	return r.bookings, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func busBookings() []*domain.Booking {
	return []*domain.Booking{
		{
			ID:             "b1",
			AnimationTitle: "Découverte de la mare",
			Date:           "2025-11-04",
			Time:           9,
			TeacherName:    "Mme Lefèvre",
			ClassLevel:     "CE2",
			Commune:        "Questembert",
			SchoolName:     "École publique du Centre",
			PhoneNumber:    "0612345678",
			StudentCount:   24,
			AdultCount:     3,
			BusStatus:      domain.BusStatusPending,
			BusInfo:        "Départ devant la mairie à 8h30",
		},
		{
			ID:             "b2",
			AnimationTitle: "Land art",
			Date:           "2025-11-06",
			Time:           14,
			TeacherName:    "M. Guillou",
			ClassLevel:     "CM1",
			Commune:        "Malestroit",
			SchoolName:     "École Sainte-Anne",
			PhoneNumber:    "0698765432",
			StudentCount:   27,
			AdultCount:     2,
			BusStatus:      domain.BusStatusValidated,
			BusCost:        180.50,
		},
	}
}

func TestExecuteRendersPDF(t *testing.T) {
	repo := &fakeBookingRepo{bookings: busBookings()}
	uc := NewUseCase(repo, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{})
	require.NoError(t, err)

	assert.Equal(t, 2, resp.Count)
	assert.Equal(t, "feuilles-bus.pdf", resp.FileName)
	require.NotEmpty(t, resp.PDF)
	assert.Equal(t, "%PDF", string(resp.PDF[:4]))

	// в документ попадают только поездки с автобусом
	assert.True(t, repo.lastFilter.NeedBus)
}

func TestExecuteForwardsDateRange(t *testing.T) {
	repo := &fakeBookingRepo{bookings: busBookings()}
	uc := NewUseCase(repo, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{
		FromDate: ptr.Ptr("2025-11-01"),
		ToDate:   ptr.Ptr("2025-11-30"),
	})
	require.NoError(t, err)

	assert.Equal(t, "feuilles-bus-2025-11-01-2025-11-30.pdf", resp.FileName)
	require.NotNil(t, repo.lastFilter.FromDate)
	assert.Equal(t, "2025-11-01", *repo.lastFilter.FromDate)
	require.NotNil(t, repo.lastFilter.ToDate)
	assert.Equal(t, "2025-11-30", *repo.lastFilter.ToDate)
}

func TestExecuteNoBookings(t *testing.T) {
	uc := NewUseCase(&fakeBookingRepo{}, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{})
	assert.ErrorIs(t, err, ErrNoBookings)
}

func TestExecuteValidatesRange(t *testing.T) {
	uc := NewUseCase(&fakeBookingRepo{bookings: busBookings()}, nopLogger{})
	ctx := context.Background()

	_, err := uc.Execute(ctx, &Request{FromDate: ptr.Ptr("04/11/2025")})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(ctx, &Request{
		FromDate: ptr.Ptr("2025-11-30"),
		ToDate:   ptr.Ptr("2025-11-01"),
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
