// Package availability implements the slot-availability rules: calendar
// gating, animator constraints, conflict checking and exhaustive enumeration
// of bookable slots.
//
// Every function here is a pure function of an explicit Snapshot plus an
// explicit "now"; nothing reads ambient state or performs I/O. Callers own
// the freshness of the snapshot: when the booking collection changes, they
// rebuild the snapshot and re-evaluate.
package availability

import (
	"github.com/ateliernature/animations-booking/internal/domain"
)

// Snapshot is a read-only view of the data the evaluators need, captured at
// one moment. It is never mutated after construction.
type Snapshot struct {
	Settings   *domain.AppSettings
	Animations []*domain.Animation

	bookingsByDate map[string][]*domain.Booking
	animatorByID   map[string]string
}

// NewSnapshot indexes the collections for day-level lookups.
func NewSnapshot(settings *domain.AppSettings, animations []*domain.Animation, bookings []*domain.Booking) *Snapshot {
	return &Snapshot{
		Settings:       settings,
		Animations:     animations,
		bookingsByDate: domain.BookingsByDate(bookings),
		animatorByID:   domain.AnimatorByID(animations),
	}
}

// DayBookings returns the existing bookings on the canonical day.
func (s *Snapshot) DayBookings(day string) []*domain.Booking {
	return s.bookingsByDate[day]
}

// AnimatorOf returns the animator name assigned to the animation id,
// or "" when the animation has no animator (or is unknown).
func (s *Snapshot) AnimatorOf(animationID string) string {
	return s.animatorByID[animationID]
}
