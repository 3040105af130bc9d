package availability

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ateliernature/animations-booking/internal/domain"
	"github.com/ateliernature/animations-booking/pkg/ptr"
)

func enumerateFixture(bookings []*domain.Booking) (*Snapshot, time.Time, []Month) {
	settings := &domain.AppSettings{
		ActiveYear:      "2025-2026",
		BookingLeadTime: ptr.Ptr(0),
	}
	snap := NewSnapshot(settings, testAnimations(), bookings)
	now := day("2025-10-25")
	months := []Month{{Year: 2025, Month: time.November}}
	return snap, now, months
}

func TestEnumerateOnlyAllowedWeekdays(t *testing.T) {
	snap, now, months := enumerateFixture(nil)

	slots := Enumerate(snap, now, months)
	require.NotEmpty(t, slots)

	for _, s := range slots {
		wd := s.Date.Weekday()
		assert.True(t, wd == time.Tuesday || wd == time.Thursday,
			"unexpected weekday %s for %s", wd, s.Day)
	}
}

func TestEnumerateIsRestartable(t *testing.T) {
	snap, now, months := enumerateFixture(nil)

	first := Enumerate(snap, now, months)
	second := Enumerate(snap, now, months)

	// same inputs, same sequence: enumeration never advances the snapshot
	require.Equal(t, len(first), len(second))
	for i := range first {
		assert.Equal(t, first[i].Animation.ID, second[i].Animation.ID)
		assert.Equal(t, first[i].Day, second[i].Day)
		assert.Equal(t, first[i].Hour, second[i].Hour)
	}
}

func TestEnumerateSkipsBookedSlots(t *testing.T) {
	booked := []*domain.Booking{
		{ID: "b1", AnimationID: "anim-1", Date: "2025-11-04", Time: 9},
	}
	snap, now, months := enumerateFixture(booked)

	for _, s := range Enumerate(snap, now, months) {
		assert.False(t, s.Day == "2025-11-04" && s.Hour == 9,
			"booked slot leaked into enumeration")
		// Sophie is busy all day on the 4th
		if s.Day == "2025-11-04" {
			assert.NotEqual(t, "Sophie", s.Animation.Animator)
		}
	}
}

func TestDistinctCountCollapsesAfternoonBand(t *testing.T) {
	anims := []*domain.Animation{{ID: "anim-1", Title: "Land art"}}
	slots := []Slot{
		{Animation: anims[0], Date: day("2025-11-04"), Day: "2025-11-04", Hour: 9},
		{Animation: anims[0], Date: day("2025-11-04"), Day: "2025-11-04", Hour: 10},
		{Animation: anims[0], Date: day("2025-11-04"), Day: "2025-11-04", Hour: 14},
		{Animation: anims[0], Date: day("2025-11-04"), Day: "2025-11-04", Hour: 15},
	}

	// 9h, 10h, and one afternoon band
	assert.Equal(t, 3, DistinctCount(slots))
}

func TestDistinctCountByMonth(t *testing.T) {
	anims := []*domain.Animation{{ID: "anim-1", Title: "Land art"}}
	slots := []Slot{
		{Animation: anims[0], Date: day("2025-11-04"), Day: "2025-11-04", Hour: 9},
		{Animation: anims[0], Date: day("2025-11-04"), Day: "2025-11-04", Hour: 14},
		{Animation: anims[0], Date: day("2025-11-04"), Day: "2025-11-04", Hour: 15},
		{Animation: anims[0], Date: day("2025-12-02"), Day: "2025-12-02", Hour: 9},
	}

	counts := DistinctCountByMonth(slots)
	assert.Equal(t, 2, counts[Month{Year: 2025, Month: time.November}])
	assert.Equal(t, 1, counts[Month{Year: 2025, Month: time.December}])
}
