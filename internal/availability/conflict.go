package availability

import (
	"strconv"
	"time"

	"github.com/ateliernature/animations-booking/internal/domain"
	"github.com/ateliernature/animations-booking/pkg/dates"
)

// SlotFree applies the exclusivity rules against the snapshot's bookings for
// one day, without calendar or animator-settings gating:
//
//  1. the exact (day, hour) slot must be free, across all animations;
//  2. an afternoon hour is free only if the whole afternoon band is free;
//  3. an animation with an animator requires that animator to have no
//     booking anywhere on the day, regardless of hour.
//
// Read-only against the snapshot; order-independent.
func SlotFree(a *domain.Animation, day string, hour int, snap *Snapshot) bool {
	dayBookings := snap.DayBookings(day)

	for _, b := range dayBookings {
		if b.Time == hour {
			return false
		}
	}

	if domain.IsAfternoonHour(hour) {
		for _, b := range dayBookings {
			if b.IsAfternoon() {
				return false
			}
		}
	}

	if a.HasAnimator() {
		for _, b := range dayBookings {
			if snap.AnimatorOf(b.AnimationID) == a.Animator {
				return false
			}
		}
	}

	return true
}

// SlotBookable is the full booking gate for one (animation, date, hour)
// candidate: exclusivity rules, then calendar rules, then the animator's own
// constraints. A false result is a normal outcome, not an error.
func SlotBookable(a *domain.Animation, date time.Time, hour int, now time.Time, snap *Snapshot) bool {
	day := dates.FormatDay(date)

	if !SlotFree(a, day, hour, snap) {
		return false
	}
	if !DateBookable(date, now, snap.Settings) {
		return false
	}
	return AnimatorAvailable(a.Animator, day, hour, snap.Settings)
}

// ClaimSet tracks slots claimed during a single generation run. It mirrors
// the three exclusivity rules incrementally: exact slot, afternoon band and
// animator-day. Local to one run, discarded afterwards.
type ClaimSet struct {
	claimed map[string]struct{}
}

// NewClaimSet returns an empty claim set.
func NewClaimSet() *ClaimSet {
	return &ClaimSet{claimed: make(map[string]struct{})}
}

func slotKey(day string, hour int) string     { return day + "-" + strconv.Itoa(hour) }
func afternoonKey(day string) string          { return day + "-afternoon" }
func animatorKey(day, animator string) string { return day + "-@" + animator }

// Conflicts reports whether the candidate collides with anything already
// claimed this run.
func (c *ClaimSet) Conflicts(day string, hour int, animator string) bool {
	if _, ok := c.claimed[slotKey(day, hour)]; ok {
		return true
	}
	if domain.IsAfternoonHour(hour) {
		if _, ok := c.claimed[afternoonKey(day)]; ok {
			return true
		}
	}
	if animator != "" {
		if _, ok := c.claimed[animatorKey(day, animator)]; ok {
			return true
		}
	}
	return false
}

// Claim marks the candidate's slot, afternoon band and animator-day as taken.
func (c *ClaimSet) Claim(day string, hour int, animator string) {
	c.claimed[slotKey(day, hour)] = struct{}{}
	if domain.IsAfternoonHour(hour) {
		c.claimed[afternoonKey(day)] = struct{}{}
	}
	if animator != "" {
		c.claimed[animatorKey(day, animator)] = struct{}{}
	}
}
