package availability

import (
	"strconv"
	"time"

	"github.com/ateliernature/animations-booking/internal/domain"
	"github.com/ateliernature/animations-booking/pkg/dates"
)

// Slot is one currently-bookable (animation, date, hour) triple.
type Slot struct {
	Animation *domain.Animation
	Date      time.Time
	Day       string // canonical YYYY-MM-DD of Date
	Hour      int
}

// Enumerate walks the given school-year months and produces every triple
// that is bookable against the snapshot. The result is finite and
// restartable: the same inputs always yield the same sequence, and the
// snapshot is never advanced: each emitted triple is valid against the
// current booking set, not a hypothetically-updated one.
//
// Iteration order is day, then animation, then hour.
func Enumerate(snap *Snapshot, now time.Time, months []Month) []Slot {
	var slots []Slot

	for _, month := range months {
		for dayNum := 1; dayNum <= month.DayCount(); dayNum++ {
			date := time.Date(month.Year, month.Month, dayNum, 0, 0, 0, 0, time.Local)

			if !DateBookable(date, now, snap.Settings) {
				continue
			}
			day := dates.FormatDay(date)

			for _, anim := range snap.Animations {
				for _, hour := range snap.Settings.TimeSlots() {
					if !SlotFree(anim, day, hour, snap) {
						continue
					}
					if !AnimatorAvailable(anim.Animator, day, hour, snap.Settings) {
						continue
					}
					slots = append(slots, Slot{Animation: anim, Date: date, Day: day, Hour: hour})
				}
			}
		}
	}

	return slots
}

// bandKey collapses the afternoon hours into one display unit: a day offers
// at most one afternoon booking, so 14h and 15h count as the same slot.
func bandKey(day string, hour int) string {
	if domain.IsAfternoonHour(hour) {
		return afternoonKey(day)
	}
	return day + "-" + strconv.Itoa(hour)
}

// DistinctCount counts slots per day-and-timeband, the figure shown to
// admins ("N créneaux disponibles"). A derived view over Enumerate's output,
// not a property of the base sequence.
func DistinctCount(slots []Slot) int {
	seen := make(map[string]struct{}, len(slots))
	for _, s := range slots {
		seen[bandKey(s.Day, s.Hour)] = struct{}{}
	}
	return len(seen)
}

// DistinctCountByMonth breaks DistinctCount down per school-year month.
// Months without available slots are absent from the map.
func DistinctCountByMonth(slots []Slot) map[Month]int {
	seen := make(map[string]struct{}, len(slots))
	counts := make(map[Month]int)
	for _, s := range slots {
		key := bandKey(s.Day, s.Hour)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		counts[Month{Year: s.Date.Year(), Month: s.Date.Month()}]++
	}
	return counts
}
