package availability

import (
	"time"

	"github.com/ateliernature/animations-booking/internal/domain"
	"github.com/ateliernature/animations-booking/pkg/dates"
)

// DateBookable reports whether the school calendar permits bookings on the
// given date at all: the weekday must be in the allow-list, the day must not
// fall in a holiday range, and the date must respect the lead time counted
// from "now" normalized to midnight.
//
// Comparison is at day granularity on local calendar fields, never instants.
func DateBookable(date time.Time, now time.Time, settings *domain.AppSettings) bool {
	if !settings.WeekdayAllowed(int(date.Weekday())) {
		return false
	}

	day := dates.FormatDay(date)
	if settings.HolidayOn(day) {
		return false
	}

	minDate := dates.AddDays(now, settings.LeadTimeDays())
	return !dates.Midnight(date).Before(minDate)
}
