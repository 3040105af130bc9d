// Package dates canonicalizes calendar days as local "YYYY-MM-DD" strings.
//
// All day-level comparisons in the service go through this package: the day
// string is built from local calendar fields, never from a UTC instant, so a
// booking made at 23:30 stays on the day the user picked.
package dates

import "time"

// DayFormat is the canonical calendar-day layout.
const DayFormat = "2006-01-02"

// FormatDay returns the canonical day string for t, using t's own calendar
// fields (no timezone conversion).
func FormatDay(t time.Time) string {
	return t.Format(DayFormat)
}

// ParseDay parses a canonical day string into midnight local time.
func ParseDay(s string) (time.Time, error) {
	return time.ParseInLocation(DayFormat, s, time.Local)
}

// Midnight normalizes t to 00:00:00 in its own location.
func Midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// SameDay reports whether a and b fall on the same calendar day.
func SameDay(a, b time.Time) bool {
	y1, m1, d1 := a.Date()
	y2, m2, d2 := b.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// AddDays steps n calendar days from t. AddDate normalizes across DST
// transitions, so stepping never lands off midnight.
func AddDays(t time.Time, n int) time.Time {
	return Midnight(t).AddDate(0, 0, n)
}
