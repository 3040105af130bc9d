package availability

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/ateliernature/animations-booking/pkg/dates"
)

// ErrInvalidSchoolYear возвращается при некорректной строке учебного года
var ErrInvalidSchoolYear = errors.New("availability: invalid school year")

// SchoolYear is the active booking period, October through June.
type SchoolYear struct {
	StartYear int // calendar year of October
	EndYear   int // calendar year of June
}

// ParseSchoolYear parses the "YYYY-YYYY" settings string.
func ParseSchoolYear(s string) (SchoolYear, error) {
	parts := strings.Split(s, "-")
	if len(parts) != 2 {
		return SchoolYear{}, fmt.Errorf("%w: %q", ErrInvalidSchoolYear, s)
	}
	start, err := strconv.Atoi(parts[0])
	if err != nil {
		return SchoolYear{}, fmt.Errorf("%w: %q", ErrInvalidSchoolYear, s)
	}
	end, err := strconv.Atoi(parts[1])
	if err != nil {
		return SchoolYear{}, fmt.Errorf("%w: %q", ErrInvalidSchoolYear, s)
	}
	if end != start+1 {
		return SchoolYear{}, fmt.Errorf("%w: %q", ErrInvalidSchoolYear, s)
	}
	return SchoolYear{StartYear: start, EndYear: end}, nil
}

// Month is one calendar month of the school year.
type Month struct {
	Year  int
	Month time.Month
}

// FirstDay returns midnight local on the first day of the month.
func (m Month) FirstDay() time.Time {
	return time.Date(m.Year, m.Month, 1, 0, 0, 0, 0, time.Local)
}

// DayCount returns the number of days in the month.
func (m Month) DayCount() int {
	// day 0 of the next month is the last day of this one
	return time.Date(m.Year, m.Month+1, 0, 0, 0, 0, 0, time.Local).Day()
}

// Months returns the school-year months in order, October through June.
func (y SchoolYear) Months() []Month {
	months := make([]Month, 0, 9)
	for m := time.October; m <= time.December; m++ {
		months = append(months, Month{Year: y.StartYear, Month: m})
	}
	for m := time.January; m <= time.June; m++ {
		months = append(months, Month{Year: y.EndYear, Month: m})
	}
	return months
}

// RemainingMonths returns the school-year months that have not fully passed
// as of now (the current month is included).
func (y SchoolYear) RemainingMonths(now time.Time) []Month {
	var remaining []Month
	for _, m := range y.Months() {
		if m.Year > now.Year() || (m.Year == now.Year() && m.Month >= now.Month()) {
			remaining = append(remaining, m)
		}
	}
	return remaining
}

// Contains reports whether the date falls inside the school year range
// (October 1st of the start year through June 30th of the end year).
func (y SchoolYear) Contains(date time.Time) bool {
	start := time.Date(y.StartYear, time.October, 1, 0, 0, 0, 0, date.Location())
	end := time.Date(y.EndYear, time.June, 30, 0, 0, 0, 0, date.Location())
	d := dates.Midnight(date)
	return !d.Before(start) && !d.After(end)
}
