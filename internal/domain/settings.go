package domain

import (
	"fmt"
	"time"
)

// Holiday is a named closed date range; no booking is permitted inside it.
// Both endpoints are inclusive.
type Holiday struct {
	Name      string `json:"name"`
	StartDate string `json:"startDate"` // YYYY-MM-DD
	EndDate   string `json:"endDate"`   // YYYY-MM-DD
}

// Contains reports whether the canonical day falls inside the range.
// Day strings in YYYY-MM-DD order lexicographically, so plain string
// comparison is exact at day granularity.
func (h *Holiday) Contains(day string) bool {
	return day >= h.StartDate && day <= h.EndDate
}

// Animator is a person who runs animations.
type Animator struct {
	Name      string `json:"name"`
	Email     string `json:"email,omitempty"`
	AvatarURL string `json:"avatarUrl,omitempty"`
}

// AnimatorSettings holds the per-animator availability constraints.
// A missing entry means "no constraints", never "unavailable".
type AnimatorSettings struct {
	InactiveSlots    []int    `json:"inactiveSlots"`    // hours never worked, any day
	UnavailableDates []string `json:"unavailableDates"` // YYYY-MM-DD days off
}

// HourInactive reports whether the animator never works at hour h.
func (s AnimatorSettings) HourInactive(h int) bool {
	for _, slot := range s.InactiveSlots {
		if slot == h {
			return true
		}
	}
	return false
}

// DateUnavailable reports whether the animator is off on the given day.
func (s AnimatorSettings) DateUnavailable(day string) bool {
	for _, d := range s.UnavailableDates {
		if d == day {
			return true
		}
	}
	return false
}

// AppSettings is the global configuration singleton, stored as one document
// under SettingsDocID. Exactly one settings document exists process-wide.
type AppSettings struct {
	ActiveYear string    `json:"activeYear"` // "YYYY-YYYY"
	Holidays   []Holiday `json:"holidays"`

	AdminEmail string `json:"adminEmail"`

	Animators        []Animator                  `json:"animators"`
	AnimatorSettings map[string]AnimatorSettings `json:"animatorSettings,omitempty"`

	// Calendar rules
	BookingLeadTime    *int  `json:"bookingLeadTime,omitempty"` // days of notice
	AllowedDays        []int `json:"allowedDays,omitempty"`     // 0=Sun ... 6=Sat
	AvailableTimeSlots []int `json:"availableTimeSlots,omitempty"`

	// Site content (cosmetic, carried through untouched by the core)
	HomepageTitle    string `json:"homepageTitle,omitempty"`
	HomepageSubtitle string `json:"homepageSubtitle,omitempty"`
	FooterContent    string `json:"footerContent,omitempty"`
	ContactPhone     string `json:"contactPhone,omitempty"`
	ContactEmail     string `json:"contactEmail,omitempty"`
	AdminLoginBgURL  string `json:"adminLoginBgUrl,omitempty"`
}

// LeadTimeDays returns the configured lead time or the default.
func (s *AppSettings) LeadTimeDays() int {
	if s.BookingLeadTime == nil {
		return DefaultBookingLeadTime
	}
	return *s.BookingLeadTime
}

// AllowedWeekdays returns the configured weekday allow-list or the default.
func (s *AppSettings) AllowedWeekdays() []int {
	if len(s.AllowedDays) == 0 {
		return DefaultAllowedDays
	}
	return s.AllowedDays
}

// TimeSlots returns the configured hour set or the default.
func (s *AppSettings) TimeSlots() []int {
	if len(s.AvailableTimeSlots) == 0 {
		return DefaultTimeSlots
	}
	return s.AvailableTimeSlots
}

// WeekdayAllowed reports whether the weekday number is open for booking.
func (s *AppSettings) WeekdayAllowed(weekday int) bool {
	for _, d := range s.AllowedWeekdays() {
		if d == weekday {
			return true
		}
	}
	return false
}

// HolidayOn reports whether the day falls inside any holiday range.
func (s *AppSettings) HolidayOn(day string) bool {
	for i := range s.Holidays {
		if s.Holidays[i].Contains(day) {
			return true
		}
	}
	return false
}

// AnimatorConstraints returns the constraints for the named animator.
// Missing entries default to the zero value: no constraints.
func (s *AppSettings) AnimatorConstraints(name string) AnimatorSettings {
	if s.AnimatorSettings == nil {
		return AnimatorSettings{}
	}
	return s.AnimatorSettings[name]
}

// DefaultSettings returns the settings in effect until an admin saves the
// document: the school year that began the previous October, default calendar
// rules, no holidays, no animators.
func DefaultSettings(now time.Time) *AppSettings {
	startYear := now.Year()
	if now.Month() < time.October {
		startYear--
	}
	return &AppSettings{
		ActiveYear: fmt.Sprintf("%d-%d", startYear, startYear+1),
	}
}

// HasAnimator reports whether the named animator exists in the global list.
func (s *AppSettings) HasAnimator(name string) bool {
	for i := range s.Animators {
		if s.Animators[i].Name == name {
			return true
		}
	}
	return false
}
