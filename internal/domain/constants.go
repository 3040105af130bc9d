package domain

// Time format constants
const (
	DateFormat = "2006-01-02" // YYYY-MM-DD, also the lookup key for day sets
)

// Settings document constants
const (
	// SettingsDocID is the well-known id of the single settings document.
	SettingsDocID = "global"
)

// Default calendar rules, applied when the settings document omits a field.
const (
	DefaultBookingLeadTime = 14 // days of notice before a bookable date
)

var (
	// DefaultAllowedDays are the weekdays open for booking (Tue, Thu).
	DefaultAllowedDays = []int{2, 4}

	// DefaultTimeSlots is the full set of bookable hours.
	DefaultTimeSlots = []int{9, 10, 14, 15}

	// AfternoonHours is the pair of hours forming the afternoon band.
	// At most one booking may occupy the band per day, platform-wide.
	AfternoonHours = []int{14, 15}
)

// IsAfternoonHour reports whether h belongs to the afternoon band.
func IsAfternoonHour(h int) bool {
	for _, a := range AfternoonHours {
		if h == a {
			return true
		}
	}
	return false
}

// Business validation constants
const (
	MinBookingLeadTime = 0
	MaxBookingLeadTime = 365
	MinStudentCount    = 1
	MaxStudentCount    = 100
	MinAdultCount      = 0
	MaxAdultCount      = 20
)
