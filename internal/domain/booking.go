package domain

// BusStatus represents the validation state of the bus arrangement.
type BusStatus string

const (
	BusStatusPending   BusStatus = "pending"
	BusStatusValidated BusStatus = "validated"
)

// Valid reports whether s is a known bus status.
func (s BusStatus) Valid() bool {
	return s == BusStatusPending || s == BusStatusValidated
}

// Booking represents a single reservation of an animation slot.
type Booking struct {
	ID string `json:"id"`

	// Animation reference: id plus a denormalized copy of the title,
	// kept so booking history survives animation edits.
	AnimationID    string `json:"animationId"`
	AnimationTitle string `json:"animationTitle"`

	Date string `json:"date"` // canonical YYYY-MM-DD day
	Time int    `json:"time"` // hour value from the configured slot set

	TeacherName string `json:"teacherName"`
	ClassLevel  string `json:"classLevel"`
	Commune     string `json:"commune"`
	SchoolName  string `json:"schoolName"`
	PhoneNumber string `json:"phoneNumber"`
	Email       string `json:"email"`

	StudentCount int `json:"studentCount"`
	AdultCount   int `json:"adultCount"`

	// Bus logistics
	BusInfo       string    `json:"busInfo"`
	NoBusRequired bool      `json:"noBusRequired,omitempty"`
	BusStatus     BusStatus `json:"busStatus,omitempty"`
	BusCost       float64   `json:"busCost,omitempty"`
}

// IsAfternoon reports whether the booking occupies the afternoon band.
func (b *Booking) IsAfternoon() bool {
	return IsAfternoonHour(b.Time)
}

// NeedsBus reports whether the booking takes part in bus logistics.
func (b *Booking) NeedsBus() bool {
	return !b.NoBusRequired
}

// BookingsFilter фильтр для выборки бронирований
type BookingsFilter struct {
	FromDate  *string    // включительно, YYYY-MM-DD
	ToDate    *string    // включительно, YYYY-MM-DD
	BusStatus *BusStatus // только с указанным статусом автобуса
	NeedBus   bool       // только бронирования, которым нужен автобус
}

// BookingsByDate indexes bookings by their canonical day string.
func BookingsByDate(bookings []*Booking) map[string][]*Booking {
	m := make(map[string][]*Booking, len(bookings))
	for _, b := range bookings {
		m[b.Date] = append(m[b.Date], b)
	}
	return m
}
