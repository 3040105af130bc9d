package get_settings

import "github.com/ateliernature/animations-booking/internal/domain"

// PublicSettings публичная проекция документа настроек: без адреса
// администратора и без ограничений аниматоров
type PublicSettings struct {
	ActiveYear string           `json:"activeYear"`
	Holidays   []domain.Holiday `json:"holidays"`

	BookingLeadTime    int   `json:"bookingLeadTime"`
	AllowedDays        []int `json:"allowedDays"`
	AvailableTimeSlots []int `json:"availableTimeSlots"`

	HomepageTitle    string `json:"homepageTitle,omitempty"`
	HomepageSubtitle string `json:"homepageSubtitle,omitempty"`
	FooterContent    string `json:"footerContent,omitempty"`
	ContactPhone     string `json:"contactPhone,omitempty"`
	ContactEmail     string `json:"contactEmail,omitempty"`
}

func publicView(s *domain.AppSettings) *PublicSettings {
	return &PublicSettings{
		ActiveYear:         s.ActiveYear,
		Holidays:           s.Holidays,
		BookingLeadTime:    s.LeadTimeDays(),
		AllowedDays:        s.AllowedWeekdays(),
		AvailableTimeSlots: s.TimeSlots(),
		HomepageTitle:      s.HomepageTitle,
		HomepageSubtitle:   s.HomepageSubtitle,
		FooterContent:      s.FooterContent,
		ContactPhone:       s.ContactPhone,
		ContactEmail:       s.ContactEmail,
	}
}
