package create_booking

import (
	createBooking "github.com/ateliernature/animations-booking/internal/usecase/create_booking"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	AnimationID string `json:"animationId"`
	Date        string `json:"date"` // "2025-11-13"
	Time        int    `json:"time"` // 9, 10, 14, 15

	TeacherName string `json:"teacherName"`
	ClassLevel  string `json:"classLevel"`
	Commune     string `json:"commune"`
	SchoolName  string `json:"schoolName"`
	PhoneNumber string `json:"phoneNumber"`
	Email       string `json:"email"`

	StudentCount int `json:"studentCount"`
	AdultCount   int `json:"adultCount"`

	BusInfo       string `json:"busInfo,omitempty"`
	NoBusRequired bool   `json:"noBusRequired,omitempty"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest() *createBooking.Request {
	return &createBooking.Request{
		AnimationID:   r.AnimationID,
		Date:          r.Date,
		Time:          r.Time,
		TeacherName:   r.TeacherName,
		ClassLevel:    r.ClassLevel,
		Commune:       r.Commune,
		SchoolName:    r.SchoolName,
		PhoneNumber:   r.PhoneNumber,
		Email:         r.Email,
		StudentCount:  r.StudentCount,
		AdultCount:    r.AdultCount,
		BusInfo:       r.BusInfo,
		NoBusRequired: r.NoBusRequired,
	}
}
