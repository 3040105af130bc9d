package create_booking

import (
	"fmt"
	"strings"

	"github.com/ateliernature/animations-booking/internal/domain"
	"github.com/ateliernature/animations-booking/pkg/dates"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if strings.TrimSpace(req.AnimationID) == "" {
		return fmt.Errorf("%w: animationId is required", ErrInvalidInput)
	}

	if req.Date == "" {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}
	if _, err := dates.ParseDay(req.Date); err != nil {
		return fmt.Errorf("%w: date must be YYYY-MM-DD", ErrInvalidInput)
	}

	if strings.TrimSpace(req.TeacherName) == "" {
		return fmt.Errorf("%w: teacherName is required", ErrInvalidInput)
	}
	if strings.TrimSpace(req.SchoolName) == "" {
		return fmt.Errorf("%w: schoolName is required", ErrInvalidInput)
	}
	if strings.TrimSpace(req.Commune) == "" {
		return fmt.Errorf("%w: commune is required", ErrInvalidInput)
	}

	if !strings.Contains(req.Email, "@") {
		return fmt.Errorf("%w: email is invalid", ErrInvalidInput)
	}

	if req.StudentCount < domain.MinStudentCount || req.StudentCount > domain.MaxStudentCount {
		return fmt.Errorf("%w: studentCount must be between %d and %d",
			ErrInvalidInput, domain.MinStudentCount, domain.MaxStudentCount)
	}
	if req.AdultCount < domain.MinAdultCount || req.AdultCount > domain.MaxAdultCount {
		return fmt.Errorf("%w: adultCount must be between %d and %d",
			ErrInvalidInput, domain.MinAdultCount, domain.MaxAdultCount)
	}

	return nil
}

// validateTimeSlot проверяет, что час входит в настроенный набор слотов
func validateTimeSlot(hour int, settings *domain.AppSettings) error {
	for _, slot := range settings.TimeSlots() {
		if hour == slot {
			return nil
		}
	}
	return fmt.Errorf("%w: hour %d is not a configured slot", ErrInvalidTimeSlot, hour)
}
