package availability

import (
	"github.com/ateliernature/animations-booking/internal/domain"
)

// AnimatorAvailable reports whether the named animator can work the given
// day and hour. An empty name means the animation is unconstrained. Missing
// settings entries default to "no constraints".
func AnimatorAvailable(animator string, day string, hour int, settings *domain.AppSettings) bool {
	if animator == "" {
		return true
	}

	constraints := settings.AnimatorConstraints(animator)
	if constraints.HourInactive(hour) {
		return false
	}
	if constraints.DateUnavailable(day) {
		return false
	}
	return true
}
