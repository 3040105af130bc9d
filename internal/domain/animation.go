package domain

import "strings"

// Animation represents a bookable workshop offering.
type Animation struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	ClassLevel  string `json:"classLevel"`

	// Animator is a reference by name into the settings animator list.
	// Empty means the animation runs without a dedicated animator.
	Animator string `json:"animator,omitempty"`

	Color     string `json:"color"`
	FontColor string `json:"fontColor"`

	// Order is the dense display/selection index.
	Order int `json:"order"`
}

// HasAnimator reports whether the animation has an assigned animator.
func (a *Animation) HasAnimator() bool {
	return strings.TrimSpace(a.Animator) != ""
}

// AnimatorByID builds the animationID -> animator name map used by the
// conflict checker. Animations without an animator are omitted.
func AnimatorByID(animations []*Animation) map[string]string {
	m := make(map[string]string, len(animations))
	for _, a := range animations {
		if a.HasAnimator() {
			m[a.ID] = a.Animator
		}
	}
	return m
}
