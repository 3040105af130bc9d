package domain

// ChangelogEntry is one admin journal record shown on the dashboard.
type ChangelogEntry struct {
	ID          string `json:"id"`
	Date        string `json:"date"` // YYYY-MM-DD
	Version     string `json:"version"`
	Title       string `json:"title"`
	Description string `json:"description"`
}
