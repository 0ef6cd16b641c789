package models

import "time"

// Job represents a placement listing. Listings are seeded and read-only
// through the current API surface.
type Job struct {
	ID           int64     `json:"id" db:"id"`
	Title        string    `json:"title" db:"title"`
	Company      string    `json:"company" db:"company"`
	Description  string    `json:"description" db:"description"`
	Requirements string    `json:"requirements" db:"requirements"`
	PostedAt     time.Time `json:"posted_at" db:"posted_at"`
}
