package models

import "time"

// StudyMaterial represents a shared learning resource. Only admin and
// faculty users may upload; there is no update or delete surface.
type StudyMaterial struct {
	ID          int64     `json:"id" db:"id"`
	Title       string    `json:"title" db:"title"`
	Description string    `json:"description" db:"description"`
	Link        string    `json:"link" db:"link"`
	Category    string    `json:"category" db:"category"`
	UploadedBy  int64     `json:"uploaded_by" db:"uploaded_by"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
}
