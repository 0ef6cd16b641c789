package models

import (
	"time"
)

// User defines the user model based on the 'users' table
type User struct {
	ID        int64     `json:"id" db:"id" example:"1"`                                  // Unique identifier for the user
	Name      string    `json:"name" db:"name" example:"John Student"`                   // Display name
	Email     string    `json:"email" db:"email" example:"student@campus.edu"`           // User's email address
	Password  string    `json:"-" db:"password"`                                         // Hashed password (excluded from JSON)
	Role      Role      `json:"role" db:"role" example:"student"`                        // Portal role (student, faculty, admin)
	CreatedAt time.Time `json:"createdAt" db:"created_at" example:"2024-01-01T10:00:00Z"` // Timestamp when the user was created
}
