package models

import "time"

// NoticeCategory partitions notices between the admin and student boards.
type NoticeCategory string

const (
	NoticeCategoryAdmin   NoticeCategory = "admin"
	NoticeCategoryStudent NoticeCategory = "student"
)

// Valid reports whether the category is one of the two notice boards.
func (c NoticeCategory) Valid() bool {
	return c == NoticeCategoryAdmin || c == NoticeCategoryStudent
}

// Notice represents an entry on one of the campus notice boards.
// Content is immutable after posting; the only lifecycle transition is
// deletion by an admin or faculty member.
type Notice struct {
	ID           int64          `json:"id" db:"id"`
	Title        string         `json:"title" db:"title"`
	Content      string         `json:"content" db:"content"`
	PostedBy     int64          `json:"posted_by" db:"posted_by"`
	Category     NoticeCategory `json:"category" db:"category"`
	SentViaEmail bool           `json:"sent_via_email" db:"sent_via_email"`
	CreatedAt    time.Time      `json:"created_at" db:"created_at"`
}
