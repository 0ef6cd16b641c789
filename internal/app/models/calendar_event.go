package models

import "time"

// EventType classifies academic calendar entries.
type EventType string

const (
	EventTypeExam     EventType = "exam"
	EventTypeHoliday  EventType = "holiday"
	EventTypeEvent    EventType = "event"
	EventTypeDeadline EventType = "deadline"
)

// Valid reports whether the event type is one of the known calendar kinds.
func (t EventType) Valid() bool {
	switch t {
	case EventTypeExam, EventTypeHoliday, EventTypeEvent, EventTypeDeadline:
		return true
	}
	return false
}

// CalendarEvent is a seeded academic calendar entry.
type CalendarEvent struct {
	ID          int64     `json:"id" db:"id"`
	Title       string    `json:"title" db:"title"`
	EventDate   time.Time `json:"event_date" db:"event_date"`
	EventType   EventType `json:"event_type" db:"event_type"`
	Description string    `json:"description" db:"description"`
}
