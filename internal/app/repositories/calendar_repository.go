package repositories

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/campusos/campusos/internal/app/models"
)

// CalendarRepository handles academic calendar database operations
type CalendarRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewCalendarRepository creates a new CalendarRepository
func NewCalendarRepository(db *pgxpool.Pool) *CalendarRepository {
	return &CalendarRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// EventFilter narrows a calendar listing. Zero values mean no constraint.
type EventFilter struct {
	From      time.Time
	To        time.Time
	EventType models.EventType
}

// GetAll retrieves calendar events in date order, applying the filter.
func (r *CalendarRepository) GetAll(ctx context.Context, filter EventFilter) ([]models.CalendarEvent, error) {
	query := r.sb.Select("id", "title", "event_date", "event_type", "description").
		From("calendar_events").
		OrderBy("event_date")
	if !filter.From.IsZero() {
		query = query.Where(squirrel.GtOrEq{"event_date": filter.From})
	}
	if !filter.To.IsZero() {
		query = query.Where(squirrel.LtOrEq{"event_date": filter.To})
	}
	if filter.EventType != "" {
		query = query.Where(squirrel.Eq{"event_type": filter.EventType})
	}

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build events query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query events: %w", err)
	}
	defer rows.Close()

	var events []models.CalendarEvent
	for rows.Next() {
		var event models.CalendarEvent
		if err := rows.Scan(&event.ID, &event.Title, &event.EventDate, &event.EventType, &event.Description); err != nil {
			return nil, fmt.Errorf("failed to scan event row: %w", err)
		}
		events = append(events, event)
	}
	return events, rows.Err()
}

// Create inserts a calendar event. Used by seeding only.
func (r *CalendarRepository) Create(ctx context.Context, event *models.CalendarEvent) (int64, error) {
	sql, args, err := r.sb.Insert("calendar_events").
		Columns("title", "event_date", "event_type", "description").
		Values(event.Title, event.EventDate, event.EventType, event.Description).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build event insert: %w", err)
	}

	var id int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&id); err != nil {
		return 0, fmt.Errorf("failed to insert event: %w", err)
	}
	return id, nil
}
