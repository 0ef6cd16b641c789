package services

import (
	"context"
	"fmt"

	"github.com/campusos/campusos/internal/app/models"
	"github.com/campusos/campusos/internal/app/repositories"
	"github.com/campusos/campusos/internal/pkg/apperrors"
)

// CampusService defines the read-only campus lookups: placement listings
// and the academic calendar. Both are seeded data with no write surface.
type CampusService interface {
	ListJobs(ctx context.Context) ([]models.Job, error)
	ListEvents(ctx context.Context, filter repositories.EventFilter) ([]models.CalendarEvent, error)
}

// jobStore is the job persistence surface the service needs.
type jobStore interface {
	GetAll(ctx context.Context) ([]models.Job, error)
}

// eventStore is the calendar persistence surface the service needs.
type eventStore interface {
	GetAll(ctx context.Context, filter repositories.EventFilter) ([]models.CalendarEvent, error)
}

// campusServiceImpl implements CampusService
type campusServiceImpl struct {
	jobRepo      jobStore
	calendarRepo eventStore
}

// NewCampusService creates a new CampusService
func NewCampusService(jobRepo jobStore, calendarRepo eventStore) CampusService {
	return &campusServiceImpl{jobRepo: jobRepo, calendarRepo: calendarRepo}
}

// ListJobs returns placement listings, newest first.
func (s *campusServiceImpl) ListJobs(ctx context.Context) ([]models.Job, error) {
	jobs, err := s.jobRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("error getting jobs: %w", err)
	}
	return jobs, nil
}

// ListEvents returns calendar events in date order. A non-empty event type
// filter must name a known kind.
func (s *campusServiceImpl) ListEvents(ctx context.Context, filter repositories.EventFilter) ([]models.CalendarEvent, error) {
	if filter.EventType != "" && !filter.EventType.Valid() {
		return nil, apperrors.NewValidationError("event type must be one of exam, holiday, event, deadline")
	}
	events, err := s.calendarRepo.GetAll(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("error getting calendar events: %w", err)
	}
	return events, nil
}
