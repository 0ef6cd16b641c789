package seed

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	"github.com/campusos/campusos/internal/app/models"
	"github.com/campusos/campusos/internal/app/repositories"
	"github.com/campusos/campusos/internal/pkg/auth"
)

// DefaultPassword is the password every seeded account starts with.
const DefaultPassword = "campus123"

// CreateDefaultData populates an empty database with the demo campus
// dataset. It keys idempotency off the users table: if any user exists the
// whole seed is skipped.
func CreateDefaultData(ctx context.Context, dbPool *pgxpool.Pool, lgr zerolog.Logger) error {
	repos := repositories.NewRepositories(dbPool)

	count, err := repos.UserRepository.Count(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		lgr.Debug().Msg("Seed data already present, skipping")
		return nil
	}

	lgr.Info().Msg("Seeding default campus data...")

	hashed, err := auth.HashPassword(DefaultPassword)
	if err != nil {
		return err
	}

	users := []models.User{
		{Name: "System Admin", Email: "admin@campus.edu", Password: hashed, Role: models.RoleAdmin},
		{Name: "Dr. Faculty", Email: "faculty@campus.edu", Password: hashed, Role: models.RoleFaculty},
		{Name: "John Student", Email: "student@campus.edu", Password: hashed, Role: models.RoleStudent},
	}

	var finalErr error
	userIDs := make([]int64, 0, len(users))
	for i := range users {
		id, err := repos.UserRepository.Create(ctx, &users[i])
		if err != nil {
			lgr.Error().Err(err).Str("email", users[i].Email).Msg("Error seeding user")
			finalErr = errors.Join(finalErr, err)
			continue
		}
		userIDs = append(userIDs, id)
	}
	if len(userIDs) < len(users) {
		return finalErr
	}
	facultyID := userIDs[1]

	if _, err := repos.JobRepository.Create(ctx, &models.Job{
		Title:        "Software Engineer Intern",
		Company:      "TechCorp",
		Description:  "Join our team to build the future of AI.",
		Requirements: "React, Node.js, TypeScript",
	}); err != nil {
		lgr.Error().Err(err).Msg("Error seeding job listing")
		finalErr = errors.Join(finalErr, err)
	}

	events := []models.CalendarEvent{
		{
			Title:       "Mid-Term Exams",
			EventDate:   time.Date(2026, time.March, 15, 0, 0, 0, 0, time.UTC),
			EventType:   models.EventTypeExam,
			Description: "Computer Science Department",
		},
		{
			Title:       "Spring Break",
			EventDate:   time.Date(2026, time.April, 1, 0, 0, 0, 0, time.UTC),
			EventType:   models.EventTypeHoliday,
			Description: "No classes",
		},
	}
	for i := range events {
		if _, err := repos.CalendarRepository.Create(ctx, &events[i]); err != nil {
			lgr.Error().Err(err).Str("event", events[i].Title).Msg("Error seeding calendar event")
			finalErr = errors.Join(finalErr, err)
		}
	}

	if _, err := repos.AssessmentRepository.Create(ctx, &models.Assessment{
		Title:       "CS Fundamentals",
		Description: "Basic knowledge check",
		Questions: []models.Question{
			{
				ID:            1,
				Text:          "What is the time complexity of binary search?",
				Options:       []string{"O(n)", "O(log n)", "O(n^2)", "O(1)"},
				CorrectAnswer: 1,
			},
			{
				ID:            2,
				Text:          "Which HTTP method is used to create a resource?",
				Options:       []string{"GET", "PUT", "POST", "DELETE"},
				CorrectAnswer: 2,
			},
		},
	}); err != nil {
		lgr.Error().Err(err).Msg("Error seeding assessment")
		finalErr = errors.Join(finalErr, err)
	}

	if _, err := repos.MaterialRepository.Create(ctx, &models.StudyMaterial{
		Title:       "Data Structures Notes",
		Description: "Comprehensive guide to DSA",
		Link:        "https://example.com/dsa-notes.pdf",
		Category:    "CS",
		UploadedBy:  facultyID,
	}); err != nil {
		lgr.Error().Err(err).Msg("Error seeding study material")
		finalErr = errors.Join(finalErr, err)
	}

	if finalErr == nil {
		lgr.Info().Msg("Seed data created")
	}
	return finalErr
}
