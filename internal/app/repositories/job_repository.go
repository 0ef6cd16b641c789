package repositories

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/campusos/campusos/internal/app/models"
)

// JobRepository handles placement listing database operations
type JobRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewJobRepository creates a new JobRepository
func NewJobRepository(db *pgxpool.Pool) *JobRepository {
	return &JobRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// GetAll retrieves all job listings ordered by posting time descending.
func (r *JobRepository) GetAll(ctx context.Context) ([]models.Job, error) {
	sql, args, err := r.sb.Select("id", "title", "company", "description", "requirements", "posted_at").
		From("jobs").
		OrderBy("posted_at DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build jobs query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query jobs: %w", err)
	}
	defer rows.Close()

	var jobs []models.Job
	for rows.Next() {
		var job models.Job
		if err := rows.Scan(&job.ID, &job.Title, &job.Company, &job.Description, &job.Requirements, &job.PostedAt); err != nil {
			return nil, fmt.Errorf("failed to scan job row: %w", err)
		}
		jobs = append(jobs, job)
	}
	return jobs, rows.Err()
}

// Create inserts a job listing and returns its id. Used by seeding only;
// there is no write surface for jobs in the API.
func (r *JobRepository) Create(ctx context.Context, job *models.Job) (int64, error) {
	sql, args, err := r.sb.Insert("jobs").
		Columns("title", "company", "description", "requirements").
		Values(job.Title, job.Company, job.Description, job.Requirements).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build job insert: %w", err)
	}

	var id int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&id); err != nil {
		return 0, fmt.Errorf("failed to insert job: %w", err)
	}
	return id, nil
}
