package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/campusos/campusos/internal/app/models"
)

// AssessmentRepository handles assessment and result database operations.
// Questions are stored as a JSONB array; results are append-only.
type AssessmentRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewAssessmentRepository creates a new AssessmentRepository
func NewAssessmentRepository(db *pgxpool.Pool) *AssessmentRepository {
	return &AssessmentRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// GetAll retrieves all assessments with their question sets.
func (r *AssessmentRepository) GetAll(ctx context.Context) ([]models.Assessment, error) {
	sql, args, err := r.sb.Select("id", "title", "description", "questions_json").
		From("assessments").
		OrderBy("id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build assessments query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query assessments: %w", err)
	}
	defer rows.Close()

	var assessments []models.Assessment
	for rows.Next() {
		var assessment models.Assessment
		var blob []byte
		if err := rows.Scan(&assessment.ID, &assessment.Title, &assessment.Description, &blob); err != nil {
			return nil, fmt.Errorf("failed to scan assessment row: %w", err)
		}
		if err := json.Unmarshal(blob, &assessment.Questions); err != nil {
			return nil, fmt.Errorf("failed to decode questions for assessment %d: %w", assessment.ID, err)
		}
		assessments = append(assessments, assessment)
	}
	return assessments, rows.Err()
}

// GetByID retrieves an assessment by id, or nil when absent.
func (r *AssessmentRepository) GetByID(ctx context.Context, id int64) (*models.Assessment, error) {
	sql, args, err := r.sb.Select("id", "title", "description", "questions_json").
		From("assessments").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build assessment query: %w", err)
	}

	var assessment models.Assessment
	var blob []byte
	err = r.db.QueryRow(ctx, sql, args...).Scan(&assessment.ID, &assessment.Title, &assessment.Description, &blob)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to query assessment: %w", err)
	}
	if err := json.Unmarshal(blob, &assessment.Questions); err != nil {
		return nil, fmt.Errorf("failed to decode questions for assessment %d: %w", assessment.ID, err)
	}
	return &assessment, nil
}

// Create inserts an assessment. Used by seeding only.
func (r *AssessmentRepository) Create(ctx context.Context, assessment *models.Assessment) (int64, error) {
	blob, err := json.Marshal(assessment.Questions)
	if err != nil {
		return 0, fmt.Errorf("failed to encode questions: %w", err)
	}

	sql, args, err := r.sb.Insert("assessments").
		Columns("title", "description", "questions_json").
		Values(assessment.Title, assessment.Description, blob).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build assessment insert: %w", err)
	}

	var id int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&id); err != nil {
		return 0, fmt.Errorf("failed to insert assessment: %w", err)
	}
	return id, nil
}

// CreateResult appends a submission result and returns its id.
func (r *AssessmentRepository) CreateResult(ctx context.Context, result *models.AssessmentResult) (int64, error) {
	sql, args, err := r.sb.Insert("assessment_results").
		Columns("user_id", "assessment_id", "score", "total_score").
		Values(result.UserID, result.AssessmentID, result.Score, result.TotalScore).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build result insert: %w", err)
	}

	var id int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&id); err != nil {
		return 0, fmt.Errorf("failed to insert result: %w", err)
	}
	return id, nil
}

// GetResults retrieves submission results, newest first, optionally
// filtered by user.
func (r *AssessmentRepository) GetResults(ctx context.Context, userID int64) ([]models.AssessmentResult, error) {
	query := r.sb.Select("id", "user_id", "assessment_id", "score", "total_score", "completed_at").
		From("assessment_results").
		OrderBy("completed_at DESC")
	if userID > 0 {
		query = query.Where(squirrel.Eq{"user_id": userID})
	}

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build results query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query results: %w", err)
	}
	defer rows.Close()

	var results []models.AssessmentResult
	for rows.Next() {
		var result models.AssessmentResult
		if err := rows.Scan(&result.ID, &result.UserID, &result.AssessmentID,
			&result.Score, &result.TotalScore, &result.CompletedAt); err != nil {
			return nil, fmt.Errorf("failed to scan result row: %w", err)
		}
		results = append(results, result)
	}
	return results, rows.Err()
}
