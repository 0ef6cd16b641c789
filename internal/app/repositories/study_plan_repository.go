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

// StudyPlanRepository handles study plan database operations. The plan
// document is stored as one JSONB blob; decoding goes through the Topic
// compatibility shim, so legacy string-topic documents come back in the
// object form.
type StudyPlanRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewStudyPlanRepository creates a new StudyPlanRepository
func NewStudyPlanRepository(db *pgxpool.Pool) *StudyPlanRepository {
	return &StudyPlanRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// GetAll retrieves all study plans ordered by creation time descending.
func (r *StudyPlanRepository) GetAll(ctx context.Context) ([]models.StudyPlan, error) {
	sql, args, err := r.sb.Select("id", "user_id", "subject", "plan_json", "created_at").
		From("study_plans").
		OrderBy("created_at DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build study plans query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query study plans: %w", err)
	}
	defer rows.Close()

	var plans []models.StudyPlan
	for rows.Next() {
		plan, err := scanStudyPlan(rows.Scan)
		if err != nil {
			return nil, err
		}
		plans = append(plans, *plan)
	}
	return plans, rows.Err()
}

// GetByID retrieves a study plan by id, or nil when absent.
func (r *StudyPlanRepository) GetByID(ctx context.Context, id int64) (*models.StudyPlan, error) {
	sql, args, err := r.sb.Select("id", "user_id", "subject", "plan_json", "created_at").
		From("study_plans").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build study plan query: %w", err)
	}

	plan, err := scanStudyPlan(r.db.QueryRow(ctx, sql, args...).Scan)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return plan, nil
}

// Create inserts a study plan and returns its id.
func (r *StudyPlanRepository) Create(ctx context.Context, plan *models.StudyPlan) (int64, error) {
	blob, err := json.Marshal(plan.Plan)
	if err != nil {
		return 0, fmt.Errorf("failed to encode plan document: %w", err)
	}

	sql, args, err := r.sb.Insert("study_plans").
		Columns("user_id", "subject", "plan_json").
		Values(plan.UserID, plan.Subject, blob).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build study plan insert: %w", err)
	}

	var id int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&id); err != nil {
		return 0, fmt.Errorf("failed to insert study plan: %w", err)
	}
	return id, nil
}

// ReplacePlan overwrites the stored document wholesale (last writer wins).
// The returned bool reports whether the id existed.
func (r *StudyPlanRepository) ReplacePlan(ctx context.Context, id int64, doc *models.PlanDocument) (bool, error) {
	blob, err := json.Marshal(doc)
	if err != nil {
		return false, fmt.Errorf("failed to encode plan document: %w", err)
	}

	sql, args, err := r.sb.Update("study_plans").
		Set("plan_json", blob).
		Set("subject", doc.Subject).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("failed to build study plan update: %w", err)
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return false, fmt.Errorf("failed to update study plan: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

type scanFn func(dest ...any) error

func scanStudyPlan(scan scanFn) (*models.StudyPlan, error) {
	var plan models.StudyPlan
	var blob []byte
	if err := scan(&plan.ID, &plan.UserID, &plan.Subject, &blob, &plan.CreatedAt); err != nil {
		return nil, err
	}
	if err := json.Unmarshal(blob, &plan.Plan); err != nil {
		return nil, fmt.Errorf("failed to decode plan document %d: %w", plan.ID, err)
	}
	return &plan, nil
}
