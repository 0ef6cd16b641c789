package repositories

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/campusos/campusos/internal/app/models"
)

// MaterialRepository handles study material database operations
type MaterialRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewMaterialRepository creates a new MaterialRepository
func NewMaterialRepository(db *pgxpool.Pool) *MaterialRepository {
	return &MaterialRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// GetAll retrieves study materials, newest first, optionally filtered by
// category.
func (r *MaterialRepository) GetAll(ctx context.Context, category string) ([]models.StudyMaterial, error) {
	query := r.sb.Select("id", "title", "description", "link", "category", "uploaded_by", "created_at").
		From("study_materials").
		OrderBy("created_at DESC")
	if category != "" {
		query = query.Where(squirrel.Eq{"category": category})
	}

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build materials query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query materials: %w", err)
	}
	defer rows.Close()

	var materials []models.StudyMaterial
	for rows.Next() {
		var material models.StudyMaterial
		if err := rows.Scan(&material.ID, &material.Title, &material.Description, &material.Link,
			&material.Category, &material.UploadedBy, &material.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan material row: %w", err)
		}
		materials = append(materials, material)
	}
	return materials, rows.Err()
}

// Create inserts a study material and returns its id.
func (r *MaterialRepository) Create(ctx context.Context, material *models.StudyMaterial) (int64, error) {
	sql, args, err := r.sb.Insert("study_materials").
		Columns("title", "description", "link", "category", "uploaded_by").
		Values(material.Title, material.Description, material.Link, material.Category, material.UploadedBy).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build material insert: %w", err)
	}

	var id int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&id); err != nil {
		return 0, fmt.Errorf("failed to insert material: %w", err)
	}
	return id, nil
}
