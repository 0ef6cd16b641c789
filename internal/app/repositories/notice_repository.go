package repositories

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/campusos/campusos/internal/app/models"
)

// NoticeRepository handles notice database operations
type NoticeRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewNoticeRepository creates a new NoticeRepository
func NewNoticeRepository(db *pgxpool.Pool) *NoticeRepository {
	return &NoticeRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// GetAll retrieves notices ordered by creation time descending. A non-nil
// category narrows the result to one board.
func (r *NoticeRepository) GetAll(ctx context.Context, category *models.NoticeCategory) ([]models.Notice, error) {
	query := r.sb.Select("id", "title", "content", "posted_by", "category", "sent_via_email", "created_at").
		From("notices").
		OrderBy("created_at DESC")
	if category != nil {
		query = query.Where(squirrel.Eq{"category": *category})
	}

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build notices query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query notices: %w", err)
	}
	defer rows.Close()

	var notices []models.Notice
	for rows.Next() {
		var notice models.Notice
		if err := rows.Scan(&notice.ID, &notice.Title, &notice.Content, &notice.PostedBy,
			&notice.Category, &notice.SentViaEmail, &notice.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan notice row: %w", err)
		}
		notices = append(notices, notice)
	}
	return notices, rows.Err()
}

// Create inserts a notice and returns its id.
func (r *NoticeRepository) Create(ctx context.Context, notice *models.Notice) (int64, error) {
	sql, args, err := r.sb.Insert("notices").
		Columns("title", "content", "posted_by", "category", "sent_via_email").
		Values(notice.Title, notice.Content, notice.PostedBy, notice.Category, notice.SentViaEmail).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build notice insert: %w", err)
	}

	var id int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&id); err != nil {
		return 0, fmt.Errorf("failed to insert notice: %w", err)
	}
	return id, nil
}

// Delete removes a notice by id. The returned bool reports whether a row
// was actually deleted; deleting an absent id is not an error.
func (r *NoticeRepository) Delete(ctx context.Context, id int64) (bool, error) {
	sql, args, err := r.sb.Delete("notices").Where(squirrel.Eq{"id": id}).ToSql()
	if err != nil {
		return false, fmt.Errorf("failed to build notice delete: %w", err)
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return false, fmt.Errorf("failed to delete notice: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}
