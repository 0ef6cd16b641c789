package services

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/campusos/campusos/internal/app/models"
	"github.com/campusos/campusos/internal/app/models/dto"
	"github.com/campusos/campusos/internal/pkg/apperrors"
	"github.com/campusos/campusos/internal/pkg/notify"
)

// defaultPosterID is the seeded admin account, used when the request does
// not name a poster.
const defaultPosterID = 1

// NoticeService defines the interface for notice board operations
type NoticeService interface {
	ListNotices(ctx context.Context, category string) ([]models.Notice, error)
	PostNotice(ctx context.Context, req *dto.CreateNoticeRequest, callerRole models.Role) (int64, error)
	DeleteNotice(ctx context.Context, id int64) (bool, error)
}

// noticeStore is the persistence surface the service needs.
type noticeStore interface {
	GetAll(ctx context.Context, category *models.NoticeCategory) ([]models.Notice, error)
	Create(ctx context.Context, notice *models.Notice) (int64, error)
	Delete(ctx context.Context, id int64) (bool, error)
}

// noticeServiceImpl implements NoticeService
type noticeServiceImpl struct {
	noticeRepo noticeStore
	notifier   notify.Notifier
	logger     zerolog.Logger
}

// NewNoticeService creates a new NoticeService
func NewNoticeService(noticeRepo noticeStore, notifier notify.Notifier, logger zerolog.Logger) NoticeService {
	return &noticeServiceImpl{
		noticeRepo: noticeRepo,
		notifier:   notifier,
		logger:     logger,
	}
}

// ListNotices returns notices newest first. A non-empty category narrows
// the listing to one board and must name a valid board.
func (s *noticeServiceImpl) ListNotices(ctx context.Context, category string) ([]models.Notice, error) {
	var filter *models.NoticeCategory
	if category != "" {
		cat := models.NoticeCategory(category)
		if !cat.Valid() {
			return nil, apperrors.ErrInvalidCategory
		}
		filter = &cat
	}
	notices, err := s.noticeRepo.GetAll(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("error getting notices: %w", err)
	}
	return notices, nil
}

// PostNotice validates and persists a notice. The send_email flag is only
// honored for admin and faculty callers; for everyone else it is coerced to
// false regardless of the requested value. When the flag survives, a blast
// is dispatched fire-and-forget; delivery failure is logged and never fed
// back into the notice record.
func (s *noticeServiceImpl) PostNotice(ctx context.Context, req *dto.CreateNoticeRequest, callerRole models.Role) (int64, error) {
	category := models.NoticeCategory(req.Category)
	if !category.Valid() {
		return 0, apperrors.ErrInvalidCategory
	}

	sendEmail := req.SendEmail && callerRole.CanBroadcast()

	notice := &models.Notice{
		Title:        req.Title,
		Content:      req.Content,
		PostedBy:     req.PostedBy,
		Category:     category,
		SentViaEmail: sendEmail,
	}
	if notice.PostedBy == 0 {
		notice.PostedBy = defaultPosterID
	}

	id, err := s.noticeRepo.Create(ctx, notice)
	if err != nil {
		return 0, fmt.Errorf("error creating notice: %w", err)
	}

	if sendEmail {
		title, content := req.Title, req.Content
		go func() {
			if err := s.notifier.BroadcastNotice(title, content); err != nil {
				s.logger.Error().Err(err).Str("title", title).Msg("Notice blast dispatch failed")
			}
		}()
	}

	return id, nil
}

// DeleteNotice removes a notice by id. Deleting an absent id reports false
// with no error, so the operation is safe to repeat.
func (s *noticeServiceImpl) DeleteNotice(ctx context.Context, id int64) (bool, error) {
	deleted, err := s.noticeRepo.Delete(ctx, id)
	if err != nil {
		return false, fmt.Errorf("error deleting notice: %w", err)
	}
	return deleted, nil
}
