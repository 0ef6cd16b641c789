package services

import (
	"context"
	"fmt"

	"github.com/campusos/campusos/internal/app/models"
	"github.com/campusos/campusos/internal/app/models/dto"
	"github.com/campusos/campusos/internal/pkg/apperrors"
)

// defaultExamineeID is the seeded student account, used when a submission
// does not name a user.
const defaultExamineeID = 3

// AssessmentService defines the interface for assessment operations
type AssessmentService interface {
	ListAssessments(ctx context.Context) ([]models.Assessment, error)
	SubmitAnswers(ctx context.Context, assessmentID int64, req *dto.SubmitAnswersRequest) (*dto.ScoreResponse, error)
	RecordResult(ctx context.Context, req *dto.RecordResultRequest) (*dto.ScoreResponse, error)
	ListResults(ctx context.Context, userID int64) ([]models.AssessmentResult, error)
}

// assessmentStore is the persistence surface the service needs.
type assessmentStore interface {
	GetAll(ctx context.Context) ([]models.Assessment, error)
	GetByID(ctx context.Context, id int64) (*models.Assessment, error)
	CreateResult(ctx context.Context, result *models.AssessmentResult) (int64, error)
	GetResults(ctx context.Context, userID int64) ([]models.AssessmentResult, error)
}

// assessmentServiceImpl implements AssessmentService
type assessmentServiceImpl struct {
	assessmentRepo assessmentStore
}

// NewAssessmentService creates a new AssessmentService
func NewAssessmentService(assessmentRepo assessmentStore) AssessmentService {
	return &assessmentServiceImpl{assessmentRepo: assessmentRepo}
}

// ListAssessments returns all seeded assessments with their question sets.
func (s *assessmentServiceImpl) ListAssessments(ctx context.Context) ([]models.Assessment, error) {
	assessments, err := s.assessmentRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("error getting assessments: %w", err)
	}
	return assessments, nil
}

// SubmitAnswers grades the answer map server-side against the answer key
// and appends an immutable result row. Partial answer maps are graded, not
// rejected; missing answers simply score as incorrect. Submissions are
// unlimited, there is no attempt cap.
func (s *assessmentServiceImpl) SubmitAnswers(ctx context.Context, assessmentID int64, req *dto.SubmitAnswersRequest) (*dto.ScoreResponse, error) {
	assessment, err := s.assessmentRepo.GetByID(ctx, assessmentID)
	if err != nil {
		return nil, fmt.Errorf("error getting assessment: %w", err)
	}
	if assessment == nil {
		return nil, apperrors.ErrAssessmentNotFound
	}

	score, total := assessment.Score(req.Answers)

	result := &models.AssessmentResult{
		UserID:       req.UserID,
		AssessmentID: assessmentID,
		Score:        score,
		TotalScore:   total,
	}
	if result.UserID == 0 {
		result.UserID = defaultExamineeID
	}

	id, err := s.assessmentRepo.CreateResult(ctx, result)
	if err != nil {
		return nil, fmt.Errorf("error recording result: %w", err)
	}

	return &dto.ScoreResponse{ID: id, Score: score, TotalScore: total, Success: true}, nil
}

// RecordResult stores a caller-computed result after checking the score
// range invariant.
func (s *assessmentServiceImpl) RecordResult(ctx context.Context, req *dto.RecordResultRequest) (*dto.ScoreResponse, error) {
	if req.Score < 0 || req.Score > req.TotalScore {
		return nil, apperrors.ErrInvalidScore
	}

	result := &models.AssessmentResult{
		UserID:       req.UserID,
		AssessmentID: req.AssessmentID,
		Score:        req.Score,
		TotalScore:   req.TotalScore,
	}
	if result.UserID == 0 {
		result.UserID = defaultExamineeID
	}

	id, err := s.assessmentRepo.CreateResult(ctx, result)
	if err != nil {
		return nil, fmt.Errorf("error recording result: %w", err)
	}

	return &dto.ScoreResponse{ID: id, Score: req.Score, TotalScore: req.TotalScore, Success: true}, nil
}

// ListResults returns submission results, optionally scoped to a user.
func (s *assessmentServiceImpl) ListResults(ctx context.Context, userID int64) ([]models.AssessmentResult, error) {
	results, err := s.assessmentRepo.GetResults(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("error getting results: %w", err)
	}
	return results, nil
}
