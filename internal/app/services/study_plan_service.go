package services

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/campusos/campusos/internal/app/models"
	"github.com/campusos/campusos/internal/app/models/dto"
	"github.com/campusos/campusos/internal/pkg/apperrors"
)

// defaultPlanOwnerID is the demo account a plan is attributed to when it
// is saved without an owner.
const defaultPlanOwnerID = 2

// planPrompt is the fixed template for structured plan synthesis. The
// provider is asked for string topics; the Topic decode shim lifts them to
// the object form.
const planPrompt = `
Create a structured study plan based on this syllabus:
%s

Return the response as a JSON object with this structure:
{
  "subject": "Subject Name",
  "modules": [
    {
      "title": "Module Title",
      "topics": ["Topic 1", "Topic 2"],
      "estimated_hours": 5,
      "suggested_days": "Day 1-3"
    }
  ]
}
`

// StudyPlanService defines the interface for study plan operations
type StudyPlanService interface {
	ListPlans(ctx context.Context) ([]dto.StudyPlanResponse, error)
	GetPlan(ctx context.Context, id int64) (*dto.StudyPlanResponse, error)
	SavePlan(ctx context.Context, req *dto.CreateStudyPlanRequest) (int64, error)
	ReplacePlan(ctx context.Context, id int64, doc models.PlanDocument) (bool, error)
	ToggleTopic(ctx context.Context, id int64, moduleIndex, topicIndex int) (*dto.StudyPlanResponse, error)
	GenerateAndSave(ctx context.Context, req *dto.GenerateStudyPlanRequest) (*dto.StudyPlanResponse, error)
}

// planStore is the persistence surface the service needs.
type planStore interface {
	GetAll(ctx context.Context) ([]models.StudyPlan, error)
	GetByID(ctx context.Context, id int64) (*models.StudyPlan, error)
	Create(ctx context.Context, plan *models.StudyPlan) (int64, error)
	ReplacePlan(ctx context.Context, id int64, doc *models.PlanDocument) (bool, error)
}

// structuredGenerator is the structured-content capability of the AI proxy.
type structuredGenerator interface {
	GenerateStructured(ctx context.Context, prompt string, out any) error
}

// studyPlanServiceImpl implements StudyPlanService
type studyPlanServiceImpl struct {
	planRepo  planStore
	generator structuredGenerator
	logger    zerolog.Logger
}

// NewStudyPlanService creates a new StudyPlanService
func NewStudyPlanService(planRepo planStore, generator structuredGenerator, logger zerolog.Logger) StudyPlanService {
	return &studyPlanServiceImpl{
		planRepo:  planRepo,
		generator: generator,
		logger:    logger,
	}
}

// ListPlans returns all stored plans with derived progress, newest first.
func (s *studyPlanServiceImpl) ListPlans(ctx context.Context) ([]dto.StudyPlanResponse, error) {
	plans, err := s.planRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("error getting study plans: %w", err)
	}

	responses := make([]dto.StudyPlanResponse, 0, len(plans))
	for _, plan := range plans {
		responses = append(responses, dto.NewStudyPlanResponse(plan))
	}
	return responses, nil
}

// GetPlan returns one stored plan with derived progress.
func (s *studyPlanServiceImpl) GetPlan(ctx context.Context, id int64) (*dto.StudyPlanResponse, error) {
	plan, err := s.planRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("error getting study plan: %w", err)
	}
	if plan == nil {
		return nil, apperrors.ErrStudyPlanNotFound
	}
	resp := dto.NewStudyPlanResponse(*plan)
	return &resp, nil
}

// SavePlan persists a full plan document as one blob and returns its id.
func (s *studyPlanServiceImpl) SavePlan(ctx context.Context, req *dto.CreateStudyPlanRequest) (int64, error) {
	plan := &models.StudyPlan{
		UserID:  req.UserID,
		Subject: req.Subject,
		Plan:    req.Plan,
	}
	if plan.UserID == 0 {
		plan.UserID = defaultPlanOwnerID
	}

	id, err := s.planRepo.Create(ctx, plan)
	if err != nil {
		return 0, fmt.Errorf("error creating study plan: %w", err)
	}
	return id, nil
}

// ReplacePlan overwrites a stored document wholesale. There is no
// field-level patching and no concurrency token: the last writer wins.
// Returns false when the id does not exist.
func (s *studyPlanServiceImpl) ReplacePlan(ctx context.Context, id int64, doc models.PlanDocument) (bool, error) {
	replaced, err := s.planRepo.ReplacePlan(ctx, id, &doc)
	if err != nil {
		return false, fmt.Errorf("error replacing study plan: %w", err)
	}
	return replaced, nil
}

// ToggleTopic flips one topic's completion flag and immediately persists
// the whole document.
func (s *studyPlanServiceImpl) ToggleTopic(ctx context.Context, id int64, moduleIndex, topicIndex int) (*dto.StudyPlanResponse, error) {
	plan, err := s.planRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("error getting study plan: %w", err)
	}
	if plan == nil {
		return nil, apperrors.ErrStudyPlanNotFound
	}

	if err := plan.Plan.ToggleTopic(moduleIndex, topicIndex); err != nil {
		return nil, apperrors.NewCustomError(apperrors.ErrTopicOutOfRange, err.Error())
	}

	if _, err := s.planRepo.ReplacePlan(ctx, id, &plan.Plan); err != nil {
		return nil, fmt.Errorf("error persisting toggled plan: %w", err)
	}

	resp := dto.NewStudyPlanResponse(*plan)
	return &resp, nil
}

// GenerateAndSave asks the AI proxy to synthesize a plan from syllabus text,
// validates the untrusted response against the expected document shape, and
// persists it. Any provider or shape failure surfaces as a generation
// failure with nothing persisted.
func (s *studyPlanServiceImpl) GenerateAndSave(ctx context.Context, req *dto.GenerateStudyPlanRequest) (*dto.StudyPlanResponse, error) {
	var doc models.PlanDocument
	if err := s.generator.GenerateStructured(ctx, fmt.Sprintf(planPrompt, req.Syllabus), &doc); err != nil {
		s.logger.Error().Err(err).Msg("Study plan generation failed")
		return nil, apperrors.NewCustomError(apperrors.ErrGenerationFailed, err.Error())
	}
	if err := doc.Validate(); err != nil {
		s.logger.Error().Err(err).Msg("Generated plan document failed shape validation")
		return nil, apperrors.NewCustomError(apperrors.ErrGenerationFailed, err.Error())
	}

	plan := &models.StudyPlan{
		UserID:  req.UserID,
		Subject: doc.Subject,
		Plan:    doc,
	}
	if plan.UserID == 0 {
		plan.UserID = defaultPlanOwnerID
	}

	id, err := s.planRepo.Create(ctx, plan)
	if err != nil {
		return nil, fmt.Errorf("error persisting generated plan: %w", err)
	}
	plan.ID = id

	resp := dto.NewStudyPlanResponse(*plan)
	return &resp, nil
}
