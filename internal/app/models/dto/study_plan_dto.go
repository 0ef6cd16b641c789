package dto

import "github.com/campusos/campusos/internal/app/models"

// CreateStudyPlanRequest persists a full plan document as one blob.
type CreateStudyPlanRequest struct {
	UserID  int64               `json:"user_id"`
	Subject string              `json:"subject" binding:"required"`
	Plan    models.PlanDocument `json:"plan_json" binding:"required"`
}

// UpdateStudyPlanRequest replaces a stored plan document wholesale.
type UpdateStudyPlanRequest struct {
	Plan models.PlanDocument `json:"plan_json" binding:"required"`
}

// ToggleTopicRequest flips the completion flag of one topic.
type ToggleTopicRequest struct {
	ModuleIndex int `json:"module_index"`
	TopicIndex  int `json:"topic_index"`
}

// GenerateStudyPlanRequest asks the AI proxy to synthesize a plan from raw
// syllabus text.
type GenerateStudyPlanRequest struct {
	Syllabus string `json:"syllabus" binding:"required"`
	UserID   int64  `json:"user_id"`
}

// StudyPlanResponse is a stored plan together with its derived progress.
type StudyPlanResponse struct {
	models.StudyPlan
	Progress int `json:"progress" example:"50"`
}

// NewStudyPlanResponse wraps a plan with its computed progress percentage.
func NewStudyPlanResponse(plan models.StudyPlan) StudyPlanResponse {
	return StudyPlanResponse{
		StudyPlan: plan,
		Progress:  plan.Plan.Progress(),
	}
}
