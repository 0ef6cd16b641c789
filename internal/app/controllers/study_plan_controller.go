package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/campusos/campusos/internal/app/models/dto"
	"github.com/campusos/campusos/internal/app/services"
	"github.com/campusos/campusos/internal/middleware"
)

// StudyPlanController handles study plan CRUD and AI generation
type StudyPlanController struct {
	planService services.StudyPlanService
}

// NewStudyPlanController creates a new StudyPlanController
func NewStudyPlanController(planService services.StudyPlanService) *StudyPlanController {
	return &StudyPlanController{planService: planService}
}

// ListPlans godoc
// @Summary List study plans
// @Description Get all stored study plans with derived progress
// @Tags study-plans
// @Produce json
// @Success 200 {array} dto.StudyPlanResponse
// @Router /study-plans [get]
func (c *StudyPlanController) ListPlans(ctx *gin.Context) {
	plans, err := c.planService.ListPlans(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, plans)
}

// GetPlan godoc
// @Summary Get a study plan
// @Tags study-plans
// @Produce json
// @Param id path int true "Study plan ID"
// @Success 200 {object} dto.StudyPlanResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /study-plans/{id} [get]
func (c *StudyPlanController) GetPlan(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		middleware.HandleValidationError(ctx, errInvalidID("study plan"))
		return
	}

	plan, err := c.planService.GetPlan(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, plan)
}

// CreatePlan godoc
// @Summary Save a study plan
// @Description Persist a full plan document as one blob
// @Tags study-plans
// @Accept json
// @Produce json
// @Param plan body dto.CreateStudyPlanRequest true "Plan to save"
// @Success 201 {object} dto.CreateResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /study-plans [post]
func (c *StudyPlanController) CreatePlan(ctx *gin.Context) {
	var req dto.CreateStudyPlanRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	id, err := c.planService.SavePlan(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.CreateResponse{ID: id, Success: true})
}

// ReplacePlan godoc
// @Summary Replace a study plan document
// @Description Whole-document replace, last writer wins; an absent id reports success false
// @Tags study-plans
// @Accept json
// @Produce json
// @Param id path int true "Study plan ID"
// @Param plan body dto.UpdateStudyPlanRequest true "Replacement document"
// @Success 200 {object} dto.MutationResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /study-plans/{id} [put]
func (c *StudyPlanController) ReplacePlan(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		middleware.HandleValidationError(ctx, errInvalidID("study plan"))
		return
	}

	var req dto.UpdateStudyPlanRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	replaced, err := c.planService.ReplacePlan(ctx, id, req.Plan)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.MutationResponse{Success: replaced})
}

// ToggleTopic godoc
// @Summary Toggle a topic's completion flag
// @Description Flip one topic's completed flag and persist the whole document
// @Tags study-plans
// @Accept json
// @Produce json
// @Param id path int true "Study plan ID"
// @Param toggle body dto.ToggleTopicRequest true "Module and topic indices"
// @Success 200 {object} dto.StudyPlanResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /study-plans/{id}/topics/toggle [post]
func (c *StudyPlanController) ToggleTopic(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		middleware.HandleValidationError(ctx, errInvalidID("study plan"))
		return
	}

	var req dto.ToggleTopicRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	plan, err := c.planService.ToggleTopic(ctx, id, req.ModuleIndex, req.TopicIndex)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, plan)
}

// GeneratePlan godoc
// @Summary Generate a study plan from syllabus text
// @Description Ask the AI provider for a structured plan and persist it
// @Tags ai
// @Accept json
// @Produce json
// @Param request body dto.GenerateStudyPlanRequest true "Syllabus text"
// @Success 201 {object} dto.StudyPlanResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 502 {object} dto.ErrorResponse
// @Router /ai/study-plan [post]
func (c *StudyPlanController) GeneratePlan(ctx *gin.Context) {
	var req dto.GenerateStudyPlanRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	plan, err := c.planService.GenerateAndSave(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, plan)
}
