package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/campusos/campusos/internal/app/models/dto"
	"github.com/campusos/campusos/internal/app/services"
	"github.com/campusos/campusos/internal/middleware"
)

// AssessmentController handles assessment listing and result recording
type AssessmentController struct {
	assessmentService services.AssessmentService
}

// NewAssessmentController creates a new AssessmentController
func NewAssessmentController(assessmentService services.AssessmentService) *AssessmentController {
	return &AssessmentController{assessmentService: assessmentService}
}

// ListAssessments godoc
// @Summary List assessments
// @Description Get all assessments with their question sets
// @Tags assessments
// @Produce json
// @Success 200 {array} models.Assessment
// @Router /assessments [get]
func (c *AssessmentController) ListAssessments(ctx *gin.Context) {
	assessments, err := c.assessmentService.ListAssessments(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, assessments)
}

// SubmitAnswers godoc
// @Summary Submit answers for server-side scoring
// @Description Score an answer map against the assessment's key and record the result
// @Tags assessments
// @Accept json
// @Produce json
// @Param id path int true "Assessment ID"
// @Param submission body dto.SubmitAnswersRequest true "Answer map keyed by question id"
// @Success 201 {object} dto.ScoreResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /assessments/{id}/submissions [post]
func (c *AssessmentController) SubmitAnswers(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		middleware.HandleValidationError(ctx, errInvalidID("assessment"))
		return
	}

	var req dto.SubmitAnswersRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	result, err := c.assessmentService.SubmitAnswers(ctx, id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, result)
}

// RecordResult godoc
// @Summary Record a client-computed result
// @Description Store a result row; rejects scores outside 0..total_score
// @Tags assessments
// @Accept json
// @Produce json
// @Param result body dto.RecordResultRequest true "Result to record"
// @Success 201 {object} dto.ScoreResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /assessment-results [post]
func (c *AssessmentController) RecordResult(ctx *gin.Context) {
	var req dto.RecordResultRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	result, err := c.assessmentService.RecordResult(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, result)
}

// ListResults godoc
// @Summary List assessment results
// @Description Get recorded results, optionally filtered by user
// @Tags assessments
// @Produce json
// @Param user_id query int false "Filter by user ID"
// @Success 200 {array} models.AssessmentResult
// @Router /assessment-results [get]
func (c *AssessmentController) ListResults(ctx *gin.Context) {
	var userID int64
	if raw := ctx.Query("user_id"); raw != "" {
		parsed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || parsed <= 0 {
			middleware.HandleValidationError(ctx, errInvalidID("user"))
			return
		}
		userID = parsed
	}

	results, err := c.assessmentService.ListResults(ctx, userID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, results)
}
