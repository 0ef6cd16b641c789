package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/campusos/campusos/internal/app/models/dto"
	"github.com/campusos/campusos/internal/app/services"
	"github.com/campusos/campusos/internal/middleware"
)

// AssistantController handles the chat assistant and the mock interviewer
type AssistantController struct {
	assistantService services.AssistantService
}

// NewAssistantController creates a new AssistantController
func NewAssistantController(assistantService services.AssistantService) *AssistantController {
	return &AssistantController{assistantService: assistantService}
}

// Chat godoc
// @Summary Run one assistant turn
// @Description Send the transcript plus a new message; the reply may carry executed actions
// @Tags ai
// @Accept json
// @Produce json
// @Param request body dto.AssistantRequest true "Transcript and new message"
// @Success 200 {object} dto.AssistantResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 502 {object} dto.ErrorResponse
// @Router /ai/assistant [post]
func (c *AssistantController) Chat(ctx *gin.Context) {
	var req dto.AssistantRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	resp, err := c.assistantService.Chat(ctx, &req, middleware.CallerRole(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// MockInterview godoc
// @Summary Generate mock interview questions
// @Tags ai
// @Accept json
// @Produce json
// @Param request body dto.InterviewRequest true "Role or company context"
// @Success 200 {object} dto.InterviewResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 502 {object} dto.ErrorResponse
// @Router /ai/interview [post]
func (c *AssistantController) MockInterview(ctx *gin.Context) {
	var req dto.InterviewRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	text, err := c.assistantService.MockInterview(ctx, req.Context)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.InterviewResponse{Response: text})
}
