package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/campusos/campusos/internal/app/models/dto"
	"github.com/campusos/campusos/internal/app/services"
	"github.com/campusos/campusos/internal/middleware"
)

// parseIDParam parses an ID parameter from the request path
func parseIDParam(ctx *gin.Context, paramName string) (int64, bool) {
	id, err := strconv.ParseInt(ctx.Param(paramName), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

// NoticeController handles notice board operations
type NoticeController struct {
	noticeService services.NoticeService
}

// NewNoticeController creates a new NoticeController
func NewNoticeController(noticeService services.NoticeService) *NoticeController {
	return &NoticeController{noticeService: noticeService}
}

// ListNotices godoc
// @Summary List notices
// @Description Get notices in reverse chronological order, optionally filtered by board category
// @Tags notices
// @Produce json
// @Param category query string false "Board category (admin or student)"
// @Success 200 {array} models.Notice
// @Failure 400 {object} dto.ErrorResponse
// @Router /notices [get]
func (c *NoticeController) ListNotices(ctx *gin.Context) {
	notices, err := c.noticeService.ListNotices(ctx, ctx.Query("category"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, notices)
}

// CreateNotice godoc
// @Summary Post a notice
// @Description Post a notice to a board; send_email is honored only for admin/faculty callers
// @Tags notices
// @Accept json
// @Produce json
// @Param notice body dto.CreateNoticeRequest true "Notice to post"
// @Success 201 {object} dto.CreateResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /notices [post]
func (c *NoticeController) CreateNotice(ctx *gin.Context) {
	var req dto.CreateNoticeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	id, err := c.noticeService.PostNotice(ctx, &req, middleware.CallerRole(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.CreateResponse{ID: id, Success: true})
}

// DeleteNotice godoc
// @Summary Delete a notice
// @Description Remove a notice; deleting an absent id reports success false
// @Tags notices
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Notice ID"
// @Success 200 {object} dto.MutationResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Router /notices/{id} [delete]
func (c *NoticeController) DeleteNotice(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		middleware.HandleValidationError(ctx, errInvalidID("notice"))
		return
	}

	deleted, err := c.noticeService.DeleteNotice(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.MutationResponse{Success: deleted})
}
