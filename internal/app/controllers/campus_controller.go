package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/campusos/campusos/internal/app/models"
	"github.com/campusos/campusos/internal/app/repositories"
	"github.com/campusos/campusos/internal/app/services"
	"github.com/campusos/campusos/internal/middleware"
)

const dateLayout = "2006-01-02"

// CampusController handles the read-only campus feeds
type CampusController struct {
	campusService services.CampusService
}

// NewCampusController creates a new CampusController
func NewCampusController(campusService services.CampusService) *CampusController {
	return &CampusController{campusService: campusService}
}

// ListJobs godoc
// @Summary List job postings
// @Description Get placement listings in reverse chronological order
// @Tags campus
// @Produce json
// @Success 200 {array} models.Job
// @Router /jobs [get]
func (c *CampusController) ListJobs(ctx *gin.Context) {
	jobs, err := c.campusService.ListJobs(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, jobs)
}

// ListEvents godoc
// @Summary List calendar events
// @Description Get academic calendar events in date order with optional window and type filters
// @Tags campus
// @Produce json
// @Param from query string false "Start date (YYYY-MM-DD)"
// @Param to query string false "End date (YYYY-MM-DD)"
// @Param type query string false "Event type (exam, holiday, event, deadline)"
// @Success 200 {array} models.CalendarEvent
// @Failure 400 {object} dto.ErrorResponse
// @Router /calendar-events [get]
func (c *CampusController) ListEvents(ctx *gin.Context) {
	var filter repositories.EventFilter

	if raw := ctx.Query("from"); raw != "" {
		from, err := time.Parse(dateLayout, raw)
		if err != nil {
			middleware.HandleValidationError(ctx, err)
			return
		}
		filter.From = from
	}
	if raw := ctx.Query("to"); raw != "" {
		to, err := time.Parse(dateLayout, raw)
		if err != nil {
			middleware.HandleValidationError(ctx, err)
			return
		}
		filter.To = to
	}
	filter.EventType = models.EventType(ctx.Query("type"))

	events, err := c.campusService.ListEvents(ctx, filter)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, events)
}
