package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/campusos/campusos/internal/app/models/dto"
	"github.com/campusos/campusos/internal/pkg/logger"
)

// HealthController reports service liveness
type HealthController struct {
	dbPool *pgxpool.Pool
}

// NewHealthController creates a new HealthController
func NewHealthController(dbPool *pgxpool.Pool) *HealthController {
	return &HealthController{dbPool: dbPool}
}

// Health godoc
// @Summary Health check
// @Description Returns ok when the service and its database are reachable
// @Tags health
// @Produce json
// @Success 200 {object} dto.HealthResponse
// @Failure 503 {object} dto.HealthResponse
// @Router /health [get]
func (c *HealthController) Health(ctx *gin.Context) {
	if c.dbPool != nil {
		if err := c.dbPool.Ping(ctx); err != nil {
			logger.Error().Err(err).Msg("Health check database ping failed")
			ctx.JSON(http.StatusServiceUnavailable, dto.HealthResponse{Status: "degraded"})
			return
		}
	}
	ctx.JSON(http.StatusOK, dto.HealthResponse{Status: "ok"})
}
