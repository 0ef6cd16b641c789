package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/campusos/campusos/internal/app/models/dto"
	"github.com/campusos/campusos/internal/app/services"
	"github.com/campusos/campusos/internal/middleware"
)

// MaterialController handles study material operations
type MaterialController struct {
	materialService services.MaterialService
}

// NewMaterialController creates a new MaterialController
func NewMaterialController(materialService services.MaterialService) *MaterialController {
	return &MaterialController{materialService: materialService}
}

// ListMaterials godoc
// @Summary List study materials
// @Tags materials
// @Produce json
// @Param category query string false "Filter by category"
// @Success 200 {array} models.StudyMaterial
// @Router /study-materials [get]
func (c *MaterialController) ListMaterials(ctx *gin.Context) {
	materials, err := c.materialService.ListMaterials(ctx, ctx.Query("category"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, materials)
}

// UploadMaterial godoc
// @Summary Upload a study material link
// @Description Restricted to admin and faculty callers
// @Tags materials
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param material body dto.CreateStudyMaterialRequest true "Material to upload"
// @Success 201 {object} dto.CreateResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Router /study-materials [post]
func (c *MaterialController) UploadMaterial(ctx *gin.Context) {
	var req dto.CreateStudyMaterialRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	id, err := c.materialService.UploadMaterial(ctx, &req, middleware.CallerRole(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.CreateResponse{ID: id, Success: true})
}
