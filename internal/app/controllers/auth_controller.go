package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/campusos/campusos/internal/app/models/dto"
	"github.com/campusos/campusos/internal/app/services"
	"github.com/campusos/campusos/internal/middleware"
	"github.com/campusos/campusos/internal/pkg/apperrors"
)

// AuthController handles login and user listing
type AuthController struct {
	authService services.AuthService
}

// NewAuthController creates a new AuthController
func NewAuthController(authService services.AuthService) *AuthController {
	return &AuthController{authService: authService}
}

// Login godoc
// @Summary Log in
// @Description Exchange email and password for a signed session token
// @Tags auth
// @Accept json
// @Produce json
// @Param credentials body dto.LoginRequest true "Login credentials"
// @Success 200 {object} dto.LoginResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Router /auth/login [post]
func (c *AuthController) Login(ctx *gin.Context) {
	var req dto.LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	resp, err := c.authService.Login(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// Me godoc
// @Summary Get the current session user
// @Tags auth
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} models.User
// @Failure 401 {object} dto.ErrorResponse
// @Router /auth/me [get]
func (c *AuthController) Me(ctx *gin.Context) {
	userID := middleware.CallerID(ctx)
	if userID == 0 {
		middleware.HandleAPIError(ctx, apperrors.ErrInvalidCredentials)
		return
	}

	user, err := c.authService.GetUser(ctx, userID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, user)
}

// ListUsers godoc
// @Summary List portal users
// @Description Get the seeded users shown on the login page
// @Tags auth
// @Produce json
// @Success 200 {array} models.User
// @Router /users [get]
func (c *AuthController) ListUsers(ctx *gin.Context) {
	users, err := c.authService.ListUsers(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, users)
}
