package dto

import "github.com/campusos/campusos/internal/app/models"

// LoginRequest authenticates a seeded portal user.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse carries the signed session token and the user it belongs to.
type LoginResponse struct {
	Token     string      `json:"token"`
	ExpiresIn int         `json:"expiresIn" example:"3600"`
	User      models.User `json:"user"`
}
