package services

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/campusos/campusos/internal/app/models"
	"github.com/campusos/campusos/internal/app/models/dto"
	"github.com/campusos/campusos/internal/pkg/apperrors"
	"github.com/campusos/campusos/internal/pkg/auth"
)

// AuthService defines the interface for session operations
type AuthService interface {
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error)
	GetUser(ctx context.Context, id int64) (*models.User, error)
	ListUsers(ctx context.Context) ([]models.User, error)
}

// userStore is the persistence surface the service needs.
type userStore interface {
	GetByID(ctx context.Context, id int64) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	GetAll(ctx context.Context) ([]models.User, error)
}

// authServiceImpl implements AuthService
type authServiceImpl struct {
	userRepo   userStore
	jwtService *auth.JWTService
	logger     zerolog.Logger
}

// NewAuthService creates a new AuthService
func NewAuthService(userRepo userStore, jwtService *auth.JWTService, logger zerolog.Logger) AuthService {
	return &authServiceImpl{
		userRepo:   userRepo,
		jwtService: jwtService,
		logger:     logger,
	}
}

// Login verifies credentials and issues a signed session token carrying the
// user's role. The token is what the role-gated endpoints trust; a role
// claimed in a request body is only a UI hint.
func (s *authServiceImpl) Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := s.userRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		return nil, fmt.Errorf("error getting user: %w", err)
	}
	if user == nil || !auth.CheckPassword(user.Password, req.Password) {
		return nil, apperrors.ErrInvalidCredentials
	}

	token, expiresIn, err := s.jwtService.GenerateToken(user)
	if err != nil {
		return nil, fmt.Errorf("error generating session token: %w", err)
	}

	s.logger.Info().Int64("userId", user.ID).Str("role", string(user.Role)).Msg("User logged in")

	return &dto.LoginResponse{
		Token:     token,
		ExpiresIn: expiresIn,
		User:      *user,
	}, nil
}

// GetUser returns a user by id.
func (s *authServiceImpl) GetUser(ctx context.Context, id int64) (*models.User, error) {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("error getting user: %w", err)
	}
	if user == nil {
		return nil, apperrors.ErrUserNotFound
	}
	return user, nil
}

// ListUsers returns all portal users (passwords excluded at the model
// level). Serves the login page's account picker.
func (s *authServiceImpl) ListUsers(ctx context.Context) ([]models.User, error) {
	users, err := s.userRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("error getting users: %w", err)
	}
	return users, nil
}
