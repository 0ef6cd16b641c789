package services

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campusos/campusos/internal/app/models"
	"github.com/campusos/campusos/internal/app/models/dto"
	"github.com/campusos/campusos/internal/pkg/apperrors"
	"github.com/campusos/campusos/internal/pkg/auth"
)

type fakeUserStore struct {
	users []models.User
}

func (f *fakeUserStore) GetByID(ctx context.Context, id int64) (*models.User, error) {
	for i := range f.users {
		if f.users[i].ID == id {
			return &f.users[i], nil
		}
	}
	return nil, nil
}

func (f *fakeUserStore) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	for i := range f.users {
		if f.users[i].Email == email {
			return &f.users[i], nil
		}
	}
	return nil, nil
}

func (f *fakeUserStore) GetAll(ctx context.Context) ([]models.User, error) {
	return f.users, nil
}

func seededUserStore(t *testing.T) *fakeUserStore {
	t.Helper()
	hash, err := auth.HashPassword("campus123")
	require.NoError(t, err)
	return &fakeUserStore{users: []models.User{
		{ID: 1, Name: "System Admin", Email: "admin@campus.edu", Password: hash, Role: models.RoleAdmin},
	}}
}

func testAuthService(t *testing.T) AuthService {
	t.Helper()
	jwtService := auth.NewJWTService(auth.JWTConfig{SecretKey: "secret", TokenExp: time.Hour, TokenIssuer: "test"})
	return NewAuthService(seededUserStore(t), jwtService, zerolog.Nop())
}

func TestLogin(t *testing.T) {
	svc := testAuthService(t)

	resp, err := svc.Login(context.Background(), &dto.LoginRequest{Email: "admin@campus.edu", Password: "campus123"})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, int64(1), resp.User.ID)
	assert.Equal(t, models.RoleAdmin, resp.User.Role)
	assert.Equal(t, 3600, resp.ExpiresIn)
}

func TestLoginBadCredentials(t *testing.T) {
	svc := testAuthService(t)

	_, err := svc.Login(context.Background(), &dto.LoginRequest{Email: "admin@campus.edu", Password: "wrong"})
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)

	_, err = svc.Login(context.Background(), &dto.LoginRequest{Email: "ghost@campus.edu", Password: "campus123"})
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
}

func TestGetUserNotFound(t *testing.T) {
	svc := testAuthService(t)

	_, err := svc.GetUser(context.Background(), 99)
	assert.ErrorIs(t, err, apperrors.ErrUserNotFound)
}
