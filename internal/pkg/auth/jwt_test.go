package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campusos/campusos/internal/app/models"
)

func TestGenerateAndValidateToken(t *testing.T) {
	svc := NewJWTService(JWTConfig{SecretKey: "secret", TokenExp: time.Hour, TokenIssuer: "test"})

	user := &models.User{ID: 7, Name: "Dr. Faculty", Email: "faculty@campus.edu", Role: models.RoleFaculty}
	token, expiresIn, err := svc.GenerateToken(user)
	require.NoError(t, err)
	assert.Equal(t, 3600, expiresIn)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, int64(7), claims.UserID)
	assert.Equal(t, "faculty@campus.edu", claims.Email)
	assert.Equal(t, string(models.RoleFaculty), claims.Role)
	assert.Equal(t, "test", claims.Issuer)
}

func TestValidateTokenExpired(t *testing.T) {
	svc := NewJWTService(JWTConfig{SecretKey: "secret", TokenExp: -time.Minute, TokenIssuer: "test"})

	token, _, err := svc.GenerateToken(&models.User{ID: 1, Role: models.RoleStudent})
	require.NoError(t, err)

	_, err = svc.ValidateToken(token)
	assert.ErrorIs(t, err, ErrExpiredToken)
}

func TestValidateTokenWrongKey(t *testing.T) {
	issuer := NewJWTService(JWTConfig{SecretKey: "secret-a", TokenExp: time.Hour})
	verifier := NewJWTService(JWTConfig{SecretKey: "secret-b", TokenExp: time.Hour})

	token, _, err := issuer.GenerateToken(&models.User{ID: 1, Role: models.RoleStudent})
	require.NoError(t, err)

	_, err = verifier.ValidateToken(token)
	assert.Error(t, err)
}

func TestExtractBearerToken(t *testing.T) {
	token, err := ExtractBearerToken("Bearer abc.def.ghi")
	require.NoError(t, err)
	assert.Equal(t, "abc.def.ghi", token)

	token, err = ExtractBearerToken("abc.def.ghi")
	require.NoError(t, err)
	assert.Equal(t, "abc.def.ghi", token)

	_, err = ExtractBearerToken("")
	assert.ErrorIs(t, err, ErrInvalidFormat)
}

func TestPasswordHashing(t *testing.T) {
	hash, err := HashPassword("campus123")
	require.NoError(t, err)
	assert.NotEqual(t, "campus123", hash)

	assert.True(t, CheckPassword(hash, "campus123"))
	assert.False(t, CheckPassword(hash, "wrong"))
}
