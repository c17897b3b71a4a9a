package service

import (
	"testing"

	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"simitra_backend/internals/configs"
	"simitra_backend/internals/constants"
	authModel "simitra_backend/internals/features/users/auth/model"
)

func TestPasswordHashRoundTrip(t *testing.T) {
	hash, err := HashPassword("rahasia123")
	require.NoError(t, err)
	assert.NotEqual(t, "rahasia123", hash, "password tidak boleh tersimpan plain")

	assert.NoError(t, CheckPasswordHash(hash, "rahasia123"))
	assert.Error(t, CheckPasswordHash(hash, "salah"))
	assert.Error(t, CheckPasswordHash(hash, ""))
}

func TestIssueTokenClaims(t *testing.T) {
	old := configs.JWTSecret
	configs.JWTSecret = "test-secret"
	defer func() { configs.JWTSecret = old }()

	user := authModel.UserModel{
		ID:       42,
		Username: "budi",
		Role:     constants.RoleAdmin,
	}
	tokenString, err := IssueToken(user)
	require.NoError(t, err)

	claims := jwt.MapClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(tok *jwt.Token) (interface{}, error) {
		return []byte("test-secret"), nil
	})
	require.NoError(t, err)
	require.True(t, token.Valid)

	assert.Equal(t, float64(42), claims["sub"])
	assert.Equal(t, "budi", claims["username"])
	assert.Equal(t, constants.RoleAdmin, claims["role"])
	assert.NotEmpty(t, claims["jti"])
	assert.Greater(t, claims["exp"].(float64), claims["iat"].(float64))
}

func TestIssueTokenUniqueJTI(t *testing.T) {
	old := configs.JWTSecret
	configs.JWTSecret = "test-secret"
	defer func() { configs.JWTSecret = old }()

	user := authModel.UserModel{ID: 1, Username: "budi", Role: constants.RoleUser}

	a, err := IssueToken(user)
	require.NoError(t, err)
	b, err := IssueToken(user)
	require.NoError(t, err)
	assert.NotEqual(t, a, b, "tiap login menghasilkan token berbeda (multi sesi)")
}

func TestIssueTokenWithoutSecret(t *testing.T) {
	old := configs.JWTSecret
	configs.JWTSecret = ""
	defer func() { configs.JWTSecret = old }()

	_, err := IssueToken(authModel.UserModel{ID: 1})
	assert.Error(t, err)
}
