package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"taskmarket-server/config"
	"taskmarket-server/types"
)

func TestPasswordHashing(t *testing.T) {
	hash, err := HashPassword("hunter22")
	require.NoError(t, err)
	assert.NotEqual(t, "hunter22", hash)

	assert.True(t, CheckPasswordHash("hunter22", hash))
	assert.False(t, CheckPasswordHash("hunter23", hash))
}

func TestTokenTypes(t *testing.T) {
	config.Load()

	access, err := GenerateToken(7, "worker")
	require.NoError(t, err)
	claims, err := VerifyToken(access)
	require.NoError(t, err)
	assert.Equal(t, types.TokenAccess, claims.TokenType)
	assert.Equal(t, uint(7), claims.UserID)
	assert.Equal(t, "worker", claims.Role)

	refresh, err := GenerateRefreshToken(7, "worker")
	require.NoError(t, err)
	claims, err = VerifyToken(refresh)
	require.NoError(t, err)
	assert.Equal(t, types.TokenRefresh, claims.TokenType)
}

func TestVerifyTokenRejectsGarbage(t *testing.T) {
	config.Load()

	_, err := VerifyToken("not-a-jwt")
	assert.Error(t, err)
}
