package auth_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tommy251/Atlas2.0/pkg/auth"
)

func TestGenerateAndValidateToken(t *testing.T) {
	token, err := auth.GenerateToken("alice", auth.TokenTTL)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := auth.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "alice", claims.Subject)
	assert.True(t, claims.ExpiresAt.After(time.Now()))
}

func TestValidateTokenRejectsGarbage(t *testing.T) {
	_, err := auth.ValidateToken("not.a.token")
	assert.Error(t, err)
}

func TestValidateTokenRejectsExpired(t *testing.T) {
	token, err := auth.GenerateToken("alice", -time.Minute)
	require.NoError(t, err)

	_, err = auth.ValidateToken(token)
	assert.Error(t, err)
}

func TestPasswordHashRoundTrip(t *testing.T) {
	hash, err := auth.HashPassword("s3cret-pass")
	require.NoError(t, err)
	assert.NotEqual(t, "s3cret-pass", hash)

	assert.True(t, auth.CheckPassword(hash, "s3cret-pass"))
	assert.False(t, auth.CheckPassword(hash, "wrong"))
}
