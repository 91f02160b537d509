package service

import (
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTokenService(t *testing.T) {
	service := NewTokenService()
	assert.NotNil(t, service)
	assert.IsType(t, &tokenService{}, service)
}

func TestTokenService_GenerateToken(t *testing.T) {
	service := NewTokenService()

	t.Run("Success_GeneratesValidToken", func(t *testing.T) {
		plainToken, hashedToken, err := service.GenerateToken()
		require.NoError(t, err)

		assert.NotEmpty(t, plainToken)

		// Plain token is base64 over 32 random bytes
		decoded, err := base64.URLEncoding.DecodeString(plainToken)
		require.NoError(t, err)
		assert.Len(t, decoded, 32)

		assert.NotEmpty(t, hashedToken)
		assert.NotEqual(t, plainToken, hashedToken)

		// Hash is in PHC format
		assert.Contains(t, hashedToken, "$argon2id$")
	})

	t.Run("Success_GeneratesUniqueTokens", func(t *testing.T) {
		plainToken1, hashedToken1, err := service.GenerateToken()
		require.NoError(t, err)

		plainToken2, hashedToken2, err := service.GenerateToken()
		require.NoError(t, err)

		assert.NotEqual(t, plainToken1, plainToken2)
		assert.NotEqual(t, hashedToken1, hashedToken2)
	})

	t.Run("Success_GeneratedTokenCanBeVerified", func(t *testing.T) {
		plainToken, hashedToken, err := service.GenerateToken()
		require.NoError(t, err)

		assert.True(t, service.CompareToken(plainToken, hashedToken))
	})
}

func TestTokenService_HashToken(t *testing.T) {
	service := NewTokenService()

	t.Run("Success_HashesToken", func(t *testing.T) {
		hashedToken, err := service.HashToken("my-api-token")
		require.NoError(t, err)
		assert.Contains(t, hashedToken, "$argon2id$")
	})

	t.Run("Success_SameTokenProducesDifferentHashes", func(t *testing.T) {
		hash1, err := service.HashToken("my-api-token")
		require.NoError(t, err)

		hash2, err := service.HashToken("my-api-token")
		require.NoError(t, err)

		// Argon2id salts each hash
		assert.NotEqual(t, hash1, hash2)
	})
}

func TestTokenService_CompareToken(t *testing.T) {
	service := NewTokenService()

	hashedToken, err := service.HashToken("correct-token")
	require.NoError(t, err)

	t.Run("Success_MatchingToken", func(t *testing.T) {
		assert.True(t, service.CompareToken("correct-token", hashedToken))
	})

	t.Run("Failure_WrongToken", func(t *testing.T) {
		assert.False(t, service.CompareToken("wrong-token", hashedToken))
	})

	t.Run("Failure_MalformedHash", func(t *testing.T) {
		assert.False(t, service.CompareToken("correct-token", "not-a-valid-hash"))
	})

	t.Run("Failure_EmptyHash", func(t *testing.T) {
		assert.False(t, service.CompareToken("correct-token", ""))
	})
}
