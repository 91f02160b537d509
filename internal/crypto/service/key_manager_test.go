package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	cryptoDomain "github.com/allisson/cryptobox/internal/crypto/domain"
)

func TestKeyManagerService_GenerateKey(t *testing.T) {
	manager := NewKeyManagerService()

	key1, err := manager.GenerateKey()
	require.NoError(t, err)
	key2, err := manager.GenerateKey()
	require.NoError(t, err)

	assert.Len(t, key1, cryptoDomain.KeySize)
	assert.NotEqual(t, key1, key2)
}

func TestKeyManagerService_GenerateSalt(t *testing.T) {
	manager := NewKeyManagerService()

	salt1, err := manager.GenerateSalt()
	require.NoError(t, err)
	salt2, err := manager.GenerateSalt()
	require.NoError(t, err)

	assert.Len(t, salt1, SaltSize)
	assert.NotEqual(t, salt1, salt2)
}

func TestKeyManagerService_DeriveKey(t *testing.T) {
	manager := NewKeyManagerService()
	passphrase := []byte("correct horse battery staple")
	salt := []byte("0123456789abcdef")

	t.Run("deterministic for same inputs", func(t *testing.T) {
		key1, err := manager.DeriveKey(passphrase, salt, MinPBKDF2Iterations)
		require.NoError(t, err)
		key2, err := manager.DeriveKey(passphrase, salt, MinPBKDF2Iterations)
		require.NoError(t, err)

		assert.Len(t, key1, cryptoDomain.KeySize)
		assert.Equal(t, key1, key2)
	})

	t.Run("different salts produce different keys", func(t *testing.T) {
		key1, err := manager.DeriveKey(passphrase, salt, MinPBKDF2Iterations)
		require.NoError(t, err)
		key2, err := manager.DeriveKey(passphrase, []byte("fedcba9876543210"), MinPBKDF2Iterations)
		require.NoError(t, err)

		assert.NotEqual(t, key1, key2)
	})

	t.Run("different iteration counts produce different keys", func(t *testing.T) {
		key1, err := manager.DeriveKey(passphrase, salt, MinPBKDF2Iterations)
		require.NoError(t, err)
		key2, err := manager.DeriveKey(passphrase, salt, MinPBKDF2Iterations+1)
		require.NoError(t, err)

		assert.NotEqual(t, key1, key2)
	})

	t.Run("nil passphrase", func(t *testing.T) {
		_, err := manager.DeriveKey(nil, salt, MinPBKDF2Iterations)
		assert.ErrorIs(t, err, cryptoDomain.ErrNilInput)
	})

	t.Run("nil salt", func(t *testing.T) {
		_, err := manager.DeriveKey(passphrase, nil, MinPBKDF2Iterations)
		assert.ErrorIs(t, err, cryptoDomain.ErrNilInput)
	})

	t.Run("iterations below minimum", func(t *testing.T) {
		_, err := manager.DeriveKey(passphrase, salt, MinPBKDF2Iterations-1)
		assert.ErrorIs(t, err, cryptoDomain.ErrIterationsTooLow)
	})
}

func TestKeyManagerService_ExpandKey(t *testing.T) {
	manager := NewKeyManagerService()

	key, err := manager.GenerateKey()
	require.NoError(t, err)

	t.Run("deterministic and bound to info", func(t *testing.T) {
		sub1, err := manager.ExpandKey(key, []byte("encryption"), cryptoDomain.KeySize)
		require.NoError(t, err)
		sub2, err := manager.ExpandKey(key, []byte("encryption"), cryptoDomain.KeySize)
		require.NoError(t, err)
		sub3, err := manager.ExpandKey(key, []byte("authentication"), cryptoDomain.KeySize)
		require.NoError(t, err)

		assert.Len(t, sub1, cryptoDomain.KeySize)
		assert.Equal(t, sub1, sub2)
		assert.NotEqual(t, sub1, sub3)
		assert.NotEqual(t, key, sub1)
	})

	t.Run("nil key", func(t *testing.T) {
		_, err := manager.ExpandKey(nil, []byte("encryption"), cryptoDomain.KeySize)
		assert.ErrorIs(t, err, cryptoDomain.ErrNilInput)
	})

	t.Run("invalid key size", func(t *testing.T) {
		_, err := manager.ExpandKey(key[:16], []byte("encryption"), cryptoDomain.KeySize)
		assert.ErrorIs(t, err, cryptoDomain.ErrInvalidKeySize)
	})
}
