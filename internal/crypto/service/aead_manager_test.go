package service

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	cryptoDomain "github.com/allisson/cryptobox/internal/crypto/domain"
	"github.com/allisson/cryptobox/internal/primitive"
)

func TestAEADManagerService_CreateCipher(t *testing.T) {
	manager := NewAEADManagerService()
	key := bytes.Repeat([]byte{0x42}, cryptoDomain.KeySize)

	t.Run("chacha20-poly1305", func(t *testing.T) {
		cipher, err := manager.CreateCipher(key, cryptoDomain.ChaCha20Poly1305)
		require.NoError(t, err)
		assert.Equal(t, primitive.ChaCha20NonceSize, cipher.NonceSize())
	})

	t.Run("xchacha20-poly1305", func(t *testing.T) {
		cipher, err := manager.CreateCipher(key, cryptoDomain.XChaCha20Poly1305)
		require.NoError(t, err)
		assert.Equal(t, primitive.XChaCha20NonceSize, cipher.NonceSize())
	})

	t.Run("unsupported algorithm", func(t *testing.T) {
		_, err := manager.CreateCipher(key, cryptoDomain.Algorithm("aes-256-gcm"))
		assert.ErrorIs(t, err, cryptoDomain.ErrUnsupportedAlgorithm)
	})

	t.Run("invalid key size", func(t *testing.T) {
		_, err := manager.CreateCipher(key[:16], cryptoDomain.ChaCha20Poly1305)
		assert.ErrorIs(t, err, cryptoDomain.ErrInvalidKeySize)
	})
}

func TestCipherAEAD_RoundTrip(t *testing.T) {
	manager := NewAEADManagerService()
	key := bytes.Repeat([]byte{0x42}, cryptoDomain.KeySize)
	plaintext := []byte("attack at dawn")
	aad := []byte("context")

	for _, alg := range []cryptoDomain.Algorithm{cryptoDomain.ChaCha20Poly1305, cryptoDomain.XChaCha20Poly1305} {
		t.Run(string(alg), func(t *testing.T) {
			cipher, err := manager.CreateCipher(key, alg)
			require.NoError(t, err)

			ciphertext, nonce, err := cipher.Encrypt(plaintext, aad)
			require.NoError(t, err)
			assert.Len(t, nonce, cipher.NonceSize())
			assert.Len(t, ciphertext, len(plaintext)+primitive.TagSize)

			decrypted, err := cipher.Decrypt(ciphertext, nonce, aad)
			require.NoError(t, err)
			assert.Equal(t, plaintext, decrypted)
		})
	}
}

func TestCipherAEAD_FreshNoncePerEncrypt(t *testing.T) {
	manager := NewAEADManagerService()
	key := bytes.Repeat([]byte{0x42}, cryptoDomain.KeySize)

	cipher, err := manager.CreateCipher(key, cryptoDomain.XChaCha20Poly1305)
	require.NoError(t, err)

	_, nonce1, err := cipher.Encrypt([]byte("same input"), nil)
	require.NoError(t, err)
	_, nonce2, err := cipher.Encrypt([]byte("same input"), nil)
	require.NoError(t, err)

	assert.NotEqual(t, nonce1, nonce2)
}

func TestCipherAEAD_DecryptFailures(t *testing.T) {
	manager := NewAEADManagerService()
	key := bytes.Repeat([]byte{0x42}, cryptoDomain.KeySize)

	cipher, err := manager.CreateCipher(key, cryptoDomain.ChaCha20Poly1305)
	require.NoError(t, err)

	ciphertext, nonce, err := cipher.Encrypt([]byte("payload"), []byte("aad"))
	require.NoError(t, err)

	t.Run("tampered ciphertext", func(t *testing.T) {
		tampered := append([]byte(nil), ciphertext...)
		tampered[0] ^= 0x01
		_, err := cipher.Decrypt(tampered, nonce, []byte("aad"))
		assert.ErrorIs(t, err, cryptoDomain.ErrDecryptionFailed)
	})

	t.Run("wrong aad", func(t *testing.T) {
		_, err := cipher.Decrypt(ciphertext, nonce, []byte("other"))
		assert.ErrorIs(t, err, cryptoDomain.ErrDecryptionFailed)
	})

	t.Run("wrong key", func(t *testing.T) {
		otherKey := bytes.Repeat([]byte{0x43}, cryptoDomain.KeySize)
		otherCipher, err := manager.CreateCipher(otherKey, cryptoDomain.ChaCha20Poly1305)
		require.NoError(t, err)
		_, err = otherCipher.Decrypt(ciphertext, nonce, []byte("aad"))
		assert.ErrorIs(t, err, cryptoDomain.ErrDecryptionFailed)
	})
}
