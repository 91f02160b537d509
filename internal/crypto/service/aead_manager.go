package service

import (
	"crypto/rand"

	cryptoDomain "github.com/allisson/cryptobox/internal/crypto/domain"
	"github.com/allisson/cryptobox/internal/errors"
	"github.com/allisson/cryptobox/internal/primitive"
)

// AEADManagerService creates AEAD cipher instances backed by the in-house
// cipher core.
type AEADManagerService struct{}

// NewAEADManagerService creates a new AEADManagerService instance.
func NewAEADManagerService() *AEADManagerService {
	return &AEADManagerService{}
}

// CreateCipher creates an AEAD cipher instance for the specified algorithm.
// The key must be exactly KeySize bytes.
func (a *AEADManagerService) CreateCipher(key []byte, alg cryptoDomain.Algorithm) (AEAD, error) {
	if len(key) != cryptoDomain.KeySize {
		return nil, cryptoDomain.ErrInvalidKeySize
	}

	switch alg {
	case cryptoDomain.ChaCha20Poly1305:
		aead, err := primitive.NewChaCha20Poly1305(key)
		if err != nil {
			return nil, errors.Wrap(err, "create chacha20-poly1305 cipher")
		}
		return &cipherAEAD{aead: aead}, nil
	case cryptoDomain.XChaCha20Poly1305:
		aead, err := primitive.NewXChaCha20Poly1305(key)
		if err != nil {
			return nil, errors.Wrap(err, "create xchacha20-poly1305 cipher")
		}
		return &cipherAEAD{aead: aead}, nil
	default:
		return nil, cryptoDomain.ErrUnsupportedAlgorithm
	}
}

// cipherAEAD adapts a primitive AEAD to the service interface, handling
// random nonce generation on encrypt.
type cipherAEAD struct {
	aead *primitive.AEAD
}

// Encrypt encrypts plaintext with optional AAD and returns ciphertext and
// the randomly generated nonce.
func (c *cipherAEAD) Encrypt(plaintext, aad []byte) ([]byte, []byte, error) {
	nonce := make([]byte, c.aead.NonceSize())
	if _, err := rand.Read(nonce); err != nil {
		return nil, nil, errors.Wrap(err, "generate nonce")
	}

	ciphertext, err := c.aead.Seal(nil, nonce, plaintext, aad)
	if err != nil {
		return nil, nil, errors.Wrap(err, "encrypt data")
	}

	return ciphertext, nonce, nil
}

// Decrypt decrypts ciphertext using the provided nonce and AAD.
func (c *cipherAEAD) Decrypt(ciphertext, nonce, aad []byte) ([]byte, error) {
	plaintext, err := c.aead.Open(nil, nonce, ciphertext, aad)
	if err != nil {
		return nil, cryptoDomain.ErrDecryptionFailed
	}

	return plaintext, nil
}

// NonceSize returns the nonce length in bytes for this cipher.
func (c *cipherAEAD) NonceSize() int {
	return c.aead.NonceSize()
}
