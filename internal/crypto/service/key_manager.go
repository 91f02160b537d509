package service

import (
	"crypto/rand"

	cryptoDomain "github.com/allisson/cryptobox/internal/crypto/domain"
	"github.com/allisson/cryptobox/internal/errors"
	"github.com/allisson/cryptobox/internal/primitive"
)

const (
	// SaltSize is the salt size in bytes used for key derivation.
	SaltSize = 16

	// DefaultPBKDF2Iterations is the default iteration count for
	// passphrase-based key derivation.
	DefaultPBKDF2Iterations = 27100

	// MinPBKDF2Iterations is the lowest iteration count accepted for
	// passphrase-based key derivation.
	MinPBKDF2Iterations = 1000
)

// KeyManagerService generates random keys and derives keys from passphrases
// and existing key material.
type KeyManagerService struct{}

// NewKeyManagerService creates a new KeyManagerService instance.
func NewKeyManagerService() *KeyManagerService {
	return &KeyManagerService{}
}

// GenerateKey returns a new random 32-byte key.
func (k *KeyManagerService) GenerateKey() ([]byte, error) {
	key := make([]byte, cryptoDomain.KeySize)
	if _, err := rand.Read(key); err != nil {
		return nil, errors.Wrap(err, "generate key")
	}

	return key, nil
}

// GenerateSalt returns a new random salt of SaltSize bytes.
func (k *KeyManagerService) GenerateSalt() ([]byte, error) {
	salt := make([]byte, SaltSize)
	if _, err := rand.Read(salt); err != nil {
		return nil, errors.Wrap(err, "generate salt")
	}

	return salt, nil
}

// DeriveKey derives a 32-byte key from a passphrase and salt with
// PBKDF2-HMAC-SHA256. Iteration counts below MinPBKDF2Iterations are
// rejected.
func (k *KeyManagerService) DeriveKey(passphrase, salt []byte, iterations int) ([]byte, error) {
	if passphrase == nil || salt == nil {
		return nil, cryptoDomain.ErrNilInput
	}
	if iterations < MinPBKDF2Iterations {
		return nil, cryptoDomain.ErrIterationsTooLow
	}

	return primitive.PBKDF2Key(primitive.NewSHA256, passphrase, salt, iterations, cryptoDomain.KeySize), nil
}

// ExpandKey derives a subkey of the given length from existing key material,
// bound to the context info, using HKDF-SHA256.
func (k *KeyManagerService) ExpandKey(key, info []byte, length int) ([]byte, error) {
	if key == nil {
		return nil, cryptoDomain.ErrNilInput
	}
	if len(key) != cryptoDomain.KeySize {
		return nil, cryptoDomain.ErrInvalidKeySize
	}

	subkey, err := primitive.HKDF(primitive.NewSHA256, key, nil, info, length)
	if err != nil {
		return nil, errors.Wrap(err, "expand key")
	}

	return subkey, nil
}
