// Package service provides API token generation and verification using
// Argon2id hashing. The server never stores plaintext tokens: operators
// generate a token once, keep the plaintext, and configure the server with
// the Argon2id hash.
package service

import (
	"crypto/rand"
	"encoding/base64"

	"github.com/allisson/go-pwdhash"

	apperrors "github.com/allisson/cryptobox/internal/errors"
)

// TokenService generates and verifies API bearer tokens.
type TokenService interface {
	// GenerateToken creates a new random token and returns both the plaintext
	// and its Argon2id hash.
	GenerateToken() (plainToken string, hashedToken string, err error)

	// HashToken hashes an existing plaintext token.
	HashToken(plainToken string) (hashedToken string, err error)

	// CompareToken performs a constant-time comparison between a plaintext
	// token and its hash.
	CompareToken(plainToken string, hashedToken string) bool
}

// tokenService implements TokenService using Argon2id.
type tokenService struct {
	hasher *pwdhash.PasswordHasher
}

// GenerateToken creates a cryptographically secure 32-byte random token.
// The token is base64-encoded for easy transmission and storage.
func (s *tokenService) GenerateToken() (string, string, error) {
	randomBytes := make([]byte, 32)
	if _, err := rand.Read(randomBytes); err != nil {
		return "", "", apperrors.Wrap(err, "failed to generate random token")
	}

	plainToken := base64.URLEncoding.EncodeToString(randomBytes)

	hashedToken, err := s.HashToken(plainToken)
	if err != nil {
		return "", "", err
	}

	return plainToken, hashedToken, nil
}

// HashToken hashes a plaintext token using Argon2id.
func (s *tokenService) HashToken(plainToken string) (string, error) {
	hashedToken, err := s.hasher.Hash([]byte(plainToken))
	if err != nil {
		return "", apperrors.Wrap(err, "failed to hash token")
	}
	return hashedToken, nil
}

// CompareToken performs a constant-time comparison between a plaintext token
// and its hash.
func (s *tokenService) CompareToken(plainToken string, hashedToken string) bool {
	ok, err := s.hasher.Verify([]byte(plainToken), hashedToken)
	if err != nil {
		return false
	}
	return ok
}

// NewTokenService creates a new TokenService instance using Argon2id hashing.
// Uses the Moderate policy for a balance between security and performance.
func NewTokenService() TokenService {
	hasher, err := pwdhash.New(
		pwdhash.WithPolicy(pwdhash.PolicyModerate),
	)
	if err != nil {
		// This should never happen with valid policy
		panic(err)
	}

	return &tokenService{
		hasher: hasher,
	}
}
