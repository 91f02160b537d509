// Package dto provides data transfer objects for HTTP request and response handling.
package dto

import (
	"time"

	transitDomain "github.com/allisson/cryptobox/internal/transit/domain"
)

// TransitKeyResponse represents a transit key in API responses. Key material
// is never exposed.
type TransitKeyResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Version   uint      `json:"version"`
	Algorithm string    `json:"algorithm"`
	CreatedAt time.Time `json:"created_at"`
}

// MapTransitKeyToResponse converts a domain transit key to an API response.
func MapTransitKeyToResponse(transitKey *transitDomain.TransitKey) TransitKeyResponse {
	return TransitKeyResponse{
		ID:        transitKey.ID.String(),
		Name:      transitKey.Name,
		Version:   transitKey.Version,
		Algorithm: string(transitKey.Algorithm),
		CreatedAt: transitKey.CreatedAt,
	}
}

// ListTransitKeysResponse contains every stored transit key version.
type ListTransitKeysResponse struct {
	Keys []TransitKeyResponse `json:"keys"`
}

// MapTransitKeysToListResponse converts domain transit keys to a list response.
func MapTransitKeysToListResponse(transitKeys []*transitDomain.TransitKey) ListTransitKeysResponse {
	keys := make([]TransitKeyResponse, 0, len(transitKeys))
	for _, transitKey := range transitKeys {
		keys = append(keys, MapTransitKeyToResponse(transitKey))
	}

	return ListTransitKeysResponse{Keys: keys}
}

// EncryptResponse contains the result of an encryption operation.
type EncryptResponse struct {
	Ciphertext string `json:"ciphertext"` // Format: "name:version:base64-ciphertext"
	Version    uint   `json:"version"`
}

// DecryptResponse contains the result of a decryption operation.
// SECURITY: The Plaintext field contains sensitive data and should be transmitted over HTTPS.
type DecryptResponse struct {
	Plaintext []byte `json:"plaintext"`
	Version   uint   `json:"version"`
}

// MapDecryptResponse builds a DecryptResponse with a copy of the plaintext,
// so the caller can zero the original after mapping.
func MapDecryptResponse(plaintext []byte, version uint) DecryptResponse {
	p := make([]byte, len(plaintext))
	copy(p, plaintext)

	return DecryptResponse{Plaintext: p, Version: version}
}

// RewrapResponse contains the result of a rewrap operation.
type RewrapResponse struct {
	Ciphertext string `json:"ciphertext"` // Format: "name:version:base64-ciphertext"
	Version    uint   `json:"version"`
}
