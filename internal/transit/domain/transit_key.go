package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"

	cryptoDomain "github.com/allisson/cryptobox/internal/crypto/domain"
)

// TransitKey represents a versioned encryption key for transit encryption
// operations. Rotation creates a new version under the same name; the highest
// version is used for encryption while older versions remain available for
// decryption and rewrap.
type TransitKey struct {
	ID        uuid.UUID
	Name      string
	Version   uint
	Algorithm cryptoDomain.Algorithm
	Material  []byte
	CreatedAt time.Time
}

// ValidateTransitKeyName checks a transit key name: non-blank, at most
// MaxTransitKeyNameLength bytes, and free of the ":" separator used by the
// encrypted blob format.
func ValidateTransitKeyName(name string) error {
	if strings.TrimSpace(name) == "" {
		return ErrInvalidTransitKeyName
	}
	if len(name) > MaxTransitKeyNameLength {
		return ErrInvalidTransitKeyName
	}
	if strings.Contains(name, ":") {
		return ErrInvalidTransitKeyName
	}

	return nil
}
