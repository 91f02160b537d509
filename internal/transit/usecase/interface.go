package usecase

import (
	"context"

	cryptoDomain "github.com/allisson/cryptobox/internal/crypto/domain"
	transitDomain "github.com/allisson/cryptobox/internal/transit/domain"
)

// TransitKeyRepository defines the interface for transit key persistence.
type TransitKeyRepository interface {
	Create(ctx context.Context, transitKey *transitDomain.TransitKey) error
	GetLatestByName(ctx context.Context, name string) (*transitDomain.TransitKey, error)
	GetByNameAndVersion(ctx context.Context, name string, version uint) (*transitDomain.TransitKey, error)
	List(ctx context.Context) ([]*transitDomain.TransitKey, error)
}

// TransitKeyUseCase defines the interface for transit encryption operations.
type TransitKeyUseCase interface {
	Create(ctx context.Context, name string, alg cryptoDomain.Algorithm) (*transitDomain.TransitKey, error)
	Rotate(ctx context.Context, name string, alg cryptoDomain.Algorithm) (*transitDomain.TransitKey, error)
	Encrypt(ctx context.Context, name string, plaintext []byte) (*transitDomain.EncryptedBlob, error)
	// Decrypt decrypts a blob string using the key version recorded in it.
	//
	// Security Note: The returned EncryptedBlob carries the recovered data in
	// the Plaintext field. Callers MUST zero it after use with
	// cryptoDomain.Zero(blob.Plaintext).
	Decrypt(ctx context.Context, name string, ciphertext string) (*transitDomain.EncryptedBlob, error)
	// Rewrap re-encrypts a blob under the latest key version without
	// returning the plaintext.
	Rewrap(ctx context.Context, name string, ciphertext string) (*transitDomain.EncryptedBlob, error)
	List(ctx context.Context) ([]*transitDomain.TransitKey, error)
}
