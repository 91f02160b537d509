// Package usecase implements business logic orchestration for transit
// encryption operations.
//
// Transit encryption allows clients to encrypt and decrypt data without
// holding key material themselves. Keys are named and versioned: encryption
// always uses the latest version, decryption uses the version recorded in
// the blob, and rotation creates a new version while keeping old ones
// available so existing blobs stay readable.
package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	cryptoDomain "github.com/allisson/cryptobox/internal/crypto/domain"
	cryptoService "github.com/allisson/cryptobox/internal/crypto/service"
	apperrors "github.com/allisson/cryptobox/internal/errors"
	transitDomain "github.com/allisson/cryptobox/internal/transit/domain"
)

// transitKeyUseCase implements the TransitKeyUseCase interface.
//
// It coordinates between the key manager (key material generation), the AEAD
// manager (cipher construction) and the repository (sealed keystore
// persistence).
type transitKeyUseCase struct {
	transitRepo TransitKeyRepository
	keyManager  cryptoService.KeyManager
	aeadManager cryptoService.AEADManager
}

// NewTransitKeyUseCase creates a new transit key use case instance with the
// provided dependencies.
func NewTransitKeyUseCase(
	transitRepo TransitKeyRepository,
	keyManager cryptoService.KeyManager,
	aeadManager cryptoService.AEADManager,
) TransitKeyUseCase {
	return &transitKeyUseCase{
		transitRepo: transitRepo,
		keyManager:  keyManager,
		aeadManager: aeadManager,
	}
}

// Create generates and persists a new transit key with version 1.
//
// This method should be called once per named key. For subsequent key
// updates, use Rotate instead; creating a name that already exists fails
// with ErrTransitKeyAlreadyExists.
func (t *transitKeyUseCase) Create(
	ctx context.Context,
	name string,
	alg cryptoDomain.Algorithm,
) (*transitDomain.TransitKey, error) {
	if err := transitDomain.ValidateTransitKeyName(name); err != nil {
		return nil, err
	}

	if _, err := t.transitRepo.GetLatestByName(ctx, name); err == nil {
		return nil, transitDomain.ErrTransitKeyAlreadyExists
	} else if !apperrors.Is(err, transitDomain.ErrTransitKeyNotFound) {
		return nil, err
	}

	return t.createVersion(ctx, name, 1, alg)
}

// Rotate performs a transit key rotation by creating a new version.
//
// After rotation, encryption operations use the new version, while blobs
// produced with older versions can still be decrypted until rewrapped. A
// rotation of a name that does not exist yet creates the first version.
func (t *transitKeyUseCase) Rotate(
	ctx context.Context,
	name string,
	alg cryptoDomain.Algorithm,
) (*transitDomain.TransitKey, error) {
	if err := transitDomain.ValidateTransitKeyName(name); err != nil {
		return nil, err
	}

	currentKey, err := t.transitRepo.GetLatestByName(ctx, name)
	if err != nil {
		if apperrors.Is(err, transitDomain.ErrTransitKeyNotFound) {
			return t.createVersion(ctx, name, 1, alg)
		}
		return nil, err
	}

	return t.createVersion(ctx, name, currentKey.Version+1, alg)
}

// Encrypt encrypts plaintext using the latest version of a named transit key.
//
// The nonce is prepended to the ciphertext, and the resulting blob records
// the name and version used so decryption keeps working after rotation.
func (t *transitKeyUseCase) Encrypt(
	ctx context.Context,
	name string,
	plaintext []byte,
) (*transitDomain.EncryptedBlob, error) {
	if plaintext == nil {
		return nil, cryptoDomain.ErrNilInput
	}

	transitKey, err := t.transitRepo.GetLatestByName(ctx, name)
	if err != nil {
		return nil, err
	}
	defer cryptoDomain.Zero(transitKey.Material)

	cipher, err := t.aeadManager.CreateCipher(transitKey.Material, transitKey.Algorithm)
	if err != nil {
		return nil, err
	}

	ciphertext, nonce, err := cipher.Encrypt(plaintext, []byte(name))
	if err != nil {
		return nil, apperrors.Wrap(err, "encrypt plaintext")
	}

	encryptedData := make([]byte, 0, len(nonce)+len(ciphertext))
	encryptedData = append(encryptedData, nonce...)
	encryptedData = append(encryptedData, ciphertext...)

	return &transitDomain.EncryptedBlob{
		Name:       name,
		Version:    transitKey.Version,
		Ciphertext: encryptedData,
	}, nil
}

// Decrypt decrypts a blob string using the key version recorded in it.
//
// The blob must have been produced for the same key name; a mismatch fails
// with ErrBlobNameMismatch instead of silently decrypting under another key.
func (t *transitKeyUseCase) Decrypt(
	ctx context.Context,
	name string,
	ciphertext string,
) (*transitDomain.EncryptedBlob, error) {
	blob, err := transitDomain.NewEncryptedBlob(ciphertext)
	if err != nil {
		return nil, err
	}
	if blob.Name != name {
		return nil, transitDomain.ErrBlobNameMismatch
	}

	transitKey, err := t.transitRepo.GetByNameAndVersion(ctx, name, blob.Version)
	if err != nil {
		return nil, err
	}
	defer cryptoDomain.Zero(transitKey.Material)

	cipher, err := t.aeadManager.CreateCipher(transitKey.Material, transitKey.Algorithm)
	if err != nil {
		return nil, err
	}

	nonceSize := cipher.NonceSize()
	if len(blob.Ciphertext) < nonceSize {
		return nil, apperrors.Wrap(cryptoDomain.ErrDecryptionFailed, "ciphertext too short")
	}

	nonce := blob.Ciphertext[:nonceSize]
	encryptedData := blob.Ciphertext[nonceSize:]

	plaintext, err := cipher.Decrypt(encryptedData, nonce, []byte(name))
	if err != nil {
		return nil, cryptoDomain.ErrDecryptionFailed
	}

	return &transitDomain.EncryptedBlob{
		Name:      name,
		Version:   blob.Version,
		Plaintext: plaintext,
	}, nil
}

// Rewrap decrypts a blob with its recorded key version and re-encrypts the
// plaintext under the latest version. The plaintext never leaves the
// process and is zeroed before returning.
func (t *transitKeyUseCase) Rewrap(
	ctx context.Context,
	name string,
	ciphertext string,
) (*transitDomain.EncryptedBlob, error) {
	decrypted, err := t.Decrypt(ctx, name, ciphertext)
	if err != nil {
		return nil, err
	}
	defer cryptoDomain.Zero(decrypted.Plaintext)

	return t.Encrypt(ctx, name, decrypted.Plaintext)
}

// List returns every stored transit key version.
func (t *transitKeyUseCase) List(ctx context.Context) ([]*transitDomain.TransitKey, error) {
	keys, err := t.transitRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	// Key material stays inside the keystore.
	for _, transitKey := range keys {
		cryptoDomain.Zero(transitKey.Material)
		transitKey.Material = nil
	}

	return keys, nil
}

// createVersion generates fresh key material and persists a new transit key
// version.
func (t *transitKeyUseCase) createVersion(
	ctx context.Context,
	name string,
	version uint,
	alg cryptoDomain.Algorithm,
) (*transitDomain.TransitKey, error) {
	if _, err := cryptoDomain.ParseAlgorithm(string(alg)); err != nil {
		return nil, err
	}

	material, err := t.keyManager.GenerateKey()
	if err != nil {
		return nil, err
	}
	defer cryptoDomain.Zero(material)

	transitKey := &transitDomain.TransitKey{
		ID:        uuid.Must(uuid.NewV7()),
		Name:      name,
		Version:   version,
		Algorithm: alg,
		Material:  material,
		CreatedAt: time.Now().UTC(),
	}

	if err := t.transitRepo.Create(ctx, transitKey); err != nil {
		return nil, err
	}

	// The caller gets metadata only.
	result := *transitKey
	result.Material = nil

	return &result, nil
}
