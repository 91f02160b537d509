// Package repository implements transit key persistence as a sealed file
// keystore. The whole key set is serialized to JSON, encrypted with the
// active keychain key and written atomically, so key material never touches
// disk in the clear.
package repository

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	cryptoDomain "github.com/allisson/cryptobox/internal/crypto/domain"
	cryptoService "github.com/allisson/cryptobox/internal/crypto/service"
	"github.com/allisson/cryptobox/internal/errors"
	transitDomain "github.com/allisson/cryptobox/internal/transit/domain"
)

// envelope is the on-disk document: the sealed keystore plus the metadata
// needed to unseal it.
type envelope struct {
	KeyID      string `json:"key_id"`
	Algorithm  string `json:"algorithm"`
	Nonce      string `json:"nonce"`
	Ciphertext string `json:"ciphertext"`
}

// storedTransitKey is the JSON form of a transit key inside the sealed
// keystore.
type storedTransitKey struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Version   uint      `json:"version"`
	Algorithm string    `json:"algorithm"`
	Material  []byte    `json:"material"`
	CreatedAt time.Time `json:"created_at"`
}

// FileTransitKeyRepository persists transit keys in a single sealed file.
// Safe for concurrent use.
type FileTransitKeyRepository struct {
	mu          sync.RWMutex
	path        string
	keychain    *cryptoDomain.Keychain
	aeadManager cryptoService.AEADManager
	keys        map[string][]*transitDomain.TransitKey
}

// NewFileTransitKeyRepository opens (or initializes) the keystore at path.
// An existing file is unsealed with the keychain key recorded in its
// envelope; a missing file starts an empty keystore.
func NewFileTransitKeyRepository(
	path string,
	keychain *cryptoDomain.Keychain,
	aeadManager cryptoService.AEADManager,
) (*FileTransitKeyRepository, error) {
	r := &FileTransitKeyRepository{
		path:        path,
		keychain:    keychain,
		aeadManager: aeadManager,
		keys:        make(map[string][]*transitDomain.TransitKey),
	}

	if err := r.load(); err != nil {
		return nil, err
	}

	return r, nil
}

// Create persists a new transit key version. Fails with
// ErrTransitKeyAlreadyExists when the name and version are already present.
func (r *FileTransitKeyRepository) Create(ctx context.Context, transitKey *transitDomain.TransitKey) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.keys[transitKey.Name] {
		if existing.Version == transitKey.Version {
			return transitDomain.ErrTransitKeyAlreadyExists
		}
	}

	previous := r.keys[transitKey.Name]
	versions := make([]*transitDomain.TransitKey, 0, len(previous)+1)
	versions = append(versions, previous...)
	versions = append(versions, cloneTransitKey(transitKey))
	sort.Slice(versions, func(i, j int) bool { return versions[i].Version < versions[j].Version })
	r.keys[transitKey.Name] = versions

	if err := r.save(); err != nil {
		r.keys[transitKey.Name] = previous
		return err
	}

	return nil
}

// GetLatestByName returns the highest version of a named transit key.
func (r *FileTransitKeyRepository) GetLatestByName(ctx context.Context, name string) (*transitDomain.TransitKey, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	versions := r.keys[name]
	if len(versions) == 0 {
		return nil, transitDomain.ErrTransitKeyNotFound
	}

	return cloneTransitKey(versions[len(versions)-1]), nil
}

// GetByNameAndVersion returns a specific version of a named transit key.
func (r *FileTransitKeyRepository) GetByNameAndVersion(ctx context.Context, name string, version uint) (*transitDomain.TransitKey, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, transitKey := range r.keys[name] {
		if transitKey.Version == version {
			return cloneTransitKey(transitKey), nil
		}
	}

	return nil, transitDomain.ErrTransitKeyNotFound
}

// List returns every stored transit key version ordered by name and version.
func (r *FileTransitKeyRepository) List(ctx context.Context) ([]*transitDomain.TransitKey, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.keys))
	for name := range r.keys {
		names = append(names, name)
	}
	sort.Strings(names)

	var result []*transitDomain.TransitKey
	for _, name := range names {
		for _, transitKey := range r.keys[name] {
			result = append(result, cloneTransitKey(transitKey))
		}
	}

	return result, nil
}

// load reads and unseals the keystore file. A missing file is not an error.
func (r *FileTransitKeyRepository) load() error {
	data, err := os.ReadFile(r.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return errors.Wrap(err, "read keystore file")
	}

	var env envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return errors.Wrap(err, "parse keystore envelope")
	}

	key, ok := r.keychain.Get(env.KeyID)
	if !ok {
		return cryptoDomain.ErrKeyNotFound
	}

	alg, err := cryptoDomain.ParseAlgorithm(env.Algorithm)
	if err != nil {
		return err
	}

	nonce, err := base64.StdEncoding.DecodeString(env.Nonce)
	if err != nil {
		return errors.Wrap(err, "decode keystore nonce")
	}
	ciphertext, err := base64.StdEncoding.DecodeString(env.Ciphertext)
	if err != nil {
		return errors.Wrap(err, "decode keystore ciphertext")
	}

	cipher, err := r.aeadManager.CreateCipher(key.Key, alg)
	if err != nil {
		return err
	}

	plaintext, err := cipher.Decrypt(ciphertext, nonce, []byte(env.KeyID))
	if err != nil {
		return errors.Wrap(err, "unseal keystore")
	}
	defer cryptoDomain.Zero(plaintext)

	var stored []storedTransitKey
	if err := json.Unmarshal(plaintext, &stored); err != nil {
		return errors.Wrap(err, "parse keystore content")
	}

	keys := make(map[string][]*transitDomain.TransitKey)
	for _, s := range stored {
		alg, err := cryptoDomain.ParseAlgorithm(s.Algorithm)
		if err != nil {
			return err
		}
		keys[s.Name] = append(keys[s.Name], &transitDomain.TransitKey{
			ID:        s.ID,
			Name:      s.Name,
			Version:   s.Version,
			Algorithm: alg,
			Material:  s.Material,
			CreatedAt: s.CreatedAt,
		})
	}
	for name := range keys {
		sort.Slice(keys[name], func(i, j int) bool { return keys[name][i].Version < keys[name][j].Version })
	}
	r.keys = keys

	return nil
}

// save seals the keystore with the active keychain key and writes it
// atomically (temp file + rename). Caller must hold the write lock.
func (r *FileTransitKeyRepository) save() error {
	activeKey, ok := r.keychain.Active()
	if !ok {
		return cryptoDomain.ErrActiveKeyNotFound
	}

	var stored []storedTransitKey
	for _, versions := range r.keys {
		for _, transitKey := range versions {
			stored = append(stored, storedTransitKey{
				ID:        transitKey.ID,
				Name:      transitKey.Name,
				Version:   transitKey.Version,
				Algorithm: string(transitKey.Algorithm),
				Material:  transitKey.Material,
				CreatedAt: transitKey.CreatedAt,
			})
		}
	}
	sort.Slice(stored, func(i, j int) bool {
		if stored[i].Name != stored[j].Name {
			return stored[i].Name < stored[j].Name
		}
		return stored[i].Version < stored[j].Version
	})

	plaintext, err := json.Marshal(stored)
	if err != nil {
		return errors.Wrap(err, "marshal keystore content")
	}
	defer cryptoDomain.Zero(plaintext)

	cipher, err := r.aeadManager.CreateCipher(activeKey.Key, cryptoDomain.XChaCha20Poly1305)
	if err != nil {
		return err
	}

	ciphertext, nonce, err := cipher.Encrypt(plaintext, []byte(activeKey.ID))
	if err != nil {
		return err
	}

	env := envelope{
		KeyID:      activeKey.ID,
		Algorithm:  string(cryptoDomain.XChaCha20Poly1305),
		Nonce:      base64.StdEncoding.EncodeToString(nonce),
		Ciphertext: base64.StdEncoding.EncodeToString(ciphertext),
	}

	data, err := json.MarshalIndent(env, "", "  ")
	if err != nil {
		return errors.Wrap(err, "marshal keystore envelope")
	}

	tmp, err := os.CreateTemp(filepath.Dir(r.path), ".keystore-*")
	if err != nil {
		return errors.Wrap(err, "create keystore temp file")
	}
	tmpPath := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return errors.Wrap(err, "write keystore temp file")
	}
	if err := tmp.Chmod(0o600); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return errors.Wrap(err, "chmod keystore temp file")
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return errors.Wrap(err, "close keystore temp file")
	}

	if err := os.Rename(tmpPath, r.path); err != nil {
		os.Remove(tmpPath)
		return errors.Wrap(err, "replace keystore file")
	}

	return nil
}

func cloneTransitKey(transitKey *transitDomain.TransitKey) *transitDomain.TransitKey {
	clone := *transitKey
	clone.Material = make([]byte, len(transitKey.Material))
	copy(clone.Material, transitKey.Material)

	return &clone
}
