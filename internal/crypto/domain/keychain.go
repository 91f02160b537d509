package domain

import (
	"encoding/base64"
	"fmt"
	"os"
	"strings"
	"sync"
)

// Key is a named 32-byte symmetric key.
//
// Keys are loaded once at startup and treated as immutable afterwards. The ID
// travels with everything sealed under the key so old material can still be
// decrypted after a rotation.
type Key struct {
	ID  string
	Key []byte
}

// Keychain holds a set of keys with one designated as active.
//
// The active key seals new data; older keys remain available for decryption.
// Rotation is adding a new key, pointing CRYPTOBOX_ACTIVE_KEY_ID at it and
// restarting — previously sealed data keeps working because its key ID is
// recorded alongside the ciphertext.
//
// The keychain uses sync.Map internally and is safe for concurrent reads.
type Keychain struct {
	activeID string
	keys     sync.Map
}

// ActiveKeyID returns the ID of the key used to seal new data.
func (k *Keychain) ActiveKeyID() string {
	return k.activeID
}

// Active returns the active key.
func (k *Keychain) Active() (*Key, bool) {
	return k.Get(k.activeID)
}

// Get retrieves a key by ID. Used to decrypt data sealed under previous
// active keys during rotation.
func (k *Keychain) Get(id string) (*Key, bool) {
	if key, ok := k.keys.Load(id); ok {
		return key.(*Key), true
	}
	return nil, false
}

// Close zeroes all key material and resets the keychain. Call on shutdown.
func (k *Keychain) Close() {
	k.keys.Range(func(_, value any) bool {
		Zero(value.(*Key).Key)
		return true
	})
	k.activeID = ""
	k.keys.Clear()
}

// LoadKeychainFromEnv loads the keychain from environment variables:
//
//	CRYPTOBOX_KEYS="id1:base64key,id2:base64key"
//	CRYPTOBOX_ACTIVE_KEY_ID="id2"
//
// Each key must decode to exactly KeySize bytes of standard base64. On any
// error the partially built keychain is closed so no key material leaks out
// of a failed startup.
func LoadKeychainFromEnv() (*Keychain, error) {
	raw := os.Getenv("CRYPTOBOX_KEYS")
	if raw == "" {
		return nil, ErrKeysNotSet
	}

	active := os.Getenv("CRYPTOBOX_ACTIVE_KEY_ID")
	if active == "" {
		return nil, ErrActiveKeyIDNotSet
	}

	kc := &Keychain{activeID: active}

	for part := range strings.SplitSeq(raw, ",") {
		p := strings.SplitN(strings.TrimSpace(part), ":", 2)
		if len(p) != 2 || p[0] == "" {
			kc.Close()
			return nil, fmt.Errorf("%w: %q", ErrInvalidKeysFormat, part)
		}
		id := p[0]
		key, err := base64.StdEncoding.DecodeString(p[1])
		if err != nil {
			kc.Close()
			return nil, fmt.Errorf("%w for %s: %v", ErrInvalidKeyBase64, id, err)
		}
		if len(key) != KeySize {
			Zero(key)
			kc.Close()
			return nil, fmt.Errorf("%w: key %s must be %d bytes, got %d", ErrInvalidKeySize, id, KeySize, len(key))
		}
		kc.keys.Store(id, &Key{ID: id, Key: key})
	}

	if _, ok := kc.Get(active); !ok {
		kc.Close()
		return nil, fmt.Errorf("%w: CRYPTOBOX_ACTIVE_KEY_ID=%s", ErrActiveKeyNotFound, active)
	}

	return kc, nil
}
