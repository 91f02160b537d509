package domain

import (
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func b64Key(b byte) string {
	key := make([]byte, KeySize)
	for i := range key {
		key[i] = b
	}
	return base64.StdEncoding.EncodeToString(key)
}

func TestLoadKeychainFromEnv(t *testing.T) {
	t.Run("single key", func(t *testing.T) {
		t.Setenv("CRYPTOBOX_KEYS", "key1:"+b64Key(1))
		t.Setenv("CRYPTOBOX_ACTIVE_KEY_ID", "key1")

		kc, err := LoadKeychainFromEnv()
		require.NoError(t, err)
		defer kc.Close()

		assert.Equal(t, "key1", kc.ActiveKeyID())

		key, ok := kc.Get("key1")
		require.True(t, ok)
		assert.Equal(t, "key1", key.ID)
		assert.Len(t, key.Key, KeySize)
	})

	t.Run("multiple keys with rotation", func(t *testing.T) {
		t.Setenv("CRYPTOBOX_KEYS", "old:"+b64Key(1)+",new:"+b64Key(2))
		t.Setenv("CRYPTOBOX_ACTIVE_KEY_ID", "new")

		kc, err := LoadKeychainFromEnv()
		require.NoError(t, err)
		defer kc.Close()

		active, ok := kc.Active()
		require.True(t, ok)
		assert.Equal(t, "new", active.ID)

		_, ok = kc.Get("old")
		assert.True(t, ok)
	})

	t.Run("keys not set", func(t *testing.T) {
		t.Setenv("CRYPTOBOX_KEYS", "")
		t.Setenv("CRYPTOBOX_ACTIVE_KEY_ID", "key1")

		_, err := LoadKeychainFromEnv()
		assert.ErrorIs(t, err, ErrKeysNotSet)
	})

	t.Run("active key id not set", func(t *testing.T) {
		t.Setenv("CRYPTOBOX_KEYS", "key1:"+b64Key(1))
		t.Setenv("CRYPTOBOX_ACTIVE_KEY_ID", "")

		_, err := LoadKeychainFromEnv()
		assert.ErrorIs(t, err, ErrActiveKeyIDNotSet)
	})

	t.Run("invalid entry format", func(t *testing.T) {
		t.Setenv("CRYPTOBOX_KEYS", "missing-separator")
		t.Setenv("CRYPTOBOX_ACTIVE_KEY_ID", "key1")

		_, err := LoadKeychainFromEnv()
		assert.ErrorIs(t, err, ErrInvalidKeysFormat)
	})

	t.Run("invalid base64", func(t *testing.T) {
		t.Setenv("CRYPTOBOX_KEYS", "key1:not-base64!!!")
		t.Setenv("CRYPTOBOX_ACTIVE_KEY_ID", "key1")

		_, err := LoadKeychainFromEnv()
		assert.ErrorIs(t, err, ErrInvalidKeyBase64)
	})

	t.Run("wrong key size", func(t *testing.T) {
		t.Setenv("CRYPTOBOX_KEYS", "key1:"+base64.StdEncoding.EncodeToString([]byte("short")))
		t.Setenv("CRYPTOBOX_ACTIVE_KEY_ID", "key1")

		_, err := LoadKeychainFromEnv()
		assert.ErrorIs(t, err, ErrInvalidKeySize)
	})

	t.Run("active key missing from chain", func(t *testing.T) {
		t.Setenv("CRYPTOBOX_KEYS", "key1:"+b64Key(1))
		t.Setenv("CRYPTOBOX_ACTIVE_KEY_ID", "other")

		_, err := LoadKeychainFromEnv()
		assert.ErrorIs(t, err, ErrActiveKeyNotFound)
	})
}

func TestKeychain_Close(t *testing.T) {
	t.Setenv("CRYPTOBOX_KEYS", "key1:"+b64Key(7))
	t.Setenv("CRYPTOBOX_ACTIVE_KEY_ID", "key1")

	kc, err := LoadKeychainFromEnv()
	require.NoError(t, err)

	key, ok := kc.Get("key1")
	require.True(t, ok)

	kc.Close()

	// Key material is zeroed and lookups fail after close.
	for _, b := range key.Key {
		assert.Equal(t, byte(0), b)
	}
	_, ok = kc.Get("key1")
	assert.False(t, ok)
	assert.Empty(t, kc.ActiveKeyID())
}

func TestParseAlgorithm(t *testing.T) {
	alg, err := ParseAlgorithm("chacha20-poly1305")
	require.NoError(t, err)
	assert.Equal(t, ChaCha20Poly1305, alg)

	alg, err = ParseAlgorithm("xchacha20-poly1305")
	require.NoError(t, err)
	assert.Equal(t, XChaCha20Poly1305, alg)

	_, err = ParseAlgorithm("aes-gcm")
	assert.ErrorIs(t, err, ErrUnsupportedAlgorithm)

	_, err = ParseAlgorithm("")
	assert.ErrorIs(t, err, ErrUnsupportedAlgorithm)
}
