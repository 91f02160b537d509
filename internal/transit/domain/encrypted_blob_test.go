package domain

import (
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEncryptedBlob(t *testing.T) {
	t.Run("valid blob", func(t *testing.T) {
		ciphertext := []byte("raw ciphertext bytes")
		content := "payment-key:3:" + base64.StdEncoding.EncodeToString(ciphertext)

		blob, err := NewEncryptedBlob(content)
		require.NoError(t, err)
		assert.Equal(t, "payment-key", blob.Name)
		assert.Equal(t, uint(3), blob.Version)
		assert.Equal(t, ciphertext, blob.Ciphertext)
		assert.Nil(t, blob.Plaintext)
	})

	t.Run("empty ciphertext is valid", func(t *testing.T) {
		blob, err := NewEncryptedBlob("payment-key:1:")
		require.NoError(t, err)
		assert.Empty(t, blob.Ciphertext)
	})

	t.Run("wrong part count", func(t *testing.T) {
		_, err := NewEncryptedBlob("payment-key:1")
		assert.ErrorIs(t, err, ErrInvalidBlobFormat)

		_, err = NewEncryptedBlob("a:b:c:d")
		assert.ErrorIs(t, err, ErrInvalidBlobFormat)
	})

	t.Run("empty name", func(t *testing.T) {
		_, err := NewEncryptedBlob(":1:SGVsbG8=")
		assert.ErrorIs(t, err, ErrEmptyBlobName)
	})

	t.Run("invalid version", func(t *testing.T) {
		_, err := NewEncryptedBlob("payment-key:one:SGVsbG8=")
		assert.ErrorIs(t, err, ErrInvalidBlobVersion)

		_, err = NewEncryptedBlob("payment-key:-1:SGVsbG8=")
		assert.ErrorIs(t, err, ErrInvalidBlobVersion)
	})

	t.Run("invalid base64", func(t *testing.T) {
		_, err := NewEncryptedBlob("payment-key:1:!!!not-base64!!!")
		assert.ErrorIs(t, err, ErrInvalidBlobBase64)
	})
}

func TestEncryptedBlob_String(t *testing.T) {
	original := EncryptedBlob{
		Name:       "payment-key",
		Version:    2,
		Ciphertext: []byte("some data"),
	}

	parsed, err := NewEncryptedBlob(original.String())
	require.NoError(t, err)
	assert.Equal(t, original, parsed)
}

func TestValidateTransitKeyName(t *testing.T) {
	tests := []struct {
		name    string
		keyName string
		wantErr bool
	}{
		{"valid", "payment-key", false},
		{"empty", "", true},
		{"blank", "   ", true},
		{"contains colon", "payment:key", true},
		{"too long", string(make([]byte, MaxTransitKeyNameLength+1)), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateTransitKeyName(tt.keyName)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidTransitKeyName)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
