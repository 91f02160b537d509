package domain

import (
	"encoding/base64"
	"fmt"
	"strconv"
	"strings"
)

// EncryptedBlob represents an encrypted data blob in the transit encryption
// system.
//
// The blob carries the transit key name, the key version used for encryption
// and the ciphertext (nonce prepended). It serializes to and from the string
// format "name:version:ciphertext-base64".
//
// Decrypt results reuse the same type with Plaintext populated and
// Ciphertext nil; callers must zero Plaintext after use.
type EncryptedBlob struct {
	Name       string
	Version    uint
	Ciphertext []byte
	Plaintext  []byte
}

// NewEncryptedBlob creates an EncryptedBlob from its string representation.
//
// The input must be "name:version:ciphertext-base64" where name is non-empty,
// version is a non-negative integer and the ciphertext is valid base64.
func NewEncryptedBlob(content string) (EncryptedBlob, error) {
	parts := strings.Split(content, ":")
	if len(parts) != 3 {
		return EncryptedBlob{}, fmt.Errorf(
			"%w: expected format 'name:version:ciphertext', got %d parts",
			ErrInvalidBlobFormat,
			len(parts),
		)
	}

	name := parts[0]
	if name == "" {
		return EncryptedBlob{}, ErrEmptyBlobName
	}

	version, err := strconv.ParseUint(parts[1], 10, 0)
	if err != nil {
		return EncryptedBlob{}, fmt.Errorf("%w: %v", ErrInvalidBlobVersion, err)
	}

	ciphertext, err := base64.StdEncoding.DecodeString(parts[2])
	if err != nil {
		return EncryptedBlob{}, fmt.Errorf("%w: %v", ErrInvalidBlobBase64, err)
	}

	return EncryptedBlob{
		Name:       name,
		Version:    uint(version),
		Ciphertext: ciphertext,
	}, nil
}

// String serializes the EncryptedBlob to "name:version:ciphertext-base64".
// Round-trips with NewEncryptedBlob. The Plaintext field is never serialized.
func (eb EncryptedBlob) String() string {
	encodedCiphertext := base64.StdEncoding.EncodeToString(eb.Ciphertext)
	return fmt.Sprintf("%s:%d:%s", eb.Name, eb.Version, encodedCiphertext)
}
