// Package service provides the cryptographic services built on the in-house
// cipher core: AEAD construction, key generation and derivation, and the
// string-level sealer used by encrypted properties and the CLI.
package service

import (
	cryptoDomain "github.com/allisson/cryptobox/internal/crypto/domain"
)

// AEAD defines the interface for authenticated encryption with associated data.
type AEAD interface {
	// Encrypt encrypts plaintext with optional AAD and returns ciphertext and
	// the randomly generated nonce.
	Encrypt(plaintext, aad []byte) (ciphertext, nonce []byte, err error)

	// Decrypt decrypts ciphertext using the provided nonce and AAD.
	Decrypt(ciphertext, nonce, aad []byte) ([]byte, error)

	// NonceSize returns the nonce length in bytes for this cipher.
	NonceSize() int
}

// AEADManager defines the interface for creating AEAD cipher instances.
type AEADManager interface {
	// CreateCipher creates an AEAD cipher instance for the specified algorithm.
	CreateCipher(key []byte, alg cryptoDomain.Algorithm) (AEAD, error)
}

// KeyManager defines the interface for generating and deriving keys.
type KeyManager interface {
	// GenerateKey returns a new random 32-byte key.
	GenerateKey() ([]byte, error)

	// GenerateSalt returns a new random salt of the standard size.
	GenerateSalt() ([]byte, error)

	// DeriveKey derives a 32-byte key from a passphrase and salt with
	// PBKDF2-HMAC-SHA256 using the given iteration count.
	DeriveKey(passphrase, salt []byte, iterations int) ([]byte, error)

	// ExpandKey derives a subkey of the given length from existing key
	// material, bound to the context info, using HKDF-SHA256.
	ExpandKey(key, info []byte, length int) ([]byte, error)
}

// Sealer defines the interface for string-level encryption. Output strings
// are self-contained: the salt (when passphrase-derived) and nonce travel
// inside the encoded value.
type Sealer interface {
	// EncryptString seals a UTF-8 string and returns the encoded result.
	EncryptString(plaintext string) (string, error)

	// DecryptString reverses EncryptString, recovering the exact input.
	DecryptString(encoded string) (string, error)

	// EncryptBytes seals raw bytes and returns the encoded result.
	EncryptBytes(plaintext []byte) (string, error)

	// DecryptBytes reverses EncryptBytes.
	DecryptBytes(encoded string) ([]byte, error)

	// Close zeroes the sealer's key material. The sealer must not be used
	// after Close.
	Close()
}
