package domain

import (
	"github.com/allisson/cryptobox/internal/errors"
)

// Cryptographic operation error definitions.
//
// These domain-specific errors wrap the sentinels from internal/errors so the
// HTTP layer can map them to status codes without inspecting messages.
var (
	// ErrUnsupportedAlgorithm indicates the requested encryption algorithm is
	// not in the registry. Supported: chacha20-poly1305, xchacha20-poly1305.
	ErrUnsupportedAlgorithm = errors.Wrap(errors.ErrInvalidInput, "unsupported algorithm")

	// ErrInvalidKeySize indicates key material is not exactly KeySize bytes.
	ErrInvalidKeySize = errors.Wrap(errors.ErrInvalidInput, "invalid key size")

	// ErrNilInput indicates a nil byte slice was passed where data is
	// required. Empty inputs are valid; nil is rejected.
	ErrNilInput = errors.Wrap(errors.ErrInvalidInput, "input cannot be nil")

	// ErrDecryptionFailed indicates a decryption or authentication failure.
	// The specific cause (wrong key, tampered ciphertext, bad nonce) is
	// deliberately not disclosed.
	ErrDecryptionFailed = errors.Wrap(errors.ErrInvalidInput, "decryption failed")

	// ErrKeysNotSet indicates the CRYPTOBOX_KEYS environment variable is missing.
	ErrKeysNotSet = errors.Wrap(errors.ErrInvalidInput, "CRYPTOBOX_KEYS not set")

	// ErrActiveKeyIDNotSet indicates CRYPTOBOX_ACTIVE_KEY_ID is missing.
	ErrActiveKeyIDNotSet = errors.Wrap(errors.ErrInvalidInput, "CRYPTOBOX_ACTIVE_KEY_ID not set")

	// ErrInvalidKeysFormat indicates a CRYPTOBOX_KEYS entry is not "id:base64key".
	ErrInvalidKeysFormat = errors.Wrap(errors.ErrInvalidInput, "invalid keys format")

	// ErrInvalidKeyBase64 indicates key material is not valid base64.
	ErrInvalidKeyBase64 = errors.Wrap(errors.ErrInvalidInput, "invalid key base64")

	// ErrActiveKeyNotFound indicates the configured active key ID is not
	// present in the keychain.
	ErrActiveKeyNotFound = errors.Wrap(errors.ErrInvalidInput, "active key not found")

	// ErrKeyNotFound indicates a key ID lookup failed.
	ErrKeyNotFound = errors.Wrap(errors.ErrNotFound, "key not found")

	// ErrIterationsTooLow indicates a PBKDF2 iteration count below the
	// enforced minimum.
	ErrIterationsTooLow = errors.Wrap(errors.ErrInvalidInput, "iteration count too low")
)
