// Package domain defines the hashing domain models: the digest algorithm
// registry and hashing error definitions.
package domain

import (
	"github.com/allisson/cryptobox/internal/errors"
)

// DigestAlgorithm identifies a cryptographic digest algorithm.
type DigestAlgorithm string

const (
	// SHA224 is the SHA-224 digest (28-byte output).
	SHA224 DigestAlgorithm = "sha224"

	// SHA256 is the SHA-256 digest (32-byte output).
	SHA256 DigestAlgorithm = "sha256"

	// SHA384 is the SHA-384 digest (48-byte output).
	SHA384 DigestAlgorithm = "sha384"

	// SHA512 is the SHA-512 digest (64-byte output).
	SHA512 DigestAlgorithm = "sha512"
)

var (
	// ErrUnsupportedDigest indicates the requested digest algorithm is not
	// in the registry. Supported: sha224, sha256, sha384, sha512.
	ErrUnsupportedDigest = errors.Wrap(errors.ErrInvalidInput, "unsupported digest algorithm")

	// ErrNilInput indicates a nil byte slice was passed where data is
	// required. Empty inputs are valid; nil is rejected.
	ErrNilInput = errors.Wrap(errors.ErrInvalidInput, "input cannot be nil")

	// ErrInvalidRepeatCount indicates a repeat count below one.
	ErrInvalidRepeatCount = errors.Wrap(errors.ErrInvalidInput, "repeat count must be at least one")

	// ErrBlankSalt indicates a nil or empty salt.
	ErrBlankSalt = errors.Wrap(errors.ErrInvalidInput, "salt cannot be blank")
)

// ParseDigestAlgorithm converts a string to a DigestAlgorithm.
// Returns ErrUnsupportedDigest for unknown names.
func ParseDigestAlgorithm(s string) (DigestAlgorithm, error) {
	switch DigestAlgorithm(s) {
	case SHA224, SHA256, SHA384, SHA512:
		return DigestAlgorithm(s), nil
	default:
		return "", ErrUnsupportedDigest
	}
}
