// Package domain defines the core cryptographic domain models: the algorithm
// registry, key material and the keychain used for key rotation.
package domain

// KeySize is the key size in bytes required by every supported algorithm.
const KeySize = 32

// Algorithm identifies an authenticated encryption algorithm.
//
// Both supported algorithms are AEAD constructions from the in-house cipher
// core, providing confidentiality and authenticity in a single operation.
//
// Selection guidelines:
//   - ChaCha20Poly1305 uses 96-bit nonces and matches RFC 8439; use it when
//     interoperability with other ChaCha20-Poly1305 implementations matters.
//   - XChaCha20Poly1305 uses 192-bit nonces that are safe to generate at
//     random without coordination; prefer it for long-lived keys that seal
//     many messages.
type Algorithm string

const (
	// ChaCha20Poly1305 is the RFC 8439 AEAD with a 96-bit nonce.
	ChaCha20Poly1305 Algorithm = "chacha20-poly1305"

	// XChaCha20Poly1305 is the extended-nonce variant with a 192-bit nonce.
	XChaCha20Poly1305 Algorithm = "xchacha20-poly1305"
)

// ParseAlgorithm converts a string to an Algorithm.
// Returns ErrUnsupportedAlgorithm for unknown names.
func ParseAlgorithm(s string) (Algorithm, error) {
	switch Algorithm(s) {
	case ChaCha20Poly1305:
		return ChaCha20Poly1305, nil
	case XChaCha20Poly1305:
		return XChaCha20Poly1305, nil
	default:
		return "", ErrUnsupportedAlgorithm
	}
}
