// Package service provides digest computation over the in-house hash core,
// plus the salting and repeating decorators that compose on top of any
// digester.
package service

// Digester defines the interface for computing message digests.
//
// Implementations are safe for concurrent use: each call builds its own hash
// state.
type Digester interface {
	// Hash computes the digest of the input bytes.
	Hash(input []byte) ([]byte, error)

	// HashString computes the digest of the UTF-8 bytes of the input and
	// returns it as a lowercase hex string.
	HashString(input string) (string, error)
}
