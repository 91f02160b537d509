package service

import (
	"encoding/hex"

	hashDomain "github.com/allisson/cryptobox/internal/hash/domain"
)

// CombineFunc merges input and salt into the bytes that actually get hashed.
type CombineFunc func(input, salt []byte) []byte

// ConcatCombine appends the salt after the input. This is the default
// combining strategy.
func ConcatCombine(input, salt []byte) []byte {
	combined := make([]byte, 0, len(input)+len(salt))
	combined = append(combined, input...)
	combined = append(combined, salt...)

	return combined
}

// SaltingDigester wraps a digester so every input is combined with a fixed
// salt before hashing. The same salt and combine strategy must be used to
// reproduce a digest.
type SaltingDigester struct {
	inner   Digester
	salt    []byte
	combine CombineFunc
}

// NewSaltingDigester creates a salting digester with the default concat
// combine strategy.
func NewSaltingDigester(inner Digester, salt []byte) (*SaltingDigester, error) {
	return NewSaltingDigesterWithCombine(inner, salt, ConcatCombine)
}

// NewSaltingDigesterWithCombine creates a salting digester with a custom
// combine strategy.
func NewSaltingDigesterWithCombine(inner Digester, salt []byte, combine CombineFunc) (*SaltingDigester, error) {
	if len(salt) == 0 {
		return nil, hashDomain.ErrBlankSalt
	}

	s := make([]byte, len(salt))
	copy(s, salt)

	return &SaltingDigester{inner: inner, salt: s, combine: combine}, nil
}

// Hash combines the input with the salt and computes the digest.
func (d *SaltingDigester) Hash(input []byte) ([]byte, error) {
	if input == nil {
		return nil, hashDomain.ErrNilInput
	}

	return d.inner.Hash(d.combine(input, d.salt))
}

// HashString combines the UTF-8 bytes of the input with the salt and returns
// the digest as a lowercase hex string.
func (d *SaltingDigester) HashString(input string) (string, error) {
	digest, err := d.Hash([]byte(input))
	if err != nil {
		return "", err
	}

	return hex.EncodeToString(digest), nil
}
