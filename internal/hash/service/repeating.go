package service

import (
	"encoding/hex"

	hashDomain "github.com/allisson/cryptobox/internal/hash/domain"
)

// RepeatingDigester wraps a digester so the digest is applied to its own
// output a fixed number of times. A repeat count of one behaves exactly like
// the wrapped digester.
type RepeatingDigester struct {
	inner   Digester
	repeats int
}

// NewRepeatingDigester creates a repeating digester. The repeat count must be
// at least one.
func NewRepeatingDigester(inner Digester, repeats int) (*RepeatingDigester, error) {
	if repeats < 1 {
		return nil, hashDomain.ErrInvalidRepeatCount
	}

	return &RepeatingDigester{inner: inner, repeats: repeats}, nil
}

// Hash computes the digest of the input, then re-hashes the digest until the
// repeat count is reached.
func (d *RepeatingDigester) Hash(input []byte) ([]byte, error) {
	if input == nil {
		return nil, hashDomain.ErrNilInput
	}

	digest, err := d.inner.Hash(input)
	if err != nil {
		return nil, err
	}

	for i := 1; i < d.repeats; i++ {
		digest, err = d.inner.Hash(digest)
		if err != nil {
			return nil, err
		}
	}

	return digest, nil
}

// HashString computes the repeated digest of the UTF-8 bytes of the input and
// returns it as a lowercase hex string.
func (d *RepeatingDigester) HashString(input string) (string, error) {
	digest, err := d.Hash([]byte(input))
	if err != nil {
		return "", err
	}

	return hex.EncodeToString(digest), nil
}
