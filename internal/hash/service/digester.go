package service

import (
	"encoding/hex"
	"hash"

	hashDomain "github.com/allisson/cryptobox/internal/hash/domain"
	"github.com/allisson/cryptobox/internal/primitive"
)

// DigesterService computes digests using the in-house hash core.
type DigesterService struct {
	newHash func() hash.Hash
}

// NewDigesterService creates a digester for the specified algorithm.
func NewDigesterService(alg hashDomain.DigestAlgorithm) (*DigesterService, error) {
	var newHash func() hash.Hash

	switch alg {
	case hashDomain.SHA224:
		newHash = primitive.NewSHA224
	case hashDomain.SHA256:
		newHash = primitive.NewSHA256
	case hashDomain.SHA384:
		newHash = primitive.NewSHA384
	case hashDomain.SHA512:
		newHash = primitive.NewSHA512
	default:
		return nil, hashDomain.ErrUnsupportedDigest
	}

	return &DigesterService{newHash: newHash}, nil
}

// Hash computes the digest of the input bytes.
func (d *DigesterService) Hash(input []byte) ([]byte, error) {
	if input == nil {
		return nil, hashDomain.ErrNilInput
	}

	h := d.newHash()
	h.Write(input)

	return h.Sum(nil), nil
}

// HashString computes the digest of the UTF-8 bytes of the input and returns
// it as a lowercase hex string.
func (d *DigesterService) HashString(input string) (string, error) {
	digest, err := d.Hash([]byte(input))
	if err != nil {
		return "", err
	}

	return hex.EncodeToString(digest), nil
}
