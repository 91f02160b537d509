package domain

import (
	"github.com/allisson/cryptobox/internal/errors"
)

// Encoding identifies the textual representation of sealed bytes.
type Encoding string

const (
	// EncodingHex renders bytes as lowercase hexadecimal. This is the
	// default representation.
	EncodingHex Encoding = "hex"

	// EncodingBase64 renders bytes as standard base64 with padding.
	EncodingBase64 Encoding = "base64"
)

// ErrUnsupportedEncoding indicates the requested encoding is not hex or base64.
var ErrUnsupportedEncoding = errors.Wrap(errors.ErrInvalidInput, "unsupported encoding")

// ErrInvalidEncodedInput indicates an encoded string could not be decoded or
// is too short to contain the expected salt, nonce and ciphertext layout.
var ErrInvalidEncodedInput = errors.Wrap(errors.ErrInvalidInput, "invalid encoded input")

// ParseEncoding converts a string to an Encoding.
// Returns ErrUnsupportedEncoding for unknown names.
func ParseEncoding(s string) (Encoding, error) {
	switch Encoding(s) {
	case EncodingHex:
		return EncodingHex, nil
	case EncodingBase64:
		return EncodingBase64, nil
	default:
		return "", ErrUnsupportedEncoding
	}
}
