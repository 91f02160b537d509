package primitive

import (
	"errors"
	"hash"
)

// ErrHKDFLengthTooLong is returned when the requested output length exceeds
// the RFC 5869 limit of 255 digest lengths.
var ErrHKDFLengthTooLong = errors.New("primitive: hkdf output length too long")

// HKDFExtract derives a pseudorandom key from the input keying material and
// an optional salt (RFC 5869 section 2.2). A nil salt is replaced by a string
// of zeros of digest length, as RFC 5869 requires.
func HKDFExtract(h func() hash.Hash, secret, salt []byte) []byte {
	if salt == nil {
		salt = make([]byte, h().Size())
	}
	mac := NewHMAC(h, salt)
	mac.Write(secret)
	return mac.Sum(nil)
}

// HKDFExpand expands a pseudorandom key into length bytes of output keying
// material bound to the optional context info (RFC 5869 section 2.3).
func HKDFExpand(h func() hash.Hash, prk, info []byte, length int) ([]byte, error) {
	hashLen := h().Size()
	if length > 255*hashLen {
		return nil, ErrHKDFLengthTooLong
	}

	out := make([]byte, 0, length)
	var prev []byte
	for counter := byte(1); len(out) < length; counter++ {
		mac := NewHMAC(h, prk)
		mac.Write(prev)
		mac.Write(info)
		mac.Write([]byte{counter})
		prev = mac.Sum(nil)
		out = append(out, prev...)
	}
	return out[:length], nil
}

// HKDF runs extract followed by expand in one call.
func HKDF(h func() hash.Hash, secret, salt, info []byte, length int) ([]byte, error) {
	prk := HKDFExtract(h, secret, salt)
	defer Zero(prk)
	return HKDFExpand(h, prk, info, length)
}
