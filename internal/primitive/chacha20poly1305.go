package primitive

import (
	"encoding/binary"
	"errors"
)

// TagSize is the size in bytes of the authentication tag appended to every
// sealed message.
const TagSize = poly1305TagSize

// ErrAuthenticationFailed is returned by Open when the authentication tag
// does not match, meaning the ciphertext or the additional data has been
// tampered with or the wrong key or nonce was used.
var ErrAuthenticationFailed = errors.New("primitive: message authentication failed")

// AEAD is an authenticated cipher with associated data built from ChaCha20
// and Poly1305 following RFC 8439 section 2.8. Instances are stateless after
// construction and safe for concurrent use.
type AEAD struct {
	key      [8]uint32
	extended bool
}

// NewChaCha20Poly1305 returns a ChaCha20-Poly1305 AEAD using 96-bit nonces.
// The key must be exactly 32 bytes.
func NewChaCha20Poly1305(key []byte) (*AEAD, error) {
	if len(key) != KeySize {
		return nil, ErrInvalidKeySize
	}
	return &AEAD{key: chachaKeyWords(key)}, nil
}

// NewXChaCha20Poly1305 returns an XChaCha20-Poly1305 AEAD using 192-bit
// nonces, which are large enough to be chosen at random without coordination.
// The key must be exactly 32 bytes.
func NewXChaCha20Poly1305(key []byte) (*AEAD, error) {
	if len(key) != KeySize {
		return nil, ErrInvalidKeySize
	}
	return &AEAD{key: chachaKeyWords(key), extended: true}, nil
}

// NonceSize returns the required nonce length in bytes.
func (a *AEAD) NonceSize() int {
	if a.extended {
		return XChaCha20NonceSize
	}
	return ChaCha20NonceSize
}

// Overhead returns the difference between ciphertext and plaintext lengths.
func (a *AEAD) Overhead() int {
	return TagSize
}

// sessionKey reduces an extended nonce to a derived key and a 96-bit nonce.
// For the plain construction it returns the AEAD key and nonce unchanged.
func (a *AEAD) sessionKey(nonce []byte) ([8]uint32, []byte, error) {
	if len(nonce) != a.NonceSize() {
		return [8]uint32{}, nil, ErrInvalidNonceSize
	}
	if !a.extended {
		return a.key, nonce, nil
	}
	sub := hchacha20(&a.key, nonce[0:16])
	key := chachaKeyWords(sub[:])
	Zero(sub[:])
	short := make([]byte, ChaCha20NonceSize)
	copy(short[4:], nonce[16:24])
	return key, short, nil
}

// Seal encrypts and authenticates plaintext together with additionalData and
// appends the result (ciphertext followed by the 16-byte tag) to dst. The
// nonce must be NonceSize() bytes and must never repeat for the same key.
func (a *AEAD) Seal(dst, nonce, plaintext, additionalData []byte) ([]byte, error) {
	key, n, err := a.sessionKey(nonce)
	if err != nil {
		return nil, err
	}

	out := make([]byte, len(plaintext)+TagSize)
	chachaXORKeyStream(&key, 1, n, out[:len(plaintext)], plaintext)

	var tag [TagSize]byte
	a.computeTag(&key, n, out[:len(plaintext)], additionalData, &tag)
	copy(out[len(plaintext):], tag[:])

	return append(dst, out...), nil
}

// Open authenticates and decrypts ciphertext (which must include the trailing
// tag produced by Seal) and appends the plaintext to dst. It returns
// ErrAuthenticationFailed without any plaintext when verification fails.
func (a *AEAD) Open(dst, nonce, ciphertext, additionalData []byte) ([]byte, error) {
	key, n, err := a.sessionKey(nonce)
	if err != nil {
		return nil, err
	}
	if len(ciphertext) < TagSize {
		return nil, ErrAuthenticationFailed
	}

	body := ciphertext[:len(ciphertext)-TagSize]
	tag := ciphertext[len(ciphertext)-TagSize:]

	var expected [TagSize]byte
	a.computeTag(&key, n, body, additionalData, &expected)
	if !ConstantTimeCompare(expected[:], tag) {
		return nil, ErrAuthenticationFailed
	}

	out := make([]byte, len(body))
	chachaXORKeyStream(&key, 1, n, out, body)
	return append(dst, out...), nil
}

// computeTag derives the one-time Poly1305 key from block counter zero and
// authenticates additionalData and ciphertext with the RFC 8439 layout:
// aad || pad16 || ciphertext || pad16 || le64(len(aad)) || le64(len(ct)).
func (a *AEAD) computeTag(key *[8]uint32, nonce, ciphertext, additionalData []byte, tag *[TagSize]byte) {
	var block [chachaBlockSize]byte
	chachaBlock(key, 0, nonce, &block)
	var polyKey [KeySize]byte
	copy(polyKey[:], block[:KeySize])
	Zero(block[:])

	p := newPoly1305(&polyKey)
	Zero(polyKey[:])

	var pad [TagSize]byte
	p.Write(additionalData)
	if rem := len(additionalData) % TagSize; rem != 0 {
		p.Write(pad[:TagSize-rem])
	}
	p.Write(ciphertext)
	if rem := len(ciphertext) % TagSize; rem != 0 {
		p.Write(pad[:TagSize-rem])
	}

	var lengths [16]byte
	binary.LittleEndian.PutUint64(lengths[0:8], uint64(len(additionalData)))
	binary.LittleEndian.PutUint64(lengths[8:16], uint64(len(ciphertext)))
	p.Write(lengths[:])

	p.Sum(tag)
}

// Zero overwrites b with zeros. It is used to drop intermediate key material
// as soon as it is no longer needed.
func Zero(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
