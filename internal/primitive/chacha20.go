// Package primitive implements the cryptographic core used by the rest of the
// application: the ChaCha20 stream cipher family, the Poly1305 authenticator,
// the (X)ChaCha20-Poly1305 AEAD constructions, the SHA-2 digest family, HMAC,
// and the HKDF and PBKDF2 key derivation functions.
//
// Everything in this package is implemented from the public algorithm
// specifications (RFC 8439, FIPS 180-4, FIPS 198-1, RFC 5869, RFC 8018) and
// does not depend on the platform crypto packages. Test files cross-check the
// implementations against the standard library and golang.org/x/crypto.
package primitive

import (
	"encoding/binary"
	"errors"
)

const (
	// KeySize is the key size in bytes for every cipher in this package.
	KeySize = 32

	// ChaCha20NonceSize is the nonce size in bytes for ChaCha20 and
	// ChaCha20-Poly1305.
	ChaCha20NonceSize = 12

	// XChaCha20NonceSize is the extended nonce size in bytes for XChaCha20
	// and XChaCha20-Poly1305.
	XChaCha20NonceSize = 24

	chachaBlockSize = 64
)

// ErrInvalidKeySize is returned when a key is not exactly KeySize bytes.
var ErrInvalidKeySize = errors.New("primitive: invalid key size")

// ErrInvalidNonceSize is returned when a nonce has the wrong length for the
// selected cipher.
var ErrInvalidNonceSize = errors.New("primitive: invalid nonce size")

// The four constant words "expand 32-byte k" from RFC 8439 section 2.3.
var chachaConst = [4]uint32{0x61707865, 0x3320646e, 0x79622d32, 0x6b206574}

func rotl32(v uint32, n uint) uint32 {
	return (v << n) | (v >> (32 - n))
}

// quarterRound applies the ChaCha quarter round to four state words.
func quarterRound(a, b, c, d uint32) (uint32, uint32, uint32, uint32) {
	a += b
	d = rotl32(d^a, 16)
	c += d
	b = rotl32(b^c, 12)
	a += b
	d = rotl32(d^a, 8)
	c += d
	b = rotl32(b^c, 7)
	return a, b, c, d
}

// chachaKeyWords parses a 32-byte key into eight little-endian state words.
func chachaKeyWords(key []byte) [8]uint32 {
	var k [8]uint32
	for i := range k {
		k[i] = binary.LittleEndian.Uint32(key[i*4:])
	}
	return k
}

// chachaCore runs 20 rounds over the given initial state. If feedForward is
// true the initial state is added back into the working state, which is the
// regular ChaCha20 block function; HChaCha20 skips the addition.
func chachaCore(state *[16]uint32, feedForward bool) [16]uint32 {
	x := *state
	for i := 0; i < 10; i++ {
		// Column rounds.
		x[0], x[4], x[8], x[12] = quarterRound(x[0], x[4], x[8], x[12])
		x[1], x[5], x[9], x[13] = quarterRound(x[1], x[5], x[9], x[13])
		x[2], x[6], x[10], x[14] = quarterRound(x[2], x[6], x[10], x[14])
		x[3], x[7], x[11], x[15] = quarterRound(x[3], x[7], x[11], x[15])
		// Diagonal rounds.
		x[0], x[5], x[10], x[15] = quarterRound(x[0], x[5], x[10], x[15])
		x[1], x[6], x[11], x[12] = quarterRound(x[1], x[6], x[11], x[12])
		x[2], x[7], x[8], x[13] = quarterRound(x[2], x[7], x[8], x[13])
		x[3], x[4], x[9], x[14] = quarterRound(x[3], x[4], x[9], x[14])
	}
	if feedForward {
		for i := range x {
			x[i] += state[i]
		}
	}
	return x
}

// chachaBlock computes one 64-byte keystream block for the given key words,
// block counter and 12-byte nonce.
func chachaBlock(key *[8]uint32, counter uint32, nonce []byte, out *[chachaBlockSize]byte) {
	var state [16]uint32
	copy(state[0:4], chachaConst[:])
	copy(state[4:12], key[:])
	state[12] = counter
	state[13] = binary.LittleEndian.Uint32(nonce[0:4])
	state[14] = binary.LittleEndian.Uint32(nonce[4:8])
	state[15] = binary.LittleEndian.Uint32(nonce[8:12])

	x := chachaCore(&state, true)
	for i, v := range x {
		binary.LittleEndian.PutUint32(out[i*4:], v)
	}
}

// chachaXORKeyStream XORs src into dst with the ChaCha20 keystream for
// (key, nonce) starting at the given block counter. dst and src must have the
// same length and may overlap entirely or not at all.
func chachaXORKeyStream(key *[8]uint32, counter uint32, nonce []byte, dst, src []byte) {
	var block [chachaBlockSize]byte
	for len(src) > 0 {
		chachaBlock(key, counter, nonce, &block)
		counter++
		n := len(src)
		if n > chachaBlockSize {
			n = chachaBlockSize
		}
		for i := 0; i < n; i++ {
			dst[i] = src[i] ^ block[i]
		}
		dst = dst[n:]
		src = src[n:]
	}
}

// hchacha20 derives a 32-byte subkey from a key and a 16-byte nonce prefix.
// It is the intermediate step that extends ChaCha20 to 192-bit nonces.
func hchacha20(key *[8]uint32, nonce []byte) [KeySize]byte {
	var state [16]uint32
	copy(state[0:4], chachaConst[:])
	copy(state[4:12], key[:])
	state[12] = binary.LittleEndian.Uint32(nonce[0:4])
	state[13] = binary.LittleEndian.Uint32(nonce[4:8])
	state[14] = binary.LittleEndian.Uint32(nonce[8:12])
	state[15] = binary.LittleEndian.Uint32(nonce[12:16])

	x := chachaCore(&state, false)

	var sub [KeySize]byte
	for i := 0; i < 4; i++ {
		binary.LittleEndian.PutUint32(sub[i*4:], x[i])
		binary.LittleEndian.PutUint32(sub[16+i*4:], x[12+i])
	}
	return sub
}
