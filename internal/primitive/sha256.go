package primitive

import (
	"encoding/binary"
	"hash"
	"math/bits"
)

// Digest sizes and block sizes for the SHA-2 family.
const (
	SHA224Size = 28
	SHA256Size = 32

	sha256BlockSize = 64
)

var sha256K = [64]uint32{
	0x428a2f98, 0x71374491, 0xb5c0fbcf, 0xe9b5dba5, 0x3956c25b, 0x59f111f1, 0x923f82a4, 0xab1c5ed5,
	0xd807aa98, 0x12835b01, 0x243185be, 0x550c7dc3, 0x72be5d74, 0x80deb1fe, 0x9bdc06a7, 0xc19bf174,
	0xe49b69c1, 0xefbe4786, 0x0fc19dc6, 0x240ca1cc, 0x2de92c6f, 0x4a7484aa, 0x5cb0a9dc, 0x76f988da,
	0x983e5152, 0xa831c66d, 0xb00327c8, 0xbf597fc7, 0xc6e00bf3, 0xd5a79147, 0x06ca6351, 0x14292967,
	0x27b70a85, 0x2e1b2138, 0x4d2c6dfc, 0x53380d13, 0x650a7354, 0x766a0abb, 0x81c2c92e, 0x92722c85,
	0xa2bfe8a1, 0xa81a664b, 0xc24b8b70, 0xc76c51a3, 0xd192e819, 0xd6990624, 0xf40e3585, 0x106aa070,
	0x19a4c116, 0x1e376c08, 0x2748774c, 0x34b0bcb5, 0x391c0cb3, 0x4ed8aa4a, 0x5b9cca4f, 0x682e6ff3,
	0x748f82ee, 0x78a5636f, 0x84c87814, 0x8cc70208, 0x90befffa, 0xa4506ceb, 0xbef9a3f7, 0xc67178f2,
}

// digest256 is the streaming state shared by SHA-224 and SHA-256
// (FIPS 180-4). It implements hash.Hash.
type digest256 struct {
	h     [8]uint32
	x     [sha256BlockSize]byte
	nx    int
	len   uint64
	is224 bool
}

// NewSHA256 returns a new SHA-256 hash.Hash.
func NewSHA256() hash.Hash {
	d := &digest256{}
	d.Reset()
	return d
}

// NewSHA224 returns a new SHA-224 hash.Hash.
func NewSHA224() hash.Hash {
	d := &digest256{is224: true}
	d.Reset()
	return d
}

// SHA256Sum returns the SHA-256 digest of data.
func SHA256Sum(data []byte) [SHA256Size]byte {
	d := &digest256{}
	d.Reset()
	d.Write(data)
	var out [SHA256Size]byte
	copy(out[:], d.checkSum())
	return out
}

func (d *digest256) Reset() {
	if d.is224 {
		d.h = [8]uint32{
			0xc1059ed8, 0x367cd507, 0x3070dd17, 0xf70e5939,
			0xffc00b31, 0x68581511, 0x64f98fa7, 0xbefa4fa4,
		}
	} else {
		d.h = [8]uint32{
			0x6a09e667, 0xbb67ae85, 0x3c6ef372, 0xa54ff53a,
			0x510e527f, 0x9b05688c, 0x1f83d9ab, 0x5be0cd19,
		}
	}
	d.nx = 0
	d.len = 0
}

func (d *digest256) Size() int {
	if d.is224 {
		return SHA224Size
	}
	return SHA256Size
}

func (d *digest256) BlockSize() int { return sha256BlockSize }

func (d *digest256) Write(p []byte) (int, error) {
	n := len(p)
	d.len += uint64(n)
	if d.nx > 0 {
		c := copy(d.x[d.nx:], p)
		d.nx += c
		if d.nx == sha256BlockSize {
			d.block(d.x[:])
			d.nx = 0
		}
		p = p[c:]
	}
	for len(p) >= sha256BlockSize {
		d.block(p[:sha256BlockSize])
		p = p[sha256BlockSize:]
	}
	if len(p) > 0 {
		d.nx = copy(d.x[:], p)
	}
	return n, nil
}

// Sum appends the current digest to in without changing the state.
func (d *digest256) Sum(in []byte) []byte {
	dd := *d
	return append(in, dd.checkSum()...)
}

// checkSum applies the final padding and returns the digest. It consumes the
// state and must be called on a copy when streaming continues.
func (d *digest256) checkSum() []byte {
	bitLen := d.len << 3

	var pad [sha256BlockSize + 8]byte
	pad[0] = 0x80
	padLen := sha256BlockSize - int(d.len%sha256BlockSize) - 8
	if padLen <= 0 {
		padLen += sha256BlockSize
	}
	binary.BigEndian.PutUint64(pad[padLen:], bitLen)
	d.Write(pad[:padLen+8])

	out := make([]byte, SHA256Size)
	for i, v := range d.h {
		binary.BigEndian.PutUint32(out[i*4:], v)
	}
	return out[:d.Size()]
}

// block applies the SHA-256 compression function to one 64-byte block.
func (d *digest256) block(p []byte) {
	var w [64]uint32
	for i := 0; i < 16; i++ {
		w[i] = binary.BigEndian.Uint32(p[i*4:])
	}
	for i := 16; i < 64; i++ {
		s0 := bits.RotateLeft32(w[i-15], -7) ^ bits.RotateLeft32(w[i-15], -18) ^ (w[i-15] >> 3)
		s1 := bits.RotateLeft32(w[i-2], -17) ^ bits.RotateLeft32(w[i-2], -19) ^ (w[i-2] >> 10)
		w[i] = w[i-16] + s0 + w[i-7] + s1
	}

	a, b, c, dd, e, f, g, h := d.h[0], d.h[1], d.h[2], d.h[3], d.h[4], d.h[5], d.h[6], d.h[7]
	for i := 0; i < 64; i++ {
		s1 := bits.RotateLeft32(e, -6) ^ bits.RotateLeft32(e, -11) ^ bits.RotateLeft32(e, -25)
		ch := (e & f) ^ (^e & g)
		t1 := h + s1 + ch + sha256K[i] + w[i]
		s0 := bits.RotateLeft32(a, -2) ^ bits.RotateLeft32(a, -13) ^ bits.RotateLeft32(a, -22)
		maj := (a & b) ^ (a & c) ^ (b & c)
		t2 := s0 + maj

		h = g
		g = f
		f = e
		e = dd + t1
		dd = c
		c = b
		b = a
		a = t1 + t2
	}

	d.h[0] += a
	d.h[1] += b
	d.h[2] += c
	d.h[3] += dd
	d.h[4] += e
	d.h[5] += f
	d.h[6] += g
	d.h[7] += h
}
