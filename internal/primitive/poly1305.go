package primitive

import (
	"encoding/binary"
	"math/bits"
)

// poly1305TagSize is the size in bytes of a Poly1305 authenticator.
const poly1305TagSize = 16

// poly1305 computes the one-time authenticator from RFC 8439 section 2.5.
//
// The 130-bit accumulator is held in three 64-bit limbs (h0, h1, h2) and the
// clamped r half of the key in two. All arithmetic uses full-width 64-bit
// multiply/add via math/bits so the implementation is constant time on the
// message contents.
type poly1305 struct {
	r   [2]uint64
	s   [2]uint64
	h   [3]uint64
	buf [poly1305TagSize]byte
	n   int
}

// newPoly1305 initializes the authenticator with a 32-byte one-time key.
// The key must never be reused across messages.
func newPoly1305(key *[KeySize]byte) *poly1305 {
	p := &poly1305{}
	p.r[0] = binary.LittleEndian.Uint64(key[0:8]) & 0x0FFFFFFC0FFFFFFF
	p.r[1] = binary.LittleEndian.Uint64(key[8:16]) & 0x0FFFFFFC0FFFFFFC
	p.s[0] = binary.LittleEndian.Uint64(key[16:24])
	p.s[1] = binary.LittleEndian.Uint64(key[24:32])
	return p
}

type uint128 struct {
	lo, hi uint64
}

func mul64(a, b uint64) uint128 {
	hi, lo := bits.Mul64(a, b)
	return uint128{lo, hi}
}

func add128(a, b uint128) uint128 {
	lo, c := bits.Add64(a.lo, b.lo, 0)
	hi, _ := bits.Add64(a.hi, b.hi, c)
	return uint128{lo, hi}
}

func shiftRightBy2(a uint128) uint128 {
	a.lo = a.lo>>2 | (a.hi&3)<<62
	a.hi = a.hi >> 2
	return a
}

// absorb folds one 16-byte block into the accumulator. pad is the value of
// the high bit appended to the block: 1 for full blocks and for the padded
// final partial block (where the 1 byte is already in the buffer).
func (p *poly1305) absorb(block []byte, pad uint64) {
	h0, h1, h2 := p.h[0], p.h[1], p.h[2]
	r0, r1 := p.r[0], p.r[1]

	var c uint64
	h0, c = bits.Add64(h0, binary.LittleEndian.Uint64(block[0:8]), 0)
	h1, c = bits.Add64(h1, binary.LittleEndian.Uint64(block[8:16]), c)
	h2 += c + pad

	// h *= r modulo 2^130 - 5. The product is first accumulated into four
	// 64-bit limbs t0..t3, then the bits above 2^130 are folded back in
	// using 2^130 = 5 (mod p), i.e. h += (c >> 2) * 5 expressed as
	// h += c&^3 + c>>2.
	m0 := mul64(r0, h0)
	m1 := add128(mul64(r0, h1), mul64(r1, h0))
	m2 := add128(mul64(r0, h2), mul64(r1, h1))
	m3 := mul64(r1, h2)

	t0 := m0.lo
	t1, c := bits.Add64(m1.lo, m0.hi, 0)
	t2, c := bits.Add64(m2.lo, m1.hi, c)
	t3, _ := bits.Add64(m3.lo, m2.hi, c)

	h0, h1, h2 = t0, t1, t2&3
	cc := uint128{t2 &^ 3, t3}

	h0, c = bits.Add64(h0, cc.lo, 0)
	h1, c = bits.Add64(h1, cc.hi, c)
	h2 += c

	cc = shiftRightBy2(cc)
	h0, c = bits.Add64(h0, cc.lo, 0)
	h1, c = bits.Add64(h1, cc.hi, c)
	h2 += c

	p.h[0], p.h[1], p.h[2] = h0, h1, h2
}

// Write absorbs message bytes into the authenticator.
func (p *poly1305) Write(m []byte) {
	if p.n > 0 {
		n := copy(p.buf[p.n:], m)
		p.n += n
		m = m[n:]
		if p.n < poly1305TagSize {
			return
		}
		p.absorb(p.buf[:], 1)
		p.n = 0
	}
	for len(m) >= poly1305TagSize {
		p.absorb(m[:poly1305TagSize], 1)
		m = m[poly1305TagSize:]
	}
	if len(m) > 0 {
		p.n = copy(p.buf[:], m)
	}
}

// Sum finalizes the authenticator and writes the 16-byte tag to out.
func (p *poly1305) Sum(out *[poly1305TagSize]byte) {
	if p.n > 0 {
		p.buf[p.n] = 1
		for i := p.n + 1; i < poly1305TagSize; i++ {
			p.buf[i] = 0
		}
		p.absorb(p.buf[:], 0)
		p.n = 0
	}

	h0, h1, h2 := p.h[0], p.h[1], p.h[2]

	// Reduce modulo p = 2^130 - 5 by conditionally subtracting p, selecting
	// the result in constant time based on the borrow.
	t0, b := bits.Sub64(h0, 0xFFFFFFFFFFFFFFFB, 0)
	t1, b := bits.Sub64(h1, 0xFFFFFFFFFFFFFFFF, b)
	_, b = bits.Sub64(h2, 3, b)
	mask := b - 1 // all ones when h >= p, zero otherwise
	h0 = (t0 & mask) | (h0 &^ mask)
	h1 = (t1 & mask) | (h1 &^ mask)

	// tag = (h + s) mod 2^128
	var c uint64
	h0, c = bits.Add64(h0, p.s[0], 0)
	h1, _ = bits.Add64(h1, p.s[1], c)

	binary.LittleEndian.PutUint64(out[0:8], h0)
	binary.LittleEndian.PutUint64(out[8:16], h1)
}

// ConstantTimeCompare reports whether x and y are equal without leaking the
// position of a mismatch through timing. Slices of different lengths compare
// unequal immediately; length is not secret for authenticator tags.
func ConstantTimeCompare(x, y []byte) bool {
	if len(x) != len(y) {
		return false
	}
	var v byte
	for i := range x {
		v |= x[i] ^ y[i]
	}
	return v == 0
}
