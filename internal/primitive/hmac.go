package primitive

import "hash"

// hmacDigest implements the keyed-hash message authentication code from
// FIPS 198-1 over any hash.Hash constructor from this package.
type hmacDigest struct {
	opad, ipad []byte
	outer      hash.Hash
	inner      hash.Hash
}

// NewHMAC returns a new HMAC instance using the digest returned by h and the
// given key. Keys longer than the digest block size are hashed first, per
// FIPS 198-1.
func NewHMAC(h func() hash.Hash, key []byte) hash.Hash {
	hm := &hmacDigest{
		outer: h(),
		inner: h(),
	}
	blockSize := hm.inner.BlockSize()
	hm.ipad = make([]byte, blockSize)
	hm.opad = make([]byte, blockSize)

	if len(key) > blockSize {
		hm.outer.Write(key)
		key = hm.outer.Sum(nil)
		hm.outer.Reset()
	}
	copy(hm.ipad, key)
	copy(hm.opad, key)
	for i := range hm.ipad {
		hm.ipad[i] ^= 0x36
	}
	for i := range hm.opad {
		hm.opad[i] ^= 0x5c
	}
	hm.inner.Write(hm.ipad)
	return hm
}

func (h *hmacDigest) Write(p []byte) (int, error) {
	return h.inner.Write(p)
}

func (h *hmacDigest) Sum(in []byte) []byte {
	origLen := len(in)
	in = h.inner.Sum(in)
	h.outer.Reset()
	h.outer.Write(h.opad)
	h.outer.Write(in[origLen:])
	return h.outer.Sum(in[:origLen])
}

func (h *hmacDigest) Reset() {
	h.inner.Reset()
	h.inner.Write(h.ipad)
}

func (h *hmacDigest) Size() int { return h.outer.Size() }

func (h *hmacDigest) BlockSize() int { return h.inner.BlockSize() }
