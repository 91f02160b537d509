package primitive

import (
	"encoding/binary"
	"hash"
)

// PBKDF2Key derives a key of keyLen bytes from a password and salt using the
// given number of HMAC iterations (RFC 8018 section 5.2). iter must be at
// least 1; larger values slow down brute-force attacks proportionally.
func PBKDF2Key(h func() hash.Hash, password, salt []byte, iter, keyLen int) []byte {
	mac := NewHMAC(h, password)
	hashLen := mac.Size()
	numBlocks := (keyLen + hashLen - 1) / hashLen

	var blockIndex [4]byte
	out := make([]byte, 0, numBlocks*hashLen)
	for block := 1; block <= numBlocks; block++ {
		// U1 = HMAC(password, salt || uint32be(block))
		mac.Reset()
		mac.Write(salt)
		binary.BigEndian.PutUint32(blockIndex[:], uint32(block))
		mac.Write(blockIndex[:])
		u := mac.Sum(nil)

		t := make([]byte, hashLen)
		copy(t, u)

		// Un = HMAC(password, Un-1); T = U1 xor U2 xor ... xor Uc
		for i := 1; i < iter; i++ {
			mac.Reset()
			mac.Write(u)
			u = mac.Sum(u[:0])
			for j := range t {
				t[j] ^= u[j]
			}
		}
		out = append(out, t...)
	}
	return out[:keyLen]
}
