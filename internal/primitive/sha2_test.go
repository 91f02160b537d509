package primitive

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/sha512"
	"encoding/hex"
	"hash"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// FIPS 180-4 example vectors.
func TestSHA2_KnownVectors(t *testing.T) {
	cases := []struct {
		name  string
		newFn func() hash.Hash
		input string
		want  string
	}{
		{
			"sha256 empty", NewSHA256, "",
			"e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855",
		},
		{
			"sha256 abc", NewSHA256, "abc",
			"ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad",
		},
		{
			"sha256 two blocks", NewSHA256,
			"abcdbcdecdefdefgefghfghighijhijkijkljklmklmnlmnomnopnopq",
			"248d6a61d20638b8e5c026930c3e6039a33ce45964ff2167f6ecedd419db06c1",
		},
		{
			"sha224 abc", NewSHA224, "abc",
			"23097d223405d8228642a477bda255b32aadbce4bda0b3f7e36c9da7",
		},
		{
			"sha512 abc", NewSHA512, "abc",
			"ddaf35a193617abacc417349ae20413112e6fa4e89a97ea20a9eeee64b55d39a" +
				"2192992a274fc1a836ba3c23a3feebbd454d4423643ce80e2a9ac94fa54ca49f",
		},
		{
			"sha384 abc", NewSHA384, "abc",
			"cb00753f45a35e8bb5a03d699ac65007272c32ab0eded1631a8b605a43ff5bed" +
				"8086072ba1e7cc2358baeca134c825a7",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			h := tc.newFn()
			h.Write([]byte(tc.input))
			assert.Equal(t, tc.want, hex.EncodeToString(h.Sum(nil)))
		})
	}
}

func TestSHA2_StreamingMatchesOneShot(t *testing.T) {
	data := make([]byte, 1031) // deliberately not block aligned
	_, err := rand.Read(data)
	require.NoError(t, err)

	for _, newFn := range []func() hash.Hash{NewSHA256, NewSHA224, NewSHA512, NewSHA384} {
		whole := newFn()
		whole.Write(data)
		want := whole.Sum(nil)

		chunked := newFn()
		for i := 0; i < len(data); i += 7 {
			end := i + 7
			if end > len(data) {
				end = len(data)
			}
			chunked.Write(data[i:end])
		}
		assert.Equal(t, want, chunked.Sum(nil))

		// Sum must not consume the state.
		assert.Equal(t, want, chunked.Sum(nil))

		// Reset brings the digest back to the initial state.
		chunked.Reset()
		chunked.Write(data)
		assert.Equal(t, want, chunked.Sum(nil))
	}
}

func TestSHA2_CrossCheckStdlib(t *testing.T) {
	pairs := []struct {
		name string
		ours func() hash.Hash
		ref  func() hash.Hash
	}{
		{"sha256", NewSHA256, sha256.New},
		{"sha224", NewSHA224, sha256.New224},
		{"sha512", NewSHA512, sha512.New},
		{"sha384", NewSHA384, sha512.New384},
	}

	for _, pair := range pairs {
		t.Run(pair.name, func(t *testing.T) {
			// Lengths around block boundaries catch padding mistakes.
			for _, n := range []int{0, 1, 55, 56, 63, 64, 65, 111, 112, 127, 128, 129, 4096} {
				data := make([]byte, n)
				_, err := rand.Read(data)
				require.NoError(t, err)

				ours := pair.ours()
				ours.Write(data)
				ref := pair.ref()
				ref.Write(data)
				require.Equal(t, ref.Sum(nil), ours.Sum(nil), "length %d", n)
			}
		})
	}
}

func TestSHA256Sum(t *testing.T) {
	got := SHA256Sum([]byte("abc"))
	assert.Equal(t,
		"ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad",
		hex.EncodeToString(got[:]),
	)
}
