package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	hashDomain "github.com/allisson/cryptobox/internal/hash/domain"
)

func TestNewDigesterService(t *testing.T) {
	t.Run("unsupported algorithm", func(t *testing.T) {
		_, err := NewDigesterService(hashDomain.DigestAlgorithm("md5"))
		assert.ErrorIs(t, err, hashDomain.ErrUnsupportedDigest)
	})
}

func TestDigesterService_HashString(t *testing.T) {
	// FIPS 180-4 test vectors for the message "abc".
	tests := []struct {
		alg      hashDomain.DigestAlgorithm
		expected string
	}{
		{hashDomain.SHA224, "23097d223405d8228642a477bda255b32aadbce4bda0b3f7e36c9da7"},
		{hashDomain.SHA256, "ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad"},
		{hashDomain.SHA384, "cb00753f45a35e8bb5a03d699ac65007272c32ab0eded1631a8b605a43ff5bed8086072ba1e7cc2358baeca134c825a7"},
		{hashDomain.SHA512, "ddaf35a193617abacc417349ae20413112e6fa4e89a97ea20a9eeee64b55d39a2192992a274fc1a836ba3c23a3feebbd454d4423643ce80e2a9ac94fa54ca49f"},
	}

	for _, tt := range tests {
		t.Run(string(tt.alg), func(t *testing.T) {
			digester, err := NewDigesterService(tt.alg)
			require.NoError(t, err)

			result, err := digester.HashString("abc")
			require.NoError(t, err)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestDigesterService_Hash(t *testing.T) {
	digester, err := NewDigesterService(hashDomain.SHA256)
	require.NoError(t, err)

	t.Run("deterministic", func(t *testing.T) {
		digest1, err := digester.Hash([]byte("input"))
		require.NoError(t, err)
		digest2, err := digester.Hash([]byte("input"))
		require.NoError(t, err)

		assert.Len(t, digest1, 32)
		assert.Equal(t, digest1, digest2)
	})

	t.Run("empty input is valid", func(t *testing.T) {
		digest, err := digester.Hash([]byte{})
		require.NoError(t, err)
		assert.Len(t, digest, 32)
	})

	t.Run("nil input", func(t *testing.T) {
		_, err := digester.Hash(nil)
		assert.ErrorIs(t, err, hashDomain.ErrNilInput)
	})
}

func TestParseDigestAlgorithm(t *testing.T) {
	for _, name := range []string{"sha224", "sha256", "sha384", "sha512"} {
		alg, err := hashDomain.ParseDigestAlgorithm(name)
		require.NoError(t, err)
		assert.Equal(t, hashDomain.DigestAlgorithm(name), alg)
	}

	_, err := hashDomain.ParseDigestAlgorithm("sha1")
	assert.ErrorIs(t, err, hashDomain.ErrUnsupportedDigest)
}
