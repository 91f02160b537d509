package primitive

import (
	"bytes"
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// RFC 4231 test cases.
func TestHMAC_RFC4231Vectors(t *testing.T) {
	cases := []struct {
		name       string
		key        []byte
		data       []byte
		wantSHA256 string
		wantSHA512 string
	}{
		{
			name:       "test case 1",
			key:        bytes.Repeat([]byte{0x0b}, 20),
			data:       []byte("Hi There"),
			wantSHA256: "b0344c61d8db38535ca8afceaf0bf12b881dc200c9833da726e9376c2e32cff7",
			wantSHA512: "87aa7cdea5ef619d4ff0b4241a1d6cb02379f4e2ce4ec2787ad0b30545e17cde" +
				"daa833b7d6b8a702038b274eaea3f4e4be9d914eeb61f1702e696c203a126854",
		},
		{
			name:       "test case 2",
			key:        []byte("Jefe"),
			data:       []byte("what do ya want for nothing?"),
			wantSHA256: "5bdcc146bf60754e6a042426089575c75a003f089d2739839dec58b964ec3843",
			wantSHA512: "164b7a7bfcf819e2e395fbe73b56e0a387bd64222e831fd610270cd7ea250554" +
				"9758bf75c05a994a6d034f65f8f0e6fdcaeab1a34d4a6b4b636e070a38bce737",
		},
		{
			name:       "test case 3",
			key:        bytes.Repeat([]byte{0xaa}, 20),
			data:       bytes.Repeat([]byte{0xdd}, 50),
			wantSHA256: "773ea91e36800e46854db8ebd09181a72959098b3ef8c122d9635514ced565fe",
			wantSHA512: "fa73b0089d56a284efb0f0756c890be9b1b5dbdd8ee81a3655f83e33b2279d39" +
				"bf3e848279a722c806b485a47e67c807b946a337bee8942674278859e13292fb",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			mac := NewHMAC(NewSHA256, tc.key)
			mac.Write(tc.data)
			assert.Equal(t, tc.wantSHA256, hex.EncodeToString(mac.Sum(nil)))

			mac = NewHMAC(NewSHA512, tc.key)
			mac.Write(tc.data)
			assert.Equal(t, tc.wantSHA512, hex.EncodeToString(mac.Sum(nil)))
		})
	}
}

func TestHMAC_LongKeyIsHashed(t *testing.T) {
	// Keys longer than the block size must be reduced with the digest first.
	key := bytes.Repeat([]byte{0xaa}, 131)
	data := []byte("Test Using Larger Than Block-Size Key - Hash Key First")

	mac := NewHMAC(NewSHA256, key)
	mac.Write(data)

	ref := hmac.New(sha256.New, key)
	ref.Write(data)
	assert.Equal(t, ref.Sum(nil), mac.Sum(nil))
}

func TestHMAC_ResetAndReuse(t *testing.T) {
	key := []byte("some key")

	mac := NewHMAC(NewSHA256, key)
	mac.Write([]byte("first message"))
	first := mac.Sum(nil)

	mac.Reset()
	mac.Write([]byte("second message"))
	second := mac.Sum(nil)
	assert.NotEqual(t, first, second)

	mac.Reset()
	mac.Write([]byte("first message"))
	assert.Equal(t, first, mac.Sum(nil))
}

func TestHMAC_CrossCheckStdlib(t *testing.T) {
	for i := 0; i < 20; i++ {
		key := make([]byte, 1+i*5)
		_, err := rand.Read(key)
		require.NoError(t, err)
		data := make([]byte, i*31)
		_, err = rand.Read(data)
		require.NoError(t, err)

		ours := NewHMAC(NewSHA256, key)
		ours.Write(data)
		ref := hmac.New(sha256.New, key)
		ref.Write(data)
		require.Equal(t, ref.Sum(nil), ours.Sum(nil))
	}
}
