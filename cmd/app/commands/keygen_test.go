package commands

import (
	"bytes"
	"encoding/base64"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	cryptoDomain "github.com/allisson/cryptobox/internal/crypto/domain"
)

func TestRunKeygen(t *testing.T) {
	keysPattern := regexp.MustCompile(`CRYPTOBOX_KEYS="([^:]+):([A-Za-z0-9+/=]+)"`)

	t.Run("success", func(t *testing.T) {
		var buf bytes.Buffer

		err := RunKeygen(&buf, "test-key-2026")
		require.NoError(t, err)

		output := buf.String()
		assert.Contains(t, output, `CRYPTOBOX_ACTIVE_KEY_ID="test-key-2026"`)

		matches := keysPattern.FindStringSubmatch(output)
		require.Len(t, matches, 3)
		assert.Equal(t, "test-key-2026", matches[1])

		// The encoded key decodes to exactly KeySize bytes
		key, err := base64.StdEncoding.DecodeString(matches[2])
		require.NoError(t, err)
		assert.Len(t, key, cryptoDomain.KeySize)
	})

	t.Run("default-key-id", func(t *testing.T) {
		var buf bytes.Buffer

		err := RunKeygen(&buf, "")
		require.NoError(t, err)

		matches := keysPattern.FindStringSubmatch(buf.String())
		require.Len(t, matches, 3)
		assert.Regexp(t, `^key-\d{4}-\d{2}-\d{2}$`, matches[1])
	})

	t.Run("unique-keys", func(t *testing.T) {
		var buf1, buf2 bytes.Buffer

		require.NoError(t, RunKeygen(&buf1, "a"))
		require.NoError(t, RunKeygen(&buf2, "a"))

		assert.NotEqual(t, buf1.String(), buf2.String())
	})
}
