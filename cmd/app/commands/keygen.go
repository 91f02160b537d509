package commands

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"io"
	"time"

	cryptoDomain "github.com/allisson/cryptobox/internal/crypto/domain"
)

// RunKeygen generates a cryptographically secure 32-byte keychain key.
// Key material is zeroed from memory after encoding. If keyID is empty,
// generates a default ID in format "key-YYYY-MM-DD".
//
// Output format:
//   - CRYPTOBOX_KEYS="<keyID>:<base64-encoded-key>"
//   - CRYPTOBOX_ACTIVE_KEY_ID="<keyID>"
func RunKeygen(w io.Writer, keyID string) error {
	// Generate default key ID if not provided
	if keyID == "" {
		keyID = fmt.Sprintf("key-%s", time.Now().Format("2006-01-02"))
	}

	// Generate a cryptographically secure 32-byte key
	key := make([]byte, cryptoDomain.KeySize)
	if _, err := rand.Read(key); err != nil {
		return fmt.Errorf("failed to generate key: %w", err)
	}

	encodedKey := base64.StdEncoding.EncodeToString(key)
	cryptoDomain.Zero(key)

	fmt.Fprintln(w, "# Keychain Configuration")
	fmt.Fprintln(w, "# Copy these environment variables to your .env file or secrets manager")
	fmt.Fprintln(w)
	fmt.Fprintf(w, "CRYPTOBOX_KEYS=\"%s:%s\"\n", keyID, encodedKey)
	fmt.Fprintf(w, "CRYPTOBOX_ACTIVE_KEY_ID=\"%s\"\n", keyID)
	fmt.Fprintln(w)
	fmt.Fprintln(w, "# For key rotation, append the new key and point the active ID at it:")
	fmt.Fprintf(w, "# CRYPTOBOX_KEYS=\"%s:%s,new-key:base64-encoded-key\"\n", keyID, encodedKey)
	fmt.Fprintln(w, "# CRYPTOBOX_ACTIVE_KEY_ID=\"new-key\"")

	return nil
}
