package commands

import (
	"fmt"
	"io"

	cryptoService "github.com/allisson/cryptobox/internal/crypto/service"
)

// RunDecrypt reverses RunEncrypt and prints the recovered plaintext.
func RunDecrypt(sealer cryptoService.Sealer, w io.Writer, value string) error {
	decrypted, err := sealer.DecryptString(value)
	if err != nil {
		return fmt.Errorf("failed to decrypt value: %w", err)
	}

	fmt.Fprintln(w, decrypted)
	return nil
}
