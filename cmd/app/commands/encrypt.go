package commands

import (
	"fmt"
	"io"

	cryptoService "github.com/allisson/cryptobox/internal/crypto/service"
)

// RunEncrypt seals a value and prints the self-contained encoded result.
func RunEncrypt(sealer cryptoService.Sealer, w io.Writer, value string) error {
	encrypted, err := sealer.EncryptString(value)
	if err != nil {
		return fmt.Errorf("failed to encrypt value: %w", err)
	}

	fmt.Fprintln(w, encrypted)
	return nil
}
