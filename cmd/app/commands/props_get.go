package commands

import (
	"fmt"
	"io"

	cryptoService "github.com/allisson/cryptobox/internal/crypto/service"
	"github.com/allisson/cryptobox/internal/props"
)

// RunPropsGet reads a properties file and prints the decrypted value of key.
// Plain (unencrypted) values are printed as-is.
func RunPropsGet(
	sealer cryptoService.Sealer,
	w io.Writer,
	suffix string,
	path string,
	key string,
) error {
	properties, err := props.New(sealer, props.WithSuffix(suffix))
	if err != nil {
		return fmt.Errorf("failed to create properties: %w", err)
	}

	if err := properties.LoadFile(path); err != nil {
		return fmt.Errorf("failed to load properties file: %w", err)
	}

	value, err := properties.Get(key)
	if err != nil {
		return fmt.Errorf("failed to read property %q: %w", key, err)
	}

	fmt.Fprintln(w, value)
	return nil
}
