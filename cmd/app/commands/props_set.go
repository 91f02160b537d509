package commands

import (
	"fmt"
	"log/slog"
	"os"

	cryptoService "github.com/allisson/cryptobox/internal/crypto/service"
	"github.com/allisson/cryptobox/internal/props"
)

// RunPropsSet encrypts a value and stores it in a properties file. The file
// is created when missing; other keys in an existing file are preserved.
func RunPropsSet(
	sealer cryptoService.Sealer,
	logger *slog.Logger,
	suffix string,
	path string,
	key string,
	value string,
) error {
	properties, err := props.New(sealer, props.WithSuffix(suffix))
	if err != nil {
		return fmt.Errorf("failed to create properties: %w", err)
	}

	// Load the existing file when present
	if _, err := os.Stat(path); err == nil {
		if err := properties.LoadFile(path); err != nil {
			return fmt.Errorf("failed to load properties file: %w", err)
		}
	}

	if err := properties.SetEncrypted(key, value); err != nil {
		return fmt.Errorf("failed to encrypt property: %w", err)
	}

	if err := properties.SaveFile(path); err != nil {
		return fmt.Errorf("failed to save properties file: %w", err)
	}

	logger.Info("encrypted property stored",
		slog.String("file", path),
		slog.String("key", key),
	)

	return nil
}
