// Package commands contains CLI command implementations for the application.
package commands

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/allisson/cryptobox/internal/app"
	"github.com/allisson/cryptobox/internal/config"
	cryptoDomain "github.com/allisson/cryptobox/internal/crypto/domain"
	cryptoService "github.com/allisson/cryptobox/internal/crypto/service"
)

// IOTuple holds reader and writer for commands, allowing for testing.
type IOTuple struct {
	Reader io.Reader
	Writer io.Writer
}

// DefaultIO returns an IOTuple with os.Stdin and os.Stdout.
func DefaultIO() IOTuple {
	return IOTuple{
		Reader: os.Stdin,
		Writer: os.Stdout,
	}
}

// closeContainer closes all resources in the container and logs any errors.
func closeContainer(container *app.Container, logger *slog.Logger) {
	if err := container.Shutdown(context.Background()); err != nil {
		logger.Error("failed to shutdown container", slog.Any("error", err))
	}
}

// parseAlgorithm converts algorithm string to cryptoDomain.Algorithm type.
// Returns an error if the algorithm string is invalid.
func parseAlgorithm(algorithmStr string) (cryptoDomain.Algorithm, error) {
	alg, err := cryptoDomain.ParseAlgorithm(algorithmStr)
	if err != nil {
		return "", fmt.Errorf(
			"invalid algorithm: %s (valid options: chacha20-poly1305, xchacha20-poly1305)",
			algorithmStr,
		)
	}
	return alg, nil
}

// BuildSealer returns a sealer for data commands. With a passphrase the key
// is derived via PBKDF2 and the salt travels inside each sealed value;
// without one the active keychain key is used.
func BuildSealer(container *app.Container, cfg *config.Config, passphrase string) (cryptoService.Sealer, error) {
	if passphrase == "" {
		return container.Sealer()
	}

	alg, err := parseAlgorithm(cfg.SealerAlgorithm)
	if err != nil {
		return nil, err
	}

	enc, err := cryptoDomain.ParseEncoding(cfg.SealerEncoding)
	if err != nil {
		return nil, fmt.Errorf("invalid encoding: %s (valid options: hex, base64)", cfg.SealerEncoding)
	}

	sealer, err := cryptoService.NewPassphraseSealerService(
		[]byte(passphrase),
		cfg.PBKDF2Iterations,
		alg,
		enc,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create passphrase sealer: %w", err)
	}

	return sealer, nil
}
