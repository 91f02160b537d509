package commands

import (
	"context"
	"fmt"
	"log/slog"

	transitUseCase "github.com/allisson/cryptobox/internal/transit/usecase"
)

// RunRotateTransitKey creates a new version of an existing transit key.
// Increments the version number and generates fresh key material while
// preserving old versions for decryption of previously sealed data.
func RunRotateTransitKey(
	ctx context.Context,
	useCase transitUseCase.TransitKeyUseCase,
	logger *slog.Logger,
	name string,
	algorithmStr string,
) error {
	logger.Info("rotating transit key",
		slog.String("name", name),
		slog.String("algorithm", algorithmStr),
	)

	// Parse algorithm
	algorithm, err := parseAlgorithm(algorithmStr)
	if err != nil {
		return err
	}

	// Rotate the transit key
	key, err := useCase.Rotate(ctx, name, algorithm)
	if err != nil {
		return fmt.Errorf("failed to rotate transit key: %w", err)
	}

	logger.Info("transit key rotated successfully",
		slog.String("id", key.ID.String()),
		slog.String("name", key.Name),
		slog.Uint64("version", uint64(key.Version)),
		slog.String("algorithm", string(key.Algorithm)),
	)

	return nil
}
