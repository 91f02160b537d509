package commands

import (
	"context"
	"fmt"
	"log/slog"

	transitUseCase "github.com/allisson/cryptobox/internal/transit/usecase"
)

// RunCreateTransitKey creates a new named transit key with version 1.
// Should be run once per key name; use rotate-transit-key for new versions.
//
// Requirements: CRYPTOBOX_KEYS and CRYPTOBOX_ACTIVE_KEY_ID must be set.
func RunCreateTransitKey(
	ctx context.Context,
	useCase transitUseCase.TransitKeyUseCase,
	logger *slog.Logger,
	name string,
	algorithmStr string,
) error {
	logger.Info("creating transit key",
		slog.String("name", name),
		slog.String("algorithm", algorithmStr),
	)

	// Parse algorithm
	algorithm, err := parseAlgorithm(algorithmStr)
	if err != nil {
		return err
	}

	// Create the transit key
	key, err := useCase.Create(ctx, name, algorithm)
	if err != nil {
		return fmt.Errorf("failed to create transit key: %w", err)
	}

	logger.Info("transit key created successfully",
		slog.String("id", key.ID.String()),
		slog.String("name", key.Name),
		slog.Uint64("version", uint64(key.Version)),
		slog.String("algorithm", string(key.Algorithm)),
	)

	return nil
}
