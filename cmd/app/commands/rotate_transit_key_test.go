package commands

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunRotateTransitKey(t *testing.T) {
	ctx := context.Background()
	logger := newTestLogger()

	t.Run("rotates-existing-key", func(t *testing.T) {
		useCase := newTestTransitUseCase(t)

		require.NoError(t, RunCreateTransitKey(ctx, useCase, logger, "payments", "xchacha20-poly1305"))
		require.NoError(t, RunRotateTransitKey(ctx, useCase, logger, "payments", "xchacha20-poly1305"))

		// New data is sealed under version 2
		blob, err := useCase.Encrypt(ctx, "payments", []byte("data"))
		require.NoError(t, err)
		assert.Equal(t, uint(2), blob.Version)
	})

	t.Run("invalid-algorithm", func(t *testing.T) {
		useCase := newTestTransitUseCase(t)

		err := RunRotateTransitKey(ctx, useCase, logger, "payments", "bogus")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid algorithm")
	})
}
