package commands

import (
	"context"
	"encoding/base64"
	"io"
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	cryptoDomain "github.com/allisson/cryptobox/internal/crypto/domain"
	cryptoService "github.com/allisson/cryptobox/internal/crypto/service"
	transitRepository "github.com/allisson/cryptobox/internal/transit/repository"
	transitUseCase "github.com/allisson/cryptobox/internal/transit/usecase"
)

// newTestTransitUseCase builds a use case over a temp file keystore.
func newTestTransitUseCase(t *testing.T) transitUseCase.TransitKeyUseCase {
	t.Helper()

	key := make([]byte, cryptoDomain.KeySize)
	for i := range key {
		key[i] = byte(i)
	}
	t.Setenv("CRYPTOBOX_KEYS", "cmd-test:"+base64.StdEncoding.EncodeToString(key))
	t.Setenv("CRYPTOBOX_ACTIVE_KEY_ID", "cmd-test")

	keychain, err := cryptoDomain.LoadKeychainFromEnv()
	require.NoError(t, err)
	t.Cleanup(keychain.Close)

	aeadManager := cryptoService.NewAEADManagerService()
	repo, err := transitRepository.NewFileTransitKeyRepository(
		filepath.Join(t.TempDir(), "keystore.json"),
		keychain,
		aeadManager,
	)
	require.NoError(t, err)

	return transitUseCase.NewTransitKeyUseCase(repo, cryptoService.NewKeyManagerService(), aeadManager)
}

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestRunCreateTransitKey(t *testing.T) {
	ctx := context.Background()
	logger := newTestLogger()

	t.Run("success", func(t *testing.T) {
		useCase := newTestTransitUseCase(t)

		err := RunCreateTransitKey(ctx, useCase, logger, "orders", "xchacha20-poly1305")
		require.NoError(t, err)

		// The key is usable right away
		blob, err := useCase.Encrypt(ctx, "orders", []byte("data"))
		require.NoError(t, err)
		assert.Equal(t, uint(1), blob.Version)
	})

	t.Run("invalid-algorithm", func(t *testing.T) {
		useCase := newTestTransitUseCase(t)

		err := RunCreateTransitKey(ctx, useCase, logger, "orders", "aes-gcm")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid algorithm")
	})

	t.Run("duplicate-name", func(t *testing.T) {
		useCase := newTestTransitUseCase(t)

		require.NoError(t, RunCreateTransitKey(ctx, useCase, logger, "orders", "chacha20-poly1305"))

		err := RunCreateTransitKey(ctx, useCase, logger, "orders", "chacha20-poly1305")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to create transit key")
	})
}
