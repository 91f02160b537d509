package http

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"log/slog"
	"net/http"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	cryptoDomain "github.com/allisson/cryptobox/internal/crypto/domain"
	cryptoService "github.com/allisson/cryptobox/internal/crypto/service"
	"github.com/allisson/cryptobox/internal/transit/http/dto"
	transitRepository "github.com/allisson/cryptobox/internal/transit/repository"
	transitUseCase "github.com/allisson/cryptobox/internal/transit/usecase"
)

func newTestTransitKeyUseCase(t *testing.T) transitUseCase.TransitKeyUseCase {
	t.Helper()

	key := base64.StdEncoding.EncodeToString(bytes.Repeat([]byte{0x42}, cryptoDomain.KeySize))
	t.Setenv("CRYPTOBOX_KEYS", "key-1:"+key)
	t.Setenv("CRYPTOBOX_ACTIVE_KEY_ID", "key-1")

	keychain, err := cryptoDomain.LoadKeychainFromEnv()
	require.NoError(t, err)

	aeadManager := cryptoService.NewAEADManagerService()
	repo, err := transitRepository.NewFileTransitKeyRepository(
		filepath.Join(t.TempDir(), "keystore.json"), keychain, aeadManager,
	)
	require.NoError(t, err)

	return transitUseCase.NewTransitKeyUseCase(repo, cryptoService.NewKeyManagerService(), aeadManager)
}

func newTestLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func TestTransitKeyHandler_CreateHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success", func(t *testing.T) {
		handler := NewTransitKeyHandler(newTestTransitKeyUseCase(t), newTestLogger())
		c, w := createTestContext(t, http.MethodPost, "/v1/transit/keys", dto.CreateTransitKeyRequest{
			Name:      "payment-key",
			Algorithm: "xchacha20-poly1305",
		})

		handler.CreateHandler(c)

		require.Equal(t, http.StatusCreated, w.Code)

		var response dto.TransitKeyResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Equal(t, "payment-key", response.Name)
		assert.Equal(t, uint(1), response.Version)
		assert.Equal(t, "xchacha20-poly1305", response.Algorithm)
		assert.NotEmpty(t, response.ID)
	})

	t.Run("invalid algorithm", func(t *testing.T) {
		handler := NewTransitKeyHandler(newTestTransitKeyUseCase(t), newTestLogger())
		c, w := createTestContext(t, http.MethodPost, "/v1/transit/keys", dto.CreateTransitKeyRequest{
			Name:      "payment-key",
			Algorithm: "aes-gcm",
		})

		handler.CreateHandler(c)

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	})

	t.Run("blank name", func(t *testing.T) {
		handler := NewTransitKeyHandler(newTestTransitKeyUseCase(t), newTestLogger())
		c, w := createTestContext(t, http.MethodPost, "/v1/transit/keys", dto.CreateTransitKeyRequest{
			Name:      "   ",
			Algorithm: "xchacha20-poly1305",
		})

		handler.CreateHandler(c)

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	})

	t.Run("duplicate name", func(t *testing.T) {
		useCase := newTestTransitKeyUseCase(t)
		handler := NewTransitKeyHandler(useCase, newTestLogger())

		request := dto.CreateTransitKeyRequest{Name: "payment-key", Algorithm: "xchacha20-poly1305"}

		c, w := createTestContext(t, http.MethodPost, "/v1/transit/keys", request)
		handler.CreateHandler(c)
		require.Equal(t, http.StatusCreated, w.Code)

		c, w = createTestContext(t, http.MethodPost, "/v1/transit/keys", request)
		handler.CreateHandler(c)
		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("malformed body", func(t *testing.T) {
		handler := NewTransitKeyHandler(newTestTransitKeyUseCase(t), newTestLogger())
		c, w := createTestContext(t, http.MethodPost, "/v1/transit/keys", "not an object")

		handler.CreateHandler(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestTransitKeyHandler_RotateHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success", func(t *testing.T) {
		useCase := newTestTransitKeyUseCase(t)
		handler := NewTransitKeyHandler(useCase, newTestLogger())

		c, w := createTestContext(t, http.MethodPost, "/v1/transit/keys", dto.CreateTransitKeyRequest{
			Name:      "payment-key",
			Algorithm: "xchacha20-poly1305",
		})
		handler.CreateHandler(c)
		require.Equal(t, http.StatusCreated, w.Code)

		c, w = createTestContext(t, http.MethodPost, "/v1/transit/keys/payment-key/rotate", dto.RotateTransitKeyRequest{
			Algorithm: "chacha20-poly1305",
		})
		c.Params = gin.Params{{Key: "name", Value: "payment-key"}}
		handler.RotateHandler(c)

		require.Equal(t, http.StatusOK, w.Code)

		var response dto.TransitKeyResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Equal(t, uint(2), response.Version)
		assert.Equal(t, "chacha20-poly1305", response.Algorithm)
	})

	t.Run("missing name parameter", func(t *testing.T) {
		handler := NewTransitKeyHandler(newTestTransitKeyUseCase(t), newTestLogger())
		c, w := createTestContext(t, http.MethodPost, "/v1/transit/keys//rotate", dto.RotateTransitKeyRequest{
			Algorithm: "xchacha20-poly1305",
		})

		handler.RotateHandler(c)

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	})
}

func TestTransitKeyHandler_ListHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)

	useCase := newTestTransitKeyUseCase(t)
	handler := NewTransitKeyHandler(useCase, newTestLogger())

	for _, name := range []string{"audit-key", "payment-key"} {
		c, w := createTestContext(t, http.MethodPost, "/v1/transit/keys", dto.CreateTransitKeyRequest{
			Name:      name,
			Algorithm: "xchacha20-poly1305",
		})
		handler.CreateHandler(c)
		require.Equal(t, http.StatusCreated, w.Code)
	}

	t.Run("lists keys", func(t *testing.T) {
		c, w := createTestContext(t, http.MethodGet, "/v1/transit/keys", nil)
		handler.ListHandler(c)

		require.Equal(t, http.StatusOK, w.Code)

		var response dto.ListTransitKeysResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		require.Len(t, response.Keys, 2)
		assert.Equal(t, "audit-key", response.Keys[0].Name)
		assert.Equal(t, "payment-key", response.Keys[1].Name)
	})

	t.Run("pagination", func(t *testing.T) {
		c, w := createTestContext(t, http.MethodGet, "/v1/transit/keys?offset=1&limit=1", nil)
		handler.ListHandler(c)

		require.Equal(t, http.StatusOK, w.Code)

		var response dto.ListTransitKeysResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		require.Len(t, response.Keys, 1)
		assert.Equal(t, "payment-key", response.Keys[0].Name)
	})

	t.Run("invalid pagination", func(t *testing.T) {
		c, w := createTestContext(t, http.MethodGet, "/v1/transit/keys?limit=0", nil)
		handler.ListHandler(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
