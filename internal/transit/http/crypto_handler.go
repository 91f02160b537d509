// Package http provides HTTP handlers for transit key management and cryptographic operations.
package http

import (
	"encoding/base64"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	cryptoDomain "github.com/allisson/cryptobox/internal/crypto/domain"
	"github.com/allisson/cryptobox/internal/httputil"
	"github.com/allisson/cryptobox/internal/transit/http/dto"
	transitUseCase "github.com/allisson/cryptobox/internal/transit/usecase"
	customValidation "github.com/allisson/cryptobox/internal/validation"
)

// CryptoHandler handles HTTP requests for transit encryption, decryption and
// rewrap operations.
type CryptoHandler struct {
	transitKeyUseCase transitUseCase.TransitKeyUseCase
	logger            *slog.Logger
}

// NewCryptoHandler creates a new crypto handler with required dependencies.
func NewCryptoHandler(
	transitKeyUseCase transitUseCase.TransitKeyUseCase,
	logger *slog.Logger,
) *CryptoHandler {
	return &CryptoHandler{
		transitKeyUseCase: transitKeyUseCase,
		logger:            logger,
	}
}

// EncryptHandler encrypts plaintext data using the specified transit key.
// POST /v1/transit/keys/:name/encrypt
// Returns 200 OK with ciphertext in format "name:version:base64-ciphertext".
func (h *CryptoHandler) EncryptHandler(c *gin.Context) {
	name := c.Param("name")
	if name == "" {
		httputil.HandleBadRequestGin(
			c,
			fmt.Errorf("transit key name cannot be empty"),
			h.logger,
		)
		return
	}

	var req dto.EncryptRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	plaintext, err := base64.StdEncoding.DecodeString(req.Plaintext)
	if err != nil {
		httputil.HandleBadRequestGin(c, fmt.Errorf("invalid base64 plaintext: %w", err), h.logger)
		return
	}

	encryptedBlob, err := h.transitKeyUseCase.Encrypt(c.Request.Context(), name, plaintext)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	response := dto.EncryptResponse{
		Ciphertext: encryptedBlob.String(),
		Version:    encryptedBlob.Version,
	}
	c.JSON(http.StatusOK, response)
}

// DecryptHandler decrypts ciphertext using the version recorded in the blob.
// POST /v1/transit/keys/:name/decrypt
// Returns 200 OK with plaintext bytes. SECURITY: Plaintext is zeroed after response.
func (h *CryptoHandler) DecryptHandler(c *gin.Context) {
	name := c.Param("name")
	if name == "" {
		httputil.HandleBadRequestGin(
			c,
			fmt.Errorf("transit key name cannot be empty"),
			h.logger,
		)
		return
	}

	var req dto.DecryptRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	decryptedBlob, err := h.transitKeyUseCase.Decrypt(c.Request.Context(), name, req.Ciphertext)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	// SECURITY: Zero plaintext after mapping to response
	defer cryptoDomain.Zero(decryptedBlob.Plaintext)

	response := dto.MapDecryptResponse(decryptedBlob.Plaintext, decryptedBlob.Version)
	c.JSON(http.StatusOK, response)
}

// RewrapHandler re-encrypts a blob under the latest key version. The
// plaintext never leaves the server.
// POST /v1/transit/keys/:name/rewrap
// Returns 200 OK with the new ciphertext.
func (h *CryptoHandler) RewrapHandler(c *gin.Context) {
	name := c.Param("name")
	if name == "" {
		httputil.HandleBadRequestGin(
			c,
			fmt.Errorf("transit key name cannot be empty"),
			h.logger,
		)
		return
	}

	var req dto.RewrapRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	rewrappedBlob, err := h.transitKeyUseCase.Rewrap(c.Request.Context(), name, req.Ciphertext)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	response := dto.RewrapResponse{
		Ciphertext: rewrappedBlob.String(),
		Version:    rewrappedBlob.Version,
	}
	c.JSON(http.StatusOK, response)
}
