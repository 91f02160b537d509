// Package http provides HTTP handlers for transit key management and cryptographic operations.
package http

import (
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

// TransitKeyHandler handles HTTP requests for transit key management operations.
type TransitKeyHandler struct {
	transitKeyUseCase transitUseCase.TransitKeyUseCase
	logger            *slog.Logger
}

// NewTransitKeyHandler creates a new transit key handler with required dependencies.
func NewTransitKeyHandler(
	transitKeyUseCase transitUseCase.TransitKeyUseCase,
	logger *slog.Logger,
) *TransitKeyHandler {
	return &TransitKeyHandler{
		transitKeyUseCase: transitKeyUseCase,
		logger:            logger,
	}
}

// CreateHandler creates a new transit key with version 1.
// POST /v1/transit/keys
// Returns 201 Created with transit key metadata.
func (h *TransitKeyHandler) CreateHandler(c *gin.Context) {
	var req dto.CreateTransitKeyRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	alg, err := cryptoDomain.ParseAlgorithm(req.Algorithm)
	if err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	transitKey, err := h.transitKeyUseCase.Create(c.Request.Context(), req.Name, alg)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusCreated, dto.MapTransitKeyToResponse(transitKey))
}

// RotateHandler creates a new version of an existing transit key.
// POST /v1/transit/keys/:name/rotate
// Returns 200 OK with new version metadata.
func (h *TransitKeyHandler) RotateHandler(c *gin.Context) {
	name := c.Param("name")
	if name == "" {
		httputil.HandleValidationErrorGin(
			c,
			fmt.Errorf("transit key name cannot be empty"),
			h.logger,
		)
		return
	}

	var req dto.RotateTransitKeyRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	alg, err := cryptoDomain.ParseAlgorithm(req.Algorithm)
	if err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	transitKey, err := h.transitKeyUseCase.Rotate(c.Request.Context(), name, alg)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapTransitKeyToResponse(transitKey))
}

// ListHandler lists stored transit key versions with offset/limit pagination.
// GET /v1/transit/keys
// Returns 200 OK with transit key metadata, never key material.
func (h *TransitKeyHandler) ListHandler(c *gin.Context) {
	offset, limit, err := httputil.ParsePagination(c)
	if err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	keys, err := h.transitKeyUseCase.List(c.Request.Context())
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	if offset > len(keys) {
		offset = len(keys)
	}
	end := offset + limit
	if end > len(keys) {
		end = len(keys)
	}

	c.JSON(http.StatusOK, dto.MapTransitKeysToListResponse(keys[offset:end]))
}
