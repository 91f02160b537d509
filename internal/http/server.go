package http

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	authService "github.com/allisson/cryptobox/internal/auth/service"
	"github.com/allisson/cryptobox/internal/config"
	cryptoDomain "github.com/allisson/cryptobox/internal/crypto/domain"
	"github.com/allisson/cryptobox/internal/metrics"
	transitHTTP "github.com/allisson/cryptobox/internal/transit/http"
)

// Server represents the HTTP API server.
type Server struct {
	server   *http.Server
	router   *gin.Engine
	logger   *slog.Logger
	cfg      *config.Config
	keychain *cryptoDomain.Keychain

	transitKeyHandler *transitHTTP.TransitKeyHandler
	cryptoHandler     *transitHTTP.CryptoHandler
	tokens            authService.TokenService
	metricsProvider   *metrics.Provider
}

// NewServer creates a new HTTP server with all route handlers.
func NewServer(
	cfg *config.Config,
	logger *slog.Logger,
	keychain *cryptoDomain.Keychain,
	transitKeyHandler *transitHTTP.TransitKeyHandler,
	cryptoHandler *transitHTTP.CryptoHandler,
	tokens authService.TokenService,
	metricsProvider *metrics.Provider,
) *Server {
	return &Server{
		logger:            logger,
		cfg:               cfg,
		keychain:          keychain,
		transitKeyHandler: transitKeyHandler,
		cryptoHandler:     cryptoHandler,
		tokens:            tokens,
		metricsProvider:   metricsProvider,
		server: &http.Server{
			Addr:         fmt.Sprintf("%s:%d", cfg.ServerHost, cfg.ServerPort),
			ReadTimeout:  15 * time.Second,
			WriteTimeout: 15 * time.Second,
			IdleTimeout:  60 * time.Second,
		},
	}
}

// SetupRouter builds the Gin engine with middleware and all API routes.
func (s *Server) SetupRouter() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(requestid.New(requestid.WithGenerator(func() string {
		return uuid.Must(uuid.NewV7()).String()
	})))
	router.Use(CustomLoggerMiddleware(s.logger))

	if s.metricsProvider != nil {
		router.Use(metrics.HTTPMetricsMiddleware(s.metricsProvider.MeterProvider(), s.cfg.MetricsNamespace))
	}

	if corsMiddleware := createCORSMiddleware(s.cfg.CORSEnabled, s.cfg.CORSAllowOrigins, s.logger); corsMiddleware != nil {
		router.Use(corsMiddleware)
	}

	// Health and readiness endpoints (no auth)
	router.GET("/health", s.healthHandler)
	router.GET("/ready", s.readinessHandler)

	v1 := router.Group("/v1")
	if s.cfg.RateLimitEnabled {
		v1.Use(RateLimitMiddleware(s.cfg.RateLimitRequestsPerSec, s.cfg.RateLimitBurst, s.logger))
	}
	if s.cfg.AuthEnabled {
		v1.Use(BearerAuthMiddleware(s.tokens, s.cfg.AuthTokenHash, s.logger))
	}

	keys := v1.Group("/transit/keys")
	keys.POST("", s.transitKeyHandler.CreateHandler)
	keys.GET("", s.transitKeyHandler.ListHandler)
	keys.POST("/:name/rotate", s.transitKeyHandler.RotateHandler)
	keys.POST("/:name/encrypt", s.cryptoHandler.EncryptHandler)
	keys.POST("/:name/decrypt", s.cryptoHandler.DecryptHandler)
	keys.POST("/:name/rewrap", s.cryptoHandler.RewrapHandler)

	return router
}

// healthHandler reports process liveness.
func (s *Server) healthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "healthy"})
}

// readinessHandler reports whether the server can serve cryptographic
// operations. The server is not ready without an active keychain key.
func (s *Server) readinessHandler(c *gin.Context) {
	components := gin.H{"keychain": "ok"}

	ready := true
	if s.keychain == nil {
		components["keychain"] = "error"
		ready = false
	} else if _, ok := s.keychain.Active(); !ok {
		components["keychain"] = "error"
		ready = false
	}

	if !ready {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status":     "not_ready",
			"components": components,
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":     "ready",
		"components": components,
	})
}

// Start starts the HTTP server.
func (s *Server) Start(ctx context.Context) error {
	if s.router == nil {
		s.router = s.SetupRouter()
	}
	s.server.Handler = s.router

	s.logger.Info("starting http server", slog.String("addr", s.server.Addr))

	if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}

// Shutdown gracefully shuts down the HTTP server.
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("shutting down http server")
	return s.server.Shutdown(ctx)
}
