// Package config provides application configuration through environment variables.
package config

import (
	"os"
	"path/filepath"

	"github.com/allisson/go-env"
	"github.com/joho/godotenv"

	"github.com/allisson/cryptobox/internal/crypto/service"
	"github.com/allisson/cryptobox/internal/props"
)

// Config holds all application configuration.
type Config struct {
	// ServerHost is the host address the server will bind to.
	ServerHost string
	// ServerPort is the port number the server will listen on.
	ServerPort int

	// LogLevel is the logging level (e.g., "debug", "info", "warn", "error").
	LogLevel string

	// AuthEnabled indicates whether bearer token authentication is enabled.
	AuthEnabled bool
	// AuthTokenHash is the pwdhash-encoded hash of the API bearer token,
	// produced by the hash-token command.
	AuthTokenHash string

	// RateLimitEnabled indicates whether rate limiting is enabled.
	RateLimitEnabled bool
	// RateLimitRequestsPerSec is the number of requests allowed per second.
	RateLimitRequestsPerSec float64
	// RateLimitBurst is the burst size for rate limiting.
	RateLimitBurst int

	// CORSEnabled indicates whether CORS is enabled.
	CORSEnabled bool
	// CORSAllowOrigins is a comma-separated list of allowed origins for CORS.
	CORSAllowOrigins string

	// MetricsEnabled indicates whether metrics collection is enabled.
	MetricsEnabled bool
	// MetricsNamespace is the namespace for the application metrics.
	MetricsNamespace string
	// MetricsPort is the port number for the metrics server.
	MetricsPort int

	// KeystorePath is the path of the sealed transit keystore file.
	KeystorePath string

	// PBKDF2Iterations is the iteration count for passphrase key derivation.
	PBKDF2Iterations int

	// SealerAlgorithm is the AEAD algorithm used for sealing
	// ("chacha20-poly1305" or "xchacha20-poly1305").
	SealerAlgorithm string
	// SealerEncoding is the textual representation of sealed values
	// ("hex" or "base64").
	SealerEncoding string

	// PropertySuffix marks encrypted values in properties files.
	PropertySuffix string
}

// Load loads configuration from environment variables and .env file.
func Load() *Config {
	// Try to load .env file recursively
	loadDotEnv()

	return &Config{
		// Server configuration
		ServerHost: env.GetString("SERVER_HOST", "0.0.0.0"),
		ServerPort: env.GetInt("SERVER_PORT", 8080),

		// Logging
		LogLevel: env.GetString("LOG_LEVEL", "info"),

		// Auth
		AuthEnabled:   env.GetBool("AUTH_ENABLED", false),
		AuthTokenHash: env.GetString("AUTH_TOKEN_HASH", ""),

		// Rate Limiting
		RateLimitEnabled:        env.GetBool("RATE_LIMIT_ENABLED", true),
		RateLimitRequestsPerSec: env.GetFloat64("RATE_LIMIT_REQUESTS_PER_SEC", 10.0),
		RateLimitBurst:          env.GetInt("RATE_LIMIT_BURST", 20),

		// CORS
		CORSEnabled:      env.GetBool("CORS_ENABLED", false),
		CORSAllowOrigins: env.GetString("CORS_ALLOW_ORIGINS", ""),

		// Metrics
		MetricsEnabled:   env.GetBool("METRICS_ENABLED", true),
		MetricsNamespace: env.GetString("METRICS_NAMESPACE", "cryptobox"),
		MetricsPort:      env.GetInt("METRICS_PORT", 8081),

		// Keystore
		KeystorePath: env.GetString("KEYSTORE_PATH", "keystore.json"),

		// Key derivation
		PBKDF2Iterations: env.GetInt("PBKDF2_ITERATIONS", service.DefaultPBKDF2Iterations),

		// Sealed value representation
		SealerAlgorithm: env.GetString("SEALER_ALGORITHM", "xchacha20-poly1305"),
		SealerEncoding:  env.GetString("SEALER_ENCODING", "hex"),

		// Encrypted properties
		PropertySuffix: env.GetString("PROPERTY_SUFFIX", props.DefaultSuffix),
	}
}

// GetGinMode returns the appropriate Gin mode based on log level.
func (c *Config) GetGinMode() string {
	switch c.LogLevel {
	case "debug":
		return "debug"
	case "info", "warn", "error":
		return "release"
	default:
		return "release"
	}
}

// loadDotEnv searches for a .env file recursively from the current directory
// up to the root directory and loads it if found.
func loadDotEnv() {
	// Get current working directory
	cwd, err := os.Getwd()
	if err != nil {
		return
	}

	// Search for .env file recursively up the directory tree
	dir := cwd
	for {
		envPath := filepath.Join(dir, ".env")
		if _, err := os.Stat(envPath); err == nil {
			// .env file found, load it
			_ = godotenv.Load(envPath)
			return
		}

		// Move to parent directory
		parent := filepath.Dir(dir)
		if parent == dir {
			// Reached root directory
			break
		}
		dir = parent
	}
}
