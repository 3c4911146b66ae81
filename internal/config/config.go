// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container shared by the
// auth and diary services. It aggregates all sub-configurations and is
// populated by merging values from environment variables, command-line flags,
// and an optional JSON file.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings such as token signing parameters
	// and the session-cache consultation switch.
	App App `envPrefix:"APP_"`

	// Storage holds configuration for all persistence backends: the MongoDB
	// document database, the Redis session cache, and the asset file store.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds network address and timeout settings for the HTTP server.
	Server Server `envPrefix:"SERVER_"`

	// Adapter holds configuration for the external AI analysis service.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values that control token
// lifecycle and session verification.
type App struct {
	// TokenSignKey is the secret key used to sign and verify JWT tokens.
	// Both services must be configured with the same value.
	// Env: APP_TOKEN_SIGN_KEY
	TokenSignKey string `env:"TOKEN_SIGN_KEY"`

	// TokenIssuer is the "iss" claim embedded in every issued JWT token.
	// It identifies the service that issued the token and is validated on
	// every authenticated request.
	// Env: APP_TOKEN_ISSUER
	TokenIssuer string `env:"TOKEN_ISSUER"`

	// TokenDuration specifies how long a JWT token remains valid after
	// issuance (e.g. "1h", "30m"). The session cache TTL always equals this
	// value so a cache entry never outlives token validity.
	// Env: APP_TOKEN_DURATION
	TokenDuration time.Duration `env:"TOKEN_DURATION"`

	// SessionCheck enables session-cache consultation in the verification
	// middleware. When true, a cryptographically valid token is additionally
	// required to match the live session entry, enabling server-side forced
	// logout.
	// Env: APP_SESSION_CHECK
	SessionCheck bool `env:"SESSION_CHECK"`
}

// Storage groups the configuration for all storage backends used by the
// application.
type Storage struct {
	// Mongo holds the document database connection settings.
	Mongo Mongo `envPrefix:"MONGO_"`

	// Redis holds the session cache connection settings.
	Redis Redis `envPrefix:"REDIS_"`

	// Files holds the file-system storage settings for record assets.
	Files Files `envPrefix:"FILES_"`
}

// Mongo holds connection settings for the MongoDB document database.
type Mongo struct {
	// URI is the MongoDB connection string
	// (e.g. "mongodb://localhost:27017").
	// Env: STORAGE_MONGO_URI
	URI string `env:"URI"`

	// Database is the name of the database holding the users and records
	// collections.
	// Env: STORAGE_MONGO_DATABASE
	Database string `env:"DATABASE"`

	// Username authenticates against the "admin" auth source, matching the
	// deployment's MongoDB bootstrap user.
	// Env: STORAGE_MONGO_USERNAME
	Username string `env:"USERNAME"`

	// Password is the password for Username.
	// Env: STORAGE_MONGO_PASSWORD
	Password string `env:"PASSWORD"`
}

// Redis holds connection settings for the Redis session cache.
type Redis struct {
	// Addr is the Redis address in "host:port" format (e.g. "redis:6379").
	// Env: STORAGE_REDIS_ADDR
	Addr string `env:"ADDR"`

	// Password is the optional Redis AUTH password.
	// Env: STORAGE_REDIS_PASSWORD
	Password string `env:"PASSWORD"`

	// DB is the Redis logical database index.
	// Env: STORAGE_REDIS_DB
	DB int `env:"DB"`
}

// Files holds file-system settings for the record asset store.
type Files struct {
	// AssetDir is the absolute or relative path to the directory where
	// uploaded assets are stored and served from.
	// Env: STORAGE_FILES_ASSET_DIR
	AssetDir string `env:"ASSET_DIR"`

	// AssetURLPrefix is the URL path prefix under which stored assets are
	// served back to clients (e.g. "/assets").
	// Env: STORAGE_FILES_ASSET_URL_PREFIX
	AssetURLPrefix string `env:"ASSET_URL_PREFIX"`
}

// Server holds network and timeout settings for the inbound transport layer.
type Server struct {
	// HTTPAddress is the TCP address on which the HTTP server listens,
	// in "host:port" format (e.g. "0.0.0.0:3001").
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout is the maximum duration allowed for a single storage or
	// cache operation before it is cancelled and reported as unavailable
	// (e.g. "30s", "1m").
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Adapter holds configuration for the external AI analysis service invoked
// as a black box during record creation.
type Adapter struct {
	// AIServiceURL is the base URL of the analysis service
	// (e.g. "http://ai-service:5000"). When empty, analysis is skipped.
	// Env: ADAPTER_AI_SERVICE_URL
	AIServiceURL string `env:"AI_SERVICE_URL"`

	// RequestTimeout bounds each outbound analysis call.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (last source wins for non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		build()
}
