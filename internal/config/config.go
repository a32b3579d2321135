// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"time"
)

// StructuredConfig is the merged configuration shared by all binaries.
// Each binary reads the part it needs through its own view.
type StructuredConfig struct {
	App     App     `envPrefix:"APP_"`
	Storage Storage `envPrefix:"STORAGE_"`
	Server  Server  `envPrefix:"SERVER_"`
	Adapter Adapter `envPrefix:"ADAPTER_"`
	Sandbox Sandbox `envPrefix:"SANDBOX_"`
	Workers Workers `envPrefix:"WORKERS_"`

	// JSONFilePath is the optional JSON config file.
	// Env: CONFIG, flags: -c, -config
	JSONFilePath string `env:"CONFIG"`
}

// App holds settings shared by the server and the clients.
type App struct {
	// Version is reported by GET /api/version.
	// Env: APP_VERSION
	Version string `env:"VERSION"`

	// TokenSignKey signs and verifies API keys (HS256).
	// Env: APP_TOKEN_SIGN_KEY
	TokenSignKey string `env:"TOKEN_SIGN_KEY"`

	// TokenIssuer is the "iss" claim of issued API keys.
	// Env: APP_TOKEN_ISSUER
	TokenIssuer string `env:"TOKEN_ISSUER"`

	// TokenDuration is the lifetime of issued API keys.
	// Env: APP_TOKEN_DURATION
	TokenDuration time.Duration `env:"TOKEN_DURATION"`

	// HashKey enables HMAC-SHA256 body signing in the HashSHA256 header
	// when non-empty. Server and client must share it.
	// Env: APP_HASH_KEY
	HashKey string `env:"HASH_KEY"`

	// APIKey is the bearer key sent by the client.
	// Env: APP_API_KEY
	APIKey string `env:"API_KEY"`

	// KeyRole is the role written into keys issued by keygen.
	// Env: APP_KEY_ROLE
	KeyRole string `env:"KEY_ROLE"`

	// LogLevel is a zerolog level name.
	// Env: APP_LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL"`
}

// Storage groups persistence settings.
type Storage struct {
	DB DB `envPrefix:"DB_"`
}

// DB holds the database connection string. Postgres URLs
// ("postgres://...") select pgx, anything else ("file:editor.db",
// "sqlite://editor.db") selects SQLite.
type DB struct {
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Server holds the listening side of the server binary.
type Server struct {
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// Env: SERVER_GRPC_ADDRESS
	GRPCAddress string `env:"GRPC_ADDRESS"`

	// RequestTimeout bounds every inbound request.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Adapter holds how the client reaches the server.
type Adapter struct {
	// HTTPAddress is the base URL of the server, e.g. "http://localhost:8080".
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds every outbound call.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Sandbox holds script execution limits.
type Sandbox struct {
	// Env: SANDBOX_RUN_TIMEOUT
	RunTimeout time.Duration `env:"RUN_TIMEOUT"`
}

// Workers holds background job settings. A zero interval disables the job.
type Workers struct {
	// Env: WORKERS_REFRESH_INTERVAL
	RefreshInterval time.Duration `env:"REFRESH_INTERVAL"`
}

// GetStructuredConfig loads and validates the server configuration.
func GetStructuredConfig() (*StructuredConfig, error) {
	cfg, err := load(os.Args[1:])
	if err != nil {
		return nil, err
	}
	return cfg, cfg.validate()
}

// load merges every source without validating the result.
func load(args []string) (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags(args).
		withJSON().
		withDefaults().
		build()
}
