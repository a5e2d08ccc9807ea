// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the merged configuration shared by the proxy and the
// client. It is filled from a .env file, environment variables, command-line
// flags and an optional JSON file, in that order.
//
// Struct tags:
//   - envPrefix: prefix applied to nested env lookups (caarlos0/env).
//   - env: environment variable name of a scalar field.
type StructuredConfig struct {
	// App holds logging and password hashing settings.
	App App `envPrefix:"APP_"`

	// Storage holds the local session database settings.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds the listen address and upstream timeout of the proxy.
	Server Server `envPrefix:"SERVER_"`

	// Adapter holds the address the client reaches the proxy at.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Workers holds polling and batching parameters.
	Workers Workers `envPrefix:"WORKERS_"`

	// BackendURL is the base URL of the remote user registry the proxy
	// forwards to.
	// Env: BACKEND_URL
	BackendURL string `env:"BACKEND_URL"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`

	// DotEnvPath overrides the .env file location.
	// Env: DOTENV_PATH
	DotEnvPath string `env:"DOTENV_PATH"`
}

// App holds process-wide settings.
type App struct {
	// LogLevel is a zerolog level name ("debug", "info", ...).
	// Env: APP_LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL"`

	// LogFile is where the terminal client writes its log.
	// Env: APP_LOG_FILE
	LogFile string `env:"LOG_FILE"`

	// HashCost is the bcrypt cost used when hashing passwords.
	// Env: APP_HASH_COST
	HashCost int `env:"HASH_COST"`
}

// Storage groups local persistence settings.
type Storage struct {
	// DB holds the SQLite session store settings.
	DB DB `envPrefix:"DB_"`
}

// DB holds connection settings for the local SQLite session store.
type DB struct {
	// DSN is the go-sqlite3 data source name, e.g. "file:session.db".
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Server holds settings of the local pass-through proxy.
type Server struct {
	// HTTPAddress is the "host:port" the proxy listens on.
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds every forwarded upstream request.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// ShutdownTimeout bounds graceful shutdown.
	// Env: SERVER_SHUTDOWN_TIMEOUT
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT"`
}

// Adapter holds settings of the client's outbound HTTP transport.
type Adapter struct {
	// HTTPAddress is the proxy address, "host:port" or a full URL.
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds every registry request. A request exceeding it
	// fails with a timeout error distinct from other network failures.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Workers holds background and bulk operation parameters.
type Workers struct {
	// PollInterval is the period of the background registry refresh.
	// Env: WORKERS_POLL_INTERVAL
	PollInterval time.Duration `env:"POLL_INTERVAL"`

	// BatchSize is the number of concurrent requests per bulk batch.
	// Env: WORKERS_BATCH_SIZE
	BatchSize int `env:"BATCH_SIZE"`

	// HighlightDuration is how long newly hashed rows stay highlighted.
	// Env: WORKERS_HIGHLIGHT_DURATION
	HighlightDuration time.Duration `env:"HIGHLIGHT_DURATION"`
}

// GetStructuredConfig loads and merges the configuration from every source.
// Later sources override non-zero fields of earlier ones:
//  1. .env file (missing file is not an error)
//  2. Environment variables
//  3. Command-line flags
//  4. JSON file (path resolved from sources 2 and 3)
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withDotEnv().
		withEnv().
		withFlags().
		withJSON().
		build()
}
