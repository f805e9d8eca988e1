// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the
// go-life-keeper client. It aggregates all sub-configurations and is
// populated by merging values from environment variables, command-line flags,
// and an optional JSON file.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings: integrity hash key, key
	// derivation and logging.
	App App `envPrefix:"APP_"`

	// Storage holds the local SQLite settings.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds the local control API listen address.
	Server Server `envPrefix:"SERVER_"`

	// Adapter holds the remote backend transport settings.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Workers holds the sync engine cadence and retry policy.
	Workers Workers `envPrefix:"WORKERS_"`

	// Vault holds the markdown vault exporter settings.
	Vault Vault `envPrefix:"VAULT_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// Storage groups the configuration for the local persistence backend.
type Storage struct {
	// DB holds the local database connection settings.
	DB DB `envPrefix:"DB_"`
}

// App holds application-level configuration values.
type App struct {
	// HashKey is the HMAC key used for request integrity checking
	// (the HashSHA256 header). Optional.
	// Env: APP_HASH_KEY
	HashKey string `env:"HASH_KEY"`

	// KDF selects the password key derivation: "pbkdf2" (default) or
	// "argon2id".
	// Env: APP_KDF
	KDF string `env:"KDF"`

	// KDFIterations is the PBKDF2 iteration count.
	// Env: APP_KDF_ITERATIONS
	KDFIterations int `env:"KDF_ITERATIONS"`

	// LogFile is the client log path. Empty means "logs" next to the binary.
	// Env: APP_LOG_FILE
	LogFile string `env:"LOG_FILE"`

	// Version is the semantic version string of the running application.
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// Server holds the local control API settings.
type Server struct {
	// HTTPAddress is the TCP address the control API listens on,
	// in "host:port" format (e.g. "127.0.0.1:8787").
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`
}

// DB holds connection settings for the local database.
type DB struct {
	// DSN is the SQLite database file path.
	// Env: STORAGE_DB_DSN
	DSN string `env:"DSN"`
}

// Adapter holds the remote backend transport settings.
type Adapter struct {
	// Transport selects the remote adapter: "http" (default) or "grpc".
	// Env: ADAPTER_TRANSPORT
	Transport string `env:"TRANSPORT"`

	// HTTPAddress is the base address of the remote REST backend.
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// GRPCAddress is the address of the remote gRPC backend.
	// Env: ADAPTER_GRPC_ADDRESS
	GRPCAddress string `env:"GRPC_ADDRESS"`

	// RequestTimeout bounds a single outbound request (e.g. "15s").
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// Token is the bearer token presented to the remote backend.
	// Env: ADAPTER_TOKEN
	Token string `env:"TOKEN"`
}

// Workers holds the remote sync engine settings.
type Workers struct {
	// SyncInterval is the background drain period (default 60s).
	// Env: WORKERS_SYNC_INTERVAL
	SyncInterval time.Duration `env:"SYNC_INTERVAL"`

	// SyncEnabled turns the background timer on or off (default on).
	// Env: WORKERS_SYNC_ENABLED
	SyncEnabled *bool `env:"SYNC_ENABLED"`

	// MaxRetries is the retry ceiling before a mutation is dead-lettered
	// (default 5).
	// Env: WORKERS_MAX_RETRIES
	MaxRetries int `env:"MAX_RETRIES"`

	// ApplyTimeout bounds one apply attempt (default 30s).
	// Env: WORKERS_APPLY_TIMEOUT
	ApplyTimeout time.Duration `env:"APPLY_TIMEOUT"`

	// ProbeInterval is the connectivity probe period (default 15s).
	// Env: WORKERS_PROBE_INTERVAL
	ProbeInterval time.Duration `env:"PROBE_INTERVAL"`

	// Strategy is the initial conflict resolution strategy (default
	// "newer-wins").
	// Env: WORKERS_STRATEGY
	Strategy string `env:"STRATEGY"`
}

// Vault holds the markdown vault exporter settings.
type Vault struct {
	// Dir is the vault root directory. Empty disables the exporter.
	// Env: VAULT_DIR
	Dir string `env:"DIR"`

	// Interval is the vault drain period (default 5s).
	// Env: VAULT_INTERVAL
	Interval time.Duration `env:"INTERVAL"`

	// Enabled turns the vault background timer on or off (default on).
	// Env: VAULT_ENABLED
	Enabled *bool `env:"ENABLED"`
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
