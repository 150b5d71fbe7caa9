// SPDX-License-Identifier: Apache-2.0

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the
// meteostation application. It aggregates all sub-configurations and is
// populated by merging values from environment variables, command-line
// flags, and an optional JSON file.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// Auth holds credential hashing and session token parameters.
	Auth Auth `envPrefix:"AUTH_"`

	// Storage holds configuration for the local datastore.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds network address and timeout settings for the data
	// service process.
	Server Server `envPrefix:"SERVER_"`

	// Weather holds settings for the public weather API consumed by the
	// presentation process.
	Weather Weather `envPrefix:"WEATHER_"`

	// Gateway holds the presentation process's view of where the data
	// service listens.
	Gateway Gateway `envPrefix:"GATEWAY_"`

	// Workers holds configuration for client background workers.
	Workers Workers `envPrefix:"WORKERS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// Auth holds security parameters for credential hashing and session tokens.
type Auth struct {
	// BcryptCost is the bcrypt work factor used when hashing passwords.
	// Zero selects the library default.
	// Env: AUTH_BCRYPT_COST
	BcryptCost int `env:"BCRYPT_COST"`

	// TokenSignKey is the secret key used to sign and verify session JWTs.
	// Must be kept confidential.
	// Env: AUTH_TOKEN_SIGN_KEY
	TokenSignKey string `env:"TOKEN_SIGN_KEY"`

	// TokenIssuer is the "iss" claim embedded in every issued session token.
	// Env: AUTH_TOKEN_ISSUER
	TokenIssuer string `env:"TOKEN_ISSUER"`

	// TokenDuration specifies how long a session token remains valid after
	// issuance (e.g. "24h", "30m").
	// Env: AUTH_TOKEN_DURATION
	TokenDuration time.Duration `env:"TOKEN_DURATION"`
}

// Storage groups the configuration for the datastore backing all
// repositories.
type Storage struct {
	// DB holds the database connection settings.
	DB DB `envPrefix:"DB_"`
}

// DB holds connection settings for the datastore. SQLite is the default;
// a PostgreSQL DSN switches the driver.
type DB struct {
	// Driver selects the database/sql driver: "sqlite3" or "pgx".
	// Env: STORAGE_DB_DRIVER
	Driver string `env:"DRIVER"`

	// DSN is the data source name. For sqlite3 this is the path to the
	// local database file (e.g. "meteostation.db"); for pgx a full
	// PostgreSQL connection string.
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Server holds network and timeout settings for the inbound boundary.
type Server struct {
	// HTTPAddress is the TCP address on which the data service listens,
	// in "host:port" format (e.g. "127.0.0.1:8990").
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout is the maximum duration allowed for a single inbound
	// request before the server cancels it.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Weather holds settings for the external weather provider.
type Weather struct {
	// APIKey authenticates requests to the weather API.
	// Env: WEATHER_API_KEY
	APIKey string `env:"API_KEY"`

	// BaseURL is the weather API root
	// (e.g. "https://api.openweathermap.org/data/2.5").
	// Env: WEATHER_BASE_URL
	BaseURL string `env:"BASE_URL"`

	// Units selects the measurement system reported by the provider
	// ("metric" or "imperial").
	// Env: WEATHER_UNITS
	Units string `env:"UNITS"`
}

// Gateway holds the presentation process's connection settings to the data
// service boundary.
type Gateway struct {
	// HTTPAddress is the base URL of the data service
	// (e.g. "http://127.0.0.1:8990").
	// Env: GATEWAY_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout is the default timeout for outbound boundary requests.
	// Env: GATEWAY_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Workers holds configuration for client background workers.
type Workers struct {
	// SnapshotInterval defines how often the snapshot worker refreshes the
	// saved city's weather and stores today's history row. Zero disables
	// the worker.
	// Env: WORKERS_SNAPSHOT_INTERVAL
	SnapshotInterval time.Duration `env:"SNAPSHOT_INTERVAL"`
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
