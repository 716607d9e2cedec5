// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"time"
)

// Storage drivers accepted by Storage.DB.Driver.
const (
	DriverPostgres = "pgx"
	DriverSQLite   = "sqlite3"
)

// EnvironmentProduction hides raw internal error text from API clients.
const EnvironmentProduction = "production"

// StructuredConfig is the top-level configuration of the task keeper.
// It is assembled from defaults, environment variables, command-line
// flags and an optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to nested env lookups (caarlos0/env).
//   - env: variable name for scalar fields.
type StructuredConfig struct {
	App     App     `envPrefix:"APP_"`
	Storage Storage `envPrefix:"STORAGE_"`
	Server  Server  `envPrefix:"SERVER_"`
	Advisor Advisor `envPrefix:"ADVISOR_"`
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// JSONFilePath is the optional path to a JSON configuration file,
	// taken from CONFIG or -c / -config.
	JSONFilePath string `env:"CONFIG"`
}

// App holds security and runtime settings.
type App struct {
	// Environment is "development" or "production".
	// Env: APP_ENVIRONMENT
	Environment string `env:"ENVIRONMENT"`

	// LogLevel is a zerolog level name.
	// Env: APP_LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL"`

	// TokenSignKey is the HMAC secret for access tokens.
	// Env: APP_TOKEN_SIGN_KEY
	TokenSignKey string `env:"TOKEN_SIGN_KEY"`

	// TokenIssuer is the "iss" claim of every issued token.
	// Env: APP_TOKEN_ISSUER
	TokenIssuer string `env:"TOKEN_ISSUER"`

	// TokenDuration is the lifetime of an access token (e.g. "168h").
	// Env: APP_TOKEN_DURATION
	TokenDuration time.Duration `env:"TOKEN_DURATION"`

	// PasswordHashCost is the bcrypt cost factor.
	// Env: APP_PASSWORD_HASH_COST
	PasswordHashCost int `env:"PASSWORD_HASH_COST"`

	// Version is reported by /api/version.
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// IsProduction reports whether the server runs in production mode.
func (a App) IsProduction() bool {
	return a.Environment == EnvironmentProduction
}

// Storage groups persistence settings.
type Storage struct {
	DB DB `envPrefix:"DB_"`
}

// DB holds relational database settings.
type DB struct {
	// Driver is "pgx" or "sqlite3".
	// Env: STORAGE_DB_DRIVER
	Driver string `env:"DRIVER"`

	// DSN is the connection string, a postgres URL or a SQLite file path.
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`

	// MaxOpenConns limits the pool; zero leaves database/sql's default.
	// Env: STORAGE_DB_MAX_OPEN_CONNS
	MaxOpenConns int `env:"MAX_OPEN_CONNS"`
}

// Server holds inbound HTTP settings.
type Server struct {
	// HTTPAddress is the listen address, e.g. ":5000".
	// Env: SERVER_ADDRESS (PORT is honoured when unset)
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds handler execution; zero disables it.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// AllowedOrigins is the CORS allow-list.
	// Env: SERVER_ALLOWED_ORIGINS (comma separated)
	AllowedOrigins []string `env:"ALLOWED_ORIGINS" envSeparator:","`
}

// Advisor holds settings of the remote language model.
type Advisor struct {
	// APIKey enables the remote path; empty means fallback only.
	// Env: ADVISOR_API_KEY
	APIKey string `env:"API_KEY"`

	// Env: ADVISOR_BASE_URL
	BaseURL string `env:"BASE_URL"`

	// Env: ADVISOR_MODEL
	Model string `env:"MODEL"`

	// TimeoutMS is the per-call timeout in milliseconds.
	// Env: ADVISOR_TIMEOUT_MS
	TimeoutMS int `env:"TIMEOUT_MS"`

	// MaxTokens caps every per-operation token budget; zero means no cap.
	// Env: ADVISOR_MAX_TOKENS
	MaxTokens int `env:"MAX_TOKENS"`
}

// Timeout returns TimeoutMS as a duration.
func (a Advisor) Timeout() time.Duration {
	return time.Duration(a.TimeoutMS) * time.Millisecond
}

// Adapter holds outbound settings of the terminal client.
type Adapter struct {
	// HTTPAddress is the base URL of the API, e.g. "http://localhost:5000".
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds every API call.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// GetStructuredConfig loads the server configuration. Sources are applied
// in this order, later non-zero values winning:
//  1. Built-in defaults
//  2. Environment variables
//  3. Command-line flags
//  4. JSON file (path resolved from sources 2 and 3)
func GetStructuredConfig() (*StructuredConfig, error) {
	cfg, err := newConfigBuilder().
		withDefaults().
		withEnv().
		withFlags(os.Args[1:]).
		withJSON().
		build()
	if err != nil {
		return nil, err
	}

	return cfg, cfg.validate()
}
