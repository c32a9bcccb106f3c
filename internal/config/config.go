// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the
// content sync service. It aggregates all sub-configurations and is
// populated by merging defaults, environment variables, command-line flags
// and an optional JSON file.
// Nested groups read their env vars under the group's envPrefix.
type StructuredConfig struct {
	// App holds token parameters and the application version.
	App App `envPrefix:"APP_"`

	// Storage holds the source database and the sync directories.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds network address and timeout settings for the HTTP server.
	Server Server `envPrefix:"SERVER_"`

	// Adapter holds settings of the outbound notify hooks.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Sync holds catalog locations and dump settings.
	Sync Sync `envPrefix:"SYNC_"`

	// Workers holds configuration for background jobs.
	Workers Workers `envPrefix:"WORKERS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// Storage groups the configuration of all storage backends.
type Storage struct {
	DB    DB    `envPrefix:"DB_"`
	Files Files `envPrefix:"FILES_"`
}

// App holds application-level configuration values.
type App struct {
	// TokenSignKey is the secret key used to sign and verify editor tokens.
	// Env: APP_TOKEN_SIGN_KEY
	TokenSignKey string `env:"TOKEN_SIGN_KEY"`

	// TokenIssuer is the "iss" claim embedded in every issued token.
	// Env: APP_TOKEN_ISSUER
	TokenIssuer string `env:"TOKEN_ISSUER"`

	// TokenDuration specifies how long a token remains valid.
	// Env: APP_TOKEN_DURATION
	TokenDuration time.Duration `env:"TOKEN_DURATION"`

	// Version is exposed via the /api/version endpoint.
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// Server holds network and timeout settings for the inbound transport layer.
type Server struct {
	// HTTPAddress is the TCP address on which the HTTP server listens.
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds a single inbound request, sync runs included.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// DB holds connection settings of the staging database.
type DB struct {
	// DSN is the connection string.
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`

	// Driver is either "pgx" or "sqlite3".
	// Env: STORAGE_DB_DRIVER
	Driver string `env:"DRIVER"`
}

// Files holds the directories the dump artifacts move through.
type Files struct {
	// SyncDir contains one subdirectory per target.
	// Env: STORAGE_FILES_SYNC_DIR
	SyncDir string `env:"SYNC_DIR"`

	// ScratchDir is where artifacts are built before delivery.
	// Env: STORAGE_FILES_SCRATCH_DIR
	ScratchDir string `env:"SCRATCH_DIR"`

	// Root is the base directory SyncDir and ScratchDir are resolved against.
	// Env: STORAGE_FILES_ROOT
	Root string `env:"ROOT"`
}

// Adapter holds configuration of the outbound notify hooks.
type Adapter struct {
	// RequestTimeout bounds a single notify attempt.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// RetryCount is the number of notify attempts before giving up.
	// Env: ADAPTER_RETRY_COUNT
	RetryCount uint `env:"RETRY_COUNT"`

	// ClearCacheURL is a printf template receiving the clear-cache data.
	// Env: ADAPTER_CLEAR_CACHE_URL
	ClearCacheURL string `env:"CLEAR_CACHE_URL"`

	// SignKey signs the body of HTTP notify calls (X-Signature header).
	// Unsigned when empty.
	// Env: ADAPTER_SIGN_KEY
	SignKey string `env:"SIGN_KEY"`
}

// Sync holds catalog locations and dump settings.
type Sync struct {
	// AreasFile is a YAML file with areas and targets. Built-in areas are used when empty.
	// Env: SYNC_AREAS_FILE
	AreasFile string `env:"AREAS_FILE"`

	// CatalogFile is a YAML file with the table relation catalog.
	// Env: SYNC_CATALOG_FILE
	CatalogFile string `env:"CATALOG_FILE"`

	// ExportTimeout bounds a single table export query.
	// Env: SYNC_EXPORT_TIMEOUT
	ExportTimeout time.Duration `env:"EXPORT_TIMEOUT"`

	// DefaultTarget is used when a request names no target.
	// Env: SYNC_DEFAULT_TARGET
	DefaultTarget string `env:"DEFAULT_TARGET"`
}

// Workers holds configuration for background jobs.
type Workers struct {
	// ScheduledModules are module ids synced on every tick.
	// Env: WORKERS_SCHEDULED_MODULES (comma separated)
	ScheduledModules []int `env:"SCHEDULED_MODULES" envSeparator:","`

	// SyncInterval is the tick of the scheduled sync job; 0 disables it.
	// Env: WORKERS_SYNC_INTERVAL
	SyncInterval time.Duration `env:"SYNC_INTERVAL"`

	// RunTimeout bounds one scheduled run.
	// Env: WORKERS_RUN_TIMEOUT
	RunTimeout time.Duration `env:"RUN_TIMEOUT"`

	// WaitingThreshold is the age after which waiting artifacts are reported.
	// Env: WORKERS_WAITING_THRESHOLD
	WaitingThreshold time.Duration `env:"WAITING_THRESHOLD"`
}

// GetStructuredConfig loads, merges, and validates the configuration from
// all available sources in the following priority order (last source wins
// for non-zero fields):
//  1. Built-in defaults
//  2. Environment variables
//  3. Command-line flags parsed from args
//  4. JSON file (path resolved from sources 2 and 3)
func GetStructuredConfig(args []string) (*StructuredConfig, error) {
	return newConfigBuilder().
		withDefaults().
		withEnv().
		withFlags(args).
		withJSON().
		build()
}

// GetCLIConfig is [GetStructuredConfig] without flag parsing; the CLI owns
// its flags and passes the JSON file path explicitly.
func GetCLIConfig(jsonFilePath string) (*StructuredConfig, error) {
	return newConfigBuilder().
		withDefaults().
		withEnv().
		withJSONPath(jsonFilePath).
		withJSON().
		build()
}
