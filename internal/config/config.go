// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for go-form-sync.
// It aggregates all sub-configurations and is populated by merging values from
// environment variables, command-line flags, and an optional JSON file.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// Server holds the remote form service endpoint settings.
	Server Server `envPrefix:"SERVER_"`

	// Storage holds configuration for the local catalog backends: the SQLite
	// database and the on-disk form/media directory.
	Storage Storage `envPrefix:"STORAGE_"`

	// Trigger holds the listen address of the local HTTP trigger endpoint.
	Trigger Trigger `envPrefix:"TRIGGER_"`

	// Workers holds configuration for background worker processes.
	Workers Workers `envPrefix:"WORKERS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// Server holds the remote form-list service settings.
type Server struct {
	// Address is the base URL of the form-list service
	// (e.g. "https://forms.example.com").
	// Env: SERVER_ADDRESS
	Address string `env:"ADDRESS"`

	// Token is the bearer token presented on every request. Credentials are
	// provisioned out of band; the client never obtains them itself.
	// Env: SERVER_TOKEN
	Token string `env:"TOKEN"`

	// RequestTimeout is the default timeout for outbound requests to the form
	// service (e.g. "30s", "1m").
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Storage groups the configuration for the local catalog backends.
type Storage struct {
	// DB holds the local catalog database settings.
	DB DB `envPrefix:"DB_"`

	// Files holds the file-system settings for downloaded form definitions
	// and media assets.
	Files Files `envPrefix:"FILES_"`
}

// DB holds connection settings for the local SQLite catalog database.
type DB struct {
	// DSN is the SQLite database file path (e.g. "formsync.db").
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Files holds file-system settings for downloaded form content.
type Files struct {
	// FormsDir is the directory where form definitions and their media files
	// are written after download.
	// Env: STORAGE_FILES_FORMS_DIR
	FormsDir string `env:"FORMS_DIR"`
}

// Trigger holds settings for the local HTTP trigger/status endpoint.
type Trigger struct {
	// Address is the TCP address the trigger endpoint listens on, in
	// "host:port" format. Empty disables the endpoint.
	// Env: TRIGGER_ADDRESS
	Address string `env:"ADDRESS"`
}

// Workers holds configuration for background worker processes.
type Workers struct {
	// SyncInterval defines how often the recurring sync job runs
	// (e.g. "15m", "1h").
	// Env: WORKERS_SYNC_INTERVAL
	SyncInterval time.Duration `env:"SYNC_INTERVAL"`
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
