// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"

	"github.com/spf13/pflag"
)

// Keychain backends accepted by [Keychain.Backend].
const (
	KeychainBackendSystem = "system"
	KeychainBackendFile   = "file"
	KeychainBackendMemory = "memory"
)

// Store types accepted by [DB.Type].
const (
	StoreTypeMemory    = "memory"
	StoreTypePersisted = "persisted"
)

// StructuredConfig is the top-level configuration container of the bridge.
// It is populated by merging defaults, an optional JSON file, environment
// variables and command-line flags.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
//
// Every variable is additionally prefixed with BRIDGE_.
type StructuredConfig struct {
	// App holds settings shared by both apps of the bridge.
	App App `envPrefix:"APP_"`

	// Keychain selects and scopes the secure key-value store holding the
	// shared key.
	Keychain Keychain `envPrefix:"KEYCHAIN_"`

	// Storage holds configuration of the shared item database.
	Storage Storage `envPrefix:"STORAGE_"`

	// Workers holds configuration for background worker processes.
	Workers Workers `envPrefix:"WORKERS_"`

	// Log controls the process logger.
	Log Log `envPrefix:"LOG_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the BRIDGE_CONFIG environment variable or the
	// -c / --config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// GroupIdentifier is the app group both processes belong to.
	// It doubles as the default keychain access group.
	// Env: BRIDGE_APP_GROUP_IDENTIFIER
	GroupIdentifier string `env:"GROUP_IDENTIFIER"`
}

// Keychain holds settings of the shared keychain.
type Keychain struct {
	// Backend is one of "system", "file" or "memory".
	// Env: BRIDGE_KEYCHAIN_BACKEND
	Backend string `env:"BACKEND"`

	// AccessGroup scopes every keychain item. Both apps must use the same
	// value to see each other's items.
	// Env: BRIDGE_KEYCHAIN_ACCESS_GROUP
	AccessGroup string `env:"ACCESS_GROUP"`

	// Service is the service attribute of every keychain item.
	// Env: BRIDGE_KEYCHAIN_SERVICE
	Service string `env:"SERVICE"`

	// FilePath is the keychain document used by the "file" backend.
	// Env: BRIDGE_KEYCHAIN_FILE_PATH
	FilePath string `env:"FILE_PATH,expand"`
}

// Storage groups the configuration of the persistence backends.
type Storage struct {
	// DB holds the shared SQLite database settings.
	DB DB `envPrefix:"DB_"`
}

// DB holds settings of the shared SQLite database.
type DB struct {
	// Type is "persisted" for a database file inside ContainerDir, or
	// "memory" for a process-local database.
	// Env: BRIDGE_STORAGE_DB_TYPE
	Type string `env:"TYPE"`

	// ContainerDir is the shared container directory. The database file
	// is created inside it.
	// Env: BRIDGE_STORAGE_DB_CONTAINER_DIR
	ContainerDir string `env:"CONTAINER_DIR,expand"`
}

// Workers holds configuration for background worker processes.
type Workers struct {
	// VaultFile is the vault export file watched by the sync worker.
	// Env: BRIDGE_WORKERS_VAULT_FILE
	VaultFile string `env:"VAULT_FILE,expand"`

	// UserID is the account the watched export is published for, used
	// when the export itself does not name one.
	// Env: BRIDGE_WORKERS_USER_ID
	UserID string `env:"USER_ID"`

	// Debounce is how long the worker waits for writes to settle before
	// re-reading the export (e.g. "500ms").
	// Env: BRIDGE_WORKERS_DEBOUNCE
	Debounce time.Duration `env:"DEBOUNCE"`
}

// Log controls the process logger.
type Log struct {
	// Level is a zerolog level name ("debug", "info", ...).
	// Env: BRIDGE_LOG_LEVEL
	Level string `env:"LEVEL"`

	// File receives log output. Empty means stderr.
	// Env: BRIDGE_LOG_FILE
	File string `env:"FILE"`
}

// GetStructuredConfig loads, merges, and validates the configuration from
// all available sources in the following priority order (last source wins
// for non-zero fields):
//  1. Defaults
//  2. JSON file (path resolved from environment and flags)
//  3. Environment variables
//  4. Flags registered with [RegisterFlags] on fs, when set
//
// fs may be nil, in which case flags are not consulted.
func GetStructuredConfig(fs *pflag.FlagSet) (*StructuredConfig, error) {
	return newConfigBuilder().
		withDefaults().
		withEnv().
		withFlags(fs).
		withJSON().
		build()
}
