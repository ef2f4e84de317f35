// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setEnvVars(t *testing.T, vars map[string]string) {
	t.Helper()
	for k, v := range vars {
		t.Setenv(k, v)
	}
}

func TestParseEnv_AllFields(t *testing.T) {
	// Arrange
	envVars := map[string]string{
		"BRIDGE_CONFIG": "/path/to/config.json",

		"BRIDGE_APP_GROUP_IDENTIFIER": "group.test",

		"BRIDGE_KEYCHAIN_BACKEND":      "file",
		"BRIDGE_KEYCHAIN_ACCESS_GROUP": "group.test.keys",
		"BRIDGE_KEYCHAIN_SERVICE":      "svc",
		"BRIDGE_KEYCHAIN_FILE_PATH":    "/tmp/keychain.json",

		// Storage has nested prefixes: STORAGE_ + DB_
		"BRIDGE_STORAGE_DB_TYPE":          "persisted",
		"BRIDGE_STORAGE_DB_CONTAINER_DIR": "/var/bridge",

		"BRIDGE_WORKERS_VAULT_FILE": "/var/bridge/vault.yaml",
		"BRIDGE_WORKERS_USER_ID":    "user-1",
		"BRIDGE_WORKERS_DEBOUNCE":   "250ms",

		"BRIDGE_LOG_LEVEL": "debug",
		"BRIDGE_LOG_FILE":  "/var/log/bridge.log",
	}
	setEnvVars(t, envVars)

	// Act
	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	// Assert
	require.NoError(t, err)

	assert.Equal(t, "/path/to/config.json", cfg.JSONFilePath)
	assert.Equal(t, "group.test", cfg.App.GroupIdentifier)

	assert.Equal(t, "file", cfg.Keychain.Backend)
	assert.Equal(t, "group.test.keys", cfg.Keychain.AccessGroup)
	assert.Equal(t, "svc", cfg.Keychain.Service)
	assert.Equal(t, "/tmp/keychain.json", cfg.Keychain.FilePath)

	assert.Equal(t, "persisted", cfg.Storage.DB.Type)
	assert.Equal(t, "/var/bridge", cfg.Storage.DB.ContainerDir)

	assert.Equal(t, "/var/bridge/vault.yaml", cfg.Workers.VaultFile)
	assert.Equal(t, "user-1", cfg.Workers.UserID)
	assert.Equal(t, 250*time.Millisecond, cfg.Workers.Debounce)

	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "/var/log/bridge.log", cfg.Log.File)
}

func TestParseEnv_PartialFields(t *testing.T) {
	// Arrange
	setEnvVars(t, map[string]string{
		"BRIDGE_KEYCHAIN_BACKEND": "memory",
	})

	// Act
	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "memory", cfg.Keychain.Backend)
	assert.Empty(t, cfg.Keychain.FilePath)
	assert.Empty(t, cfg.Storage.DB.Type)
	assert.Zero(t, cfg.Workers.Debounce)
}

func TestParseEnv_IgnoresUnprefixed(t *testing.T) {
	setEnvVars(t, map[string]string{
		"KEYCHAIN_BACKEND": "memory",
		"LOG_LEVEL":        "debug",
	})

	cfg := &StructuredConfig{}
	require.NoError(t, parseEnv(cfg))
	assert.Empty(t, cfg.Keychain.Backend)
	assert.Empty(t, cfg.Log.Level)
}

func TestParseEnv_InvalidDuration(t *testing.T) {
	setEnvVars(t, map[string]string{
		"BRIDGE_WORKERS_DEBOUNCE": "not-a-duration",
	})

	err := parseEnv(&StructuredConfig{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error reading BRIDGE_* environment")
}

func TestParseEnv_ExpandsSharedPaths(t *testing.T) {
	t.Setenv("HOME", "/home/tester")
	setEnvVars(t, map[string]string{
		"BRIDGE_KEYCHAIN_FILE_PATH":       "$HOME/shared/keychain.json",
		"BRIDGE_STORAGE_DB_CONTAINER_DIR": "${HOME}/shared",
		"BRIDGE_WORKERS_VAULT_FILE":       "$HOME/vault.yaml",
		"BRIDGE_LOG_LEVEL":                "$HOME",
	})

	cfg := &StructuredConfig{}
	require.NoError(t, parseEnv(cfg))

	assert.Equal(t, "/home/tester/shared/keychain.json", cfg.Keychain.FilePath)
	assert.Equal(t, "/home/tester/shared", cfg.Storage.DB.ContainerDir)
	assert.Equal(t, "/home/tester/vault.yaml", cfg.Workers.VaultFile)
	// only paths are expanded
	assert.Equal(t, "$HOME", cfg.Log.Level)
}

func TestParseEnv_IgnoresUnprefixedKeychainBackend(t *testing.T) {
	t.Setenv("KEYCHAIN_BACKEND", "memory")

	cfg := &StructuredConfig{}
	require.NoError(t, parseEnv(cfg))
	assert.Empty(t, cfg.Keychain.Backend)
}
