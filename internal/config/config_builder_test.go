package config

import (
	"encoding/json"
	"os"
	"testing"
	"time"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── helpers ───────────────────────────────────────────────────────────────────

func writeTempJSONConfig(t *testing.T, v any) string {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	f, err := os.CreateTemp(t.TempDir(), "config-*.json")
	require.NoError(t, err)
	_, err = f.Write(data)
	require.NoError(t, err)
	require.NoError(t, f.Close())
	return f.Name()
}

func newTestFlagSet(t *testing.T, args ...string) *pflag.FlagSet {
	t.Helper()
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	RegisterFlags(fs)
	require.NoError(t, fs.Parse(args))
	return fs
}

// ── newConfigBuilder ──────────────────────────────────────────────────────────

// TestNewConfigBuilder_InitialState verifies that a freshly created builder
// has no error and no sources.
func TestNewConfigBuilder_InitialState(t *testing.T) {
	b := newConfigBuilder()
	require.NotNil(t, b)
	assert.NoError(t, b.err)
	assert.Nil(t, b.defaults)
	assert.Nil(t, b.json)
	assert.Nil(t, b.env)
	assert.Nil(t, b.flags)
}

// ── build ─────────────────────────────────────────────────────────────────────

// TestBuild_EmptyBuilder verifies that a builder without sources produces a
// config that fails validation.
func TestBuild_EmptyBuilder(t *testing.T) {
	cfg, err := newConfigBuilder().build()
	assert.Nil(t, cfg)
	assert.ErrorIs(t, err, ErrInvalidAppConfigs)
}

// TestBuild_DefaultsAreValid verifies that defaults alone form a usable config.
func TestBuild_DefaultsAreValid(t *testing.T) {
	cfg, err := newConfigBuilder().withDefaults().build()
	require.NoError(t, err)
	assert.Equal(t, defaultGroupIdentifier, cfg.App.GroupIdentifier)
	assert.Equal(t, defaultGroupIdentifier, cfg.Keychain.AccessGroup)
	assert.Equal(t, StoreTypePersisted, cfg.Storage.DB.Type)
	assert.NotEmpty(t, cfg.Storage.DB.ContainerDir)
	assert.Equal(t, defaultDebounce, cfg.Workers.Debounce)
	assert.Equal(t, "info", cfg.Log.Level)
}

// TestBuild_PropagatesBuilderError verifies that a pre-set b.err is wrapped
// and returned, with nil config.
func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newConfigBuilder().withDefaults()
	b.err = assert.AnError

	cfg, err := b.build()
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
}

// TestBuild_Precedence verifies defaults < json < env < flags.
func TestBuild_Precedence(t *testing.T) {
	b := newConfigBuilder().withDefaults()
	b.json = &StructuredConfig{
		Log:     Log{Level: "warn", File: "/json.log"},
		Workers: Workers{UserID: "json-user", VaultFile: "/json/vault.json"},
		Storage: Storage{DB: DB{ContainerDir: "/json/dir"}},
	}
	b.env = &StructuredConfig{
		Log:     Log{Level: "error"},
		Workers: Workers{UserID: "env-user"},
	}
	b.flags = &StructuredConfig{
		Log: Log{Level: "debug"},
	}

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "/json.log", cfg.Log.File)
	assert.Equal(t, "env-user", cfg.Workers.UserID)
	assert.Equal(t, "/json/vault.json", cfg.Workers.VaultFile)
	assert.Equal(t, "/json/dir", cfg.Storage.DB.ContainerDir)
	assert.Equal(t, defaultGroupIdentifier, cfg.App.GroupIdentifier)
}

// ── withEnv ───────────────────────────────────────────────────────────────────

// TestWithEnv_ReturnsBuilder verifies the fluent interface.
func TestWithEnv_ReturnsBuilder(t *testing.T) {
	b := newConfigBuilder()
	assert.Same(t, b, b.withEnv())
}

// TestWithEnv_ReadsEnvVars verifies that prefixed environment variables are
// picked up.
func TestWithEnv_ReadsEnvVars(t *testing.T) {
	t.Setenv("BRIDGE_WORKERS_USER_ID", "env-user")
	t.Setenv("BRIDGE_LOG_LEVEL", "warn")

	b := newConfigBuilder()
	b.withEnv()

	require.NotNil(t, b.env)
	assert.Equal(t, "env-user", b.env.Workers.UserID)
	assert.Equal(t, "warn", b.env.Log.Level)
}

// TestWithEnv_SetsErrorOnBadDuration verifies conversion failures are
// collected.
func TestWithEnv_SetsErrorOnBadDuration(t *testing.T) {
	t.Setenv("BRIDGE_WORKERS_DEBOUNCE", "soon")

	b := newConfigBuilder()
	b.withEnv()

	assert.Error(t, b.err)
	assert.Nil(t, b.env)
}

// ── withFlags ─────────────────────────────────────────────────────────────────

// TestWithFlags_ReturnsBuilder verifies the fluent interface.
func TestWithFlags_ReturnsBuilder(t *testing.T) {
	b := newConfigBuilder()
	assert.Same(t, b, b.withFlags(nil))
	assert.Nil(t, b.flags)
}

// TestWithFlags_ReadsChangedFlags verifies only set flags are captured.
func TestWithFlags_ReadsChangedFlags(t *testing.T) {
	b := newConfigBuilder()
	b.withFlags(newTestFlagSet(t, "--store", "memory", "--debounce", "2s"))

	require.NoError(t, b.err)
	require.NotNil(t, b.flags)
	assert.Equal(t, StoreTypeMemory, b.flags.Storage.DB.Type)
	assert.Equal(t, 2*time.Second, b.flags.Workers.Debounce)
	assert.Empty(t, b.flags.Keychain.Backend)
}

// ── withJSON ──────────────────────────────────────────────────────────────────

// TestWithJSON_ReturnsBuilder verifies the fluent interface.
func TestWithJSON_ReturnsBuilder(t *testing.T) {
	b := newConfigBuilder()
	assert.Same(t, b, b.withJSON())
}

// TestWithJSON_NoOp_WhenNoPathSet verifies that withJSON does nothing when
// no source names a JSON file.
func TestWithJSON_NoOp_WhenNoPathSet(t *testing.T) {
	b := newConfigBuilder()
	b.env = &StructuredConfig{}
	b.withJSON()

	assert.Nil(t, b.json)
	assert.NoError(t, b.err)
}

// TestWithJSON_ReadsFile_WhenValidFile verifies that a valid JSON file is
// parsed.
func TestWithJSON_ReadsFile_WhenValidFile(t *testing.T) {
	payload := StructuredJSONConfig{}
	payload.Workers.UserID = "json-user"
	payload.Log.Level = "debug"
	path := writeTempJSONConfig(t, payload)

	b := newConfigBuilder()
	b.env = &StructuredConfig{JSONFilePath: path}
	b.withJSON()

	require.NoError(t, b.err)
	require.NotNil(t, b.json)
	assert.Equal(t, "json-user", b.json.Workers.UserID)
	assert.Equal(t, "debug", b.json.Log.Level)
}

// TestWithJSON_SetsError_WhenFileNotFound verifies that a missing file path
// sets b.err.
func TestWithJSON_SetsError_WhenFileNotFound(t *testing.T) {
	b := newConfigBuilder()
	b.env = &StructuredConfig{JSONFilePath: "/nonexistent/config.json"}
	b.withJSON()

	assert.Error(t, b.err)
}

// TestWithJSON_SetsError_WhenMalformedJSON verifies that invalid JSON content
// sets b.err.
func TestWithJSON_SetsError_WhenMalformedJSON(t *testing.T) {
	f, err := os.CreateTemp(t.TempDir(), "bad-*.json")
	require.NoError(t, err)
	_, err = f.WriteString("{not valid json")
	require.NoError(t, err)
	require.NoError(t, f.Close())

	b := newConfigBuilder()
	b.env = &StructuredConfig{JSONFilePath: f.Name()}
	b.withJSON()

	assert.Error(t, b.err)
}

// TestWithJSON_FlagPathWins verifies that --config beats BRIDGE_CONFIG.
func TestWithJSON_FlagPathWins(t *testing.T) {
	envPayload := StructuredJSONConfig{}
	envPayload.Workers.UserID = "from-env-file"
	flagPayload := StructuredJSONConfig{}
	flagPayload.Workers.UserID = "from-flag-file"

	b := newConfigBuilder()
	b.env = &StructuredConfig{JSONFilePath: writeTempJSONConfig(t, envPayload)}
	b.flags = &StructuredConfig{JSONFilePath: writeTempJSONConfig(t, flagPayload)}
	b.withJSON()

	require.NoError(t, b.err)
	assert.Equal(t, "from-flag-file", b.json.Workers.UserID)
}

// ── GetStructuredConfig ───────────────────────────────────────────────────────

// TestGetStructuredConfig_AllSources runs the full chain.
func TestGetStructuredConfig_AllSources(t *testing.T) {
	payload := StructuredJSONConfig{}
	payload.Keychain.Backend = KeychainBackendMemory
	payload.Workers.UserID = "json-user"
	payload.Workers.Debounce = Duration(time.Second)
	path := writeTempJSONConfig(t, payload)

	t.Setenv("BRIDGE_CONFIG", path)
	t.Setenv("BRIDGE_WORKERS_USER_ID", "env-user")

	cfg, err := GetStructuredConfig(newTestFlagSet(t, "--store=memory"))
	require.NoError(t, err)

	assert.Equal(t, KeychainBackendMemory, cfg.Keychain.Backend)
	assert.Equal(t, "env-user", cfg.Workers.UserID)
	assert.Equal(t, time.Second, cfg.Workers.Debounce)
	assert.Equal(t, StoreTypeMemory, cfg.Storage.DB.Type)
}

// TestGetStructuredConfig_InvalidFlag verifies validation runs last.
func TestGetStructuredConfig_InvalidFlag(t *testing.T) {
	cfg, err := GetStructuredConfig(newTestFlagSet(t, "--keychain-backend=vault"))
	assert.Nil(t, cfg)
	assert.ErrorIs(t, err, ErrInvalidKeychainConfigs)
}
