package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseJSON_Success(t *testing.T) {
	// Arrange
	dir := t.TempDir()
	p := filepath.Join(dir, "config.json")

	jsonBody := `{
		"app": { "group_identifier": "group.json" },
		"keychain": {
			"backend": "file",
			"access_group": "group.json.keys",
			"service": "svc",
			"file_path": "/tmp/kc.json"
		},
		"storage": {
			"db": { "type": "persisted", "container_dir": "/srv/bridge" }
		},
		"workers": {
			"vault_file": "/srv/vault.yaml",
			"user_id": "u-1",
			"debounce": "750ms"
		},
		"log": { "level": "debug", "file": "/tmp/bridge.log" }
	}`

	require.NoError(t, os.WriteFile(p, []byte(jsonBody), 0o600))

	// Act
	cfg, err := parseJSON(p)

	// Assert
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "group.json", cfg.App.GroupIdentifier)
	assert.Equal(t, "file", cfg.Keychain.Backend)
	assert.Equal(t, "group.json.keys", cfg.Keychain.AccessGroup)
	assert.Equal(t, "svc", cfg.Keychain.Service)
	assert.Equal(t, "/tmp/kc.json", cfg.Keychain.FilePath)
	assert.Equal(t, "persisted", cfg.Storage.DB.Type)
	assert.Equal(t, "/srv/bridge", cfg.Storage.DB.ContainerDir)
	assert.Equal(t, "/srv/vault.yaml", cfg.Workers.VaultFile)
	assert.Equal(t, "u-1", cfg.Workers.UserID)
	assert.Equal(t, 750*time.Millisecond, cfg.Workers.Debounce)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "/tmp/bridge.log", cfg.Log.File)
	assert.Empty(t, cfg.JSONFilePath)
}

func TestParseJSON_FileNotFound(t *testing.T) {
	cfg, err := parseJSON(filepath.Join(t.TempDir(), "missing.json"))
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error reading a json file")
}

func TestParseJSON_InvalidJSON(t *testing.T) {
	p := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(p, []byte(`{"workers":`), 0o600))

	cfg, err := parseJSON(p)
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error decoding json configs")
}

func TestDuration_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    time.Duration
		wantErr bool
	}{
		{name: "string", input: `"30s"`, want: 30 * time.Second},
		{name: "compound string", input: `"1h30m"`, want: 90 * time.Minute},
		{name: "number of nanoseconds", input: `1000000`, want: time.Millisecond},
		{name: "bad string", input: `"soon"`, wantErr: true},
		{name: "bool", input: `true`, wantErr: true},
		{name: "not json", input: `{`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d Duration
			err := json.Unmarshal([]byte(tt.input), &d)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, time.Duration(d))
		})
	}
}

func TestDuration_MarshalJSON(t *testing.T) {
	b, err := json.Marshal(Duration(2 * time.Minute))
	require.NoError(t, err)
	assert.JSONEq(t, `"2m0s"`, string(b))
}
