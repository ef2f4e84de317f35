package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func validConfig() *StructuredConfig {
	return &StructuredConfig{
		App:      App{GroupIdentifier: "group.test"},
		Keychain: Keychain{Backend: KeychainBackendMemory, Service: "svc"},
		Storage:  Storage{DB: DB{Type: StoreTypeMemory}},
		Log:      Log{Level: "info"},
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*StructuredConfig)
		wantErr error
	}{
		{name: "valid", mutate: func(*StructuredConfig) {}},
		{
			name:    "missing group",
			mutate:  func(c *StructuredConfig) { c.App.GroupIdentifier = "" },
			wantErr: ErrInvalidAppConfigs,
		},
		{
			name:    "unknown backend",
			mutate:  func(c *StructuredConfig) { c.Keychain.Backend = "vault" },
			wantErr: ErrInvalidKeychainConfigs,
		},
		{
			name:    "file backend without path",
			mutate:  func(c *StructuredConfig) { c.Keychain.Backend = KeychainBackendFile },
			wantErr: ErrInvalidKeychainConfigs,
		},
		{
			name: "file backend with path",
			mutate: func(c *StructuredConfig) {
				c.Keychain.Backend = KeychainBackendFile
				c.Keychain.FilePath = "/tmp/kc.json"
			},
		},
		{
			name:    "empty service",
			mutate:  func(c *StructuredConfig) { c.Keychain.Service = "" },
			wantErr: ErrInvalidKeychainConfigs,
		},
		{
			name:    "unknown store type",
			mutate:  func(c *StructuredConfig) { c.Storage.DB.Type = "postgres" },
			wantErr: ErrInvalidStorageConfigs,
		},
		{
			name:    "persisted without dir",
			mutate:  func(c *StructuredConfig) { c.Storage.DB.Type = StoreTypePersisted },
			wantErr: ErrInvalidStorageConfigs,
		},
		{
			name:    "negative debounce",
			mutate:  func(c *StructuredConfig) { c.Workers.Debounce = -1 },
			wantErr: ErrInvalidWorkerConfigs,
		},
		{
			name:    "bad log level",
			mutate:  func(c *StructuredConfig) { c.Log.Level = "loud" },
			wantErr: ErrInvalidLogConfigs,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)

			err := cfg.validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
