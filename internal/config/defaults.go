package config

import (
	"os"
	"path/filepath"
	"runtime"
	"time"
)

const (
	defaultGroupIdentifier = "group.com.8bit.bitwarden"
	defaultKeychainService = "com.bitwarden.authenticator-bridge"
	defaultDebounce        = 500 * time.Millisecond
	defaultLogLevel        = "info"
	bridgeDirName          = "bitwarden-bridge"
)

func defaultConfig() *StructuredConfig {
	base := defaultBaseDir()

	backend := KeychainBackendFile
	if runtime.GOOS == "darwin" {
		backend = KeychainBackendSystem
	}

	return &StructuredConfig{
		App: App{
			GroupIdentifier: defaultGroupIdentifier,
		},
		Keychain: Keychain{
			Backend:     backend,
			AccessGroup: defaultGroupIdentifier,
			Service:     defaultKeychainService,
			FilePath:    filepath.Join(base, "keychain.json"),
		},
		Storage: Storage{
			DB: DB{
				Type:         StoreTypePersisted,
				ContainerDir: base,
			},
		},
		Workers: Workers{
			Debounce: defaultDebounce,
		},
		Log: Log{
			Level: defaultLogLevel,
		},
	}
}

func defaultBaseDir() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return bridgeDirName
	}
	return filepath.Join(dir, bridgeDirName)
}
