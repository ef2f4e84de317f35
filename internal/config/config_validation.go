// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"github.com/rs/zerolog"
)

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// Returns nil if the configuration is valid, or one of the ErrInvalid*
// sentinels wrapped with the offending value.
func (cfg *StructuredConfig) validate() error {
	if cfg.App.GroupIdentifier == "" {
		return ErrInvalidAppConfigs
	}

	switch cfg.Keychain.Backend {
	case KeychainBackendSystem, KeychainBackendMemory:
	case KeychainBackendFile:
		if cfg.Keychain.FilePath == "" {
			return fmt.Errorf("%w: file backend needs a file path", ErrInvalidKeychainConfigs)
		}
	default:
		return fmt.Errorf("%w: unknown backend %q", ErrInvalidKeychainConfigs, cfg.Keychain.Backend)
	}
	if cfg.Keychain.Service == "" {
		return fmt.Errorf("%w: empty service", ErrInvalidKeychainConfigs)
	}

	switch cfg.Storage.DB.Type {
	case StoreTypeMemory:
	case StoreTypePersisted:
		if cfg.Storage.DB.ContainerDir == "" {
			return fmt.Errorf("%w: persisted store needs a container dir", ErrInvalidStorageConfigs)
		}
	default:
		return fmt.Errorf("%w: unknown store type %q", ErrInvalidStorageConfigs, cfg.Storage.DB.Type)
	}

	if cfg.Workers.Debounce < 0 {
		return ErrInvalidWorkerConfigs
	}

	if _, err := zerolog.ParseLevel(cfg.Log.Level); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidLogConfigs, err)
	}

	return nil
}
