package config

import (
	"fmt"

	"github.com/spf13/pflag"
)

// Flag names registered by [RegisterFlags].
const (
	FlagConfig          = "config"
	FlagGroupIdentifier = "group"
	FlagKeychainBackend = "keychain-backend"
	FlagAccessGroup     = "access-group"
	FlagKeychainService = "keychain-service"
	FlagKeychainFile    = "keychain-file"
	FlagStoreType       = "store"
	FlagContainerDir    = "container-dir"
	FlagVaultFile       = "vault-file"
	FlagUserID          = "user-id"
	FlagDebounce        = "debounce"
	FlagLogLevel        = "log-level"
	FlagLogFile         = "log-file"
)

// RegisterFlags adds every configuration flag to fs.
//
// Flags:
//
//	-c/--config         json file path with configs
//	--group             app group identifier
//	--keychain-backend  system, file or memory
//	--access-group      keychain access group
//	--keychain-service  keychain service attribute
//	--keychain-file     keychain document for the file backend
//	--store             persisted or memory
//	--container-dir     shared container directory
//	--vault-file        vault export watched by the sync worker
//	--user-id           account the vault export belongs to
//	--debounce          settle time for export writes (e.g. "500ms")
//	--log-level         zerolog level
//	--log-file          log file, stderr when empty
func RegisterFlags(fs *pflag.FlagSet) {
	fs.StringP(FlagConfig, "c", "", "JSON config file path")
	fs.String(FlagGroupIdentifier, "", "App group identifier")
	fs.String(FlagKeychainBackend, "", "Keychain backend: system, file or memory")
	fs.String(FlagAccessGroup, "", "Keychain access group")
	fs.String(FlagKeychainService, "", "Keychain service attribute")
	fs.String(FlagKeychainFile, "", "Keychain file for the file backend")
	fs.String(FlagStoreType, "", "Store type: persisted or memory")
	fs.String(FlagContainerDir, "", "Shared container directory")
	fs.String(FlagVaultFile, "", "Vault export file watched by the sync worker")
	fs.String(FlagUserID, "", "Account the item commands and the vault sync act for")
	fs.Duration(FlagDebounce, 0, "Settle time for export writes (e.g. 500ms)")
	fs.String(FlagLogLevel, "", "Log level")
	fs.String(FlagLogFile, "", "Log file, stderr when empty")
}

// parseFlags reads the flags the user actually set. Flags left at their
// zero defaults do not take part in the merge.
func parseFlags(fs *pflag.FlagSet) (*StructuredConfig, error) {
	cfg := &StructuredConfig{}

	strs := map[string]*string{
		FlagConfig:          &cfg.JSONFilePath,
		FlagGroupIdentifier: &cfg.App.GroupIdentifier,
		FlagKeychainBackend: &cfg.Keychain.Backend,
		FlagAccessGroup:     &cfg.Keychain.AccessGroup,
		FlagKeychainService: &cfg.Keychain.Service,
		FlagKeychainFile:    &cfg.Keychain.FilePath,
		FlagStoreType:       &cfg.Storage.DB.Type,
		FlagContainerDir:    &cfg.Storage.DB.ContainerDir,
		FlagVaultFile:       &cfg.Workers.VaultFile,
		FlagUserID:          &cfg.Workers.UserID,
		FlagLogLevel:        &cfg.Log.Level,
		FlagLogFile:         &cfg.Log.File,
	}

	for name, dst := range strs {
		if fs.Lookup(name) == nil || !fs.Changed(name) {
			continue
		}
		v, err := fs.GetString(name)
		if err != nil {
			return nil, fmt.Errorf("error reading flag %q: %w", name, err)
		}
		*dst = v
	}

	if fs.Lookup(FlagDebounce) != nil && fs.Changed(FlagDebounce) {
		d, err := fs.GetDuration(FlagDebounce)
		if err != nil {
			return nil, fmt.Errorf("error reading flag %q: %w", FlagDebounce, err)
		}
		cfg.Workers.Debounce = d
	}

	return cfg, nil
}
