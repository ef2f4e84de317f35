package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidKeychainConfigs indicates invalid keychain settings
	// (for example, an unknown backend or a file backend without a path).
	ErrInvalidKeychainConfigs = errors.New("invalid keychain configuration")
	// ErrInvalidStorageConfigs indicates invalid storage settings
	// (for example, an unknown store type or a persisted store without a
	// container directory).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidAppConfigs indicates invalid application-level settings
	// (for example, a missing group identifier).
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
	// ErrInvalidWorkerConfigs indicates invalid background worker settings
	// (for example, a negative debounce).
	ErrInvalidWorkerConfigs = errors.New("invalid worker configuration")
	// ErrInvalidLogConfigs indicates an unparsable log level.
	ErrInvalidLogConfigs = errors.New("invalid log configuration")
)
