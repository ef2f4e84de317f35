package workers

import "errors"

var (
	// ErrReadingVaultFile is returned when the watched export file cannot be read.
	ErrReadingVaultFile = errors.New("failed to read vault file")

	// ErrDecodingVaultFile is returned when the export file is neither valid
	// JSON nor valid YAML of the expected shape.
	ErrDecodingVaultFile = errors.New("failed to decode vault file")

	// ErrMissingUserID is returned when neither the export file nor the
	// configuration names the owning account.
	ErrMissingUserID = errors.New("vault file has no user id")

	// ErrWatchingFile is returned when fsnotify cannot watch the directory of
	// a file.
	ErrWatchingFile = errors.New("failed to watch file")
)
