package keychain

import (
	"errors"
	"fmt"
)

// Errors reported by KeychainService implementations.
var (
	// ErrItemNotFound is returned when no entry matches a search or delete query.
	ErrItemNotFound = errors.New("keychain item not found")

	// ErrDuplicateItem is returned when adding an entry whose query already
	// matches an existing one.
	ErrDuplicateItem = errors.New("keychain item already exists")

	// ErrBackendUnavailable is returned when the configured backend cannot
	// run on this platform (e.g. the system keychain outside darwin).
	ErrBackendUnavailable = errors.New("keychain backend is not available on this platform")

	// ErrUnknownBackend is returned for a backend name the bridge does not know.
	ErrUnknownBackend = errors.New("unknown keychain backend")
)

// Errors reported by SharedKeychainStorage.
var (
	// ErrKeyNotFound matches every *KeyNotFoundError via errors.Is. Callers
	// treat it as "sharing has not been provisioned yet".
	ErrKeyNotFound = errors.New("shared keychain key not found")

	ErrEncodingValue   = errors.New("failed to encode keychain value")
	ErrSearchingItem   = errors.New("failed to search keychain item")
	ErrAddingItem      = errors.New("failed to add keychain item")
	ErrDeletingItem    = errors.New("failed to delete keychain item")
	ErrReadingKeychain = errors.New("failed to read keychain file")
	ErrWritingKeychain = errors.New("failed to write keychain file")
)

// KeyNotFoundError reports that item has no usable value in the shared
// keychain. Err, when set, is the decoding failure that made the stored
// value unusable.
type KeyNotFoundError struct {
	Item SharedKeychainItem
	Err  error
}

func (e *KeyNotFoundError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", ErrKeyNotFound, e.Item.UnformattedKey(), e.Err)
	}
	return fmt.Sprintf("%s: %s", ErrKeyNotFound, e.Item.UnformattedKey())
}

func (e *KeyNotFoundError) Is(target error) bool {
	return target == ErrKeyNotFound
}

func (e *KeyNotFoundError) Unwrap() error {
	return e.Err
}
