// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package keychain holds the secrets both bridge processes share: the
// symmetric authenticator key and a handful of per-account values.
//
// Layers, leaf to root:
//   - KeychainService: add/delete/search by query against a secure store
//     (the OS keychain, a 0600 file, or memory);
//   - SharedKeychainStorage: JSON-encoded values addressed by SharedKeychainItem;
//   - SharedKeychainRepository: typed accessors used by the rest of the bridge.
//
// Every entry is scoped by access group, is readable only after the first
// unlock since boot and never leaves the device.
package keychain

import (
	"context"
	"time"

	"github.com/MKhiriev/go-authenticator-bridge/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/keychain_mock.go -package=mock

// KeychainService is the secure key-value primitive.
type KeychainService interface {
	// Add stores a new entry. It fails with ErrDuplicateItem when an entry
	// matching the same query already exists.
	Add(ctx context.Context, attrs Attributes) error

	// Delete removes the entry matching q. It fails with ErrItemNotFound
	// when nothing matches.
	Delete(ctx context.Context, q Query) error

	// Search returns the data of the single entry matching q, or
	// ErrItemNotFound.
	Search(ctx context.Context, q Query) ([]byte, error)
}

// SharedKeychainStorage reads and writes JSON-encoded values addressed by
// SharedKeychainItem.
type SharedKeychainStorage interface {
	// GetValue decodes the stored value of item into target. A missing or
	// undecodable value is reported as *KeyNotFoundError.
	GetValue(ctx context.Context, item SharedKeychainItem, target any) error

	// SetValue replaces the stored value of item (delete, then add).
	SetValue(ctx context.Context, item SharedKeychainItem, value any) error

	// DeleteValue removes item. Deleting a missing item is not an error.
	DeleteValue(ctx context.Context, item SharedKeychainItem) error
}

// SharedKeychainRepository exposes the shared secrets by meaning.
type SharedKeychainRepository interface {
	GetAuthenticatorKey(ctx context.Context) ([]byte, error)
	SetAuthenticatorKey(ctx context.Context, key []byte) error
	DeleteAuthenticatorKey(ctx context.Context) error

	GetLastActiveTime(ctx context.Context, app models.SharedTimeoutApplication, userID string) (*time.Time, error)
	SetLastActiveTime(ctx context.Context, app models.SharedTimeoutApplication, userID string, at *time.Time) error

	GetVaultTimeout(ctx context.Context, app models.SharedTimeoutApplication, userID string) (*models.SessionTimeoutValue, error)
	SetVaultTimeout(ctx context.Context, app models.SharedTimeoutApplication, userID string, value *models.SessionTimeoutValue) error

	GetAccountAutoLogout(ctx context.Context, userID string) (bool, error)
	SetAccountAutoLogout(ctx context.Context, userID string, enabled bool) error
}
