package keychain

import (
	"context"
	"errors"
	"time"

	"github.com/MKhiriev/go-authenticator-bridge/models"
)

type sharedKeychainRepository struct {
	storage SharedKeychainStorage
}

// NewSharedKeychainRepository builds the typed repository over storage.
func NewSharedKeychainRepository(storage SharedKeychainStorage) SharedKeychainRepository {
	return &sharedKeychainRepository{storage: storage}
}

// GetAuthenticatorKey returns a copy of the shared key that the caller owns
// and may wipe. A missing key is reported as ErrKeyNotFound.
func (r *sharedKeychainRepository) GetAuthenticatorKey(ctx context.Context) ([]byte, error) {
	var key []byte
	if err := r.storage.GetValue(ctx, AuthenticatorKeyItem(), &key); err != nil {
		return nil, err
	}
	if len(key) == 0 {
		return nil, &KeyNotFoundError{Item: AuthenticatorKeyItem()}
	}
	return key, nil
}

func (r *sharedKeychainRepository) SetAuthenticatorKey(ctx context.Context, key []byte) error {
	return r.storage.SetValue(ctx, AuthenticatorKeyItem(), key)
}

func (r *sharedKeychainRepository) DeleteAuthenticatorKey(ctx context.Context) error {
	return r.storage.DeleteValue(ctx, AuthenticatorKeyItem())
}

// GetLastActiveTime returns nil when no time has been recorded.
func (r *sharedKeychainRepository) GetLastActiveTime(ctx context.Context, app models.SharedTimeoutApplication, userID string) (*time.Time, error) {
	var at time.Time
	if err := r.storage.GetValue(ctx, LastActiveTimeItem(app, userID), &at); err != nil {
		if errors.Is(err, ErrKeyNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &at, nil
}

// SetLastActiveTime stores at, or clears the value when at is nil.
func (r *sharedKeychainRepository) SetLastActiveTime(ctx context.Context, app models.SharedTimeoutApplication, userID string, at *time.Time) error {
	item := LastActiveTimeItem(app, userID)
	if at == nil {
		return r.storage.DeleteValue(ctx, item)
	}
	return r.storage.SetValue(ctx, item, at.UTC())
}

// GetVaultTimeout returns nil when no timeout has been recorded.
func (r *sharedKeychainRepository) GetVaultTimeout(ctx context.Context, app models.SharedTimeoutApplication, userID string) (*models.SessionTimeoutValue, error) {
	var value models.SessionTimeoutValue
	if err := r.storage.GetValue(ctx, VaultTimeoutItem(app, userID), &value); err != nil {
		if errors.Is(err, ErrKeyNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &value, nil
}

// SetVaultTimeout stores value, or clears it when value is nil.
func (r *sharedKeychainRepository) SetVaultTimeout(ctx context.Context, app models.SharedTimeoutApplication, userID string, value *models.SessionTimeoutValue) error {
	item := VaultTimeoutItem(app, userID)
	if value == nil {
		return r.storage.DeleteValue(ctx, item)
	}
	return r.storage.SetValue(ctx, item, *value)
}

func (r *sharedKeychainRepository) GetAccountAutoLogout(ctx context.Context, userID string) (bool, error) {
	var enabled bool
	if err := r.storage.GetValue(ctx, AccountAutoLogoutItem(userID), &enabled); err != nil {
		if errors.Is(err, ErrKeyNotFound) {
			return false, nil
		}
		return false, err
	}
	return enabled, nil
}

func (r *sharedKeychainRepository) SetAccountAutoLogout(ctx context.Context, userID string, enabled bool) error {
	return r.storage.SetValue(ctx, AccountAutoLogoutItem(userID), enabled)
}
