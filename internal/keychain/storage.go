// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package keychain

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-authenticator-bridge/internal/logger"
)

// sharedKeychainStorage implements [SharedKeychainStorage] on top of a
// [KeychainService]. Every entry it writes lives under the same access group
// and service, with the item's unformatted key as the account.
type sharedKeychainStorage struct {
	keychain    KeychainService
	accessGroup string
	service     string
}

// NewSharedKeychainStorage returns storage scoped to accessGroup and service.
func NewSharedKeychainStorage(keychain KeychainService, accessGroup, service string) SharedKeychainStorage {
	return &sharedKeychainStorage{
		keychain:    keychain,
		accessGroup: accessGroup,
		service:     service,
	}
}

// GetValue implements [SharedKeychainStorage].
func (s *sharedKeychainStorage) GetValue(ctx context.Context, item SharedKeychainItem, target any) error {
	log := logger.FromContext(ctx)

	data, err := s.keychain.Search(ctx, s.query(item))
	if err != nil {
		if errors.Is(err, ErrItemNotFound) {
			log.Debug().
				Str("func", "sharedKeychainStorage.GetValue").
				Str("item", item.UnformattedKey()).
				Msg("keychain item not found")
			return &KeyNotFoundError{Item: item}
		}
		log.Err(err).
			Str("func", "sharedKeychainStorage.GetValue").
			Str("item", item.UnformattedKey()).
			Msg("failed to search keychain")
		return fmt.Errorf("%w: %w", ErrSearchingItem, err)
	}

	if len(data) == 0 {
		return &KeyNotFoundError{Item: item}
	}

	if err = json.Unmarshal(data, target); err != nil {
		log.Warn().
			Err(err).
			Str("func", "sharedKeychainStorage.GetValue").
			Str("item", item.UnformattedKey()).
			Msg("stored keychain value cannot be decoded")
		return &KeyNotFoundError{Item: item, Err: err}
	}

	return nil
}

// SetValue implements [SharedKeychainStorage]. The old entry is removed
// before the new one is added; a missing old entry is fine.
func (s *sharedKeychainStorage) SetValue(ctx context.Context, item SharedKeychainItem, value any) error {
	log := logger.FromContext(ctx)

	data, err := json.Marshal(value)
	if err != nil {
		log.Err(err).
			Str("func", "sharedKeychainStorage.SetValue").
			Str("item", item.UnformattedKey()).
			Msg("failed to encode keychain value")
		return fmt.Errorf("%w: %w", ErrEncodingValue, err)
	}

	q := s.query(item)
	if err = s.keychain.Delete(ctx, q); err != nil && !errors.Is(err, ErrItemNotFound) {
		log.Err(err).
			Str("func", "sharedKeychainStorage.SetValue").
			Str("item", item.UnformattedKey()).
			Msg("failed to delete previous keychain value")
		return fmt.Errorf("%w: %w", ErrDeletingItem, err)
	}

	err = s.keychain.Add(ctx, Attributes{
		Query:      q,
		Data:       data,
		Accessible: AccessibleAfterFirstUnlockThisDeviceOnly,
	})
	if err != nil {
		log.Err(err).
			Str("func", "sharedKeychainStorage.SetValue").
			Str("item", item.UnformattedKey()).
			Msg("failed to add keychain value")
		return fmt.Errorf("%w: %w", ErrAddingItem, err)
	}

	log.Debug().
		Str("func", "sharedKeychainStorage.SetValue").
		Str("item", item.UnformattedKey()).
		Msg("keychain value stored")
	return nil
}

// DeleteValue implements [SharedKeychainStorage].
func (s *sharedKeychainStorage) DeleteValue(ctx context.Context, item SharedKeychainItem) error {
	err := s.keychain.Delete(ctx, s.query(item))
	if err != nil && !errors.Is(err, ErrItemNotFound) {
		logger.FromContext(ctx).Err(err).
			Str("func", "sharedKeychainStorage.DeleteValue").
			Str("item", item.UnformattedKey()).
			Msg("failed to delete keychain value")
		return fmt.Errorf("%w: %w", ErrDeletingItem, err)
	}
	return nil
}

func (s *sharedKeychainStorage) query(item SharedKeychainItem) Query {
	return Query{
		AccessGroup: s.accessGroup,
		Service:     s.service,
		Account:     item.UnformattedKey(),
	}
}
