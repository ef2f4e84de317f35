//go:build darwin

package keychain

import (
	"context"
	"errors"
	"fmt"

	gokeychain "github.com/keybase/go-keychain"
)

// systemKeychainService stores entries as generic passwords in the macOS /
// iOS keychain.
type systemKeychainService struct{}

// NewSystemKeychainService returns the OS keychain backend.
func NewSystemKeychainService() (KeychainService, error) {
	return &systemKeychainService{}, nil
}

func (s *systemKeychainService) Add(_ context.Context, attrs Attributes) error {
	item := newGenericPasswordItem(attrs.Query)
	item.SetData(attrs.Data)
	item.SetSynchronizable(gokeychain.SynchronizableNo)
	item.SetAccessible(toAccessible(attrs.Accessible))

	if err := gokeychain.AddItem(item); err != nil {
		if errors.Is(err, gokeychain.ErrorDuplicateItem) {
			return ErrDuplicateItem
		}
		return fmt.Errorf("keychain add %q: %w", attrs.Account, err)
	}
	return nil
}

func (s *systemKeychainService) Delete(_ context.Context, q Query) error {
	item := newGenericPasswordItem(q)

	if err := gokeychain.DeleteItem(item); err != nil {
		if errors.Is(err, gokeychain.ErrorItemNotFound) {
			return ErrItemNotFound
		}
		return fmt.Errorf("keychain delete %q: %w", q.Account, err)
	}
	return nil
}

func (s *systemKeychainService) Search(_ context.Context, q Query) ([]byte, error) {
	item := newGenericPasswordItem(q)
	item.SetMatchLimit(gokeychain.MatchLimitOne)
	item.SetReturnAttributes(true)
	item.SetReturnData(true)

	results, err := gokeychain.QueryItem(item)
	if err != nil {
		if errors.Is(err, gokeychain.ErrorItemNotFound) {
			return nil, ErrItemNotFound
		}
		return nil, fmt.Errorf("keychain search %q: %w", q.Account, err)
	}
	if len(results) == 0 {
		return nil, ErrItemNotFound
	}
	return results[0].Data, nil
}

func newGenericPasswordItem(q Query) gokeychain.Item {
	item := gokeychain.NewItem()
	item.SetSecClass(gokeychain.SecClassGenericPassword)
	item.SetService(q.Service)
	item.SetAccount(q.Account)
	if q.AccessGroup != "" {
		item.SetAccessGroup(q.AccessGroup)
	}
	return item
}

func toAccessible(a Accessible) gokeychain.Accessible {
	if a == AccessibleWhenUnlockedThisDeviceOnly {
		return gokeychain.AccessibleWhenUnlockedThisDeviceOnly
	}
	return gokeychain.AccessibleAfterFirstUnlockThisDeviceOnly
}
