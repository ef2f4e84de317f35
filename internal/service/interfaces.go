// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package service implements the bridge item operations both apps call.
//
// BridgeItemService encrypts items with the shared key before they reach the
// store and decrypts them on the way out. A validation decorator can be
// stacked on top of it with Wrap.
package service

import (
	"context"

	"github.com/MKhiriev/go-authenticator-bridge/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// BridgeItemService is the API of the shared item store.
type BridgeItemService interface {
	// DeleteAllForUser removes every item of userID. Deleting an account
	// without items succeeds.
	DeleteAllForUser(ctx context.Context, userID string) error

	// FetchAllForUser returns the decrypted items of userID ordered by id.
	FetchAllForUser(ctx context.Context, userID string) ([]models.ItemView, error)

	// FetchTemporaryItem returns the item parked by InsertTemporaryItem and
	// removes it from the store. It returns nil when nothing is parked.
	FetchTemporaryItem(ctx context.Context) (*models.ItemView, error)

	// InsertItems encrypts items and adds them to userID's set.
	InsertItems(ctx context.Context, items []models.ItemView, userID string) error

	// InsertTemporaryItem parks item under the temporary account, replacing
	// whatever was parked before.
	InsertTemporaryItem(ctx context.Context, item models.ItemView) error

	// IsSyncOn reports whether the shared key exists.
	IsSyncOn(ctx context.Context) (bool, error)

	// ReplaceAllItems atomically swaps userID's set for items.
	ReplaceAllItems(ctx context.Context, items []models.ItemView, userID string) error

	// SharedItemsFeed emits the items of every account but the temporary
	// one, first immediately and then after every change. The channel is
	// closed when ctx is done or after an update carrying an error.
	SharedItemsFeed(ctx context.Context) (<-chan models.SharedItemsUpdate, error)
}

// BridgeItemServiceWrapper decorates a BridgeItemService.
type BridgeItemServiceWrapper interface {
	Wrap(BridgeItemService) BridgeItemService
}
