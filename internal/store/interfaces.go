// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"

	"github.com/MKhiriev/go-authenticator-bridge/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// BridgeDataStore is the transactional façade over the shared bridge_items
// table. Writes only happen through the three batch operations; each runs in
// a single transaction on the background context and, once committed, is
// merged into every live [ObjectContext].
type BridgeDataStore interface {
	// ExecuteBatchDelete removes every record matching req.
	ExecuteBatchDelete(ctx context.Context, req BatchDeleteRequest) (ChangeSet, error)

	// ExecuteBatchInsert adds req.Items for req.UserID.
	ExecuteBatchInsert(ctx context.Context, req BatchInsertRequest) (ChangeSet, error)

	// ExecuteBatchReplace runs del and then ins inside one transaction and
	// one merge, so readers never observe the gap between them.
	ExecuteBatchReplace(ctx context.Context, del BatchDeleteRequest, ins BatchInsertRequest) (ChangeSet, error)

	// Fetch reads matching records straight from the database.
	Fetch(ctx context.Context, p Predicate) ([]models.BridgeItemRecord, error)

	// ViewContext is the main read context.
	ViewContext() ObjectContext

	// NewBackgroundContext registers another read context that receives
	// the same merges as the view context.
	NewBackgroundContext() ObjectContext

	Close() error
}

// ObjectContext is an in-memory snapshot of bridge records kept current by
// the data store's merges.
type ObjectContext interface {
	// Fetch returns matching records ordered by user id, then id.
	Fetch(ctx context.Context, p Predicate) ([]models.BridgeItemRecord, error)

	// Count returns the number of matching records.
	Count(ctx context.Context, p Predicate) (int, error)

	// Subscribe returns a channel that receives a signal after every change
	// to the snapshot, and a function that cancels the subscription.
	// Signals are coalesced: a slow reader sees at least one signal after
	// the latest change, not one per change.
	Subscribe() (<-chan struct{}, func())

	// Refresh reloads the snapshot from the database. It picks up writes
	// made by other processes sharing the database file.
	Refresh(ctx context.Context) error
}
