// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/MKhiriev/go-authenticator-bridge/internal/logger"
	"github.com/MKhiriev/go-authenticator-bridge/models"
)

type bridgeDataStore struct {
	db     *DB
	logger *logger.Logger

	// background serializes batches. Changes are merged while it is held,
	// so every context sees them in commit order.
	background sync.Mutex

	contextsMu sync.Mutex
	contexts   []*objectContext
	view       *objectContext
}

// NewBridgeDataStore builds the data store on an already migrated db.
func NewBridgeDataStore(db *DB, logger *logger.Logger) BridgeDataStore {
	s := &bridgeDataStore{
		db:     db,
		logger: logger,
	}
	s.view = s.newContext("view")
	return s
}

func (s *bridgeDataStore) ViewContext() ObjectContext {
	return s.view
}

func (s *bridgeDataStore) NewBackgroundContext() ObjectContext {
	return s.newContext("background")
}

func (s *bridgeDataStore) newContext(name string) *objectContext {
	oc := newObjectContext(name, s.fetchRecords)

	s.contextsMu.Lock()
	s.contexts = append(s.contexts, oc)
	s.contextsMu.Unlock()

	return oc
}

func (s *bridgeDataStore) Close() error {
	return s.db.Close()
}

func (s *bridgeDataStore) Fetch(ctx context.Context, p Predicate) ([]models.BridgeItemRecord, error) {
	return s.fetchRecords(ctx, p)
}

func (s *bridgeDataStore) ExecuteBatchDelete(ctx context.Context, req BatchDeleteRequest) (ChangeSet, error) {
	if req.Predicate.UserID == "" {
		return ChangeSet{}, ErrUnscopedDelete
	}

	return s.runBatch(ctx, "bridgeDataStore.ExecuteBatchDelete", func(tx *sql.Tx) (ChangeSet, error) {
		deleted, err := s.deleteTx(ctx, tx, req.Predicate)
		if err != nil {
			return ChangeSet{}, err
		}
		return ChangeSet{Deleted: deleted}, nil
	})
}

func (s *bridgeDataStore) ExecuteBatchInsert(ctx context.Context, req BatchInsertRequest) (ChangeSet, error) {
	rows, err := encodeRecords(req)
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "bridgeDataStore.ExecuteBatchInsert").
			Str("user_id", req.UserID).
			Msg("failed to encode items")
		return ChangeSet{}, err
	}

	return s.runBatch(ctx, "bridgeDataStore.ExecuteBatchInsert", func(tx *sql.Tx) (ChangeSet, error) {
		inserted, err := s.insertTx(ctx, tx, rows)
		if err != nil {
			return ChangeSet{}, err
		}
		return ChangeSet{Inserted: objectIDs(inserted), inserted: inserted}, nil
	})
}

func (s *bridgeDataStore) ExecuteBatchReplace(ctx context.Context, del BatchDeleteRequest, ins BatchInsertRequest) (ChangeSet, error) {
	if del.Predicate.UserID == "" {
		return ChangeSet{}, ErrUnscopedDelete
	}

	rows, err := encodeRecords(ins)
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "bridgeDataStore.ExecuteBatchReplace").
			Str("user_id", ins.UserID).
			Msg("failed to encode items")
		return ChangeSet{}, err
	}

	return s.runBatch(ctx, "bridgeDataStore.ExecuteBatchReplace", func(tx *sql.Tx) (ChangeSet, error) {
		deleted, err := s.deleteTx(ctx, tx, del.Predicate)
		if err != nil {
			return ChangeSet{}, err
		}
		inserted, err := s.insertTx(ctx, tx, rows)
		if err != nil {
			return ChangeSet{}, err
		}
		return ChangeSet{Deleted: deleted, Inserted: objectIDs(inserted), inserted: inserted}, nil
	})
}

// runBatch runs fn in one transaction and merges the committed changes into
// every context. Nothing is merged when fn or the commit fails.
func (s *bridgeDataStore) runBatch(ctx context.Context, funcName string, fn func(tx *sql.Tx) (ChangeSet, error)) (ChangeSet, error) {
	log := logger.FromContext(ctx)

	s.background.Lock()
	defer s.background.Unlock()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("failed to begin transaction")
		return ChangeSet{}, fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	changes, err := fn(tx)
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("batch failed, rolling back")
		return ChangeSet{}, err
	}

	if err = tx.Commit(); err != nil {
		log.Err(err).Str("func", funcName).Msg("failed to commit transaction")
		return ChangeSet{}, fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	log.Debug().
		Str("func", funcName).
		Int("deleted", len(changes.Deleted)).
		Int("inserted", len(changes.Inserted)).
		Msg("batch committed")

	s.mergeIntoContexts(changes)
	return changes, nil
}

func (s *bridgeDataStore) mergeIntoContexts(changes ChangeSet) {
	s.contextsMu.Lock()
	contexts := append([]*objectContext(nil), s.contexts...)
	s.contextsMu.Unlock()

	for _, oc := range contexts {
		oc.mergeChanges(changes)
	}
}

func (s *bridgeDataStore) deleteTx(ctx context.Context, tx *sql.Tx, p Predicate) ([]int64, error) {
	query, args, err := buildDeleteRecordsQuery(p)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := tx.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var deleted []int64
	for rows.Next() {
		var pk int64
		if err = rows.Scan(&pk); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		deleted = append(deleted, pk)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return deleted, nil
}

func (s *bridgeDataStore) insertTx(ctx context.Context, tx *sql.Tx, records []models.BridgeItemRecord) ([]models.BridgeItemRecord, error) {
	inserted := make([]models.BridgeItemRecord, 0, len(records))

	for start := 0; start < len(records); start += maxInsertRows {
		end := min(start+maxInsertRows, len(records))

		query, args, err := buildInsertRecordsQuery(records[start:end])
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
		}

		rows, err := tx.QueryContext(ctx, query, args...)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
		}

		chunk, err := scanRecords(rows)
		if err != nil {
			return nil, err
		}
		inserted = append(inserted, chunk...)
	}

	return inserted, nil
}

func (s *bridgeDataStore) fetchRecords(ctx context.Context, p Predicate) ([]models.BridgeItemRecord, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectRecordsQuery(p)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "bridgeDataStore.fetchRecords").
			Str("user_id", p.UserID).
			Msg("failed to query bridge items")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	records, err := scanRecords(rows)
	if err != nil {
		log.Err(err).
			Str("func", "bridgeDataStore.fetchRecords").
			Str("user_id", p.UserID).
			Msg("failed to read bridge items")
		return nil, err
	}

	return records, nil
}

// scanRecords reads and closes rows.
func scanRecords(rows *sql.Rows) ([]models.BridgeItemRecord, error) {
	defer rows.Close()

	var records []models.BridgeItemRecord
	for rows.Next() {
		var r models.BridgeItemRecord
		if err := rows.Scan(&r.ObjectID, &r.ID, &r.UserID, &r.ModelData); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		records = append(records, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return records, nil
}

func encodeRecords(req BatchInsertRequest) ([]models.BridgeItemRecord, error) {
	records := make([]models.BridgeItemRecord, 0, len(req.Items))
	for _, item := range req.Items {
		data, err := json.Marshal(item)
		if err != nil {
			return nil, fmt.Errorf("%w (id=%s): %w", ErrEncodingItem, item.ID, err)
		}
		records = append(records, models.BridgeItemRecord{
			ID:        item.ID,
			UserID:    req.UserID,
			ModelData: data,
		})
	}
	return records, nil
}

func objectIDs(records []models.BridgeItemRecord) []int64 {
	if len(records) == 0 {
		return nil
	}
	ids := make([]int64, len(records))
	for i, r := range records {
		ids[i] = r.ObjectID
	}
	return ids
}
