// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/awnumar/memguard"

	"github.com/MKhiriev/go-authenticator-bridge/internal/crypto"
	"github.com/MKhiriev/go-authenticator-bridge/internal/keychain"
	"github.com/MKhiriev/go-authenticator-bridge/internal/logger"
	"github.com/MKhiriev/go-authenticator-bridge/internal/store"
	"github.com/MKhiriev/go-authenticator-bridge/models"
)

type bridgeItemService struct {
	crypto   crypto.CryptographyService
	keychain keychain.SharedKeychainRepository
	store    store.BridgeDataStore

	logger *logger.Logger
}

func NewBridgeItemService(
	cryptoService crypto.CryptographyService,
	keychainRepository keychain.SharedKeychainRepository,
	dataStore store.BridgeDataStore,
	logger *logger.Logger,
) BridgeItemService {
	return &bridgeItemService{
		crypto:   cryptoService,
		keychain: keychainRepository,
		store:    dataStore,
		logger:   logger,
	}
}

func (s *bridgeItemService) DeleteAllForUser(ctx context.Context, userID string) error {
	_, err := s.store.ExecuteBatchDelete(ctx, store.BatchDeleteRequest{Predicate: store.ByUserID(userID)})
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "bridgeItemService.DeleteAllForUser").
			Str("user_id", userID).
			Msg("failed to delete items")
		return fmt.Errorf("delete items of %s: %w", userID, err)
	}
	return nil
}

// FetchAllForUser reads committed rows, so writes of the other app are seen
// as soon as they are committed. One read sees a replace either before or
// after, never in between.
func (s *bridgeItemService) FetchAllForUser(ctx context.Context, userID string) ([]models.ItemView, error) {
	_, views, err := s.fetchForUser(ctx, "bridgeItemService.FetchAllForUser", userID)
	return views, err
}

// FetchTemporaryItem deletes only the rows it has read. An item parked after
// the read stays for the next call.
func (s *bridgeItemService) FetchTemporaryItem(ctx context.Context) (*models.ItemView, error) {
	records, views, err := s.fetchForUser(ctx, "bridgeItemService.FetchTemporaryItem", models.TemporaryUserID)
	if err != nil {
		return nil, err
	}

	for _, id := range recordIDs(records) {
		_, err = s.store.ExecuteBatchDelete(ctx, store.BatchDeleteRequest{Predicate: store.ByID(models.TemporaryUserID, id)})
		if err != nil {
			logger.FromContext(ctx).Err(err).
				Str("func", "bridgeItemService.FetchTemporaryItem").
				Str("item_id", id).
				Msg("failed to delete temporary item")
			return nil, fmt.Errorf("delete temporary item %s: %w", id, err)
		}
	}

	if len(views) == 0 {
		return nil, nil
	}
	return &views[0], nil
}

func (s *bridgeItemService) fetchForUser(ctx context.Context, funcName, userID string) ([]models.BridgeItemRecord, []models.ItemView, error) {
	log := logger.FromContext(ctx)

	records, err := s.store.Fetch(ctx, store.ByUserID(userID))
	if err != nil {
		log.Err(err).
			Str("func", funcName).
			Str("user_id", userID).
			Msg("failed to fetch items")
		return nil, nil, fmt.Errorf("fetch items of %s: %w", userID, err)
	}

	views, err := s.decryptRecords(ctx, records)
	if err != nil {
		log.Err(err).
			Str("func", funcName).
			Str("user_id", userID).
			Msg("failed to decrypt items")
		return nil, nil, err
	}

	slices.SortStableFunc(views, func(a, b models.ItemView) int { return cmp.Compare(a.ID, b.ID) })
	return records, views, nil
}

func (s *bridgeItemService) InsertItems(ctx context.Context, items []models.ItemView, userID string) error {
	log := logger.FromContext(ctx)

	encrypted, err := s.crypto.EncryptItems(ctx, items)
	if err != nil {
		log.Err(err).
			Str("func", "bridgeItemService.InsertItems").
			Str("user_id", userID).
			Msg("failed to encrypt items")
		return err
	}

	_, err = s.store.ExecuteBatchInsert(ctx, store.BatchInsertRequest{UserID: userID, Items: encrypted})
	if err != nil {
		log.Err(err).
			Str("func", "bridgeItemService.InsertItems").
			Str("user_id", userID).
			Msg("failed to insert items")
		return fmt.Errorf("insert items of %s: %w", userID, err)
	}

	log.Debug().
		Str("func", "bridgeItemService.InsertItems").
		Str("user_id", userID).
		Int("count", len(items)).
		Msg("items inserted")
	return nil
}

func (s *bridgeItemService) InsertTemporaryItem(ctx context.Context, item models.ItemView) error {
	return s.ReplaceAllItems(ctx, []models.ItemView{item}, models.TemporaryUserID)
}

func (s *bridgeItemService) IsSyncOn(ctx context.Context) (bool, error) {
	key, err := s.keychain.GetAuthenticatorKey(ctx)
	if errors.Is(err, keychain.ErrKeyNotFound) {
		return false, nil
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "bridgeItemService.IsSyncOn").
			Msg("failed to read shared key")
		return false, err
	}

	memguard.WipeBytes(key)
	return true, nil
}

func (s *bridgeItemService) ReplaceAllItems(ctx context.Context, items []models.ItemView, userID string) error {
	log := logger.FromContext(ctx)

	encrypted, err := s.crypto.EncryptItems(ctx, items)
	if err != nil {
		log.Err(err).
			Str("func", "bridgeItemService.ReplaceAllItems").
			Str("user_id", userID).
			Msg("failed to encrypt items")
		return err
	}

	_, err = s.store.ExecuteBatchReplace(ctx,
		store.BatchDeleteRequest{Predicate: store.ByUserID(userID)},
		store.BatchInsertRequest{UserID: userID, Items: encrypted},
	)
	if err != nil {
		log.Err(err).
			Str("func", "bridgeItemService.ReplaceAllItems").
			Str("user_id", userID).
			Msg("failed to replace items")
		return fmt.Errorf("replace items of %s: %w", userID, err)
	}

	log.Debug().
		Str("func", "bridgeItemService.ReplaceAllItems").
		Str("user_id", userID).
		Int("count", len(items)).
		Msg("items replaced")
	return nil
}

// decryptRecords decodes the payloads of records and decrypts them as one
// batch. Records without a decodable payload are skipped.
func (s *bridgeItemService) decryptRecords(ctx context.Context, records []models.BridgeItemRecord) ([]models.ItemView, error) {
	encrypted := make([]models.EncryptedItem, 0, len(records))
	for _, r := range records {
		item, err := r.Model()
		if err != nil {
			logger.FromContext(ctx).Warn().Err(fmt.Errorf("%w: %w", ErrDecodingStoredItem, err)).
				Str("func", "bridgeItemService.decryptRecords").
				Int64("object_id", r.ObjectID).
				Msg("skipping stored item")
			continue
		}
		encrypted = append(encrypted, item)
	}

	return s.crypto.DecryptItems(ctx, encrypted)
}

// recordIDs returns the distinct item ids of records in order of appearance.
// An empty id is left out: ByID with it would match every row of the user.
func recordIDs(records []models.BridgeItemRecord) []string {
	seen := make(map[string]struct{}, len(records))
	ids := make([]string, 0, len(records))
	for _, r := range records {
		if r.ID == "" {
			continue
		}
		if _, ok := seen[r.ID]; ok {
			continue
		}
		seen[r.ID] = struct{}{}
		ids = append(ids, r.ID)
	}
	return ids
}
