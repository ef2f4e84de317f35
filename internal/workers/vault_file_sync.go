// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/awnumar/memguard"
	"gopkg.in/yaml.v3"

	"github.com/MKhiriev/go-authenticator-bridge/internal/config"
	"github.com/MKhiriev/go-authenticator-bridge/internal/crypto"
	"github.com/MKhiriev/go-authenticator-bridge/internal/keychain"
	"github.com/MKhiriev/go-authenticator-bridge/internal/logger"
	"github.com/MKhiriev/go-authenticator-bridge/internal/service"
	"github.com/MKhiriev/go-authenticator-bridge/internal/utils"
	"github.com/MKhiriev/go-authenticator-bridge/models"
)

// IDGenerator assigns ids to exported items that have none.
type IDGenerator interface {
	Generate() string
}

// VaultFileSyncWorker keeps the shared items of one account in line with a
// vault export file. Every time the file settles after a change, its items
// replace the account's shared items.
type VaultFileSyncWorker struct {
	path     string
	userID   string
	debounce time.Duration

	items service.BridgeItemService
	keys  keychain.SharedKeychainRepository
	ids   IDGenerator

	// mu serializes syncs, lastHash is the content last published
	mu       sync.Mutex
	lastHash string

	logger *logger.Logger
}

func NewVaultFileSyncWorker(
	cfg config.Workers,
	items service.BridgeItemService,
	keys keychain.SharedKeychainRepository,
	ids IDGenerator,
	logger *logger.Logger,
) (*VaultFileSyncWorker, error) {
	if cfg.VaultFile == "" {
		return nil, fmt.Errorf("%w: no path configured", ErrReadingVaultFile)
	}

	return &VaultFileSyncWorker{
		path:     cfg.VaultFile,
		userID:   cfg.UserID,
		debounce: cfg.Debounce,
		items:    items,
		keys:     keys,
		ids:      ids,
		logger:   logger,
	}, nil
}

// Run publishes the current file, then watches it until ctx is canceled.
// A failed sync is logged and retried on the next change.
func (w *VaultFileSyncWorker) Run(ctx context.Context) error {
	ctx = w.logger.WithContext(ctx)

	w.logger.Info().
		Str("func", "VaultFileSyncWorker.Run").
		Str("path", w.path).
		Dur("debounce", w.debounce).
		Msg("watching vault file")

	return watchDebounced(ctx, []string{w.path}, w.debounce, func(ctx context.Context) {
		published, err := w.Sync(ctx)
		if err != nil {
			logger.FromContext(ctx).Err(err).
				Str("func", "VaultFileSyncWorker.Run").
				Str("path", w.path).
				Msg("vault file sync failed")
			return
		}
		if published {
			logger.FromContext(ctx).Info().
				Str("func", "VaultFileSyncWorker.Run").
				Str("path", w.path).
				Msg("vault file published")
		}
	})
}

// Sync reads the file and publishes its items unless the content is the
// one published last. It reports whether anything was published.
func (w *VaultFileSyncWorker) Sync(ctx context.Context) (bool, error) {
	data, err := os.ReadFile(w.path)
	if err != nil {
		return false, fmt.Errorf("%w: %w", ErrReadingVaultFile, err)
	}
	sum := utils.HashString(data)

	w.mu.Lock()
	defer w.mu.Unlock()

	if sum == w.lastHash {
		return false, nil
	}

	doc, err := DecodeVaultFile(w.path, data)
	if err != nil {
		return false, err
	}

	userID := doc.UserID
	if userID == "" {
		userID = w.userID
	}
	if userID == "" {
		return false, ErrMissingUserID
	}

	if n := utils.AssignMissingIDs(doc.Items, w.ids.Generate); n > 0 {
		logger.FromContext(ctx).Debug().
			Str("func", "VaultFileSyncWorker.Sync").
			Int("assigned", n).
			Msg("assigned ids to exported items")
	}

	if err = w.ensureKey(ctx); err != nil {
		return false, err
	}

	if err = w.items.ReplaceAllItems(ctx, doc.Items, userID); err != nil {
		return false, err
	}

	w.lastHash = sum
	return true, nil
}

// ensureKey provisions the authenticator key on first sync so the other
// side of the bridge can read what gets published.
func (w *VaultFileSyncWorker) ensureKey(ctx context.Context) error {
	key, err := w.keys.GetAuthenticatorKey(ctx)
	if err == nil {
		memguard.WipeBytes(key)
		return nil
	}
	if !errors.Is(err, keychain.ErrKeyNotFound) {
		return err
	}

	key, err = crypto.GenerateKey()
	if err != nil {
		return err
	}
	defer memguard.WipeBytes(key)

	if err = w.keys.SetAuthenticatorKey(ctx, key); err != nil {
		return err
	}

	logger.FromContext(ctx).Info().
		Str("func", "VaultFileSyncWorker.ensureKey").
		Str("fingerprint", crypto.Fingerprint(key)).
		Msg("generated authenticator key")
	return nil
}

// DecodeVaultFile decodes an export document, YAML for .yaml and .yml
// files and JSON otherwise.
func DecodeVaultFile(path string, data []byte) (models.UserItems, error) {
	var doc models.UserItems

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return models.UserItems{}, fmt.Errorf("%w: %w", ErrDecodingVaultFile, err)
		}
	default:
		if err := json.Unmarshal(data, &doc); err != nil {
			return models.UserItems{}, fmt.Errorf("%w: %w", ErrDecodingVaultFile, err)
		}
	}

	return doc, nil
}
