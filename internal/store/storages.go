package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-authenticator-bridge/internal/config"
	"github.com/MKhiriev/go-authenticator-bridge/internal/logger"
)

// Storages groups the storage layer handed to the service layer.
type Storages struct {
	// BridgeDataStore is the shared item store.
	BridgeDataStore BridgeDataStore

	// DatabasePath is the shared database file, empty for a memory store.
	DatabasePath string
}

// NewStorages opens the database named by cfg.DB, runs pending migrations
// and builds the data store on top.
func NewStorages(ctx context.Context, cfg config.Storage, logger *logger.Logger) (*Storages, error) {
	logger.Info().Msg("creating new storages...")

	db, err := NewConnectSQLite(ctx, cfg.DB, logger)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	if err := db.Migrate(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return &Storages{
		BridgeDataStore: NewBridgeDataStore(db, logger),
		DatabasePath:    db.Path(),
	}, nil
}
