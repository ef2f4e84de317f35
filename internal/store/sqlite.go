package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"

	"github.com/MKhiriev/go-authenticator-bridge/internal/config"
	"github.com/MKhiriev/go-authenticator-bridge/internal/logger"
)

// DatabaseFileName is the name of the shared database inside the container
// directory. Both apps open the same file.
const DatabaseFileName = "Bitwarden-Authenticator.sqlite"

const memoryDSN = ":memory:"

// NewConnectSQLite opens the bridge database described by cfg.
//
// A persisted database lives in cfg.ContainerDir, which is created if
// needed. It runs in WAL mode with a busy timeout so two processes can share
// it, and every transaction takes the write lock up front. A memory database
// is limited to one connection, since each connection to ":memory:" is a
// separate database.
func NewConnectSQLite(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	var dsn, path string

	switch cfg.Type {
	case config.StoreTypeMemory:
		dsn = memoryDSN
	case config.StoreTypePersisted:
		if err := os.MkdirAll(cfg.ContainerDir, 0o700); err != nil {
			log.Err(err).Str("func", "NewConnectSQLite").Msg("error creating container directory")
			return nil, fmt.Errorf("%w: %w", ErrOpeningDatabase, err)
		}
		path = filepath.Join(cfg.ContainerDir, DatabaseFileName)
		dsn = "file:" + path + "?_journal_mode=WAL&_busy_timeout=5000&_txlock=immediate"
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownStoreType, cfg.Type)
	}

	conn, err := sql.Open("sqlite3", dsn)
	if err != nil {
		log.Err(err).Str("func", "NewConnectSQLite").Msg("error connecting database")
		return nil, fmt.Errorf("%w: %w", ErrOpeningDatabase, err)
	}

	if path == "" {
		conn.SetMaxOpenConns(1)
	}

	// ping database
	if err = conn.PingContext(ctx); err != nil {
		log.Err(err).Str("func", "NewConnectSQLite").Msg("error connecting database (ping)")
		conn.Close()
		return nil, fmt.Errorf("%w: %w", ErrOpeningDatabase, err)
	}
	log.Debug().
		Str("func", "NewConnectSQLite").
		Str("type", cfg.Type).
		Str("path", path).
		Msg("connected to database successfully")

	return &DB{
		DB:     conn,
		path:   path,
		logger: log,
	}, nil
}
