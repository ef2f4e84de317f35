package store

import (
	"context"
	"database/sql"

	"github.com/MKhiriev/go-authenticator-bridge/internal/logger"
	"github.com/MKhiriev/go-authenticator-bridge/migrations"
)

type DB struct {
	*sql.DB
	// path of the database file, empty for an in-memory database
	path   string
	logger *logger.Logger
}

func (db *DB) Migrate(ctx context.Context) error {
	return migrations.Migrate(ctx, db.DB)
}

// Path returns the database file, or "" for an in-memory database.
func (db *DB) Path() string {
	return db.path
}
