package store

import "errors"

// Sentinel errors returned by the data store to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrUnscopedDelete is returned when a batch delete carries no user id.
	// Deleting across every account is never a valid bridge operation.
	ErrUnscopedDelete = errors.New("batch delete requires a user id")

	// ErrEncodingItem is returned when an item cannot be serialized into the
	// model_data payload. The batch is aborted before any write.
	ErrEncodingItem = errors.New("failed to encode bridge item")

	// ErrUnknownStoreType is returned for a store type other than
	// "memory" or "persisted".
	ErrUnknownStoreType = errors.New("unknown store type")

	// ErrOpeningDatabase is returned when the SQLite database cannot be
	// opened or does not answer a ping.
	ErrOpeningDatabase = errors.New("failed to open database")
)

// Low-level database operation errors. These are returned (or wrapped) by
// data store methods when a SQL-level operation fails before any domain
// logic can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a query against the
	// database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrBeginningTransaction is returned when the database driver cannot
	// start a new transaction.
	ErrBeginningTransaction = errors.New("failed to begin transaction")

	// ErrCommitingTransaction is returned when committing an open transaction
	// fails. The transaction is considered rolled back at this point.
	ErrCommitingTransaction = errors.New("failed to commit transaction")

	// ErrScanningRows is returned when scanning column values during
	// multi-row iteration fails.
	ErrScanningRows = errors.New("failed to scan bridge item rows")
)
