package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/go-authenticator-bridge/internal/logger"
	"github.com/MKhiriev/go-authenticator-bridge/internal/store"
)

// StoreRefreshWorker reloads an object context whenever the shared database
// file or its write-ahead log changes on disk. Batches from this process are
// merged directly, so only writes of other processes make a reload notify.
type StoreRefreshWorker struct {
	dbPath   string
	view     store.ObjectContext
	debounce time.Duration

	logger *logger.Logger
}

// NewStoreRefreshWorker watches dbPath. An empty dbPath (memory store) makes
// Run wait for cancellation without watching anything.
func NewStoreRefreshWorker(dbPath string, view store.ObjectContext, debounce time.Duration, logger *logger.Logger) *StoreRefreshWorker {
	return &StoreRefreshWorker{
		dbPath:   dbPath,
		view:     view,
		debounce: debounce,
		logger:   logger,
	}
}

func (w *StoreRefreshWorker) Run(ctx context.Context) error {
	ctx = w.logger.WithContext(ctx)

	if w.dbPath == "" {
		<-ctx.Done()
		return nil
	}

	paths := []string{w.dbPath, w.dbPath + "-wal"}
	return watchDebounced(ctx, paths, w.debounce, func(ctx context.Context) {
		if err := w.view.Refresh(ctx); err != nil {
			logger.FromContext(ctx).Err(err).
				Str("func", "StoreRefreshWorker.Run").
				Str("path", w.dbPath).
				Msg("failed to refresh view context")
		}
	})
}
