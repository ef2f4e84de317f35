package service

import (
	"context"

	"github.com/MKhiriev/go-authenticator-bridge/internal/logger"
	"github.com/MKhiriev/go-authenticator-bridge/internal/store"
	"github.com/MKhiriev/go-authenticator-bridge/models"
)

// sharedItemsPredicate selects the items every account published.
var sharedItemsPredicate = store.Predicate{ExcludeUserID: models.TemporaryUserID}

func (s *bridgeItemService) SharedItemsFeed(ctx context.Context) (<-chan models.SharedItemsUpdate, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	view := s.store.ViewContext()
	// subscribe before the first read so no change can slip in between
	changes, unsubscribe := view.Subscribe()
	out := make(chan models.SharedItemsUpdate, 1)

	go func() {
		defer close(out)
		defer unsubscribe()

		log := logger.FromContext(ctx)

		for {
			update := s.sharedItems(ctx, view)

			select {
			case out <- update:
			case <-ctx.Done():
				return
			}

			if update.Err != nil {
				log.Err(update.Err).
					Str("func", "bridgeItemService.SharedItemsFeed").
					Msg("feed stopped")
				return
			}

			select {
			case <-ctx.Done():
				return
			case _, ok := <-changes:
				if !ok {
					return
				}
			}
		}
	}()

	return out, nil
}

// sharedItems reads one snapshot of the feed. The view context already
// orders records by user id, then id, and decryption keeps that order.
func (s *bridgeItemService) sharedItems(ctx context.Context, view store.ObjectContext) models.SharedItemsUpdate {
	records, err := view.Fetch(ctx, sharedItemsPredicate)
	if err != nil {
		return models.SharedItemsUpdate{Err: err}
	}

	views, err := s.decryptRecords(ctx, records)
	if err != nil {
		return models.SharedItemsUpdate{Err: err}
	}

	return models.SharedItemsUpdate{Items: views}
}
