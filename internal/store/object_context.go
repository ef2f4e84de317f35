package store

import (
	"bytes"
	"cmp"
	"context"
	"slices"
	"sync"

	"github.com/MKhiriev/go-authenticator-bridge/internal/logger"
	"github.com/MKhiriev/go-authenticator-bridge/models"
)

type recordFetcher func(ctx context.Context, p Predicate) ([]models.BridgeItemRecord, error)

// objectContext is a lazily loaded snapshot of bridge_items keyed by pk.
type objectContext struct {
	name  string
	fetch recordFetcher

	mu      sync.RWMutex
	loaded  bool
	records map[int64]models.BridgeItemRecord

	subsMu  sync.Mutex
	nextSub int
	subs    map[int]chan struct{}
}

func newObjectContext(name string, fetch recordFetcher) *objectContext {
	return &objectContext{
		name:    name,
		fetch:   fetch,
		records: make(map[int64]models.BridgeItemRecord),
		subs:    make(map[int]chan struct{}),
	}
}

func (o *objectContext) Fetch(ctx context.Context, p Predicate) ([]models.BridgeItemRecord, error) {
	if err := o.ensureLoaded(ctx); err != nil {
		return nil, err
	}

	o.mu.RLock()
	result := make([]models.BridgeItemRecord, 0, len(o.records))
	for _, r := range o.records {
		if p.matches(r) {
			result = append(result, r)
		}
	}
	o.mu.RUnlock()

	slices.SortFunc(result, compareRecords)
	return result, nil
}

func (o *objectContext) Count(ctx context.Context, p Predicate) (int, error) {
	if err := o.ensureLoaded(ctx); err != nil {
		return 0, err
	}

	o.mu.RLock()
	defer o.mu.RUnlock()

	n := 0
	for _, r := range o.records {
		if p.matches(r) {
			n++
		}
	}
	return n, nil
}

func (o *objectContext) Subscribe() (<-chan struct{}, func()) {
	ch := make(chan struct{}, 1)

	o.subsMu.Lock()
	id := o.nextSub
	o.nextSub++
	o.subs[id] = ch
	o.subsMu.Unlock()

	return ch, func() {
		o.subsMu.Lock()
		defer o.subsMu.Unlock()
		if _, ok := o.subs[id]; ok {
			delete(o.subs, id)
			close(ch)
		}
	}
}

func (o *objectContext) Refresh(ctx context.Context) error {
	o.mu.Lock()
	records, err := o.fetch(ctx, Predicate{})
	if err != nil {
		o.mu.Unlock()
		logger.FromContext(ctx).Err(err).
			Str("func", "objectContext.Refresh").
			Str("context", o.name).
			Msg("failed to reload context")
		return err
	}

	fresh := indexRecords(records)
	changed := !o.loaded || !sameRecords(o.records, fresh)
	o.records = fresh
	o.loaded = true
	o.mu.Unlock()

	if changed {
		o.notify()
	}
	return nil
}

// ensureLoaded reads the whole table on first use. The write lock is held
// during the read, so a merge racing with the load waits for it.
func (o *objectContext) ensureLoaded(ctx context.Context) error {
	o.mu.RLock()
	loaded := o.loaded
	o.mu.RUnlock()
	if loaded {
		return nil
	}

	o.mu.Lock()
	defer o.mu.Unlock()
	if o.loaded {
		return nil
	}

	records, err := o.fetch(ctx, Predicate{})
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "objectContext.ensureLoaded").
			Str("context", o.name).
			Msg("failed to load context")
		return err
	}

	o.records = indexRecords(records)
	o.loaded = true
	return nil
}

// mergeChanges applies deletes and inserts of one committed batch under a
// single lock. An unloaded context skips the merge: its first load reads the
// committed state anyway.
func (o *objectContext) mergeChanges(changes ChangeSet) {
	if changes.Empty() {
		return
	}

	o.mu.Lock()
	if o.loaded {
		for _, pk := range changes.Deleted {
			delete(o.records, pk)
		}
		for _, r := range changes.inserted {
			o.records[r.ObjectID] = r
		}
	}
	o.mu.Unlock()

	o.notify()
}

func (o *objectContext) notify() {
	o.subsMu.Lock()
	defer o.subsMu.Unlock()

	for _, ch := range o.subs {
		select {
		case ch <- struct{}{}:
		default:
		}
	}
}

func indexRecords(records []models.BridgeItemRecord) map[int64]models.BridgeItemRecord {
	m := make(map[int64]models.BridgeItemRecord, len(records))
	for _, r := range records {
		m[r.ObjectID] = r
	}
	return m
}

func sameRecords(a, b map[int64]models.BridgeItemRecord) bool {
	if len(a) != len(b) {
		return false
	}
	for pk, ra := range a {
		rb, ok := b[pk]
		if !ok || ra.ID != rb.ID || ra.UserID != rb.UserID || !bytes.Equal(ra.ModelData, rb.ModelData) {
			return false
		}
	}
	return true
}

func compareRecords(a, b models.BridgeItemRecord) int {
	if c := cmp.Compare(a.UserID, b.UserID); c != 0 {
		return c
	}
	if c := cmp.Compare(a.ID, b.ID); c != 0 {
		return c
	}
	return cmp.Compare(a.ObjectID, b.ObjectID)
}
