// Package workers provides the long-running background jobs of the bridge
// and a Workers aggregate that runs them side by side.
//
// Two jobs exist:
//   - VaultFileSyncWorker re-publishes the items of a vault export file
//     whenever the file changes;
//   - StoreRefreshWorker reloads the view context when another process
//     writes to the shared database file.
package workers

import "context"

// Worker is implemented by every background job. Run blocks until ctx is
// canceled or the job fails.
//
// Example implementation:
//
//	type MyWorker struct{}
//
//	func (w *MyWorker) Run(ctx context.Context) error {
//	    <-ctx.Done()
//	    return nil
//	}
type Worker interface {
	Run(ctx context.Context) error
}
