package workers

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/MKhiriev/go-authenticator-bridge/internal/logger"
)

// watchDebounced watches the parent directory of every file in paths and
// calls onChange once the watches are in place, then again every time events
// for those files have been quiet for debounce. Watching the directory keeps
// working when editors replace a file by rename. It returns nil when ctx is
// canceled.
func watchDebounced(ctx context.Context, paths []string, debounce time.Duration, onChange func(context.Context)) error {
	log := logger.FromContext(ctx)

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrWatchingFile, err)
	}
	defer watcher.Close()

	wanted := make(map[string]struct{}, len(paths))
	for _, p := range paths {
		p = filepath.Clean(p)
		wanted[p] = struct{}{}
		if err = watcher.Add(filepath.Dir(p)); err != nil {
			return fmt.Errorf("%w: %s: %w", ErrWatchingFile, p, err)
		}
	}

	onChange(ctx)

	// idle until the first matching event
	timer := time.NewTimer(time.Hour)
	timer.Stop()
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if _, match := wanted[filepath.Clean(event.Name)]; !match {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}
			timer.Reset(debounce)

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			log.Warn().Err(err).
				Str("func", "workers.watchDebounced").
				Msg("file watcher error")

		case <-timer.C:
			onChange(ctx)
		}
	}
}
