package config

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	"github.com/osintkit/attest/pkg/log"
)

// Watcher watches a configuration file for changes. The parent directory is
// watched rather than the file itself, so editors that replace the file on
// save are still observed.
type Watcher struct {
	watcher *fsnotify.Watcher
	path    string
}

func NewWatcher(path string) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create fsnotify watcher: %w", err)
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolve path %q: %w", path, err)
	}

	err = fsw.Add(filepath.Dir(absPath))
	if err != nil {
		return nil, fmt.Errorf("add path to watcher: %w", err)
	}

	return &Watcher{
		watcher: fsw,
		path:    absPath,
	}, nil
}

// Watch blocks until ctx is done, invoking onChange each time the watched
// file's content changes.
func (w *Watcher) Watch(ctx context.Context, onChange func()) {
	logger := log.WithContext(ctx)

	logger.DebugContext(ctx, "watching configuration file",
		slog.String("path", w.path),
	)

	for {
		select {
		case <-ctx.Done():
			return

		case evt, ok := <-w.watcher.Events:
			if !ok {
				return
			}

			if evt.Name != w.path {
				continue
			}

			// Ignore events that are not related to file content changes.
			if evt.Has(fsnotify.Chmod) {
				continue
			}

			logger.DebugContext(ctx, "configuration file changed",
				slog.String("event", evt.String()),
			)

			onChange()

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}

			logger.ErrorContext(ctx, "watch configuration file", slog.Any("error", err))
		}
	}
}

func (w *Watcher) Close() error {
	err := w.watcher.Close()
	if err != nil {
		return fmt.Errorf("close fsnotify watcher: %w", err)
	}

	return nil
}
