// Package watcher re-runs a callback when any of a set of input files changes.
package watcher

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

const DefaultDebounce = 500 * time.Millisecond

// Watcher watches input files for changes
type Watcher struct {
	paths    []string
	onChange func(ctx context.Context, changed []string)
	debounce time.Duration
	logger   *zap.Logger
}

// New creates a watcher for paths. onChange runs on the watch goroutine,
// so two invocations never overlap.
func New(paths []string, onChange func(ctx context.Context, changed []string)) *Watcher {
	return &Watcher{
		paths:    paths,
		onChange: onChange,
		debounce: DefaultDebounce,
		logger:   zap.NewNop(),
	}
}

// WithDebounce sets the debounce duration
func (w *Watcher) WithDebounce(d time.Duration) *Watcher {
	if d > 0 {
		w.debounce = d
	}
	return w
}

// WithLogger sets the logger
func (w *Watcher) WithLogger(logger *zap.Logger) *Watcher {
	if logger != nil {
		w.logger = logger
	}
	return w
}

// Watch blocks until the context is cancelled or the underlying watcher
// fails. Parent directories are watched so that editors replacing a file
// are still noticed.
func (w *Watcher) Watch(ctx context.Context) error {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer fsw.Close()

	watchedDirs := make(map[string]bool)
	fileSet := make(map[string]bool)

	for _, path := range w.paths {
		absPath, err := filepath.Abs(path)
		if err != nil {
			return fmt.Errorf("resolve %s: %w", path, err)
		}

		dir := filepath.Dir(absPath)
		if !watchedDirs[dir] {
			if err := fsw.Add(dir); err != nil {
				return fmt.Errorf("watch directory %s: %w", dir, err)
			}
			watchedDirs[dir] = true
		}

		fileSet[absPath] = true
		w.logger.Info("Watching for changes", zap.String("path", absPath))
	}

	timer := time.NewTimer(w.debounce)
	if !timer.Stop() {
		<-timer.C
	}
	defer timer.Stop()

	pending := make(map[string]bool)

	for {
		select {
		case event, ok := <-fsw.Events:
			if !ok {
				return nil
			}

			absPath, err := filepath.Abs(event.Name)
			if err != nil || !fileSet[absPath] {
				continue
			}

			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) != 0 {
				pending[absPath] = true
				timer.Reset(w.debounce)
			}

		case <-timer.C:
			if len(pending) == 0 {
				continue
			}
			changed := make([]string, 0, len(pending))
			for _, path := range w.paths {
				if abs, _ := filepath.Abs(path); pending[abs] {
					changed = append(changed, abs)
				}
			}
			clear(pending)
			w.logger.Info("Input changed", zap.Strings("paths", changed))
			w.onChange(ctx, changed)

		case err, ok := <-fsw.Errors:
			if !ok {
				return nil
			}
			w.logger.Warn("Watcher error", zap.Error(err))

		case <-ctx.Done():
			return ctx.Err()
		}
	}
}
