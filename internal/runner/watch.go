package runner

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// Watch solves day from path, then again every time the file is written,
// passing each round of results to onResults. It returns when ctx is done.
func (r *Runner) Watch(ctx context.Context, day int, path string, onResults func([]Result)) error {
	s, err := r.registry.Lookup(day)
	if err != nil {
		return err
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer watcher.Close()

	// Editors often replace files instead of writing them, so watch the directory.
	if err := watcher.Add(filepath.Dir(path)); err != nil {
		return fmt.Errorf("failed to watch %s: %w", filepath.Dir(path), err)
	}

	target := filepath.Clean(path)

	onResults(r.runFile(ctx, s, path))

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-watcher.Events:
			if !ok {
				return nil
			}

			if filepath.Clean(ev.Name) != target || !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) {
				continue
			}

			r.logger.Debug("input changed", zap.String("path", path), zap.Stringer("op", ev.Op))
			onResults(r.runFile(ctx, s, path))
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}

			r.logger.Warn("watch error", zap.Error(err))
		}
	}
}
