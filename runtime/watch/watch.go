// Package watch re-runs a scan whenever its input file changes.
package watch

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog"
)

// File calls run once, then again after every change to path, until ctx is
// cancelled. Errors from run are logged and do not stop the watch.
//
// The parent directory is watched, not the file: saves that rename a new
// file into place must still trigger.
func File(ctx context.Context, path string, logger zerolog.Logger, run func() error) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("resolving %s: %w", path, err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating watcher: %w", err)
	}
	defer func() { _ = watcher.Close() }()

	if err := watcher.Add(filepath.Dir(abs)); err != nil {
		return fmt.Errorf("watching %s: %w", filepath.Dir(abs), err)
	}

	runOnce := func() {
		if err := run(); err != nil {
			logger.Error().Err(err).Str("file", path).Msg("scan failed")
		}
	}

	runOnce()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != abs {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			logger.Debug().Str("file", path).Str("op", event.Op.String()).Msg("change detected")
			runOnce()

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Warn().Err(err).Str("file", path).Msg("watch error")
		}
	}
}
