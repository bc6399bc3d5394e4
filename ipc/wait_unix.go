//go:build !windows

package ipc

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// WaitPath blocks until the endpoint's socket file exists or the context
// is done. The parent directory must already exist; it is watched with
// fsnotify so no polling is involved. WaitPath does not probe whether a
// listener is actually accepting, it only waits for the file.
func WaitPath(ctx context.Context, addr Addr) error {
	path := addr.IPCPath()

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer watcher.Close()

	if err := watcher.Add(filepath.Dir(path)); err != nil {
		return fmt.Errorf("failed to watch socket directory: %w", err)
	}

	// Stat after Add, otherwise a bind landing between the two is missed.
	if _, err := os.Stat(path); err == nil {
		return nil
	}

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev, ok := <-watcher.Events:
			if !ok {
				return errors.New("watcher closed")
			}
			if ev.Name == path && ev.Op.Has(fsnotify.Create) {
				return nil
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return errors.New("watcher closed")
			}
			return fmt.Errorf("watch error: %w", err)
		}
	}
}
