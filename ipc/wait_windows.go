//go:build windows

package ipc

import (
	"context"
	"os"
	"time"
)

// waitPathPollInterval is how often the pipe namespace is checked.
// Named pipes have no directory to watch, so Windows polls.
const waitPathPollInterval = 50 * time.Millisecond

// WaitPath blocks until the named pipe exists or the context is done.
// WaitPath does not probe whether a listener is actually accepting, it
// only waits for the pipe to appear in the pipe namespace.
func WaitPath(ctx context.Context, addr Addr) error {
	path := addr.IPCPath()

	ticker := time.NewTicker(waitPathPollInterval)
	defer ticker.Stop()

	for {
		if _, err := os.Stat(path); err == nil {
			return nil
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}
	}
}
