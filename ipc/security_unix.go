//go:build !windows

package ipc

import (
	"os"

	"golang.org/x/sys/unix"
)

// apply forces the configured permission bits onto the bound socket file.
// Called strictly after bind and before the first accept, so the socket
// is never reachable with looser permissions than configured. A nil mode
// leaves the file as the OS created it.
func (sa SecurityAttributes) apply(path string) error {
	if sa.mode == nil {
		return nil
	}
	if err := unix.Chmod(path, uint32(*sa.mode)); err != nil {
		return &os.PathError{Op: "chmod", Path: path, Err: err}
	}
	return nil
}
