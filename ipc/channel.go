package ipc

import (
	"os"
	"path/filepath"
	"runtime"
)

// ChannelID is an abstract channel name. It resolves to a socket file in
// the platform's per-user runtime or cache directory, or to a named pipe
// on Windows:
//
//  1. Windows: \\.\pipe\<name>
//  2. macOS: ~/Library/Caches/TemporaryItems/<name>.sock
//  3. Other Unix: $XDG_RUNTIME_DIR/<name>.sock
//
// When the preferred directory is unavailable the system temporary
// directory is used instead. Resolution never fails.
type ChannelID string

// IPCPath resolves the channel name to a concrete path.
func (id ChannelID) IPCPath() string {
	if runtime.GOOS == "windows" {
		return `\\.\pipe\` + string(id)
	}

	name := string(id) + ".sock"

	if runtime.GOOS == "darwin" {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, "Library", "Caches", "TemporaryItems", name)
		}
		return filepath.Join(os.TempDir(), name)
	}

	if dir := os.Getenv("XDG_RUNTIME_DIR"); dir != "" {
		return filepath.Join(dir, name)
	}
	return filepath.Join(os.TempDir(), name)
}

// PathName is a literal path that bypasses channel resolution entirely.
// Callers are responsible for supplying a path valid on the current
// platform (a filesystem path on Unix, \\.\pipe\... on Windows).
type PathName string

// IPCPath returns the path unchanged.
func (p PathName) IPCPath() string {
	return string(p)
}
