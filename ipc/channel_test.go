package ipc

import (
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChannelID_Deterministic(t *testing.T) {
	t.Parallel()

	first := ChannelID("app-channel").IPCPath()
	second := ChannelID("app-channel").IPCPath()
	assert.Equal(t, first, second, "same identifier in the same environment must resolve identically")
	assert.NotEmpty(t, first)
}

func TestChannelID_DistinctNames(t *testing.T) {
	t.Parallel()

	assert.NotEqual(t, ChannelID("one").IPCPath(), ChannelID("two").IPCPath())
}

func TestChannelID_RuntimeDir(t *testing.T) {
	if runtime.GOOS == "windows" || runtime.GOOS == "darwin" {
		t.Skip("XDG_RUNTIME_DIR resolution only applies to non-darwin unix")
	}

	t.Setenv("XDG_RUNTIME_DIR", "/run/user/1000")
	path := ChannelID("app").IPCPath()
	assert.Equal(t, filepath.Join("/run/user/1000", "app.sock"), path)
}

func TestChannelID_TempDirFallback(t *testing.T) {
	if runtime.GOOS == "windows" || runtime.GOOS == "darwin" {
		t.Skip("temp-dir fallback only applies to non-darwin unix")
	}

	t.Setenv("XDG_RUNTIME_DIR", "")
	path := ChannelID("app").IPCPath()
	require.True(t, strings.HasSuffix(path, "app.sock"), "path %q should end in app.sock", path)
	assert.NotEqual(t, filepath.Dir(path), "", "fallback path should still have a directory")
}

func TestChannelID_WindowsPipeName(t *testing.T) {
	if runtime.GOOS != "windows" {
		t.Skip("pipe names only apply to windows")
	}

	assert.Equal(t, `\\.\pipe\app`, ChannelID("app").IPCPath())
}

func TestPathName_BypassesResolution(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "/tmp/custom.sock", PathName("/tmp/custom.sock").IPCPath())
}
