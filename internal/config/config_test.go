package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/runger/duct/ipc"
)

func TestDefaultConfig(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()
	assert.Equal(t, "ductd", cfg.Daemon.Channel)
	assert.Equal(t, "stream", cfg.Daemon.Transport)
	assert.Equal(t, "private", cfg.Daemon.Mode)
	require.NoError(t, cfg.Validate())
}

func TestLoadFromFile_MissingFileReturnsDefaults(t *testing.T) {
	cfg, err := LoadFromFile(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "ductd", cfg.Daemon.Channel)
}

func TestLoadFromFile_ParsesYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `daemon:
  channel: myapp
  transport: datagram
  mode: "0640"
  log_level: debug
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cfg, err := LoadFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, "myapp", cfg.Daemon.Channel)

	kind, err := cfg.ConnectionType()
	require.NoError(t, err)
	assert.Equal(t, ipc.Datagram, kind)

	attrs, err := cfg.SecurityAttributes()
	require.NoError(t, err)
	mode, ok := attrs.Mode()
	require.True(t, ok)
	assert.Equal(t, os.FileMode(0o640), mode)
}

func TestLoadFromFile_RejectsBadTransport(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("daemon:\n  transport: carrier-pigeon\n"), 0o600))

	_, err := LoadFromFile(path)
	assert.Error(t, err)
}

func TestApplyEnvOverrides(t *testing.T) {
	t.Setenv("DUCT_SOCKET", "/tmp/override.sock")
	t.Setenv("DUCT_CHANNEL", "other")

	cfg := DefaultConfig()
	cfg.ApplyEnvOverrides()

	assert.Equal(t, "/tmp/override.sock", cfg.Daemon.SocketPath)
	assert.Equal(t, "other", cfg.Daemon.Channel)
	assert.Equal(t, "/tmp/override.sock", cfg.Addr().IPCPath(), "socket path override wins over channel resolution")
}

func TestParseConnectionType(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in      string
		want    ipc.ConnectionType
		wantErr bool
	}{
		{in: "", want: ipc.Stream},
		{in: "stream", want: ipc.Stream},
		{in: "Datagram", want: ipc.Datagram},
		{in: "seqpacket", want: ipc.Datagram},
		{in: "tcp", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseConnectionType(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSecurityAttributes_Modes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		mode     string
		wantMode os.FileMode
		wantSet  bool
		wantErr  bool
	}{
		{mode: "private", wantMode: 0o600, wantSet: true},
		{mode: "world", wantMode: 0o666, wantSet: true},
		{mode: "umask", wantSet: false},
		{mode: "0640", wantMode: 0o640, wantSet: true},
		{mode: "rwx", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.mode, func(t *testing.T) {
			cfg := DefaultConfig()
			cfg.Daemon.Mode = tt.mode

			attrs, err := cfg.SecurityAttributes()
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)

			mode, ok := attrs.Mode()
			assert.Equal(t, tt.wantSet, ok)
			if tt.wantSet {
				assert.Equal(t, tt.wantMode, mode)
			}
		})
	}
}
