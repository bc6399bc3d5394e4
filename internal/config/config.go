// Package config provides configuration management for the duct daemon
// and CLI.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/runger/duct/ipc"
)

// Config represents the ductd configuration.
type Config struct {
	Daemon DaemonConfig `yaml:"daemon"`
}

// DaemonConfig holds daemon-related settings.
type DaemonConfig struct {
	Channel    string `yaml:"channel"`     // Channel name resolved to the platform path
	SocketPath string `yaml:"socket_path"` // Literal socket path (overrides channel resolution)
	Transport  string `yaml:"transport"`   // stream or datagram
	Mode       string `yaml:"mode"`        // private, world, umask, or octal bits like "0640"
	LogLevel   string `yaml:"log_level"`   // debug, info, warn, error
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() *Config {
	return &Config{
		Daemon: DaemonConfig{
			Channel:   "ductd",
			Transport: "stream",
			Mode:      "private",
			LogLevel:  "info",
		},
	}
}

// LoadFromFile reads the YAML config at path, layering it over the
// defaults. A missing file is not an error; defaults (plus environment
// overrides) are returned.
func LoadFromFile(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			cfg.ApplyEnvOverrides()
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	cfg.ApplyEnvOverrides()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// ApplyEnvOverrides applies environment variables on top of the loaded
// configuration. DUCT_SOCKET overrides the socket path, DUCT_CHANNEL the
// channel name.
func (c *Config) ApplyEnvOverrides() {
	if path := os.Getenv("DUCT_SOCKET"); path != "" {
		c.Daemon.SocketPath = path
	}
	if channel := os.Getenv("DUCT_CHANNEL"); channel != "" {
		c.Daemon.Channel = channel
	}
}

// Validate checks enumerated fields.
func (c *Config) Validate() error {
	if _, err := c.ConnectionType(); err != nil {
		return err
	}
	if _, err := c.SecurityAttributes(); err != nil {
		return err
	}
	switch c.Daemon.LogLevel {
	case "", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("unknown log_level %q", c.Daemon.LogLevel)
	}
	return nil
}

// Addr returns the channel address the daemon binds: the literal socket
// path when set, otherwise the resolved channel name.
func (c *Config) Addr() ipc.Addr {
	if c.Daemon.SocketPath != "" {
		return ipc.PathName(c.Daemon.SocketPath)
	}
	return ipc.ChannelID(c.Daemon.Channel)
}

// ConnectionType parses the configured transport variant.
func (c *Config) ConnectionType() (ipc.ConnectionType, error) {
	return ParseConnectionType(c.Daemon.Transport)
}

// ParseConnectionType maps a transport name to its variant.
func ParseConnectionType(s string) (ipc.ConnectionType, error) {
	switch strings.ToLower(s) {
	case "", "stream":
		return ipc.Stream, nil
	case "datagram", "seqpacket":
		return ipc.Datagram, nil
	default:
		return ipc.Stream, fmt.Errorf("unknown transport %q (want stream or datagram)", s)
	}
}

// SecurityAttributes parses the configured permission mode.
func (c *Config) SecurityAttributes() (ipc.SecurityAttributes, error) {
	switch strings.ToLower(c.Daemon.Mode) {
	case "", "private":
		return ipc.EmptySecurityAttributes(), nil
	case "world":
		return ipc.EmptySecurityAttributes().AllowEveryoneConnect(), nil
	case "umask":
		return ipc.AllowEveryoneCreate(), nil
	}
	bits, err := strconv.ParseUint(c.Daemon.Mode, 8, 32)
	if err != nil {
		return ipc.SecurityAttributes{}, fmt.Errorf("unknown mode %q (want private, world, umask, or octal bits)", c.Daemon.Mode)
	}
	return ipc.EmptySecurityAttributes().WithMode(os.FileMode(bits)), nil
}

// DefaultConfigFile returns the path of the config file ductd loads when
// no --config flag is given: $XDG_CONFIG_HOME/duct/config.yaml, falling
// back to ~/.config/duct/config.yaml.
func DefaultConfigFile() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			home = "/tmp"
		}
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "duct", "config.yaml")
}
