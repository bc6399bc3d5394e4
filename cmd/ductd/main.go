// ductd is the duct echo daemon. It binds an IPC endpoint described by
// its config file and echoes every connection until interrupted, cleaning
// up the socket file on the way out.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/runger/duct/internal/config"
	"github.com/runger/duct/internal/echod"
	"github.com/runger/duct/internal/logging"
	"github.com/runger/duct/ipc"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "ductd: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	configPath := flag.String("config", config.DefaultConfigFile(), "path to config file")
	flag.Parse()

	cfg, err := config.LoadFromFile(*configPath)
	if err != nil {
		return err
	}

	logger := logging.New(&logging.Config{
		Level: logLevel(cfg.Daemon.LogLevel),
		Debug: os.Getenv("DUCT_DEBUG") == "1",
	})
	slog.SetDefault(logger)

	kind, err := cfg.ConnectionType()
	if err != nil {
		return err
	}
	attrs, err := cfg.SecurityAttributes()
	if err != nil {
		return err
	}

	ep := ipc.New(cfg.Addr(), kind)
	ep.SetSecurityAttributes(attrs)

	in, err := ep.Incoming()
	if err != nil {
		return fmt.Errorf("failed to bind %s: %w", ep.Path(), err)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	// Run closes the incoming sequence, which removes the socket file.
	return echod.New(in, logger).Run(ctx)
}

func logLevel(name string) slog.Level {
	switch name {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
