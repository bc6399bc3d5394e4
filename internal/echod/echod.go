// Package echod implements the ductd echo daemon. It binds an IPC
// endpoint, accepts connections, and writes every message it reads back
// to the peer. It exists as the reference consumer of the transport
// layer and as a live target for the duct CLI.
package echod

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/runger/duct/ipc"
)

// readBufferSize bounds a single echo unit. A datagram larger than this
// is truncated by the transport; streams are echoed in chunks.
const readBufferSize = 64 * 1024

// Server is the echo daemon. It owns the incoming sequence for its
// lifetime and closes it (removing the socket file) when Run returns.
type Server struct {
	in     *ipc.Incoming
	logger *slog.Logger

	wg sync.WaitGroup

	mu       sync.Mutex
	accepted int64
}

// New creates a server around a bound endpoint. A nil logger falls back
// to slog.Default().
func New(in *ipc.Incoming, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	return &Server{in: in, logger: logger}
}

// Run accepts connections until the context is cancelled, then waits for
// in-flight handlers to drain. A single failed accept is logged and the
// loop continues; only cancellation or a closed listener ends it.
func (s *Server) Run(ctx context.Context) error {
	defer s.in.Close()

	s.logger.Info("daemon started",
		"transport", s.in.ConnectionType().String(),
		"addr", s.in.Addr().String(),
	)

	for {
		conn, err := s.in.Accept(ctx)
		if err != nil {
			if ctx.Err() != nil || errors.Is(err, net.ErrClosed) {
				break
			}
			s.logger.Warn("accept failed", "error", err)
			continue
		}

		connID := uuid.NewString()
		s.mu.Lock()
		s.accepted++
		s.mu.Unlock()

		s.wg.Add(1)
		go func() {
			defer s.wg.Done()
			s.handle(conn, connID)
		}()
	}

	s.logger.Info("daemon shutting down", "reason", "context cancelled")
	s.wg.Wait()
	return nil
}

// Accepted returns the number of connections accepted so far.
func (s *Server) Accepted() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.accepted
}

// handle echoes until the peer closes or errors. Each read unit (a chunk
// for streams, a whole message for datagrams) is written back verbatim.
func (s *Server) handle(conn *ipc.Conn, connID string) {
	defer conn.Close()

	logger := s.logger.With("conn_id", connID)
	logger.Debug("connection accepted")
	start := time.Now()

	buf := make([]byte, readBufferSize)
	for {
		n, err := conn.Read(buf)
		if n > 0 {
			if _, werr := conn.Write(buf[:n]); werr != nil {
				logger.Warn("echo write failed", "error", werr)
				return
			}
		}
		if err != nil {
			if errors.Is(err, io.EOF) {
				logger.Debug("connection closed by peer", "duration_ms", time.Since(start).Milliseconds())
			} else {
				logger.Warn("read failed", "error", err)
			}
			return
		}
	}
}
