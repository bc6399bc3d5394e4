package ipc

import (
	"context"
	"log/slog"
	"net"
	"os"
	"sync"
	"time"
)

// Incoming is the lazy, unbounded sequence of connections accepted by a
// bound endpoint. It owns exactly one listener and, when the endpoint
// created the socket file itself, the socket path for later removal.
//
// Close deletes the owned socket file so a listening socket cleans up
// after itself; deletion failures are logged at debug level and never
// surfaced. A sequence built with FromListener owns no path and deletes
// nothing.
type Incoming struct {
	ln   net.Listener
	kind ConnectionType
	path string

	// deadline is non-nil when the listener supports accept deadlines,
	// which is how Accept honors context cancellation.
	deadline interface{ SetDeadline(time.Time) error }

	closeOnce sync.Once
	closeErr  error
}

func newIncoming(ln net.Listener, kind ConnectionType, ownedPath string) *Incoming {
	in := &Incoming{
		ln:   ln,
		kind: kind,
		path: ownedPath,
	}
	if d, ok := ln.(interface{ SetDeadline(time.Time) error }); ok {
		in.deadline = d
	}
	return in
}

// Accept waits for and returns the next connection, tagged with the
// sequence's transport variant. It blocks only the calling goroutine;
// readiness is multiplexed by the runtime poller.
//
// A single failed accept returns that error and leaves the sequence
// usable, so callers decide whether to keep polling. Accept returns
// ctx.Err() when the context is cancelled (on listeners without deadline
// support, cancellation is only observed via Close). After Close, Accept
// returns an error satisfying errors.Is(err, net.ErrClosed).
func (in *Incoming) Accept(ctx context.Context) (*Conn, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if in.deadline != nil && ctx.Done() != nil {
		stop := context.AfterFunc(ctx, func() {
			_ = in.deadline.SetDeadline(time.Now())
		})
		defer func() {
			if !stop() {
				// The cancel hook ran; clear the poisoned deadline so
				// later Accept calls are not affected.
				_ = in.deadline.SetDeadline(time.Time{})
			}
		}()
	}

	conn, err := in.ln.Accept()
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		return nil, err
	}
	return &Conn{kind: in.kind, conn: conn}, nil
}

// ConnectionType returns the transport variant of accepted connections.
func (in *Incoming) ConnectionType() ConnectionType {
	return in.kind
}

// Addr returns the listener's local address.
func (in *Incoming) Addr() net.Addr {
	return in.ln.Addr()
}

// Close shuts down the listener and removes the owned socket file, if
// any. It is idempotent and safe to defer on every exit path; pending
// Accept calls unblock with net.ErrClosed.
func (in *Incoming) Close() error {
	in.closeOnce.Do(func() {
		in.closeErr = in.ln.Close()
		if in.path == "" {
			return
		}
		if err := os.Remove(in.path); err != nil {
			if !os.IsNotExist(err) {
				slog.Debug("failed to remove socket file", "path", in.path, "error", err)
			}
			return
		}
		slog.Debug("removed socket file", "path", in.path)
	})
	return in.closeErr
}

// Listener adapts the sequence to net.Listener so servers that consume
// one (grpc.Server.Serve, http.Server.Serve) can run directly on a bound
// endpoint. Accepted connections are *Conn values.
func (in *Incoming) Listener() net.Listener {
	return netListener{in}
}

type netListener struct {
	in *Incoming
}

func (l netListener) Accept() (net.Conn, error) {
	return l.in.Accept(context.Background())
}

func (l netListener) Close() error {
	return l.in.Close()
}

func (l netListener) Addr() net.Addr {
	return l.in.Addr()
}
