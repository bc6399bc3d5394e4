//go:build !windows

package ipc

import (
	"context"
	"fmt"
	"net"
)

// network maps the transport variant to the net package network name.
// Datagram uses SOCK_SEQPACKET, which preserves message boundaries while
// staying connection-oriented.
func (t ConnectionType) network() string {
	if t == Datagram {
		return "unixpacket"
	}
	return "unix"
}

// listen binds the Unix socket and applies the security attributes to the
// created file. Permissions are forced after bind and before any accept,
// so no connection can race in through a looser mode. On a chmod failure
// the listener is closed but the socket file is left in place.
func (e *Endpoint) listen() (*Incoming, error) {
	ln, err := net.Listen(e.kind.network(), e.path)
	if err != nil {
		return nil, fmt.Errorf("failed to listen on socket: %w", err)
	}
	if ul, ok := ln.(*net.UnixListener); ok {
		// File removal is owned by Incoming.Close, not the net package.
		ul.SetUnlinkOnClose(false)
	}
	if err := e.sec.apply(e.path); err != nil {
		ln.Close()
		return nil, fmt.Errorf("failed to set socket permissions: %w", err)
	}
	return newIncoming(ln, e.kind, e.path), nil
}

func dialEndpoint(ctx context.Context, path string, kind ConnectionType) (net.Conn, error) {
	var d net.Dialer
	conn, err := d.DialContext(ctx, kind.network(), path)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to socket: %w", err)
	}
	return conn, nil
}

// FromListener wraps an already-bound listener in an incoming sequence.
// The sequence does not own the socket path and will not delete any file
// on Close; that remains the caller's responsibility.
func FromListener(ln net.Listener, kind ConnectionType) *Incoming {
	return newIncoming(ln, kind, "")
}
