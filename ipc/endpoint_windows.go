//go:build windows

package ipc

import (
	"context"
	"fmt"
	"net"

	"github.com/Microsoft/go-winio"
)

// listen creates the named pipe. The security attributes become the
// pipe's security descriptor, and the Datagram variant maps to a
// message-mode pipe so sender write boundaries survive the trip. Named
// pipes vanish with their listener, so the sequence owns no path.
func (e *Endpoint) listen() (*Incoming, error) {
	cfg := &winio.PipeConfig{
		SecurityDescriptor: e.sec.descriptor(),
		MessageMode:        e.kind == Datagram,
	}
	ln, err := winio.ListenPipe(e.path, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to listen on pipe: %w", err)
	}
	return newIncoming(ln, e.kind, ""), nil
}

func dialEndpoint(ctx context.Context, path string, _ ConnectionType) (net.Conn, error) {
	conn, err := winio.DialPipeContext(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to pipe: %w", err)
	}
	return conn, nil
}

// FromListener wraps an already-bound pipe listener in an incoming
// sequence. The sequence owns no path on Windows.
func FromListener(ln net.Listener, kind ConnectionType) *Incoming {
	return newIncoming(ln, kind, "")
}
