package ipc

import (
	"context"
	"net"
)

// Endpoint is an unbound description of a local channel: a resolved path,
// a transport variant, and the security attributes to apply at bind time.
//
// The lifecycle is Unbound -> Bound: Incoming consumes the endpoint, and
// afterwards only the returned sequence and the bound socket file remain.
type Endpoint struct {
	path  string
	sec   SecurityAttributes
	kind  ConnectionType
	bound bool
}

// New constructs an unbound endpoint for the given channel with
// default-restrictive security attributes. It never fails; an unusable
// path only surfaces later from Incoming.
func New(addr Addr, kind ConnectionType) *Endpoint {
	return &Endpoint{
		path: addr.IPCPath(),
		sec:  EmptySecurityAttributes(),
		kind: kind,
	}
}

// SetSecurityAttributes replaces the attributes applied at bind time.
// It has no effect once the endpoint is bound.
func (e *Endpoint) SetSecurityAttributes(sa SecurityAttributes) {
	e.sec = sa
}

// Path returns the resolved platform path of the endpoint.
func (e *Endpoint) Path() string {
	return e.path
}

// ConnectionType returns the transport variant the endpoint binds.
func (e *Endpoint) ConnectionType() ConnectionType {
	return e.kind
}

// Incoming binds a listener of the selected transport variant at the
// endpoint's path, applies the security attributes to the created socket
// file, and returns the sequence of accepted connections. The endpoint is
// consumed: further calls return ErrBound.
//
// Bind failures (path already in use, directory not writable) and
// permission-application failures surface as the underlying OS error. A
// permission failure does not remove the already-created socket file;
// the caller should treat the bind attempt as fatal.
func (e *Endpoint) Incoming() (*Incoming, error) {
	if e.bound {
		return nil, ErrBound
	}
	in, err := e.listen()
	if err != nil {
		return nil, err
	}
	e.bound = true
	return in, nil
}

// Connect actively opens a connection to an existing endpoint of the
// given transport variant. It creates and owns no file. It fails when no
// listener is present or when the variant does not match what the remote
// side bound (surfaced as the OS connection error, never as a silent
// misinterpretation).
func Connect(ctx context.Context, addr Addr, kind ConnectionType) (*Conn, error) {
	c, err := dialEndpoint(ctx, addr.IPCPath(), kind)
	if err != nil {
		return nil, err
	}
	return &Conn{kind: kind, conn: c}, nil
}

// FromConn wraps an already-established connection, tagging it with the
// given transport variant.
func FromConn(c net.Conn, kind ConnectionType) *Conn {
	return &Conn{kind: kind, conn: c}
}
