// Package ipc provides a cross-platform local inter-process-communication
// transport. A process exposes or connects to a named local channel (a Unix
// domain socket, a SEQPACKET socket, or a Windows named pipe) through one
// uniform endpoint/connection interface, so application code never branches
// on the operating system.
//
// The package provides no message framing, request/response correlation, or
// retry policy; those belong to a layer built on top. A datagram message
// boundary is the only structural unit exposed.
package ipc

import (
	"errors"
	"fmt"
)

// ConnectionType selects the transport semantics of an endpoint.
// The set is closed: every connection an endpoint yields carries exactly
// one of these tags, fixed at construction.
type ConnectionType int

const (
	// Stream is an ordered byte pipe with no message boundaries
	// (SOCK_STREAM Unix socket, byte-mode named pipe). Partial reads
	// and writes are expected.
	Stream ConnectionType = iota

	// Datagram preserves message boundaries set by the sender's
	// individual writes (SOCK_SEQPACKET Unix socket, message-mode
	// named pipe). One write is one discrete message.
	Datagram
)

// String returns the transport name used in logs and error messages.
func (t ConnectionType) String() string {
	switch t {
	case Stream:
		return "stream"
	case Datagram:
		return "datagram"
	default:
		return fmt.Sprintf("ConnectionType(%d)", int(t))
	}
}

// Addr resolves a logical channel to the platform path used to bind or
// connect. Resolution is deterministic and never fails; an unusable path
// only surfaces later as a bind or connect error.
type Addr interface {
	IPCPath() string
}

// ErrBound is returned when Incoming is called on an endpoint that has
// already been bound. An endpoint binds at most once; construct a new one
// to retry.
var ErrBound = errors.New("ipc: endpoint already bound")
