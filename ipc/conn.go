package ipc

import (
	"net"
	"time"
)

// Conn is an established bidirectional channel to one peer, unified over
// both transport variants. The variant tag is fixed at construction and
// decides the read/write semantics:
//
//   - Stream: ordered bytes, partial reads and writes expected, no
//     message boundaries.
//   - Datagram: each Read consumes exactly one message, copying at most
//     len(p) bytes; if the buffer is smaller than the message the
//     remainder is discarded, matching SEQPACKET truncation. Each Write
//     sends exactly one message.
//
// Conn implements net.Conn. It is exclusively owned by whichever
// goroutine holds it after accept or connect; no internal locking is
// provided or needed.
type Conn struct {
	kind ConnectionType
	conn net.Conn
}

// ConnectionType returns the transport variant tag.
func (c *Conn) ConnectionType() ConnectionType {
	return c.kind
}

// Read reads from the connection. For Stream it behaves like any byte
// stream. For Datagram it receives one complete message, reporting the
// bytes copied into p; an unread remainder of a truncated message is not
// recoverable. A peer close surfaces as io.EOF, distinct from hard
// errors.
func (c *Conn) Read(p []byte) (int, error) {
	return c.conn.Read(p)
}

// Write writes to the connection. For Stream the write may be partial
// and callers loop as usual. For Datagram one call sends one discrete
// message and returns once the OS has accepted it.
func (c *Conn) Write(p []byte) (int, error) {
	return c.conn.Write(p)
}

// Flush is a no-op: datagram messages are sent eagerly and the stream
// transports buffer nothing in userspace. It exists so callers can treat
// every transport variant uniformly.
func (c *Conn) Flush() error {
	return nil
}

// CloseWrite half-closes the write side so the peer's next read observes
// end-of-data. It is a no-op for Datagram and for wrapped connections
// without half-close support.
func (c *Conn) CloseWrite() error {
	if c.kind == Datagram {
		return nil
	}
	if cw, ok := c.conn.(interface{ CloseWrite() error }); ok {
		return cw.CloseWrite()
	}
	return nil
}

// Close releases the connection.
func (c *Conn) Close() error {
	return c.conn.Close()
}

// LocalAddr returns the local address.
func (c *Conn) LocalAddr() net.Addr {
	return c.conn.LocalAddr()
}

// RemoteAddr returns the remote address.
func (c *Conn) RemoteAddr() net.Addr {
	return c.conn.RemoteAddr()
}

// SetDeadline sets the read and write deadlines.
func (c *Conn) SetDeadline(t time.Time) error {
	return c.conn.SetDeadline(t)
}

// SetReadDeadline sets the read deadline.
func (c *Conn) SetReadDeadline(t time.Time) error {
	return c.conn.SetReadDeadline(t)
}

// SetWriteDeadline sets the write deadline.
func (c *Conn) SetWriteDeadline(t time.Time) error {
	return c.conn.SetWriteDeadline(t)
}

var _ net.Conn = (*Conn)(nil)
