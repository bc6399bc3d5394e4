package ipc

import "context"

// ConnectWait waits for the endpoint to appear and then connects to it.
// It exists for the common startup race where a client launches the
// process that will own the endpoint and must wait for the bind to land.
// The context bounds the whole operation; pass a deadline or timeout,
// since an endpoint that never appears would otherwise wait forever.
func ConnectWait(ctx context.Context, addr Addr, kind ConnectionType) (*Conn, error) {
	if err := WaitPath(ctx, addr); err != nil {
		return nil, err
	}
	return Connect(ctx, addr, kind)
}
