// Package grpcipc runs gRPC over local IPC endpoints. Clients dial a
// channel through the usual endpoint resolution and servers serve
// directly on a bound endpoint, so gRPC services get the same
// cross-platform transport and permission handling as raw connections.
package grpcipc

import (
	"context"
	"fmt"
	"net"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"github.com/runger/duct/ipc"
)

// DialTimeout is the default maximum time to wait for the initial
// connection when no deadline is set on the context.
const DialTimeout = 5 * time.Second

// Dial connects a gRPC client across the IPC channel. Credentials are
// always local-insecure: the endpoint's file permissions are the access
// control. Extra options are appended after the transport options, so
// callers can override interceptors but not the dialer.
func Dial(ctx context.Context, addr ipc.Addr, kind ipc.ConnectionType, opts ...grpc.DialOption) (*grpc.ClientConn, error) {
	if _, ok := ctx.Deadline(); !ok {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, DialTimeout)
		defer cancel()
	}

	// The dialer receives the target address, but we use addr directly.
	dialer := func(ctx context.Context, _ string) (net.Conn, error) {
		return ipc.Connect(ctx, addr, kind)
	}

	//nolint:staticcheck // Using deprecated DialContext for blocking connection behavior
	conn, err := grpc.DialContext(
		ctx,
		"passthrough:///"+addr.IPCPath(),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithContextDialer(dialer),
		grpc.WithBlock(),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to dial: %w", err)
	}

	return conn, nil
}

// Serve runs the gRPC server on a bound endpoint until Stop/GracefulStop
// or a fatal accept error. The incoming sequence is closed (and its
// socket file removed) when Serve returns.
func Serve(srv *grpc.Server, in *ipc.Incoming) error {
	defer in.Close()
	return srv.Serve(in.Listener())
}
