//go:build !windows

package grpcipc

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"

	"github.com/runger/duct/ipc"
)

func shortTempDir(t *testing.T) string {
	t.Helper()
	dir, err := os.MkdirTemp("/tmp", "duct-g")
	if err != nil {
		t.Fatalf("failed to create short temp dir: %v", err)
	}
	t.Cleanup(func() { os.RemoveAll(dir) })
	return dir
}

func TestDialAndServe_HealthCheck(t *testing.T) {
	t.Parallel()

	path := filepath.Join(shortTempDir(t), "g.sock")
	in, err := ipc.New(ipc.PathName(path), ipc.Stream).Incoming()
	require.NoError(t, err)

	srv := grpc.NewServer()
	healthpb.RegisterHealthServer(srv, health.NewServer())

	done := make(chan error, 1)
	go func() { done <- Serve(srv, in) }()
	defer func() {
		srv.Stop()
		<-done
	}()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	conn, err := Dial(ctx, ipc.PathName(path), ipc.Stream)
	require.NoError(t, err)
	defer conn.Close()

	resp, err := healthpb.NewHealthClient(conn).Check(ctx, &healthpb.HealthCheckRequest{})
	require.NoError(t, err)
	assert.Equal(t, healthpb.HealthCheckResponse_SERVING, resp.GetStatus())
}

func TestServe_ClosesEndpointOnReturn(t *testing.T) {
	t.Parallel()

	path := filepath.Join(shortTempDir(t), "g2.sock")
	in, err := ipc.New(ipc.PathName(path), ipc.Stream).Incoming()
	require.NoError(t, err)

	srv := grpc.NewServer()
	done := make(chan error, 1)
	go func() { done <- Serve(srv, in) }()

	time.Sleep(50 * time.Millisecond)
	srv.Stop()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Serve did not return after Stop")
	}

	_, err = os.Stat(path)
	assert.True(t, os.IsNotExist(err), "socket file should be removed when Serve returns")
}

func TestDial_NoListener(t *testing.T) {
	t.Parallel()

	path := filepath.Join(shortTempDir(t), "missing.sock")

	ctx, cancel := context.WithTimeout(context.Background(), 200*time.Millisecond)
	defer cancel()

	_, err := Dial(ctx, ipc.PathName(path), ipc.Stream)
	assert.Error(t, err)
}
