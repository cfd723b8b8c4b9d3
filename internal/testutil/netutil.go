// Package testutil holds the shared plumbing of the test suites:
// in-memory connections, loopback listeners, bounded contexts, and a
// scripted golf client for exercising a live server.
package testutil

import (
	"context"
	"fmt"
	"net"
	"testing"
	"time"
)

// PipeConn returns a connected in-memory pair. Both ends are closed when
// the test finishes.
func PipeConn(t testing.TB) (client, server net.Conn) {
	t.Helper()

	server, client = net.Pipe()

	t.Cleanup(func() {
		_ = server.Close()
		_ = client.Close()
	})

	return client, server
}

// ListenTCP opens a listener on an ephemeral loopback port and closes it
// when the test finishes.
func ListenTCP(t testing.TB) net.Listener {
	t.Helper()

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen: %v", err)
	}
	t.Cleanup(func() { _ = ln.Close() })

	return ln
}

// WaitForTCPReady polls until the address accepts connections, replacing
// sleeps when a server is started in the background.
func WaitForTCPReady(addr string, timeout time.Duration) error {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	ticker := time.NewTicker(10 * time.Millisecond)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return fmt.Errorf("waiting for server at %s: %w", addr, ctx.Err())
		case <-ticker.C:
			conn, err := net.DialTimeout("tcp", addr, 50*time.Millisecond)
			if err == nil {
				_ = conn.Close()
				return nil
			}
		}
	}
}
