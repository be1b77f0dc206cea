package main

import (
	"context"
	"net/http"
	"syscall"
	"testing"
	"time"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func TestStartServer(t *testing.T) {
	server := startServer(okHandler(), "0")
	defer server.Close()

	if server.Addr != ":0" {
		t.Fatalf("Addr = %q, want :0", server.Addr)
	}
	if server.ReadTimeout == 0 || server.WriteTimeout == 0 || server.IdleTimeout == 0 {
		t.Fatalf("server timeouts not configured")
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		t.Fatalf("Shutdown: %v", err)
	}
}

func TestGracefulShutdown(t *testing.T) {
	server := startServer(okHandler(), "0")

	cleaned := make(chan struct{})
	done := make(chan struct{})
	go func() {
		gracefulShutdown(context.Background(), server, func() { close(cleaned) })
		close(done)
	}()

	// Give gracefulShutdown time to register its signal handler.
	time.Sleep(100 * time.Millisecond)
	if err := syscall.Kill(syscall.Getpid(), syscall.SIGTERM); err != nil {
		t.Fatalf("sending SIGTERM: %v", err)
	}

	select {
	case <-done:
	case <-time.After(3 * time.Second):
		t.Fatalf("gracefulShutdown did not return after SIGTERM")
	}

	select {
	case <-cleaned:
	default:
		t.Fatalf("cleanup was not invoked")
	}
}
