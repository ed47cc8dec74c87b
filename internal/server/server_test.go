package server

import (
	"io"
	"log/slog"
	"net/http"
	"testing"
	"time"

	"github.com/instabids/mcp-hub/internal/infra/sqlite"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Host != "0.0.0.0" {
		t.Fatalf("Host = %q; want %q", cfg.Host, "0.0.0.0")
	}
	if cfg.Port != 8888 {
		t.Fatalf("Port = %d; want %d", cfg.Port, 8888)
	}
	if cfg.ReadTimeout != 15*time.Second {
		t.Fatalf("ReadTimeout = %v; want %v", cfg.ReadTimeout, 15*time.Second)
	}
	if cfg.IdleTimeout != 60*time.Second {
		t.Fatalf("IdleTimeout = %v; want %v", cfg.IdleTimeout, 60*time.Second)
	}
}

func TestNewServer_ConfiguresAddressAndHandler(t *testing.T) {
	db, err := sqlite.NewDB(":memory:")
	if err != nil {
		t.Fatalf("sqlite.NewDB error = %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	cfg := Config{Host: "127.0.0.1", Port: 18888, ReadTimeout: time.Second, IdleTimeout: 3 * time.Second}
	s := NewServer(http.NewServeMux(), db, logger, cfg)

	if s == nil {
		t.Fatal("NewServer() returned nil")
	}
	if s.http == nil {
		t.Fatal("server.http should not be nil")
	}
	if s.Addr() != "127.0.0.1:18888" {
		t.Fatalf("Addr = %q; want %q", s.Addr(), "127.0.0.1:18888")
	}
	if s.http.Handler == nil {
		t.Fatal("Handler should not be nil")
	}
	if s.http.WriteTimeout != 0 {
		t.Fatal("WriteTimeout must stay unset so /sse streams are not severed")
	}
}
