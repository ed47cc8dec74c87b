package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/instabids/mcp-hub/internal/tool"
)

func TestSSEStreamAnnouncesAndPings(t *testing.T) {
	t.Parallel()

	reg := tool.NewRegistry()
	err := reg.Register(tool.Descriptor{
		Name:        "test.noop",
		Description: "does nothing",
		Handler:     func(ctx context.Context, args tool.Args) (any, error) { return nil, nil },
	})
	if err != nil {
		t.Fatalf("register: %v", err)
	}

	h := NewSSEHandler(reg)
	h.interval = 10 * time.Millisecond

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()
	req := httptest.NewRequest(http.MethodGet, "/sse", nil).WithContext(ctx)
	rec := httptest.NewRecorder()

	h.Stream(rec, req)

	if ct := rec.Header().Get("Content-Type"); ct != "text/event-stream" {
		t.Errorf("Content-Type = %q", ct)
	}

	body := rec.Body.String()
	if !strings.Contains(body, "event: connection") {
		t.Error("missing connection event")
	}
	if !strings.Contains(body, "event: tools") {
		t.Error("missing tools event")
	}
	if !strings.Contains(body, "test.noop") {
		t.Error("tools event missing catalog entry")
	}
	if !strings.Contains(body, `"total":1`) {
		t.Error("tools event missing total")
	}
	if !strings.Contains(body, "event: ping") {
		t.Error("missing ping keepalive")
	}
}
