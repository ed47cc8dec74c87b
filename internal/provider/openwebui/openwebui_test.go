package openwebui

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/instabids/mcp-hub/internal/tool"
)

func TestRegisterAllToolsNamespaced(t *testing.T) {
	t.Parallel()

	p := New("http://open-webui:8080", "key")
	reg := tool.NewRegistry()
	if err := p.Register(reg); err != nil {
		t.Fatalf("register: %v", err)
	}
	if reg.Len() == 0 {
		t.Fatal("no tools registered")
	}
	for _, name := range reg.Names() {
		if !strings.HasPrefix(name, "openwebui.") {
			t.Errorf("tool %q missing provider namespace", name)
		}
	}
}

func TestAuthHeaderOnlyWithKey(t *testing.T) {
	t.Parallel()

	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		json.NewEncoder(w).Encode(map[string]any{"status": true})
	}))
	defer srv.Close()

	withKey := New(srv.URL, "secret-key")
	if err := withKey.Ping(context.Background()); err != nil {
		t.Fatalf("ping: %v", err)
	}
	if gotAuth != "Bearer secret-key" {
		t.Errorf("auth header = %q", gotAuth)
	}

	noKey := New(srv.URL, "")
	if err := noKey.Ping(context.Background()); err != nil {
		t.Fatalf("ping: %v", err)
	}
	if gotAuth != "" {
		t.Errorf("auth header without key = %q", gotAuth)
	}
}

func TestChatCompletionDisablesStreaming(t *testing.T) {
	t.Parallel()

	var gotPath string
	var gotBody map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		json.NewDecoder(r.Body).Decode(&gotBody)
		json.NewEncoder(w).Encode(map[string]any{"choices": []any{}})
	}))
	defer srv.Close()

	p := New(srv.URL, "key")
	reg := tool.NewRegistry()
	if err := p.Register(reg); err != nil {
		t.Fatalf("register: %v", err)
	}
	d, err := reg.Resolve("openwebui.chat_completion")
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	args, bindErr := tool.BindArgs(d, map[string]any{
		"model": "llama3",
		"messages": []any{
			map[string]any{"role": "user", "content": "hi"},
		},
	})
	if bindErr != nil {
		t.Fatalf("bind: %v", bindErr)
	}
	if _, err := d.Handler(context.Background(), args); err != nil {
		t.Fatalf("handler: %v", err)
	}
	if gotPath != "/api/chat/completions" {
		t.Errorf("path = %q", gotPath)
	}
	if gotBody["stream"] != false {
		t.Errorf("stream = %v, want false", gotBody["stream"])
	}
	if gotBody["model"] != "llama3" {
		t.Errorf("model = %v", gotBody["model"])
	}
}

func TestChatCompletionRejectsEmptyMessages(t *testing.T) {
	t.Parallel()

	p := New("http://open-webui:8080", "key")
	reg := tool.NewRegistry()
	if err := p.Register(reg); err != nil {
		t.Fatalf("register: %v", err)
	}
	d, err := reg.Resolve("openwebui.chat_completion")
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	args, bindErr := tool.BindArgs(d, map[string]any{"model": "llama3", "messages": []any{}})
	if bindErr != nil {
		t.Fatalf("bind: %v", bindErr)
	}
	_, herr := d.Handler(context.Background(), args)
	if herr == nil {
		t.Fatal("expected validation error")
	}
	if terr := tool.Classify(herr); terr.Kind != tool.KindValidation {
		t.Errorf("kind = %q", terr.Kind)
	}
}
