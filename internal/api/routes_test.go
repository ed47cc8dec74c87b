package api

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	hubauth "github.com/instabids/mcp-hub/internal/auth"
	"github.com/instabids/mcp-hub/internal/infra/eventbus"
	"github.com/instabids/mcp-hub/internal/infra/sqlite"
	"github.com/instabids/mcp-hub/internal/provider"
	"github.com/instabids/mcp-hub/internal/telemetry"
	"github.com/instabids/mcp-hub/internal/tool"
)

type fakeProbe struct {
	name string
	err  error
}

func (p fakeProbe) Name() string { return p.name }
func (p fakeProbe) Ping(context.Context) error { return p.err }

func newTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sqlite.NewDB(":memory:")
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	if err := sqlite.MigrateUp(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func newTestRouter(t *testing.T, secret string, probes ...provider.Probe) http.Handler {
	t.Helper()

	reg := tool.NewRegistry()
	err := reg.Register(tool.Descriptor{
		Name:        "test.echo",
		Description: "Echo the message back",
		Params: []tool.Param{
			{Name: "message", Type: tool.TypeString, Description: "Text to echo", Required: true},
		},
		Handler: func(ctx context.Context, args tool.Args) (any, error) {
			return map[string]any{"echo": args.String("message")}, nil
		},
	})
	if err != nil {
		t.Fatalf("register echo: %v", err)
	}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	recorder := telemetry.NewRecorder(eventbus.New())
	dispatcher := tool.NewDispatcher(reg, recorder, logger)
	authSvc := hubauth.NewService(newTestDB(t), secret, time.Hour)

	return NewRouter(Deps{
		Registry:   reg,
		Dispatcher: dispatcher,
		Recorder:   recorder,
		Auth:       authSvc,
		Probes:     probes,
	})
}

func postJSON(t *testing.T, handler http.Handler, path string, body string, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode response: %v (body: %s)", err, rec.Body.String())
	}
	return out
}

func TestCallToolSuccessEnvelope(t *testing.T) {
	t.Parallel()

	router := newTestRouter(t, "")
	rec := postJSON(t, router, "/mcp/call", `{"tool":"test.echo","parameters":{"message":"hi"}}`, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	body := decodeBody(t, rec)
	if body["status"] != "success" {
		t.Errorf("envelope status = %v", body["status"])
	}
	if body["tool"] != "test.echo" {
		t.Errorf("envelope tool = %v", body["tool"])
	}
	result, _ := body["result"].(map[string]any)
	if result["echo"] != "hi" {
		t.Errorf("result = %v", body["result"])
	}
}

func TestCallToolSynonymsAccepted(t *testing.T) {
	t.Parallel()

	router := newTestRouter(t, "")
	for _, body := range []string{
		`{"function":"test.echo","arguments":{"message":"hi"}}`,
		`{"name":"test.echo","parameters":{"message":"hi"}}`,
	} {
		rec := postJSON(t, router, "/mcp/call", body, nil)
		env := decodeBody(t, rec)
		if env["status"] != "success" {
			t.Errorf("body %s: status = %v", body, env["status"])
		}
	}
}

func TestCallToolFormEncoded(t *testing.T) {
	t.Parallel()

	router := newTestRouter(t, "")
	form := url.Values{
		"tool":       {"test.echo"},
		"parameters": {`{"message":"from-form"}`},
	}
	req := httptest.NewRequest(http.MethodPost, "/mcp/call", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	env := decodeBody(t, rec)
	if env["status"] != "success" {
		t.Fatalf("status = %v (body: %s)", env["status"], rec.Body.String())
	}
}

func TestCallToolMultipartForm(t *testing.T) {
	t.Parallel()

	router := newTestRouter(t, "")
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	if err := mw.WriteField("tool", "test.echo"); err != nil {
		t.Fatalf("write field: %v", err)
	}
	if err := mw.WriteField("parameters", `{"message":"from-multipart"}`); err != nil {
		t.Fatalf("write field: %v", err)
	}
	if err := mw.Close(); err != nil {
		t.Fatalf("close writer: %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, "/mcp/call", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	env := decodeBody(t, rec)
	if env["status"] != "success" {
		t.Fatalf("status = %v (body: %s)", env["status"], rec.Body.String())
	}
	result, _ := env["result"].(map[string]any)
	if result["echo"] != "from-multipart" {
		t.Errorf("result = %v", env["result"])
	}
}

func TestCallUnknownToolEnvelope(t *testing.T) {
	t.Parallel()

	router := newTestRouter(t, "")
	rec := postJSON(t, router, "/mcp/call", `{"tool":"nope"}`, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200 envelope", rec.Code)
	}
	env := decodeBody(t, rec)
	if env["status"] != "error" {
		t.Errorf("envelope status = %v", env["status"])
	}
}

func TestCallMalformedBodyEnvelope(t *testing.T) {
	t.Parallel()

	router := newTestRouter(t, "")
	rec := postJSON(t, router, "/mcp/call", `{not json`, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200 envelope", rec.Code)
	}
	env := decodeBody(t, rec)
	if env["status"] != "error" {
		t.Errorf("envelope status = %v", env["status"])
	}
}

func TestCallToolAlias(t *testing.T) {
	t.Parallel()

	router := newTestRouter(t, "")
	rec := postJSON(t, router, "/mcp/call_tool", `{"tool":"test.echo","parameters":{"message":"alias"}}`, nil)
	env := decodeBody(t, rec)
	if env["status"] != "success" {
		t.Errorf("alias status = %v", env["status"])
	}
}

func TestListTools(t *testing.T) {
	t.Parallel()

	router := newTestRouter(t, "")
	for _, path := range []string{"/mcp/tools", "/tools"} {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		if rec.Code != http.StatusOK {
			t.Fatalf("%s status = %d", path, rec.Code)
		}
		body := decodeBody(t, rec)
		if body["total"] != float64(1) {
			t.Errorf("%s total = %v", path, body["total"])
		}
		if _, ok := body["tools"]; !ok {
			t.Errorf("%s response missing tools list", path)
		}
	}
}

func TestHealthReportsProviders(t *testing.T) {
	t.Parallel()

	router := newTestRouter(t, "",
		fakeProbe{name: "digitalocean"},
		fakeProbe{name: "github", err: context.DeadlineExceeded},
	)
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}

	body := decodeBody(t, rec)
	if body["status"] != "degraded" {
		t.Errorf("status = %v, want degraded", body["status"])
	}
	providers, _ := body["providers"].(map[string]any)
	if providers["digitalocean"] != "ok" {
		t.Errorf("digitalocean = %v", providers["digitalocean"])
	}
	if providers["github"] != "unreachable" {
		t.Errorf("github = %v", providers["github"])
	}
}

func TestRootMetadata(t *testing.T) {
	t.Parallel()

	router := newTestRouter(t, "")
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	body := decodeBody(t, rec)
	if body["service"] != "mcp-hub" {
		t.Errorf("service = %v", body["service"])
	}
}

func TestAuthEnforcedWhenConfigured(t *testing.T) {
	t.Parallel()

	router := newTestRouter(t, "test-secret-key-32-chars-min!!!")

	// No token: rejected
	rec := postJSON(t, router, "/mcp/call", `{"tool":"test.echo","parameters":{"message":"hi"}}`, nil)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status without token = %d, want 401", rec.Code)
	}

	// Bootstrap a token through the public endpoint
	rec = postJSON(t, router, "/auth/token", `{"client_name":"itest"}`, nil)
	if rec.Code != http.StatusCreated {
		t.Fatalf("token status = %d (body: %s)", rec.Code, rec.Body.String())
	}
	tokenBody := decodeBody(t, rec)
	token, _ := tokenBody["token"].(string)
	if token == "" {
		t.Fatal("no token in response")
	}

	// With token: accepted
	rec = postJSON(t, router, "/mcp/call", `{"tool":"test.echo","parameters":{"message":"hi"}}`,
		map[string]string{"Authorization": "Bearer " + token})
	if rec.Code != http.StatusOK {
		t.Fatalf("status with token = %d", rec.Code)
	}
	env := decodeBody(t, rec)
	if env["status"] != "success" {
		t.Errorf("envelope status = %v", env["status"])
	}

	// Audit listing requires the token too
	req := httptest.NewRequest(http.MethodGet, "/auth/clients", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	clientsRec := httptest.NewRecorder()
	router.ServeHTTP(clientsRec, req)
	if clientsRec.Code != http.StatusOK {
		t.Fatalf("clients status = %d", clientsRec.Code)
	}
	clientsBody := decodeBody(t, clientsRec)
	if clientsBody["count"] != float64(1) {
		t.Errorf("clients count = %v", clientsBody["count"])
	}

}

func TestTokenEndpointWhenAuthDisabled(t *testing.T) {
	t.Parallel()

	router := newTestRouter(t, "")
	rec := postJSON(t, router, "/auth/token", `{"client_name":"x"}`, nil)
	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("status = %d, want 503", rec.Code)
	}
}
