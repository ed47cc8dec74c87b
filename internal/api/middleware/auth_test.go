package middleware

import (
	"context"
	"database/sql"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/instabids/mcp-hub/internal/api/ctxkeys"
	hubauth "github.com/instabids/mcp-hub/internal/auth"
	"github.com/instabids/mcp-hub/internal/infra/sqlite"
)

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

func okHandler(gotClientID *string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if gotClientID != nil {
			*gotClientID = ctxkeys.Value(r.Context(), ctxkeys.ClientID)
		}
		w.WriteHeader(http.StatusOK)
	})
}

func TestAuthPassThroughWhenDisabled(t *testing.T) {
	t.Parallel()

	svc := hubauth.NewService(newTestDB(t), "", time.Hour)
	handler := Auth(svc)(okHandler(nil))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
}

func TestAuthRejectsMissingHeader(t *testing.T) {
	t.Parallel()

	svc := hubauth.NewService(newTestDB(t), "test-secret-key-32-chars-min!!!", time.Hour)
	handler := Auth(svc)(okHandler(nil))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", rec.Code)
	}
}

func TestAuthRejectsWrongScheme(t *testing.T) {
	t.Parallel()

	svc := hubauth.NewService(newTestDB(t), "test-secret-key-32-chars-min!!!", time.Hour)
	handler := Auth(svc)(okHandler(nil))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Basic dXNlcjpwYXNz")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", rec.Code)
	}
}

func TestAuthInjectsClaims(t *testing.T) {
	t.Parallel()

	svc := hubauth.NewService(newTestDB(t), "test-secret-key-32-chars-min!!!", time.Hour)
	tok, err := svc.Mint(context.Background(), "tester")
	if err != nil {
		t.Fatalf("mint: %v", err)
	}

	var gotClientID string
	handler := Auth(svc)(okHandler(&gotClientID))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+tok.Token)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if gotClientID != tok.ClientID {
		t.Errorf("context client id = %q, want %q", gotClientID, tok.ClientID)
	}
}
