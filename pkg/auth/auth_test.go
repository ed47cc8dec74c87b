package auth

import (
	"strings"
	"testing"
	"time"
)

var testSecret = []byte("test-secret-key-32-chars-min!!!")

// TestGenerateJWT verifies that GenerateJWT produces a three-part token.
func TestGenerateJWT(t *testing.T) {
	t.Parallel()

	token, err := GenerateJWT(testSecret, "client-1", "claude-desktop", 0)
	if err != nil {
		t.Fatalf("GenerateJWT failed: %v", err)
	}
	if token == "" {
		t.Error("GenerateJWT returned empty token")
	}
	if parts := strings.Split(token, "."); len(parts) != 3 {
		t.Errorf("expected header.payload.signature, got %d parts", len(parts))
	}
}

// TestGenerateJWT_EmptySecret verifies that an empty secret is rejected.
func TestGenerateJWT_EmptySecret(t *testing.T) {
	t.Parallel()

	if _, err := GenerateJWT(nil, "client-1", "name", 0); err == nil {
		t.Error("expected error for empty secret")
	}
}

// TestParseJWT_RoundTrip verifies claims survive generate + parse.
func TestParseJWT_RoundTrip(t *testing.T) {
	t.Parallel()

	token, err := GenerateJWT(testSecret, "client-42", "ops-dashboard", time.Hour)
	if err != nil {
		t.Fatalf("GenerateJWT failed: %v", err)
	}

	claims, err := ParseJWT(testSecret, token)
	if err != nil {
		t.Fatalf("ParseJWT failed: %v", err)
	}
	if claims.ClientID != "client-42" {
		t.Errorf("ClientID = %q, want client-42", claims.ClientID)
	}
	if claims.ClientName != "ops-dashboard" {
		t.Errorf("ClientName = %q, want ops-dashboard", claims.ClientName)
	}
	if claims.ExpiresAt == nil || time.Until(claims.ExpiresAt.Time) > time.Hour {
		t.Error("expiry not set from requested duration")
	}
}

// TestParseJWT_WrongSecret verifies signature validation.
func TestParseJWT_WrongSecret(t *testing.T) {
	t.Parallel()

	token, err := GenerateJWT(testSecret, "client-1", "name", time.Hour)
	if err != nil {
		t.Fatalf("GenerateJWT failed: %v", err)
	}
	if _, err := ParseJWT([]byte("different-secret-entirely!!!!!!!"), token); err == nil {
		t.Error("expected error for wrong secret")
	}
}

// TestParseJWT_Expired verifies expired tokens are rejected.
func TestParseJWT_Expired(t *testing.T) {
	t.Parallel()

	token, err := GenerateJWT(testSecret, "client-1", "name", -time.Minute)
	if err != nil {
		t.Fatalf("GenerateJWT failed: %v", err)
	}
	if _, err := ParseJWT(testSecret, token); err == nil {
		t.Error("expected error for expired token")
	}
}

// TestParseJWT_Malformed verifies garbage input is rejected.
func TestParseJWT_Malformed(t *testing.T) {
	t.Parallel()

	for _, bad := range []string{"", "not-a-jwt", "a.b.c"} {
		if _, err := ParseJWT(testSecret, bad); err == nil {
			t.Errorf("expected error for %q", bad)
		}
	}
}
