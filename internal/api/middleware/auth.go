// Package middleware provides HTTP middleware for the hub API.
package middleware

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/instabids/mcp-hub/internal/api/ctxkeys"
	hubauth "github.com/instabids/mcp-hub/internal/auth"
)

// Auth validates the Bearer JWT token and injects claims into context.
// When the auth service has no signing secret configured the middleware is
// a pass-through, matching deployments that front the hub with their own
// gateway.
//
// Flow:
//  1. Read "Authorization: Bearer <token>" header
//  2. Reject if missing or not Bearer scheme with 401
//  3. Verify JWT, 401 on invalid/expired
//  4. Inject ctxkeys.ClientID and ctxkeys.ClientName into context
func Auth(svc *hubauth.Service) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !svc.Enabled() {
				next.ServeHTTP(w, r)
				return
			}

			tokenString := extractBearerToken(r)
			if tokenString == "" {
				writeUnauthorized(w, "missing or invalid Authorization header")
				return
			}

			claims, err := svc.Verify(r.Context(), tokenString)
			if err != nil {
				writeUnauthorized(w, "invalid or expired token")
				return
			}

			ctx := r.Context()
			ctx = ctxkeys.WithValue(ctx, ctxkeys.ClientID, claims.ClientID)
			ctx = ctxkeys.WithValue(ctx, ctxkeys.ClientName, claims.ClientName)

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// extractBearerToken extracts the token from "Authorization: Bearer <token>".
// Returns empty string if the header is missing, wrong scheme, or empty.
func extractBearerToken(r *http.Request) string {
	header := r.Header.Get("Authorization")
	if header == "" {
		return ""
	}

	// Must start with "Bearer " (case-sensitive per RFC 7235)
	const prefix = "Bearer "
	if !strings.HasPrefix(header, prefix) {
		return ""
	}

	return strings.TrimSpace(strings.TrimPrefix(header, prefix))
}

// writeUnauthorized writes a 401 JSON response.
func writeUnauthorized(w http.ResponseWriter, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	json.NewEncoder(w).Encode(map[string]string{"error": message}) //nolint:errcheck
}
