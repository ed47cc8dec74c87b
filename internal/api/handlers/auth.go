package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	hubauth "github.com/instabids/mcp-hub/internal/auth"
)

// AuthHandler mints client tokens. The mint endpoint is public; issuing
// tokens to callers who can already reach the hub is the bootstrap path
// for stdio bridges and dashboards.
type AuthHandler struct {
	service *hubauth.Service
}

// NewAuthHandler creates an AuthHandler backed by the auth service.
func NewAuthHandler(svc *hubauth.Service) *AuthHandler {
	return &AuthHandler{service: svc}
}

// TokenRequest is the request body for POST /auth/token.
type TokenRequest struct {
	ClientName string `json:"client_name"`
}

// Token handles POST /auth/token.
//
// Response codes:
//   - 201 Created: token issued
//   - 400 Bad Request: invalid JSON or missing client_name
//   - 503 Service Unavailable: auth disabled (no secret configured)
func (h *AuthHandler) Token(w http.ResponseWriter, r *http.Request) {
	var req TokenRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.ClientName == "" {
		writeError(w, http.StatusBadRequest, "client_name is required")
		return
	}

	token, err := h.service.Mint(r.Context(), req.ClientName)
	if err != nil {
		if errors.Is(err, hubauth.ErrAuthDisabled) {
			writeError(w, http.StatusServiceUnavailable, "auth is not configured on this hub")
			return
		}
		writeError(w, http.StatusInternalServerError, "token issuance failed")
		return
	}

	writeJSON(w, http.StatusCreated, token)
}

// Clients handles GET /auth/clients. Returns issued-token audit records;
// token prefixes only, never full tokens.
func (h *AuthHandler) Clients(w http.ResponseWriter, r *http.Request) {
	clients, err := h.service.Clients(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list clients")
		return
	}
	if clients == nil {
		clients = []hubauth.Client{}
	}
	writeJSON(w, http.StatusOK, map[string]any{"clients": clients, "count": len(clients)})
}
