// Package auth issues and verifies hub client tokens. Issued tokens are
// recorded in sqlite for audit; only a short prefix is stored, never the
// full token.
package auth

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/instabids/mcp-hub/pkg/auth"
	"github.com/instabids/mcp-hub/pkg/uuid"
)

// tokenPrefixLen is how much of an issued token is persisted for audit.
const tokenPrefixLen = 20

// ErrAuthDisabled is returned when no signing secret is configured.
var ErrAuthDisabled = errors.New("auth is disabled: no signing secret configured")

// Token is the result of minting a client token.
type Token struct {
	ClientID  string    `json:"client_id"`
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}

// Service mints and verifies client tokens.
type Service struct {
	db     *sql.DB
	secret []byte
	expiry time.Duration
}

// NewService creates a Service. An empty secret disables auth: Mint and
// Verify return ErrAuthDisabled and the API layer skips enforcement.
func NewService(db *sql.DB, secret string, expiry time.Duration) *Service {
	if expiry == 0 {
		expiry = auth.DefaultExpiry
	}
	return &Service{db: db, secret: []byte(secret), expiry: expiry}
}

// Enabled reports whether a signing secret is configured.
func (s *Service) Enabled() bool { return len(s.secret) > 0 }

// Mint issues a new token for a named client and records it for audit.
func (s *Service) Mint(ctx context.Context, clientName string) (*Token, error) {
	if !s.Enabled() {
		return nil, ErrAuthDisabled
	}
	if clientName == "" {
		return nil, fmt.Errorf("client name is required")
	}

	clientID := uuid.NewV7().String()
	token, err := auth.GenerateJWT(s.secret, clientID, clientName, s.expiry)
	if err != nil {
		return nil, fmt.Errorf("mint token: %w", err)
	}

	now := time.Now().UTC()
	expiresAt := now.Add(s.expiry)
	prefix := token
	if len(prefix) > tokenPrefixLen {
		prefix = prefix[:tokenPrefixLen]
	}

	_, err = s.db.ExecContext(ctx,
		`INSERT INTO client_token (client_id, client_name, token_prefix, issued_at, expires_at)
		 VALUES (?, ?, ?, ?, ?)`,
		clientID, clientName, prefix, now, expiresAt,
	)
	if err != nil {
		return nil, fmt.Errorf("record token: %w", err)
	}

	return &Token{ClientID: clientID, Token: token, ExpiresAt: expiresAt}, nil
}

// Verify parses a bearer token and touches the client's last_seen timestamp.
// The audit update is best-effort; a failed UPDATE does not reject the call.
func (s *Service) Verify(ctx context.Context, token string) (*auth.Claims, error) {
	if !s.Enabled() {
		return nil, ErrAuthDisabled
	}

	claims, err := auth.ParseJWT(s.secret, token)
	if err != nil {
		return nil, err
	}

	s.db.ExecContext(ctx, //nolint:errcheck
		`UPDATE client_token SET last_seen = ? WHERE client_id = ?`,
		time.Now().UTC(), claims.ClientID,
	)

	return claims, nil
}

// Clients lists issued tokens, most recent first.
func (s *Service) Clients(ctx context.Context) ([]Client, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT client_id, client_name, token_prefix, issued_at, expires_at, last_seen
		 FROM client_token ORDER BY issued_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("list clients: %w", err)
	}
	defer rows.Close()

	var out []Client
	for rows.Next() {
		var c Client
		var lastSeen sql.NullTime
		if err := rows.Scan(&c.ClientID, &c.ClientName, &c.TokenPrefix, &c.IssuedAt, &c.ExpiresAt, &lastSeen); err != nil {
			return nil, fmt.Errorf("scan client: %w", err)
		}
		if lastSeen.Valid {
			c.LastSeen = &lastSeen.Time
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

// Client is one issued-token audit record.
type Client struct {
	ClientID    string     `json:"client_id"`
	ClientName  string     `json:"client_name"`
	TokenPrefix string     `json:"token_prefix"`
	IssuedAt    time.Time  `json:"issued_at"`
	ExpiresAt   time.Time  `json:"expires_at"`
	LastSeen    *time.Time `json:"last_seen,omitempty"`
}
