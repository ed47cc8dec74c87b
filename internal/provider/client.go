// Package provider implements the outbound REST adapters for the upstream
// APIs the hub wraps. Each adapter function performs exactly one HTTP call:
// no retries, no caching, no batching.
package provider

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/instabids/mcp-hub/internal/tool"
)

const (
	mimeJSON          = "application/json"
	headerContentType = "Content-Type"

	// DefaultTimeout bounds every outbound call. On expiry the caller gets
	// a classified transport error instead of hanging.
	DefaultTimeout = 30 * time.Second
)

// Client is a minimal REST client bound to one upstream base URL. The
// underlying *http.Client is pooled and shared across every request made
// through this Client; construct one per provider at startup, never
// per-request.
type Client struct {
	baseURL    string
	headers    map[string]string
	httpClient *http.Client
}

// NewClient creates a Client for baseURL. headers are attached to every
// request (bearer credential, Accept, User-Agent).
func NewClient(baseURL string, headers map[string]string) *Client {
	return &Client{
		baseURL: baseURL,
		headers: headers,
		httpClient: &http.Client{
			Timeout: DefaultTimeout,
		},
	}
}

// Do performs one HTTP call and returns the decoded JSON body.
// Outcomes, classified per the adapter contract:
//   - 2xx with a JSON body  → decoded value
//   - 204 or empty body     → synthetic {"status": "success"} marker
//   - 4xx / 5xx             → upstream error carrying status code and body
//   - network-level failure → transport error
func (c *Client) Do(ctx context.Context, method, path string, query url.Values, body any) (any, error) {
	var reqBody io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return nil, tool.InternalError(fmt.Errorf("encode request body: %w", err))
		}
		reqBody = bytes.NewReader(raw)
	}

	target := c.baseURL + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, target, reqBody)
	if err != nil {
		return nil, tool.InternalError(fmt.Errorf("build request %s %s: %w", method, path, err))
	}
	for k, v := range c.headers {
		req.Header.Set(k, v)
	}
	if body != nil {
		req.Header.Set(headerContentType, mimeJSON)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, tool.TransportError(err)
	}
	defer resp.Body.Close() //nolint:errcheck

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, tool.TransportError(err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, tool.UpstreamError(resp.StatusCode, string(raw))
	}

	if resp.StatusCode == http.StatusNoContent || len(bytes.TrimSpace(raw)) == 0 {
		return map[string]any{"status": "success", "message": "operation completed"}, nil
	}

	var decoded any
	if err := json.Unmarshal(raw, &decoded); err != nil {
		// Some endpoints (log downloads, certificates) return plain text.
		return string(raw), nil
	}
	return decoded, nil
}

// Get is shorthand for Do with no body.
func (c *Client) Get(ctx context.Context, path string, query url.Values) (any, error) {
	return c.Do(ctx, http.MethodGet, path, query, nil)
}

// Post is shorthand for Do with a JSON body.
func (c *Client) Post(ctx context.Context, path string, body any) (any, error) {
	return c.Do(ctx, http.MethodPost, path, nil, body)
}

// Put is shorthand for Do with a JSON body.
func (c *Client) Put(ctx context.Context, path string, body any) (any, error) {
	return c.Do(ctx, http.MethodPut, path, nil, body)
}

// Patch is shorthand for Do with a JSON body.
func (c *Client) Patch(ctx context.Context, path string, body any) (any, error) {
	return c.Do(ctx, http.MethodPatch, path, nil, body)
}

// Delete is shorthand for Do with no body.
func (c *Client) Delete(ctx context.Context, path string) (any, error) {
	return c.Do(ctx, http.MethodDelete, path, nil, nil)
}

// WithTimeout overrides the client timeout; used by tests.
func (c *Client) WithTimeout(d time.Duration) *Client {
	c.httpClient.Timeout = d
	return c
}

// Probe is the health-check view of a provider: a name plus a single cheap
// upstream call reporting connectivity.
type Probe interface {
	Name() string
	Ping(ctx context.Context) error
}
