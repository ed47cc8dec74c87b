// Package openwebui exposes an Open WebUI deployment's API as hub tools
// under the "openwebui.*" namespace. The API key is optional: deployments
// with WEBUI_AUTH disabled accept unauthenticated calls.
package openwebui

import (
	"context"

	"github.com/instabids/mcp-hub/internal/provider"
	"github.com/instabids/mcp-hub/internal/tool"
)

// Provider wraps one Open WebUI API client.
type Provider struct {
	api *provider.Client
}

// New creates a Provider for the given base URL and optional API key.
func New(baseURL, apiKey string) *Provider {
	headers := map[string]string{}
	if apiKey != "" {
		headers["Authorization"] = "Bearer " + apiKey
	}
	return &Provider{api: provider.NewClient(baseURL, headers)}
}

// Name identifies the provider in health output and tool namespacing.
func (p *Provider) Name() string { return "openwebui" }

// Ping checks deployment reachability via the unauthenticated health endpoint.
func (p *Provider) Ping(ctx context.Context) error {
	_, err := p.api.Get(ctx, "/health", nil)
	return err
}

// Register adds every Open WebUI tool to the registry.
func (p *Provider) Register(reg *tool.Registry) error {
	groups := [][]tool.Descriptor{
		p.chatTools(),
		p.knowledgeTools(),
		p.adminTools(),
	}
	for _, group := range groups {
		if err := reg.RegisterAll(group); err != nil {
			return err
		}
	}
	return nil
}
