// Package digitalocean exposes the DigitalOcean v2 REST API as hub tools.
// Every tool performs exactly one API call; tool names are namespaced
// "digitalocean.*" so they can never collide with another provider.
package digitalocean

import (
	"context"
	"net/url"
	"strconv"

	"github.com/instabids/mcp-hub/internal/provider"
	"github.com/instabids/mcp-hub/internal/tool"
)

// Provider wraps one authenticated DigitalOcean API client.
type Provider struct {
	api *provider.Client
}

// New creates a Provider for the given API base URL and bearer token.
func New(baseURL, token string) *Provider {
	return &Provider{
		api: provider.NewClient(baseURL, map[string]string{
			"Authorization": "Bearer " + token,
		}),
	}
}

// Name identifies the provider in health output and tool namespacing.
func (p *Provider) Name() string { return "digitalocean" }

// Ping checks upstream connectivity with the cheapest authenticated call.
func (p *Provider) Ping(ctx context.Context) error {
	_, err := p.api.Get(ctx, "/account", nil)
	return err
}

// Register adds every DigitalOcean tool to the registry. A name collision
// is a startup configuration error and aborts registration.
func (p *Provider) Register(reg *tool.Registry) error {
	groups := [][]tool.Descriptor{
		p.appTools(),
		p.databaseTools(),
		p.dropletTools(),
		p.kubernetesTools(),
		p.networkingTools(),
		p.accountTools(),
	}
	for _, group := range groups {
		if err := reg.RegisterAll(group); err != nil {
			return err
		}
	}
	return nil
}

// pageParams declares the standard pagination parameters.
func pageParams() []tool.Param {
	return []tool.Param{
		{Name: "page", Type: tool.TypeInteger, Description: "Page number", Default: 1},
		{Name: "per_page", Type: tool.TypeInteger, Description: "Results per page", Default: 20},
	}
}

// pageQuery builds the pagination query string from bound args.
func pageQuery(args tool.Args) url.Values {
	return url.Values{
		"page":     {strconv.Itoa(args.IntOr("page", 1))},
		"per_page": {strconv.Itoa(args.IntOr("per_page", 20))},
	}
}
