// Package github exposes the GitHub v3 REST API as hub tools under the
// "github.*" namespace. Repository tools take owner and repo separately
// so callers never need to assemble "owner/repo" strings themselves.
package github

import (
	"context"

	"github.com/instabids/mcp-hub/internal/provider"
	"github.com/instabids/mcp-hub/internal/tool"
)

// Provider wraps one authenticated GitHub API client.
type Provider struct {
	api *provider.Client
}

// New creates a Provider for the given API base URL and personal access token.
func New(baseURL, token string) *Provider {
	return &Provider{
		api: provider.NewClient(baseURL, map[string]string{
			"Authorization": "token " + token,
			"Accept":        "application/vnd.github.v3+json",
			"User-Agent":    "InstaBids-AI-Hub",
		}),
	}
}

// Name identifies the provider in health output and tool namespacing.
func (p *Provider) Name() string { return "github" }

// Ping checks token validity against the authenticated-user endpoint.
func (p *Provider) Ping(ctx context.Context) error {
	_, err := p.api.Get(ctx, "/user", nil)
	return err
}

// Register adds every GitHub tool to the registry.
func (p *Provider) Register(reg *tool.Registry) error {
	groups := [][]tool.Descriptor{
		p.repoTools(),
		p.contentTools(),
		p.issueTools(),
		p.pullTools(),
		p.gitDataTools(),
		p.searchTools(),
	}
	for _, group := range groups {
		if err := reg.RegisterAll(group); err != nil {
			return err
		}
	}
	return nil
}

// ownerRepoParams declares the two parameters every repository tool shares.
func ownerRepoParams() []tool.Param {
	return []tool.Param{
		{Name: "owner", Type: tool.TypeString, Description: "Repository owner (user or organization)", Required: true},
		{Name: "repo", Type: tool.TypeString, Description: "Repository name", Required: true},
	}
}

// repoPath builds "/repos/{owner}/{repo}" plus an optional suffix.
func repoPath(args tool.Args, suffix string) string {
	return "/repos/" + args.String("owner") + "/" + args.String("repo") + suffix
}
