package digitalocean

import (
	"context"

	"github.com/instabids/mcp-hub/internal/tool"
)

func (p *Provider) accountTools() []tool.Descriptor {
	return []tool.Descriptor{
		{
			Name:        "digitalocean.get_account",
			Description: "Retrieve account information",
			Handler: func(ctx context.Context, args tool.Args) (any, error) {
				return p.api.Get(ctx, "/account", nil)
			},
		},
		{
			Name:        "digitalocean.get_balance",
			Description: "Retrieve the current account balance",
			Handler: func(ctx context.Context, args tool.Args) (any, error) {
				return p.api.Get(ctx, "/customers/my/balance", nil)
			},
		},
		{
			Name:        "digitalocean.list_billing_history",
			Description: "List billing history entries",
			Params:      pageParams(),
			Handler: func(ctx context.Context, args tool.Args) (any, error) {
				return p.api.Get(ctx, "/customers/my/billing_history", pageQuery(args))
			},
		},
		{
			Name:        "digitalocean.list_ssh_keys",
			Description: "List SSH keys on the account",
			Params:      pageParams(),
			Handler: func(ctx context.Context, args tool.Args) (any, error) {
				return p.api.Get(ctx, "/account/keys", pageQuery(args))
			},
		},
		{
			Name:        "digitalocean.list_projects",
			Description: "List all projects",
			Params:      pageParams(),
			Handler: func(ctx context.Context, args tool.Args) (any, error) {
				return p.api.Get(ctx, "/projects", pageQuery(args))
			},
		},
		{
			Name:        "digitalocean.get_project",
			Description: "Retrieve a project",
			Params: []tool.Param{
				{Name: "project_id", Type: tool.TypeString, Description: "Project ID", Required: true},
			},
			Handler: func(ctx context.Context, args tool.Args) (any, error) {
				return p.api.Get(ctx, "/projects/"+args.String("project_id"), nil)
			},
		},
		{
			Name:        "digitalocean.list_regions",
			Description: "List all available regions",
			Handler: func(ctx context.Context, args tool.Args) (any, error) {
				return p.api.Get(ctx, "/regions", nil)
			},
		},
		{
			Name:        "digitalocean.list_sizes",
			Description: "List all available droplet sizes",
			Params:      pageParams(),
			Handler: func(ctx context.Context, args tool.Args) (any, error) {
				return p.api.Get(ctx, "/sizes", pageQuery(args))
			},
		},
	}
}
