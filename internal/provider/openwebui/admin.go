package openwebui

import (
	"context"

	"github.com/instabids/mcp-hub/internal/tool"
)

func (p *Provider) adminTools() []tool.Descriptor {
	return []tool.Descriptor{
		{
			Name:        "openwebui.list_users",
			Description: "List all users of the deployment",
			Handler: func(ctx context.Context, args tool.Args) (any, error) {
				return p.api.Get(ctx, "/api/v1/users/all", nil)
			},
		},
		{
			Name:        "openwebui.get_user",
			Description: "Retrieve a single user",
			Params: []tool.Param{
				{Name: "user_id", Type: tool.TypeString, Description: "User ID", Required: true},
			},
			Handler: func(ctx context.Context, args tool.Args) (any, error) {
				return p.api.Get(ctx, "/api/v1/users/"+args.String("user_id"), nil)
			},
		},
		{
			Name:        "openwebui.get_active_users",
			Description: "Retrieve the count of currently active users",
			Handler: func(ctx context.Context, args tool.Args) (any, error) {
				return p.api.Get(ctx, "/api/v1/users/active", nil)
			},
		},
		{
			Name:        "openwebui.export_config",
			Description: "Export the deployment configuration",
			Handler: func(ctx context.Context, args tool.Args) (any, error) {
				return p.api.Get(ctx, "/api/v1/configs/export", nil)
			},
		},
	}
}
