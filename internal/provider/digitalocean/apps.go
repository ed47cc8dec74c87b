package digitalocean

import (
	"context"
	"net/url"

	"github.com/instabids/mcp-hub/internal/tool"
)

func (p *Provider) appTools() []tool.Descriptor {
	return []tool.Descriptor{
		{
			Name:        "digitalocean.list_apps",
			Description: "List all apps on the account",
			Params:      pageParams(),
			Handler: func(ctx context.Context, args tool.Args) (any, error) {
				return p.api.Get(ctx, "/apps", pageQuery(args))
			},
		},
		{
			Name:        "digitalocean.create_app",
			Description: "Create a new app from an app spec",
			Params: []tool.Param{
				{Name: "spec", Type: tool.TypeObject, Description: "App specification", Required: true},
			},
			Handler: func(ctx context.Context, args tool.Args) (any, error) {
				return p.api.Post(ctx, "/apps", map[string]any{"spec": args.Object("spec")})
			},
		},
		{
			Name:        "digitalocean.get_app",
			Description: "Retrieve details about a single app",
			Params: []tool.Param{
				{Name: "app_id", Type: tool.TypeString, Description: "App ID", Required: true},
			},
			Handler: func(ctx context.Context, args tool.Args) (any, error) {
				return p.api.Get(ctx, "/apps/"+args.String("app_id"), nil)
			},
		},
		{
			Name:        "digitalocean.update_app",
			Description: "Replace an app's spec",
			Params: []tool.Param{
				{Name: "app_id", Type: tool.TypeString, Description: "App ID", Required: true},
				{Name: "spec", Type: tool.TypeObject, Description: "New app specification", Required: true},
			},
			Handler: func(ctx context.Context, args tool.Args) (any, error) {
				return p.api.Put(ctx, "/apps/"+args.String("app_id"), map[string]any{"spec": args.Object("spec")})
			},
		},
		{
			Name:        "digitalocean.delete_app",
			Description: "Delete an app",
			Params: []tool.Param{
				{Name: "app_id", Type: tool.TypeString, Description: "App ID", Required: true},
			},
			Handler: func(ctx context.Context, args tool.Args) (any, error) {
				return p.api.Delete(ctx, "/apps/"+args.String("app_id"))
			},
		},
		{
			Name:        "digitalocean.list_deployments",
			Description: "List deployments for an app",
			Params: append([]tool.Param{
				{Name: "app_id", Type: tool.TypeString, Description: "App ID", Required: true},
			}, pageParams()...),
			Handler: func(ctx context.Context, args tool.Args) (any, error) {
				return p.api.Get(ctx, "/apps/"+args.String("app_id")+"/deployments", pageQuery(args))
			},
		},
		{
			Name:        "digitalocean.create_deployment",
			Description: "Trigger a new deployment for an app",
			Params: []tool.Param{
				{Name: "app_id", Type: tool.TypeString, Description: "App ID", Required: true},
				{Name: "force_build", Type: tool.TypeBoolean, Description: "Force a rebuild without cache", Default: false},
			},
			Handler: func(ctx context.Context, args tool.Args) (any, error) {
				body := map[string]any{"force_build": args.Bool("force_build")}
				return p.api.Post(ctx, "/apps/"+args.String("app_id")+"/deployments", body)
			},
		},
		{
			Name:        "digitalocean.get_deployment",
			Description: "Retrieve a single deployment of an app",
			Params: []tool.Param{
				{Name: "app_id", Type: tool.TypeString, Description: "App ID", Required: true},
				{Name: "deployment_id", Type: tool.TypeString, Description: "Deployment ID", Required: true},
			},
			Handler: func(ctx context.Context, args tool.Args) (any, error) {
				return p.api.Get(ctx, "/apps/"+args.String("app_id")+"/deployments/"+args.String("deployment_id"), nil)
			},
		},
		{
			Name:        "digitalocean.cancel_deployment",
			Description: "Cancel an in-progress deployment",
			Params: []tool.Param{
				{Name: "app_id", Type: tool.TypeString, Description: "App ID", Required: true},
				{Name: "deployment_id", Type: tool.TypeString, Description: "Deployment ID", Required: true},
			},
			Handler: func(ctx context.Context, args tool.Args) (any, error) {
				return p.api.Post(ctx, "/apps/"+args.String("app_id")+"/deployments/"+args.String("deployment_id")+"/cancel", nil)
			},
		},
		{
			Name:        "digitalocean.get_deployment_logs",
			Description: "Retrieve the log download URLs for a deployment",
			Params: []tool.Param{
				{Name: "app_id", Type: tool.TypeString, Description: "App ID", Required: true},
				{Name: "deployment_id", Type: tool.TypeString, Description: "Deployment ID", Required: true},
				{Name: "log_type", Type: tool.TypeString, Description: "Log type: BUILD, DEPLOY or RUN", Default: "RUN"},
			},
			Handler: func(ctx context.Context, args tool.Args) (any, error) {
				q := url.Values{"type": {args.StringOr("log_type", "RUN")}}
				return p.api.Get(ctx, "/apps/"+args.String("app_id")+"/deployments/"+args.String("deployment_id")+"/logs", q)
			},
		},
		{
			Name:        "digitalocean.rollback_app",
			Description: "Roll an app back to a previous deployment",
			Params: []tool.Param{
				{Name: "app_id", Type: tool.TypeString, Description: "App ID", Required: true},
				{Name: "deployment_id", Type: tool.TypeString, Description: "Deployment to roll back to", Required: true},
				{Name: "skip_pin", Type: tool.TypeBoolean, Description: "Skip pinning the rollback deployment", Default: false},
			},
			Handler: func(ctx context.Context, args tool.Args) (any, error) {
				body := map[string]any{
					"deployment_id": args.String("deployment_id"),
					"skip_pin":      args.Bool("skip_pin"),
				}
				return p.api.Post(ctx, "/apps/"+args.String("app_id")+"/rollback", body)
			},
		},
		{
			Name:        "digitalocean.validate_app_spec",
			Description: "Validate an app spec without creating the app",
			Params: []tool.Param{
				{Name: "spec", Type: tool.TypeObject, Description: "App specification to validate", Required: true},
			},
			Handler: func(ctx context.Context, args tool.Args) (any, error) {
				return p.api.Post(ctx, "/apps/propose", map[string]any{"spec": args.Object("spec")})
			},
		},
		{
			Name:        "digitalocean.list_instance_sizes",
			Description: "List available app instance sizes",
			Handler: func(ctx context.Context, args tool.Args) (any, error) {
				return p.api.Get(ctx, "/apps/tiers/instance_sizes", nil)
			},
		},
		{
			Name:        "digitalocean.list_app_regions",
			Description: "List regions where apps can be deployed",
			Handler: func(ctx context.Context, args tool.Args) (any, error) {
				return p.api.Get(ctx, "/apps/regions", nil)
			},
		},
	}
}
