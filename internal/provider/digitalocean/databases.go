package digitalocean

import (
	"context"

	"github.com/instabids/mcp-hub/internal/tool"
)

func (p *Provider) databaseTools() []tool.Descriptor {
	return []tool.Descriptor{
		{
			Name:        "digitalocean.list_database_clusters",
			Description: "List all managed database clusters",
			Params:      pageParams(),
			Handler: func(ctx context.Context, args tool.Args) (any, error) {
				return p.api.Get(ctx, "/databases", pageQuery(args))
			},
		},
		{
			Name:        "digitalocean.create_database_cluster",
			Description: "Create a managed database cluster",
			Params: []tool.Param{
				{Name: "name", Type: tool.TypeString, Description: "Cluster name", Required: true},
				{Name: "engine", Type: tool.TypeString, Description: "Database engine: pg, mysql, redis or mongodb", Required: true},
				{Name: "version", Type: tool.TypeString, Description: "Engine version"},
				{Name: "size", Type: tool.TypeString, Description: "Node size slug", Required: true},
				{Name: "region", Type: tool.TypeString, Description: "Region slug", Required: true},
				{Name: "num_nodes", Type: tool.TypeInteger, Description: "Number of nodes", Default: 1},
			},
			Handler: func(ctx context.Context, args tool.Args) (any, error) {
				body := map[string]any{
					"name":      args.String("name"),
					"engine":    args.String("engine"),
					"size":      args.String("size"),
					"region":    args.String("region"),
					"num_nodes": args.IntOr("num_nodes", 1),
				}
				if v := args.String("version"); v != "" {
					body["version"] = v
				}
				return p.api.Post(ctx, "/databases", body)
			},
		},
		{
			Name:        "digitalocean.get_database_cluster",
			Description: "Retrieve a database cluster",
			Params: []tool.Param{
				{Name: "cluster_id", Type: tool.TypeString, Description: "Cluster ID", Required: true},
			},
			Handler: func(ctx context.Context, args tool.Args) (any, error) {
				return p.api.Get(ctx, "/databases/"+args.String("cluster_id"), nil)
			},
		},
		{
			Name:        "digitalocean.delete_database_cluster",
			Description: "Destroy a database cluster",
			Params: []tool.Param{
				{Name: "cluster_id", Type: tool.TypeString, Description: "Cluster ID", Required: true},
			},
			Handler: func(ctx context.Context, args tool.Args) (any, error) {
				return p.api.Delete(ctx, "/databases/"+args.String("cluster_id"))
			},
		},
		{
			Name:        "digitalocean.resize_database_cluster",
			Description: "Resize a database cluster",
			Params: []tool.Param{
				{Name: "cluster_id", Type: tool.TypeString, Description: "Cluster ID", Required: true},
				{Name: "size", Type: tool.TypeString, Description: "New node size slug", Required: true},
				{Name: "num_nodes", Type: tool.TypeInteger, Description: "New number of nodes", Required: true},
			},
			Handler: func(ctx context.Context, args tool.Args) (any, error) {
				body := map[string]any{
					"size":      args.String("size"),
					"num_nodes": args.Int("num_nodes"),
				}
				return p.api.Put(ctx, "/databases/"+args.String("cluster_id")+"/resize", body)
			},
		},
		{
			Name:        "digitalocean.list_database_backups",
			Description: "List backups of a database cluster",
			Params: []tool.Param{
				{Name: "cluster_id", Type: tool.TypeString, Description: "Cluster ID", Required: true},
			},
			Handler: func(ctx context.Context, args tool.Args) (any, error) {
				return p.api.Get(ctx, "/databases/"+args.String("cluster_id")+"/backups", nil)
			},
		},
		{
			Name:        "digitalocean.list_database_replicas",
			Description: "List read-only replicas of a database cluster",
			Params: []tool.Param{
				{Name: "cluster_id", Type: tool.TypeString, Description: "Cluster ID", Required: true},
			},
			Handler: func(ctx context.Context, args tool.Args) (any, error) {
				return p.api.Get(ctx, "/databases/"+args.String("cluster_id")+"/replicas", nil)
			},
		},
		{
			Name:        "digitalocean.create_database_replica",
			Description: "Create a read-only replica of a database cluster",
			Params: []tool.Param{
				{Name: "cluster_id", Type: tool.TypeString, Description: "Cluster ID", Required: true},
				{Name: "name", Type: tool.TypeString, Description: "Replica name", Required: true},
				{Name: "size", Type: tool.TypeString, Description: "Node size slug", Required: true},
				{Name: "region", Type: tool.TypeString, Description: "Region slug"},
			},
			Handler: func(ctx context.Context, args tool.Args) (any, error) {
				body := map[string]any{
					"name": args.String("name"),
					"size": args.String("size"),
				}
				if r := args.String("region"); r != "" {
					body["region"] = r
				}
				return p.api.Post(ctx, "/databases/"+args.String("cluster_id")+"/replicas", body)
			},
		},
		{
			Name:        "digitalocean.list_database_users",
			Description: "List users of a database cluster",
			Params: []tool.Param{
				{Name: "cluster_id", Type: tool.TypeString, Description: "Cluster ID", Required: true},
			},
			Handler: func(ctx context.Context, args tool.Args) (any, error) {
				return p.api.Get(ctx, "/databases/"+args.String("cluster_id")+"/users", nil)
			},
		},
		{
			Name:        "digitalocean.create_database_user",
			Description: "Add a user to a database cluster",
			Params: []tool.Param{
				{Name: "cluster_id", Type: tool.TypeString, Description: "Cluster ID", Required: true},
				{Name: "name", Type: tool.TypeString, Description: "User name", Required: true},
			},
			Handler: func(ctx context.Context, args tool.Args) (any, error) {
				return p.api.Post(ctx, "/databases/"+args.String("cluster_id")+"/users", map[string]any{"name": args.String("name")})
			},
		},
		{
			Name:        "digitalocean.list_database_dbs",
			Description: "List logical databases in a cluster",
			Params: []tool.Param{
				{Name: "cluster_id", Type: tool.TypeString, Description: "Cluster ID", Required: true},
			},
			Handler: func(ctx context.Context, args tool.Args) (any, error) {
				return p.api.Get(ctx, "/databases/"+args.String("cluster_id")+"/dbs", nil)
			},
		},
		{
			Name:        "digitalocean.create_database_db",
			Description: "Create a logical database in a cluster",
			Params: []tool.Param{
				{Name: "cluster_id", Type: tool.TypeString, Description: "Cluster ID", Required: true},
				{Name: "name", Type: tool.TypeString, Description: "Database name", Required: true},
			},
			Handler: func(ctx context.Context, args tool.Args) (any, error) {
				return p.api.Post(ctx, "/databases/"+args.String("cluster_id")+"/dbs", map[string]any{"name": args.String("name")})
			},
		},
		{
			Name:        "digitalocean.get_database_firewall",
			Description: "List firewall rules (trusted sources) of a database cluster",
			Params: []tool.Param{
				{Name: "cluster_id", Type: tool.TypeString, Description: "Cluster ID", Required: true},
			},
			Handler: func(ctx context.Context, args tool.Args) (any, error) {
				return p.api.Get(ctx, "/databases/"+args.String("cluster_id")+"/firewall", nil)
			},
		},
		{
			Name:        "digitalocean.update_database_firewall",
			Description: "Replace the firewall rules of a database cluster",
			Params: []tool.Param{
				{Name: "cluster_id", Type: tool.TypeString, Description: "Cluster ID", Required: true},
				{Name: "rules", Type: tool.TypeArray, Description: "Firewall rules, each with type and value", Required: true},
			},
			Handler: func(ctx context.Context, args tool.Args) (any, error) {
				return p.api.Put(ctx, "/databases/"+args.String("cluster_id")+"/firewall", map[string]any{"rules": args.Slice("rules")})
			},
		},
	}
}
