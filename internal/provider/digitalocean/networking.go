package digitalocean

import (
	"context"
	"strconv"

	"github.com/instabids/mcp-hub/internal/tool"
)

func (p *Provider) networkingTools() []tool.Descriptor {
	domainName := tool.Param{Name: "domain_name", Type: tool.TypeString, Description: "Domain name", Required: true}

	return []tool.Descriptor{
		{
			Name:        "digitalocean.list_load_balancers",
			Description: "List all load balancers",
			Params:      pageParams(),
			Handler: func(ctx context.Context, args tool.Args) (any, error) {
				return p.api.Get(ctx, "/load_balancers", pageQuery(args))
			},
		},
		{
			Name:        "digitalocean.get_load_balancer",
			Description: "Retrieve a load balancer",
			Params: []tool.Param{
				{Name: "lb_id", Type: tool.TypeString, Description: "Load balancer ID", Required: true},
			},
			Handler: func(ctx context.Context, args tool.Args) (any, error) {
				return p.api.Get(ctx, "/load_balancers/"+args.String("lb_id"), nil)
			},
		},
		{
			Name:        "digitalocean.create_load_balancer",
			Description: "Create a load balancer",
			Params: []tool.Param{
				{Name: "name", Type: tool.TypeString, Description: "Load balancer name", Required: true},
				{Name: "region", Type: tool.TypeString, Description: "Region slug", Required: true},
				{Name: "forwarding_rules", Type: tool.TypeArray, Description: "Forwarding rules", Required: true},
				{Name: "droplet_ids", Type: tool.TypeArray, Description: "Droplet IDs to attach"},
			},
			Handler: func(ctx context.Context, args tool.Args) (any, error) {
				body := map[string]any{
					"name":             args.String("name"),
					"region":           args.String("region"),
					"forwarding_rules": args.Slice("forwarding_rules"),
				}
				if ids := args.Slice("droplet_ids"); len(ids) > 0 {
					body["droplet_ids"] = ids
				}
				return p.api.Post(ctx, "/load_balancers", body)
			},
		},
		{
			Name:        "digitalocean.delete_load_balancer",
			Description: "Delete a load balancer",
			Params: []tool.Param{
				{Name: "lb_id", Type: tool.TypeString, Description: "Load balancer ID", Required: true},
			},
			Handler: func(ctx context.Context, args tool.Args) (any, error) {
				return p.api.Delete(ctx, "/load_balancers/"+args.String("lb_id"))
			},
		},
		{
			Name:        "digitalocean.list_domains",
			Description: "List all domains on the account",
			Params:      pageParams(),
			Handler: func(ctx context.Context, args tool.Args) (any, error) {
				return p.api.Get(ctx, "/domains", pageQuery(args))
			},
		},
		{
			Name:        "digitalocean.create_domain",
			Description: "Add a domain to the account",
			Params: []tool.Param{
				{Name: "name", Type: tool.TypeString, Description: "Domain name", Required: true},
				{Name: "ip_address", Type: tool.TypeString, Description: "IP for the initial A record"},
			},
			Handler: func(ctx context.Context, args tool.Args) (any, error) {
				body := map[string]any{"name": args.String("name")}
				if ip := args.String("ip_address"); ip != "" {
					body["ip_address"] = ip
				}
				return p.api.Post(ctx, "/domains", body)
			},
		},
		{
			Name:        "digitalocean.get_domain",
			Description: "Retrieve a domain",
			Params:      []tool.Param{domainName},
			Handler: func(ctx context.Context, args tool.Args) (any, error) {
				return p.api.Get(ctx, "/domains/"+args.String("domain_name"), nil)
			},
		},
		{
			Name:        "digitalocean.delete_domain",
			Description: "Remove a domain from the account",
			Params:      []tool.Param{domainName},
			Handler: func(ctx context.Context, args tool.Args) (any, error) {
				return p.api.Delete(ctx, "/domains/"+args.String("domain_name"))
			},
		},
		{
			Name:        "digitalocean.list_domain_records",
			Description: "List DNS records of a domain",
			Params: append([]tool.Param{domainName,
				{Name: "type", Type: tool.TypeString, Description: "Only records of this type (A, CNAME, TXT, ...)"},
			}, pageParams()...),
			Handler: func(ctx context.Context, args tool.Args) (any, error) {
				q := pageQuery(args)
				if t := args.String("type"); t != "" {
					q.Set("type", t)
				}
				return p.api.Get(ctx, "/domains/"+args.String("domain_name")+"/records", q)
			},
		},
		{
			Name:        "digitalocean.create_domain_record",
			Description: "Create a DNS record on a domain",
			Params: []tool.Param{
				domainName,
				{Name: "type", Type: tool.TypeString, Description: "Record type (A, AAAA, CNAME, TXT, MX, ...)", Required: true},
				{Name: "name", Type: tool.TypeString, Description: "Record host name", Required: true},
				{Name: "data", Type: tool.TypeString, Description: "Record data", Required: true},
				{Name: "ttl", Type: tool.TypeInteger, Description: "Time to live in seconds", Default: 1800},
				{Name: "priority", Type: tool.TypeInteger, Description: "Priority for MX and SRV records"},
			},
			Handler: func(ctx context.Context, args tool.Args) (any, error) {
				body := map[string]any{
					"type": args.String("type"),
					"name": args.String("name"),
					"data": args.String("data"),
					"ttl":  args.IntOr("ttl", 1800),
				}
				if args.Has("priority") {
					body["priority"] = args.Int("priority")
				}
				return p.api.Post(ctx, "/domains/"+args.String("domain_name")+"/records", body)
			},
		},
		{
			Name:        "digitalocean.delete_domain_record",
			Description: "Delete a DNS record from a domain",
			Params: []tool.Param{
				domainName,
				{Name: "record_id", Type: tool.TypeInteger, Description: "DNS record ID", Required: true},
			},
			Handler: func(ctx context.Context, args tool.Args) (any, error) {
				return p.api.Delete(ctx, "/domains/"+args.String("domain_name")+"/records/"+strconv.Itoa(args.Int("record_id")))
			},
		},
	}
}
