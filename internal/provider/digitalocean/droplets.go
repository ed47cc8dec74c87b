package digitalocean

import (
	"context"
	"strconv"

	"github.com/instabids/mcp-hub/internal/tool"
)

// dropletAction posts a named action to a droplet's action endpoint.
func (p *Provider) dropletAction(ctx context.Context, dropletID int, body map[string]any) (any, error) {
	return p.api.Post(ctx, "/droplets/"+strconv.Itoa(dropletID)+"/actions", body)
}

func (p *Provider) dropletTools() []tool.Descriptor {
	dropletID := tool.Param{Name: "droplet_id", Type: tool.TypeInteger, Description: "Droplet ID", Required: true}

	return []tool.Descriptor{
		{
			Name:        "digitalocean.list_droplets",
			Description: "List all droplets on the account",
			Params: append([]tool.Param{
				{Name: "tag_name", Type: tool.TypeString, Description: "Only list droplets with this tag"},
			}, pageParams()...),
			Handler: func(ctx context.Context, args tool.Args) (any, error) {
				q := pageQuery(args)
				if tag := args.String("tag_name"); tag != "" {
					q.Set("tag_name", tag)
				}
				return p.api.Get(ctx, "/droplets", q)
			},
		},
		{
			Name:        "digitalocean.create_droplet",
			Description: "Create a new droplet",
			Params: []tool.Param{
				{Name: "name", Type: tool.TypeString, Description: "Droplet hostname", Required: true},
				{Name: "region", Type: tool.TypeString, Description: "Region slug", Required: true},
				{Name: "size", Type: tool.TypeString, Description: "Size slug", Required: true},
				{Name: "image", Type: tool.TypeString, Description: "Image slug or ID", Required: true},
				{Name: "ssh_keys", Type: tool.TypeArray, Description: "SSH key IDs or fingerprints"},
				{Name: "tags", Type: tool.TypeArray, Description: "Tags to apply"},
				{Name: "backups", Type: tool.TypeBoolean, Description: "Enable automated backups", Default: false},
				{Name: "monitoring", Type: tool.TypeBoolean, Description: "Install the monitoring agent", Default: true},
			},
			Handler: func(ctx context.Context, args tool.Args) (any, error) {
				body := map[string]any{
					"name":       args.String("name"),
					"region":     args.String("region"),
					"size":       args.String("size"),
					"image":      args.String("image"),
					"backups":    args.Bool("backups"),
					"monitoring": args.Bool("monitoring"),
				}
				if keys := args.Slice("ssh_keys"); len(keys) > 0 {
					body["ssh_keys"] = keys
				}
				if tags := args.Slice("tags"); len(tags) > 0 {
					body["tags"] = tags
				}
				return p.api.Post(ctx, "/droplets", body)
			},
		},
		{
			Name:        "digitalocean.get_droplet",
			Description: "Retrieve a droplet",
			Params:      []tool.Param{dropletID},
			Handler: func(ctx context.Context, args tool.Args) (any, error) {
				return p.api.Get(ctx, "/droplets/"+strconv.Itoa(args.Int("droplet_id")), nil)
			},
		},
		{
			Name:        "digitalocean.delete_droplet",
			Description: "Destroy a droplet",
			Params:      []tool.Param{dropletID},
			Handler: func(ctx context.Context, args tool.Args) (any, error) {
				return p.api.Delete(ctx, "/droplets/"+strconv.Itoa(args.Int("droplet_id")))
			},
		},
		{
			Name:        "digitalocean.power_on_droplet",
			Description: "Power a droplet on",
			Params:      []tool.Param{dropletID},
			Handler: func(ctx context.Context, args tool.Args) (any, error) {
				return p.dropletAction(ctx, args.Int("droplet_id"), map[string]any{"type": "power_on"})
			},
		},
		{
			Name:        "digitalocean.power_off_droplet",
			Description: "Hard power a droplet off",
			Params:      []tool.Param{dropletID},
			Handler: func(ctx context.Context, args tool.Args) (any, error) {
				return p.dropletAction(ctx, args.Int("droplet_id"), map[string]any{"type": "power_off"})
			},
		},
		{
			Name:        "digitalocean.reboot_droplet",
			Description: "Gracefully reboot a droplet",
			Params:      []tool.Param{dropletID},
			Handler: func(ctx context.Context, args tool.Args) (any, error) {
				return p.dropletAction(ctx, args.Int("droplet_id"), map[string]any{"type": "reboot"})
			},
		},
		{
			Name:        "digitalocean.resize_droplet",
			Description: "Resize a droplet to a new size slug",
			Params: []tool.Param{
				dropletID,
				{Name: "size", Type: tool.TypeString, Description: "New size slug", Required: true},
				{Name: "resize_disk", Type: tool.TypeBoolean, Description: "Also grow the disk (irreversible)", Default: false},
			},
			Handler: func(ctx context.Context, args tool.Args) (any, error) {
				return p.dropletAction(ctx, args.Int("droplet_id"), map[string]any{
					"type": "resize",
					"size": args.String("size"),
					"disk": args.Bool("resize_disk"),
				})
			},
		},
		{
			Name:        "digitalocean.snapshot_droplet",
			Description: "Take a named snapshot of a droplet",
			Params: []tool.Param{
				dropletID,
				{Name: "name", Type: tool.TypeString, Description: "Snapshot name", Required: true},
			},
			Handler: func(ctx context.Context, args tool.Args) (any, error) {
				return p.dropletAction(ctx, args.Int("droplet_id"), map[string]any{
					"type": "snapshot",
					"name": args.String("name"),
				})
			},
		},
	}
}
