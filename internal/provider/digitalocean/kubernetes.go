package digitalocean

import (
	"context"

	"github.com/instabids/mcp-hub/internal/tool"
)

func (p *Provider) kubernetesTools() []tool.Descriptor {
	clusterID := tool.Param{Name: "cluster_id", Type: tool.TypeString, Description: "Kubernetes cluster ID", Required: true}

	return []tool.Descriptor{
		{
			Name:        "digitalocean.list_kubernetes_clusters",
			Description: "List all Kubernetes clusters",
			Params:      pageParams(),
			Handler: func(ctx context.Context, args tool.Args) (any, error) {
				return p.api.Get(ctx, "/kubernetes/clusters", pageQuery(args))
			},
		},
		{
			Name:        "digitalocean.get_kubernetes_cluster",
			Description: "Retrieve a Kubernetes cluster",
			Params:      []tool.Param{clusterID},
			Handler: func(ctx context.Context, args tool.Args) (any, error) {
				return p.api.Get(ctx, "/kubernetes/clusters/"+args.String("cluster_id"), nil)
			},
		},
		{
			Name:        "digitalocean.delete_kubernetes_cluster",
			Description: "Delete a Kubernetes cluster",
			Params:      []tool.Param{clusterID},
			Handler: func(ctx context.Context, args tool.Args) (any, error) {
				return p.api.Delete(ctx, "/kubernetes/clusters/"+args.String("cluster_id"))
			},
		},
		{
			Name:        "digitalocean.list_kubernetes_node_pools",
			Description: "List node pools of a Kubernetes cluster",
			Params:      []tool.Param{clusterID},
			Handler: func(ctx context.Context, args tool.Args) (any, error) {
				return p.api.Get(ctx, "/kubernetes/clusters/"+args.String("cluster_id")+"/node_pools", nil)
			},
		},
		{
			Name:        "digitalocean.get_kubeconfig",
			Description: "Download the kubeconfig for a Kubernetes cluster",
			Params:      []tool.Param{clusterID},
			Handler: func(ctx context.Context, args tool.Args) (any, error) {
				return p.api.Get(ctx, "/kubernetes/clusters/"+args.String("cluster_id")+"/kubeconfig", nil)
			},
		},
	}
}
