package openwebui

import (
	"context"

	"github.com/instabids/mcp-hub/internal/tool"
)

func (p *Provider) knowledgeTools() []tool.Descriptor {
	return []tool.Descriptor{
		{
			Name:        "openwebui.list_knowledge",
			Description: "List knowledge collections",
			Handler: func(ctx context.Context, args tool.Args) (any, error) {
				return p.api.Get(ctx, "/api/v1/knowledge/", nil)
			},
		},
		{
			Name:        "openwebui.list_files",
			Description: "List uploaded files",
			Handler: func(ctx context.Context, args tool.Args) (any, error) {
				return p.api.Get(ctx, "/api/v1/files/", nil)
			},
		},
		{
			Name:        "openwebui.process_text",
			Description: "Ingest raw text into the retrieval index",
			Params: []tool.Param{
				{Name: "name", Type: tool.TypeString, Description: "Document name", Required: true},
				{Name: "content", Type: tool.TypeString, Description: "Text to ingest", Required: true},
				{Name: "collection_name", Type: tool.TypeString, Description: "Target collection"},
			},
			Handler: func(ctx context.Context, args tool.Args) (any, error) {
				body := map[string]any{
					"name":    args.String("name"),
					"content": args.String("content"),
				}
				if c := args.String("collection_name"); c != "" {
					body["collection_name"] = c
				}
				return p.api.Post(ctx, "/api/v1/retrieval/process/text", body)
			},
		},
		{
			Name:        "openwebui.query_collection",
			Description: "Query a retrieval collection",
			Params: []tool.Param{
				{Name: "collection_name", Type: tool.TypeString, Description: "Collection to query", Required: true},
				{Name: "query", Type: tool.TypeString, Description: "Query text", Required: true},
				{Name: "k", Type: tool.TypeInteger, Description: "Number of results", Default: 4},
			},
			Handler: func(ctx context.Context, args tool.Args) (any, error) {
				body := map[string]any{
					"collection_names": []string{args.String("collection_name")},
					"query":            args.String("query"),
					"k":                args.IntOr("k", 4),
				}
				return p.api.Post(ctx, "/api/v1/retrieval/query/collection", body)
			},
		},
		{
			Name:        "openwebui.get_retrieval_config",
			Description: "Retrieve the retrieval (RAG) configuration",
			Handler: func(ctx context.Context, args tool.Args) (any, error) {
				return p.api.Get(ctx, "/api/v1/retrieval/config", nil)
			},
		},
	}
}
