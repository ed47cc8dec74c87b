package openwebui

import (
	"context"

	"github.com/instabids/mcp-hub/internal/tool"
)

func (p *Provider) chatTools() []tool.Descriptor {
	return []tool.Descriptor{
		{
			Name:        "openwebui.list_models",
			Description: "List models available to the deployment",
			Handler: func(ctx context.Context, args tool.Args) (any, error) {
				return p.api.Get(ctx, "/api/models", nil)
			},
		},
		{
			Name:        "openwebui.list_ollama_models",
			Description: "List models served by the backing Ollama instance",
			Handler: func(ctx context.Context, args tool.Args) (any, error) {
				return p.api.Get(ctx, "/ollama/api/tags", nil)
			},
		},
		{
			Name:        "openwebui.chat_completion",
			Description: "Run a non-streaming chat completion",
			Params: []tool.Param{
				{Name: "model", Type: tool.TypeString, Description: "Model ID", Required: true},
				{Name: "messages", Type: tool.TypeArray, Description: "Chat messages with role and content", Required: true},
				{Name: "temperature", Type: tool.TypeNumber, Description: "Sampling temperature"},
				{Name: "max_tokens", Type: tool.TypeInteger, Description: "Response token cap"},
			},
			Handler: func(ctx context.Context, args tool.Args) (any, error) {
				messages := args.ObjectSlice("messages")
				if len(messages) == 0 {
					return nil, tool.Validationf("messages must contain at least one {role, content} entry")
				}
				body := map[string]any{
					"model":    args.String("model"),
					"messages": messages,
					"stream":   false,
				}
				if args.Has("temperature") {
					body["temperature"] = args["temperature"]
				}
				if args.Has("max_tokens") {
					body["max_tokens"] = args.Int("max_tokens")
				}
				return p.api.Post(ctx, "/api/chat/completions", body)
			},
		},
		{
			Name:        "openwebui.list_chats",
			Description: "List the caller's chat threads",
			Handler: func(ctx context.Context, args tool.Args) (any, error) {
				return p.api.Get(ctx, "/api/v1/chats/list", nil)
			},
		},
		{
			Name:        "openwebui.create_chat",
			Description: "Create a new chat thread",
			Params: []tool.Param{
				{Name: "title", Type: tool.TypeString, Description: "Chat title", Default: "New Chat"},
			},
			Handler: func(ctx context.Context, args tool.Args) (any, error) {
				body := map[string]any{
					"chat": map[string]any{"title": args.StringOr("title", "New Chat")},
				}
				return p.api.Post(ctx, "/api/v1/chats/new", body)
			},
		},
	}
}
