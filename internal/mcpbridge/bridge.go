// Package mcpbridge exposes the hub's tool registry over the Model Context
// Protocol stdio transport, so MCP clients can use the same tools the HTTP
// API serves without going through HTTP.
package mcpbridge

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/instabids/mcp-hub/internal/tool"
)

// Bridge adapts the registry and dispatcher to an MCP stdio server.
type Bridge struct {
	mcpServer  *server.MCPServer
	dispatcher *tool.Dispatcher
	logger     *slog.Logger
}

// New creates a Bridge and registers every hub tool on the MCP server.
func New(name, version string, reg *tool.Registry, dispatcher *tool.Dispatcher, logger *slog.Logger) *Bridge {
	b := &Bridge{
		mcpServer:  server.NewMCPServer(name, version),
		dispatcher: dispatcher,
		logger:     logger,
	}

	for _, d := range reg.List() {
		b.mcpServer.AddTool(mcpTool(d), b.handler(d.Name))
	}

	return b
}

// Run serves the MCP protocol over stdin/stdout until the client disconnects.
// Logs must go to stderr; stdout carries the protocol.
func (b *Bridge) Run() error {
	b.logger.Info("starting mcp stdio bridge")
	if err := server.ServeStdio(b.mcpServer); err != nil {
		return fmt.Errorf("mcp stdio server: %w", err)
	}
	return nil
}

// mcpTool converts a tool descriptor into an MCP tool declaration.
func mcpTool(d *tool.Descriptor) mcp.Tool {
	properties := make(map[string]interface{}, len(d.Params))
	var required []string
	for _, p := range d.Params {
		prop := map[string]interface{}{
			"type":        string(p.Type),
			"description": p.Description,
		}
		if p.Default != nil {
			prop["default"] = p.Default
		}
		properties[p.Name] = prop
		if p.Required {
			required = append(required, p.Name)
		}
	}

	t := mcp.Tool{
		Name:        d.Name,
		Description: d.Description,
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: properties,
		},
	}
	if len(required) > 0 {
		t.InputSchema.Required = required
	}
	return t
}

// handler routes an MCP tool call through the dispatcher. Execution
// failures become MCP error results; the protocol-level error stays nil.
func (b *Bridge) handler(toolName string) func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		args, ok := request.Params.Arguments.(map[string]interface{})
		if !ok && request.Params.Arguments != nil {
			return mcp.NewToolResultError("invalid arguments format"), nil
		}

		result := b.dispatcher.Dispatch(ctx, tool.Request{Tool: toolName, Args: args})
		if result.Status == tool.StatusError {
			return mcp.NewToolResultError(result.Error), nil
		}

		payload, err := json.Marshal(result.Result)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("failed to encode result: %v", err)), nil
		}
		return textResponse(string(payload)), nil
	}
}

func textResponse(text string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			mcp.NewTextContent(text),
		},
	}
}
