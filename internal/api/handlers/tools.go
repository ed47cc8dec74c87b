package handlers

import (
	"net/http"

	"github.com/instabids/mcp-hub/internal/tool"
)

// ToolsHandler serves the tool catalog.
type ToolsHandler struct {
	registry *tool.Registry
}

// NewToolsHandler creates a ToolsHandler over the registry.
func NewToolsHandler(reg *tool.Registry) *ToolsHandler {
	return &ToolsHandler{registry: reg}
}

// toolView is the serializable catalog entry for one tool.
type toolView struct {
	Name        string      `json:"name"`
	Description string      `json:"description"`
	Parameters  []paramView `json:"parameters"`
}

// paramView is the serializable description of one parameter.
type paramView struct {
	Name        string `json:"name"`
	Type        string `json:"type"`
	Description string `json:"description,omitempty"`
	Required    bool   `json:"required"`
	Default     any    `json:"default,omitempty"`
}

// List handles GET /mcp/tools. Tools appear in registration order.
func (h *ToolsHandler) List(w http.ResponseWriter, r *http.Request) {
	descriptors := h.registry.List()
	tools := make([]toolView, 0, len(descriptors))
	for _, d := range descriptors {
		tools = append(tools, descriptorView(d))
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"tools": tools,
		"total": len(tools),
	})
}

func descriptorView(d *tool.Descriptor) toolView {
	params := make([]paramView, 0, len(d.Params))
	for _, p := range d.Params {
		params = append(params, paramView{
			Name:        p.Name,
			Type:        string(p.Type),
			Description: p.Description,
			Required:    p.Required,
			Default:     p.Default,
		})
	}
	return toolView{Name: d.Name, Description: d.Description, Parameters: params}
}
