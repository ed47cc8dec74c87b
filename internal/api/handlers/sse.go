package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/instabids/mcp-hub/internal/tool"
)

// pingInterval is how often the SSE stream emits keepalive pings.
const pingInterval = 30 * time.Second

// SSEHandler streams hub events to long-lived clients. On connect the
// stream announces itself and pushes the full tool catalog, then pings
// every 30 seconds until the client goes away.
type SSEHandler struct {
	registry *tool.Registry
	interval time.Duration
}

// NewSSEHandler creates an SSEHandler with the default ping interval.
func NewSSEHandler(reg *tool.Registry) *SSEHandler {
	return &SSEHandler{registry: reg, interval: pingInterval}
}

// Stream handles GET /sse.
func (h *SSEHandler) Stream(w http.ResponseWriter, r *http.Request) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		writeError(w, http.StatusInternalServerError, "streaming unsupported")
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")

	sendEvent(w, "connection", map[string]any{"status": "connected"})
	flusher.Flush()

	descriptors := h.registry.List()
	tools := make([]toolView, 0, len(descriptors))
	for _, d := range descriptors {
		tools = append(tools, descriptorView(d))
	}
	sendEvent(w, "tools", map[string]any{"tools": tools, "total": len(tools)})
	flusher.Flush()

	ticker := time.NewTicker(h.interval)
	defer ticker.Stop()

	for {
		select {
		case <-r.Context().Done():
			return
		case t := <-ticker.C:
			sendEvent(w, "ping", map[string]any{"timestamp": t.UTC().Format(time.RFC3339)})
			flusher.Flush()
		}
	}
}

// sendEvent writes one SSE frame with a named event and JSON data payload.
func sendEvent(w http.ResponseWriter, event string, data any) {
	payload, err := json.Marshal(data)
	if err != nil {
		return
	}
	fmt.Fprintf(w, "event: %s\ndata: %s\n\n", event, payload)
}
