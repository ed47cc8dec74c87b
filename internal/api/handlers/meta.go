package handlers

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/instabids/mcp-hub/internal/provider"
	"github.com/instabids/mcp-hub/internal/telemetry"
	"github.com/instabids/mcp-hub/internal/tool"
	"github.com/instabids/mcp-hub/internal/version"
)

// probeTimeout bounds each provider health probe so one slow upstream
// cannot stall the whole health response.
const probeTimeout = 5 * time.Second

// MetaHandler serves the service root and health endpoints.
type MetaHandler struct {
	registry *tool.Registry
	recorder *telemetry.Recorder
	probes   []provider.Probe
}

// NewMetaHandler creates a MetaHandler.
func NewMetaHandler(reg *tool.Registry, rec *telemetry.Recorder, probes []provider.Probe) *MetaHandler {
	return &MetaHandler{registry: reg, recorder: rec, probes: probes}
}

// Root handles GET /. Returns service metadata and the endpoint map.
func (h *MetaHandler) Root(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"service": "mcp-hub",
		"version": version.Version,
		"status":  "operational",
		"tools":   h.registry.Len(),
		"endpoints": map[string]string{
			"call_tool":  "POST /mcp/call",
			"list_tools": "GET /mcp/tools",
			"health":     "GET /health",
			"events":     "GET /sse",
		},
	})
}

// Health handles GET /health. Probes every enabled provider in parallel;
// the service reports degraded when any upstream is unreachable but stays
// 200 so orchestrators do not restart the hub for an upstream outage.
func (h *MetaHandler) Health(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), probeTimeout)
	defer cancel()

	type probeResult struct {
		name string
		err  error
	}

	results := make([]probeResult, len(h.probes))
	var wg sync.WaitGroup
	for i, p := range h.probes {
		wg.Add(1)
		go func(i int, p provider.Probe) {
			defer wg.Done()
			results[i] = probeResult{name: p.Name(), err: p.Ping(ctx)}
		}(i, p)
	}
	wg.Wait()

	status := "healthy"
	providers := make(map[string]string, len(results))
	for _, res := range results {
		if res.err != nil {
			providers[res.name] = "unreachable"
			status = "degraded"
		} else {
			providers[res.name] = "ok"
		}
	}

	total, failed := h.recorder.Snapshot()
	writeJSON(w, http.StatusOK, map[string]any{
		"status":    status,
		"version":   version.Version,
		"tools":     h.registry.Len(),
		"providers": providers,
		"usage": map[string]uint64{
			"dispatches": total,
			"failures":   failed,
		},
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}
