// Package api wires the chi router: public metadata routes, the auth
// bootstrap endpoint and the token-protected tool surface.
package api

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/instabids/mcp-hub/internal/api/handlers"
	hubmiddleware "github.com/instabids/mcp-hub/internal/api/middleware"
	hubauth "github.com/instabids/mcp-hub/internal/auth"
	"github.com/instabids/mcp-hub/internal/provider"
	"github.com/instabids/mcp-hub/internal/telemetry"
	"github.com/instabids/mcp-hub/internal/tool"
)

// Deps collects everything the router needs. All fields are required
// except Probes, which may be empty when no provider is enabled.
type Deps struct {
	Registry   *tool.Registry
	Dispatcher *tool.Dispatcher
	Recorder   *telemetry.Recorder
	Auth       *hubauth.Service
	Probes     []provider.Probe
}

// NewRouter creates and configures the chi router with all routes.
func NewRouter(deps Deps) *chi.Mux {
	r := chi.NewRouter()

	// Global middleware (runs on all routes)
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	metaHandler := handlers.NewMetaHandler(deps.Registry, deps.Recorder, deps.Probes)
	toolsHandler := handlers.NewToolsHandler(deps.Registry)
	dispatchHandler := handlers.NewDispatchHandler(deps.Dispatcher)
	sseHandler := handlers.NewSSEHandler(deps.Registry)
	authHandler := handlers.NewAuthHandler(deps.Auth)

	// ===== PUBLIC ROUTES (no auth required) =====

	// Metadata and health, used by load balancers and service discovery
	r.Get("/", metaHandler.Root)
	r.Get("/health", metaHandler.Health)

	// Token bootstrap. Public so stdio bridges and dashboards can obtain
	// a token; a no-op when auth is disabled.
	r.Post("/auth/token", authHandler.Token)

	// ===== PROTECTED ROUTES (Bearer token when auth is enabled) =====

	r.Group(func(r chi.Router) {
		r.Use(hubmiddleware.Auth(deps.Auth))

		r.Route("/mcp", func(r chi.Router) {
			r.Get("/tools", toolsHandler.List)         // GET /mcp/tools
			r.Post("/call", dispatchHandler.Call)      // POST /mcp/call
			r.Post("/call_tool", dispatchHandler.Call) // POST /mcp/call_tool (alias)
		})

		// Top-level aliases kept for clients written against older hubs
		r.Get("/tools", toolsHandler.List)
		r.Get("/sse", sseHandler.Stream)
		r.Get("/auth/clients", authHandler.Clients)
	})

	return r
}
