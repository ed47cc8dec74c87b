// mcphub - MCP tool hub for cloud provider APIs
// Entry point: flag handling, dependency wiring and lifecycle.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/instabids/mcp-hub/internal/api"
	hubauth "github.com/instabids/mcp-hub/internal/auth"
	"github.com/instabids/mcp-hub/internal/infra/config"
	"github.com/instabids/mcp-hub/internal/infra/eventbus"
	"github.com/instabids/mcp-hub/internal/infra/logging"
	"github.com/instabids/mcp-hub/internal/infra/sqlite"
	"github.com/instabids/mcp-hub/internal/mcpbridge"
	"github.com/instabids/mcp-hub/internal/provider"
	"github.com/instabids/mcp-hub/internal/provider/digitalocean"
	"github.com/instabids/mcp-hub/internal/provider/github"
	"github.com/instabids/mcp-hub/internal/provider/openwebui"
	"github.com/instabids/mcp-hub/internal/server"
	"github.com/instabids/mcp-hub/internal/telemetry"
	"github.com/instabids/mcp-hub/internal/tool"
	"github.com/instabids/mcp-hub/internal/version"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout))
}

func run(args []string, out io.Writer) int {
	fs := flag.NewFlagSet("mcphub", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	showVersion := fs.Bool("version", false, "Show version information")
	showHelp := fs.Bool("help", false, "Show help")
	configPath := fs.String("config", "", "Path to YAML config file")
	stdio := fs.Bool("stdio", false, "Serve the MCP protocol over stdin/stdout instead of HTTP")

	if err := fs.Parse(args); err != nil {
		return 2
	}

	if *showVersion {
		fmt.Fprintln(out, version.String()) //nolint:errcheck
		return 0
	}

	if *showHelp {
		printHelp(out)
		return 0
	}

	if err := serve(*configPath, *stdio); err != nil {
		fmt.Fprintln(os.Stderr, "mcphub:", err) //nolint:errcheck
		return 1
	}
	return 0
}

func serve(configPath string, stdio bool) error {
	cfg := config.Load()
	if configPath != "" {
		var err error
		cfg, err = config.LoadFile(cfg, configPath)
		if err != nil {
			return fmt.Errorf("load config file: %w", err)
		}
	}

	// The stdio bridge owns stdout for the protocol; logs go to stderr
	// either way.
	logger := logging.New(os.Stderr, cfg.LogLevel, logging.Format(cfg.LogFormat))

	db, err := sqlite.NewDB(cfg.DatabasePath)
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	if err := sqlite.MigrateUp(db); err != nil {
		db.Close()
		return fmt.Errorf("run migrations: %w", err)
	}

	registry := tool.NewRegistry()
	probes, err := registerProviders(cfg, registry)
	if err != nil {
		db.Close()
		return fmt.Errorf("register providers: %w", err)
	}
	for _, p := range probes {
		logger.Info("provider enabled", logging.ProviderKey, p.Name())
	}
	logger.Info("tool registry ready", "tools", registry.Len())

	bus := eventbus.New()
	recorder := telemetry.NewRecorder(bus)
	writer := telemetry.NewWriter(db, bus, logger)
	dispatcher := tool.NewDispatcher(registry, recorder, logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	go writer.Start(ctx)

	if stdio {
		defer db.Close()
		bridge := mcpbridge.New("mcp-hub", version.Version, registry, dispatcher, logger)
		return bridge.Run()
	}

	authSvc := hubauth.NewService(db, cfg.AuthSecret, 0)
	router := api.NewRouter(api.Deps{
		Registry:   registry,
		Dispatcher: dispatcher,
		Recorder:   recorder,
		Auth:       authSvc,
		Probes:     probes,
	})

	srvCfg := server.DefaultConfig()
	srvCfg.Host = cfg.Host
	srvCfg.Port = cfg.Port
	srv := server.NewServer(router, db, logger, srvCfg)

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start(ctx)
	}()

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return err
		}
	}
	return nil
}

// registerProviders wires every enabled provider into the registry and
// returns their health probes. DigitalOcean and GitHub need a token;
// OpenWebUI only needs explicit configuration since many deployments run
// without auth.
func registerProviders(cfg config.Config, registry *tool.Registry) ([]provider.Probe, error) {
	var probes []provider.Probe

	if cfg.DigitalOcean.Enabled() {
		p := digitalocean.New(cfg.DigitalOcean.BaseURL, cfg.DigitalOcean.Token)
		if err := p.Register(registry); err != nil {
			return nil, err
		}
		probes = append(probes, p)
	}

	if cfg.GitHub.Enabled() {
		p := github.New(cfg.GitHub.BaseURL, cfg.GitHub.Token)
		if err := p.Register(registry); err != nil {
			return nil, err
		}
		probes = append(probes, p)
	}

	if cfg.OpenWebUI.Token != "" || cfg.OpenWebUI.BaseURL != config.DefaultOpenWebUIURL {
		p := openwebui.New(cfg.OpenWebUI.BaseURL, cfg.OpenWebUI.Token)
		if err := p.Register(registry); err != nil {
			return nil, err
		}
		probes = append(probes, p)
	}

	return probes, nil
}

func printHelp(out io.Writer) {
	helpText := `mcphub - MCP tool hub for cloud provider APIs

Usage:
  mcphub [options]

Options:
  --version         Show version information
  --help            Show this help message
  --config <path>   Load a YAML config file over the environment
  --stdio           Serve the MCP protocol on stdin/stdout instead of HTTP

Environment:
  MCPHUB_HOST            Listen host (default 0.0.0.0)
  MCPHUB_PORT            Listen port (default 8888)
  MCPHUB_DB_PATH         SQLite database path (default mcphub.db)
  MCPHUB_AUTH_SECRET     JWT signing secret; empty disables client auth
  DIGITALOCEAN_TOKEN     Enables the DigitalOcean tools
  GITHUB_TOKEN           Enables the GitHub tools
  OPENWEBUI_URL          Enables the Open WebUI tools
  OPENWEBUI_API_KEY      Optional Open WebUI credential

Examples:
  mcphub --version
  GITHUB_TOKEN=ghp_xxx mcphub
  mcphub --stdio`
	fmt.Fprintln(out, helpText) //nolint:errcheck
}
