package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/instabids/mcp-hub/internal/infra/config"
	"github.com/instabids/mcp-hub/internal/tool"
)

func TestRun_Version_PrintsVersion(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	code := run([]string{"--version"}, &out)

	if code != 0 {
		t.Fatalf("expected exit code 0, got %d", code)
	}
	if !strings.Contains(out.String(), "mcphub version") {
		t.Fatalf("expected version output, got %q", out.String())
	}
}

func TestRun_Help_PrintsUsage(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	code := run([]string{"--help"}, &out)

	if code != 0 {
		t.Fatalf("expected exit code 0, got %d", code)
	}
	if !strings.Contains(out.String(), "Usage:") {
		t.Fatalf("expected help output, got %q", out.String())
	}
}

func TestRun_InvalidFlag_Returns2(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	code := run([]string{"--unknown-flag"}, &out)

	if code != 2 {
		t.Fatalf("expected exit code 2, got %d", code)
	}
}

func TestRegisterProviders_NoneEnabled(t *testing.T) {
	t.Parallel()

	cfg := config.Config{
		OpenWebUI: config.Provider{BaseURL: config.DefaultOpenWebUIURL},
	}
	reg := tool.NewRegistry()
	probes, err := registerProviders(cfg, reg)
	if err != nil {
		t.Fatalf("registerProviders: %v", err)
	}
	if len(probes) != 0 {
		t.Fatalf("probes = %d, want 0", len(probes))
	}
	if reg.Len() != 0 {
		t.Fatalf("tools = %d, want 0", reg.Len())
	}
}

func TestRegisterProviders_TokensEnableProviders(t *testing.T) {
	t.Parallel()

	cfg := config.Config{
		DigitalOcean: config.Provider{BaseURL: config.DefaultDigitalOceanURL, Token: "do"},
		GitHub:       config.Provider{BaseURL: config.DefaultGitHubURL, Token: "gh"},
		OpenWebUI:    config.Provider{BaseURL: "http://localhost:3000"},
	}
	reg := tool.NewRegistry()
	probes, err := registerProviders(cfg, reg)
	if err != nil {
		t.Fatalf("registerProviders: %v", err)
	}
	if len(probes) != 3 {
		t.Fatalf("probes = %d, want 3", len(probes))
	}
	if reg.Len() == 0 {
		t.Fatal("expected registered tools")
	}

	names := map[string]bool{}
	for _, p := range probes {
		names[p.Name()] = true
	}
	for _, want := range []string{"digitalocean", "github", "openwebui"} {
		if !names[want] {
			t.Errorf("missing probe %q", want)
		}
	}
}
