// Package config provides application-wide configuration loaded from env vars.
// All fields have safe defaults so the binary runs locally without any env
// setup; provider tokens default to empty, which disables that provider.
package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Provider holds the connection settings for one upstream API.
type Provider struct {
	BaseURL string `yaml:"base_url"`
	Token   string `yaml:"token"`
}

// Enabled reports whether the provider has a credential configured.
// OpenWebUI instances frequently run without auth, so a base URL alone
// is enough there; callers decide which rule applies.
func (p Provider) Enabled() bool {
	return p.Token != ""
}

// Config holds runtime configuration for the MCP hub.
type Config struct {
	Host string `yaml:"host"` // MCPHUB_HOST, default: "0.0.0.0"
	Port int    `yaml:"port"` // MCPHUB_PORT, default: 8888

	DatabasePath string `yaml:"database_path"` // MCPHUB_DB_PATH, default: "mcphub.db"
	AuthSecret   string `yaml:"auth_secret"`   // MCPHUB_AUTH_SECRET, empty disables auth

	LogLevel  string `yaml:"log_level"`  // MCPHUB_LOG_LEVEL, default: "info"
	LogFormat string `yaml:"log_format"` // MCPHUB_LOG_FORMAT, default: "json"

	DigitalOcean Provider `yaml:"digitalocean"` // DIGITALOCEAN_TOKEN / DIGITALOCEAN_API_URL
	GitHub       Provider `yaml:"github"`       // GITHUB_TOKEN / GITHUB_API_URL
	OpenWebUI    Provider `yaml:"openwebui"`    // OPENWEBUI_API_KEY / OPENWEBUI_URL
}

const (
	envKeyHost         = "MCPHUB_HOST"
	envKeyPort         = "MCPHUB_PORT"
	envKeyDatabasePath = "MCPHUB_DB_PATH"
	envKeyAuthSecret   = "MCPHUB_AUTH_SECRET"
	envKeyLogLevel     = "MCPHUB_LOG_LEVEL"
	envKeyLogFormat    = "MCPHUB_LOG_FORMAT"

	envKeyDOToken     = "DIGITALOCEAN_TOKEN"
	envKeyDOBaseURL   = "DIGITALOCEAN_API_URL"
	envKeyGHToken     = "GITHUB_TOKEN"
	envKeyGHBaseURL   = "GITHUB_API_URL"
	envKeyOWUIKey     = "OPENWEBUI_API_KEY"
	envKeyOWUIBaseURL = "OPENWEBUI_URL"
)

// Default upstream endpoints, matching the public APIs.
const (
	DefaultDigitalOceanURL = "https://api.digitalocean.com/v2"
	DefaultGitHubURL       = "https://api.github.com"
	DefaultOpenWebUIURL    = "http://open-webui:8080"
)

// Load reads configuration from environment variables, applying defaults for missing values.
func Load() Config {
	return Config{
		Host:         envOr(envKeyHost, "0.0.0.0"),
		Port:         envIntOr(envKeyPort, 8888),
		DatabasePath: envOr(envKeyDatabasePath, "mcphub.db"),
		AuthSecret:   os.Getenv(envKeyAuthSecret),
		LogLevel:     envOr(envKeyLogLevel, "info"),
		LogFormat:    envOr(envKeyLogFormat, "json"),
		DigitalOcean: Provider{
			BaseURL: envOr(envKeyDOBaseURL, DefaultDigitalOceanURL),
			Token:   os.Getenv(envKeyDOToken),
		},
		GitHub: Provider{
			BaseURL: envOr(envKeyGHBaseURL, DefaultGitHubURL),
			Token:   os.Getenv(envKeyGHToken),
		},
		OpenWebUI: Provider{
			BaseURL: envOr(envKeyOWUIBaseURL, DefaultOpenWebUIURL),
			Token:   os.Getenv(envKeyOWUIKey),
		},
	}
}

// LoadFile overlays values from a YAML file onto cfg.
// Env vars remain the base layer; any non-zero value in the file wins.
func LoadFile(cfg Config, path string) (Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("config: read %q: %w", path, err)
	}

	var overlay Config
	if err := yaml.Unmarshal(raw, &overlay); err != nil {
		return cfg, fmt.Errorf("config: parse %q: %w", path, err)
	}

	return merge(cfg, overlay), nil
}

// merge returns base with every non-zero field of overlay applied.
func merge(base, overlay Config) Config {
	out := base
	if overlay.Host != "" {
		out.Host = overlay.Host
	}
	if overlay.Port != 0 {
		out.Port = overlay.Port
	}
	if overlay.DatabasePath != "" {
		out.DatabasePath = overlay.DatabasePath
	}
	if overlay.AuthSecret != "" {
		out.AuthSecret = overlay.AuthSecret
	}
	if overlay.LogLevel != "" {
		out.LogLevel = overlay.LogLevel
	}
	if overlay.LogFormat != "" {
		out.LogFormat = overlay.LogFormat
	}
	out.DigitalOcean = mergeProvider(out.DigitalOcean, overlay.DigitalOcean)
	out.GitHub = mergeProvider(out.GitHub, overlay.GitHub)
	out.OpenWebUI = mergeProvider(out.OpenWebUI, overlay.OpenWebUI)
	return out
}

func mergeProvider(base, overlay Provider) Provider {
	if overlay.BaseURL != "" {
		base.BaseURL = overlay.BaseURL
	}
	if overlay.Token != "" {
		base.Token = overlay.Token
	}
	return base
}

// Addr returns the host:port string to bind the HTTP listener to.
func (c Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// envOr returns the value of the environment variable key, or fallback if not set.
func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// envIntOr parses the environment variable key as an int, or returns fallback.
func envIntOr(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}
