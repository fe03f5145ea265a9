package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"

	"github.com/storekit/woo-mcp/internal/common"
)

// Config represents the application configuration.
type Config struct {
	Server  ServerConfig         `toml:"server"`
	Woo     WooConfig            `toml:"woo"`
	Bridge  BridgeConfig         `toml:"bridge"`
	Logging common.LoggingConfig `toml:"logging"`
}

// ServerConfig contains HTTP server settings.
type ServerConfig struct {
	Port int    `toml:"port"`
	Host string `toml:"host"`
}

// WooConfig contains the WooCommerce REST API settings.
// BaseURL should point at the API root, e.g. https://shop.example.com/wp-json/wc/v3.
type WooConfig struct {
	BaseURL        string `toml:"base_url"`
	ConsumerKey    string `toml:"consumer_key"`
	ConsumerSecret string `toml:"consumer_secret"`
	QueryAuth      bool   `toml:"query_auth"`
	Timeout        string `toml:"timeout"`
}

// GetTimeout parses and returns the request timeout duration
func (c *WooConfig) GetTimeout() time.Duration {
	d, err := time.ParseDuration(c.Timeout)
	if err != nil {
		return 30 * time.Second
	}
	return d
}

// BridgeConfig contains the streaming relay settings.
// UpstreamURL is the remote JSON-RPC/SSE endpoint POSTed to by the /sse route;
// BearerToken, when set, is attached to every outbound relay request.
type BridgeConfig struct {
	UpstreamURL string `toml:"upstream_url"`
	BearerToken string `toml:"bearer_token"`
}

// LoadFromFile loads configuration with priority: defaults -> file -> env.
func LoadFromFile(path string) (*Config, error) {
	if path == "" {
		return LoadFromFiles()
	}
	return LoadFromFiles(path)
}

// LoadFromFiles loads configuration from multiple files with priority:
// defaults -> file1 -> file2 -> ... -> env.
// Later files override earlier files.
func LoadFromFiles(paths ...string) (*Config, error) {
	config := NewDefaultConfig()

	for i, path := range paths {
		if path == "" {
			continue
		}

		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}

		err = toml.Unmarshal(data, config)
		if err != nil {
			return nil, fmt.Errorf("failed to parse config file %s (file %d of %d): %w", path, i+1, len(paths), err)
		}
	}

	applyEnvOverrides(config)

	return config, nil
}

// applyEnvOverrides applies environment variable overrides to config.
func applyEnvOverrides(config *Config) {
	if port := os.Getenv("WOOMCP_PORT"); port != "" {
		if p, err := strconv.Atoi(port); err == nil {
			config.Server.Port = p
		}
	}
	if host := os.Getenv("WOOMCP_HOST"); host != "" {
		config.Server.Host = host
	}
	if level := os.Getenv("WOOMCP_LOG_LEVEL"); level != "" {
		config.Logging.Level = level
	}
	if url := os.Getenv("WOO_BASE_URL"); url != "" {
		config.Woo.BaseURL = url
	}
	if key := os.Getenv("WOO_CONSUMER_KEY"); key != "" {
		config.Woo.ConsumerKey = key
	}
	if secret := os.Getenv("WOO_CONSUMER_SECRET"); secret != "" {
		config.Woo.ConsumerSecret = secret
	}
	if qa := os.Getenv("WOO_QUERY_AUTH"); qa != "" {
		config.Woo.QueryAuth = isTruthy(qa)
	}
	if url := os.Getenv("BRIDGE_UPSTREAM_URL"); url != "" {
		config.Bridge.UpstreamURL = url
	}
	if token := os.Getenv("BRIDGE_BEARER_TOKEN"); token != "" {
		config.Bridge.BearerToken = token
	}
}

// ApplyFlagOverrides applies command-line flag overrides to config.
func ApplyFlagOverrides(config *Config, port int, host string) {
	if port > 0 {
		config.Server.Port = port
	}
	if host != "" {
		config.Server.Host = host
	}
}

// Validate checks mandatory configuration for the chosen modes.
// Returns a list of human-readable issues; an empty list means the config is usable.
// Completeness is checked here, at startup, so a missing credential aborts the
// process instead of failing on the first tool call.
func (c *Config) Validate() []string {
	var issues []string

	if c.Woo.BaseURL == "" && c.Bridge.UpstreamURL == "" {
		issues = append(issues, "no upstream configured: set woo.base_url (WOO_BASE_URL) and/or bridge.upstream_url (BRIDGE_UPSTREAM_URL)")
	}

	if c.Woo.BaseURL != "" {
		if c.Woo.ConsumerKey == "" {
			issues = append(issues, "woo.consumer_key is required when woo.base_url is set (WOO_CONSUMER_KEY)")
		}
		if c.Woo.ConsumerSecret == "" {
			issues = append(issues, "woo.consumer_secret is required when woo.base_url is set (WOO_CONSUMER_SECRET)")
		}
	}

	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		issues = append(issues, fmt.Sprintf("server.port must be between 1 and 65535, got %d", c.Server.Port))
	}

	return issues
}

// isTruthy interprets common boolean environment variable spellings.
func isTruthy(v string) bool {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "1", "true", "yes", "on":
		return true
	default:
		return false
	}
}
