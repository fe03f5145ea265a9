package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestNewDefaultConfig(t *testing.T) {
	cfg := NewDefaultConfig()

	if cfg.Server.Port != 4280 {
		t.Errorf("Expected default port 4280, got %d", cfg.Server.Port)
	}
	if cfg.Server.Host != "0.0.0.0" {
		t.Errorf("Expected default host 0.0.0.0, got %s", cfg.Server.Host)
	}
	if cfg.Woo.Timeout != "30s" {
		t.Errorf("Expected default timeout 30s, got %s", cfg.Woo.Timeout)
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("Expected default log level info, got %s", cfg.Logging.Level)
	}
}

func TestLoadFromFiles_TOML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "woo-mcp.toml")
	content := `
[server]
port = 9090
host = "127.0.0.1"

[woo]
base_url = "https://shop.example.com/wp-json/wc/v3"
consumer_key = "ck_abc"
consumer_secret = "cs_def"
query_auth = true

[bridge]
upstream_url = "https://mcp.example.com/stream"
bearer_token = "tok"
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write config file: %v", err)
	}

	cfg, err := LoadFromFiles(path)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if cfg.Server.Port != 9090 {
		t.Errorf("Expected port 9090, got %d", cfg.Server.Port)
	}
	if cfg.Woo.BaseURL != "https://shop.example.com/wp-json/wc/v3" {
		t.Errorf("Unexpected base_url %q", cfg.Woo.BaseURL)
	}
	if !cfg.Woo.QueryAuth {
		t.Error("Expected query_auth true")
	}
	if cfg.Bridge.UpstreamURL != "https://mcp.example.com/stream" {
		t.Errorf("Unexpected upstream_url %q", cfg.Bridge.UpstreamURL)
	}
}

func TestLoadFromFiles_LaterFileOverrides(t *testing.T) {
	dir := t.TempDir()
	base := filepath.Join(dir, "base.toml")
	override := filepath.Join(dir, "override.toml")

	os.WriteFile(base, []byte("[server]\nport = 1111\nhost = \"a\"\n"), 0644)
	os.WriteFile(override, []byte("[server]\nport = 2222\n"), 0644)

	cfg, err := LoadFromFiles(base, override)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if cfg.Server.Port != 2222 {
		t.Errorf("Expected later file to win, got port %d", cfg.Server.Port)
	}
	if cfg.Server.Host != "a" {
		t.Errorf("Expected earlier value preserved, got host %q", cfg.Server.Host)
	}
}

func TestLoadFromFiles_MissingFile(t *testing.T) {
	_, err := LoadFromFiles("/nonexistent/woo-mcp.toml")
	if err == nil {
		t.Fatal("Expected error for missing file")
	}
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("WOOMCP_PORT", "7070")
	t.Setenv("WOO_BASE_URL", "https://env.example.com/wp-json/wc/v3")
	t.Setenv("WOO_CONSUMER_KEY", "ck_env")
	t.Setenv("WOO_CONSUMER_SECRET", "cs_env")
	t.Setenv("WOO_QUERY_AUTH", "yes")
	t.Setenv("BRIDGE_UPSTREAM_URL", "https://env.example.com/stream")

	cfg, err := LoadFromFiles()
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if cfg.Server.Port != 7070 {
		t.Errorf("Expected port 7070 from env, got %d", cfg.Server.Port)
	}
	if cfg.Woo.BaseURL != "https://env.example.com/wp-json/wc/v3" {
		t.Errorf("Unexpected base_url %q", cfg.Woo.BaseURL)
	}
	if !cfg.Woo.QueryAuth {
		t.Error("Expected query_auth true from WOO_QUERY_AUTH=yes")
	}
	if cfg.Bridge.UpstreamURL != "https://env.example.com/stream" {
		t.Errorf("Unexpected upstream_url %q", cfg.Bridge.UpstreamURL)
	}
}

func TestApplyFlagOverrides(t *testing.T) {
	cfg := NewDefaultConfig()

	ApplyFlagOverrides(cfg, 8888, "localhost")
	if cfg.Server.Port != 8888 || cfg.Server.Host != "localhost" {
		t.Errorf("Expected flag overrides applied, got %+v", cfg.Server)
	}

	// Zero values leave config untouched
	ApplyFlagOverrides(cfg, 0, "")
	if cfg.Server.Port != 8888 || cfg.Server.Host != "localhost" {
		t.Errorf("Expected zero flags ignored, got %+v", cfg.Server)
	}
}

func TestValidate_NoUpstreamConfigured(t *testing.T) {
	cfg := NewDefaultConfig()

	issues := cfg.Validate()
	if len(issues) != 1 {
		t.Fatalf("Expected 1 issue, got %v", issues)
	}
	if !strings.Contains(issues[0], "no upstream configured") {
		t.Errorf("Unexpected issue text: %s", issues[0])
	}
}

func TestValidate_WooRequiresCredentials(t *testing.T) {
	cfg := NewDefaultConfig()
	cfg.Woo.BaseURL = "https://shop.example.com/wp-json/wc/v3"

	issues := cfg.Validate()
	if len(issues) != 2 {
		t.Fatalf("Expected 2 issues for missing key and secret, got %v", issues)
	}
}

func TestValidate_BridgeOnlyIsValid(t *testing.T) {
	cfg := NewDefaultConfig()
	cfg.Bridge.UpstreamURL = "https://mcp.example.com/stream"

	if issues := cfg.Validate(); len(issues) != 0 {
		t.Errorf("Expected valid bridge-only config, got %v", issues)
	}
}

func TestValidate_PortRange(t *testing.T) {
	cfg := NewDefaultConfig()
	cfg.Bridge.UpstreamURL = "https://mcp.example.com/stream"
	cfg.Server.Port = 70000

	issues := cfg.Validate()
	if len(issues) != 1 || !strings.Contains(issues[0], "server.port") {
		t.Errorf("Expected port range issue, got %v", issues)
	}
}

func TestWooConfig_GetTimeout(t *testing.T) {
	c := WooConfig{Timeout: "5s"}
	if got := c.GetTimeout(); got != 5*time.Second {
		t.Errorf("Expected 5s, got %v", got)
	}

	c.Timeout = "garbage"
	if got := c.GetTimeout(); got != 30*time.Second {
		t.Errorf("Expected 30s fallback, got %v", got)
	}
}

func TestIsTruthy(t *testing.T) {
	for _, v := range []string{"1", "true", "TRUE", "yes", "on", " True "} {
		if !isTruthy(v) {
			t.Errorf("Expected %q to be truthy", v)
		}
	}
	for _, v := range []string{"", "0", "false", "no", "off", "maybe"} {
		if isTruthy(v) {
			t.Errorf("Expected %q to be falsy", v)
		}
	}
}
