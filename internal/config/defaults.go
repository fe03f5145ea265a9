package config

import "github.com/storekit/woo-mcp/internal/common"

// NewDefaultConfig creates a configuration with default values.
func NewDefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Port: 4280,
			Host: "0.0.0.0",
		},
		Woo: WooConfig{
			Timeout: "30s",
		},
		Bridge: BridgeConfig{},
		Logging: common.LoggingConfig{
			Level:      "info",
			Outputs:    []string{"console", "file"},
			FilePath:   "logs/woo-mcp.log",
			MaxSizeMB:  100,
			MaxBackups: 3,
		},
	}
}
