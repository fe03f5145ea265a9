// Package app wires configuration, logging, and HTTP handlers together.
package app

import (
	"github.com/storekit/woo-mcp/internal/bridge"
	"github.com/storekit/woo-mcp/internal/common"
	"github.com/storekit/woo-mcp/internal/config"
	"github.com/storekit/woo-mcp/internal/handlers"
	"github.com/storekit/woo-mcp/internal/mcp"
)

// App holds all application components and dependencies.
type App struct {
	Config *config.Config
	Logger *common.Logger

	// HTTP handlers
	HealthHandler  *handlers.HealthHandler
	VersionHandler *handlers.VersionHandler
	StatusHandler  *handlers.StatusHandler
	MCPHandler     *mcp.Handler
	Relay          *bridge.Relay
}

// New initializes the application with all dependencies.
func New(cfg *config.Config, logger *common.Logger) (*App, error) {
	a := &App{
		Config: cfg,
		Logger: logger,
	}

	a.HealthHandler = handlers.NewHealthHandler(logger)
	a.VersionHandler = handlers.NewVersionHandler(logger)

	// The MCP handler is always built: ping and time must answer even when no
	// store is configured.
	a.MCPHandler = mcp.NewHandler(cfg, logger)

	if cfg.Bridge.UpstreamURL != "" {
		a.Relay = bridge.NewRelay(cfg, logger)
		logger.Info().Str("upstream", cfg.Bridge.UpstreamURL).Msg("streaming bridge enabled")
	}

	a.StatusHandler = handlers.NewStatusHandler(logger, a.MCPHandler.ToolCount, a.Relay != nil)

	logger.Info().Msg("application initialization complete")

	return a, nil
}

// Close closes all application resources.
func (a *App) Close() error {
	return nil
}
