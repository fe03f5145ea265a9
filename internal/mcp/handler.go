// Package mcp exposes the WooCommerce tool surface over the MCP protocol.
package mcp

import (
	"net/http"

	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/storekit/woo-mcp/internal/common"
	"github.com/storekit/woo-mcp/internal/config"
	"github.com/storekit/woo-mcp/internal/woo"
)

// Handler is the HTTP handler for the MCP endpoint.
// It wraps mcp-go's StreamableHTTPServer and delegates to it.
type Handler struct {
	mcpServer  *mcpserver.MCPServer
	streamable *mcpserver.StreamableHTTPServer
	logger     *common.Logger
	toolCount  int
}

// NewHandler creates the MCP handler and registers the tool surface.
// The ping and time tools are always present; the catalog tools are only
// registered when a WooCommerce base URL is configured, so a bridge-only
// deployment still answers liveness probes.
func NewHandler(cfg *config.Config, logger *common.Logger) *Handler {
	mcpSrv := mcpserver.NewMCPServer(
		"woo-mcp",
		config.GetVersion(),
		mcpserver.WithToolCapabilities(true),
	)

	count := registerCoreTools(mcpSrv)

	if cfg.Woo.BaseURL != "" {
		client := woo.NewClient(
			cfg.Woo.BaseURL,
			woo.Credentials{
				Key:       cfg.Woo.ConsumerKey,
				Secret:    cfg.Woo.ConsumerSecret,
				QueryAuth: cfg.Woo.QueryAuth,
			},
			cfg.Woo.GetTimeout(),
			logger,
		)
		count += registerCatalogTools(mcpSrv, client)
	}

	streamable := mcpserver.NewStreamableHTTPServer(mcpSrv,
		mcpserver.WithStateLess(true),
	)

	logger.Info().
		Int("tools", count).
		Str("woo_url", cfg.Woo.BaseURL).
		Msg("MCP handler initialized")

	return &Handler{
		mcpServer:  mcpSrv,
		streamable: streamable,
		logger:     logger,
		toolCount:  count,
	}
}

// ToolCount returns the number of registered tools.
func (h *Handler) ToolCount() int {
	return h.toolCount
}

// ServeHTTP delegates to the mcp-go StreamableHTTPServer.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.streamable.ServeHTTP(w, r)
}

// ServeStdio serves the MCP server over stdin/stdout. Blocks until EOF.
func (h *Handler) ServeStdio() error {
	return mcpserver.ServeStdio(h.mcpServer)
}
