package handlers

import (
	"net/http"

	"github.com/storekit/woo-mcp/internal/common"
	"github.com/storekit/woo-mcp/internal/config"
)

// StatusHandler serves the liveness summary at the root path. It is a
// separate route from /sse: the summary reports what is wired up, it never
// opens a stream or touches an upstream.
type StatusHandler struct {
	logger           *common.Logger
	toolCount        func() int
	bridgeConfigured bool
}

// NewStatusHandler creates a status handler. toolCount is called per request
// so the summary reflects the live tool registry.
func NewStatusHandler(logger *common.Logger, toolCount func() int, bridgeConfigured bool) *StatusHandler {
	return &StatusHandler{
		logger:           logger,
		toolCount:        toolCount,
		bridgeConfigured: bridgeConfigured,
	}
}

// ServeHTTP handles GET /.
func (h *StatusHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, "GET") {
		return
	}

	tools := 0
	if h.toolCount != nil {
		tools = h.toolCount()
	}

	WriteJSON(w, http.StatusOK, map[string]interface{}{
		"service": "woo-mcp",
		"status":  "ok",
		"version": config.GetVersion(),
		"tools":   tools,
		"bridge":  h.bridgeConfigured,
	})
}
