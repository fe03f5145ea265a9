package server

import "net/http"

// setupRoutes configures all HTTP routes.
func (s *Server) setupRoutes() *http.ServeMux {
	mux := http.NewServeMux()

	// Liveness summary at exactly "/" — deliberately distinct from /sse.
	mux.HandleFunc("/", s.handleRoot)

	mux.HandleFunc("/health", s.app.HealthHandler.ServeHTTP)
	mux.HandleFunc("/version", s.app.VersionHandler.ServeHTTP)

	// Discovery probes are answered locally so client probing never
	// triggers an upstream call.
	mux.HandleFunc("/.well-known/", s.handleNotFound)

	// MCP endpoint (JSON-RPC over streamable HTTP)
	if s.app.MCPHandler != nil {
		mux.Handle("/mcp", s.app.MCPHandler)
	}

	// Streaming relay to the configured upstream
	if s.app.Relay != nil {
		mux.Handle("/sse", s.app.Relay)
	}

	return mux
}

// handleRoot serves the liveness summary at "/" and a JSON 404 everywhere else.
func (s *Server) handleRoot(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		s.handleNotFound(w, r)
		return
	}
	s.app.StatusHandler.ServeHTTP(w, r)
}

// handleNotFound returns a JSON 404 for unmatched routes.
func (s *Server) handleNotFound(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusNotFound)
	w.Write([]byte(`{"error":"Not Found","message":"The requested endpoint does not exist"}`))
}
