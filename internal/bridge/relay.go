// Package bridge contains the streaming reverse proxy that relays JSON-RPC/SSE
// exchanges between inbound clients and a configured upstream endpoint.
package bridge

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/storekit/woo-mcp/internal/common"
	"github.com/storekit/woo-mcp/internal/config"
)

// maxRequestSize caps inbound relay request bodies. JSON-RPC calls are small;
// anything larger is not a legitimate tool call.
const maxRequestSize = 1 << 20 // 1MB

// relayBufferSize is the chunk size for the upstream read loop.
const relayBufferSize = 32 * 1024

// passthroughHeaders is the allow-list of upstream response headers mirrored
// onto the client response before any body bytes are written.
var passthroughHeaders = []string{
	"Content-Type",
	"Mcp-Protocol-Version",
	"X-Transport-Type",
}

// Relay forwards an inbound JSON-RPC request body to the upstream streaming
// endpoint and pipes the response back chunk by chunk, in order, without
// transformation.
type Relay struct {
	upstreamURL string
	bearerToken string
	httpClient  *http.Client
	logger      *common.Logger
}

// NewRelay creates a relay targeting the configured upstream URL.
func NewRelay(cfg *config.Config, logger *common.Logger) *Relay {
	return &Relay{
		upstreamURL: cfg.Bridge.UpstreamURL,
		bearerToken: cfg.Bridge.BearerToken,
		// No client timeout: relayed streams are expected to be long-lived.
		// Cancellation comes from the inbound request context instead.
		httpClient: &http.Client{},
		logger:     logger,
	}
}

// ServeHTTP relays one inbound request. The response may be held open for a
// live stream, so anti-buffering headers are set before anything else. Any
// failure before the first byte is sent yields a 502 with a JSON-RPC error
// body; a failure mid-stream ends the client response cleanly and is logged.
func (rl *Relay) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h := w.Header()
	h.Set("Cache-Control", "no-cache, no-transform")
	h.Set("Connection", "keep-alive")
	h.Set("X-Accel-Buffering", "no")

	payload := readRequestPayload(r)

	// Bind the upstream request to the inbound context so a client disconnect
	// aborts the upstream fetch rather than leaking it.
	req, err := http.NewRequestWithContext(r.Context(), http.MethodPost, rl.upstreamURL, bytes.NewReader(payload))
	if err != nil {
		rl.logger.Error().Str("error", err.Error()).Msg("bridge request build failed")
		writeProxyError(w, payload)
		return
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json, text/event-stream")
	if rl.bearerToken != "" {
		req.Header.Set("Authorization", "Bearer "+rl.bearerToken)
	}

	resp, err := rl.httpClient.Do(req)
	if err != nil {
		rl.logger.Error().Str("upstream", rl.upstreamURL).Str("error", err.Error()).Msg("bridge upstream request failed")
		writeProxyError(w, payload)
		return
	}
	defer resp.Body.Close()

	for _, name := range passthroughHeaders {
		if v := resp.Header.Get(name); v != "" {
			h.Set(name, v)
		}
	}
	w.WriteHeader(resp.StatusCode)

	rl.relayBody(w, resp.Body)
}

// relayBody pipes upstream chunks to the client in the order received, with a
// flush after each write so intermediaries cannot batch the stream. A write
// failure means the client went away; a non-EOF read failure means the
// upstream died mid-stream. Either way the client response simply ends —
// relay errors are logged, never propagated.
func (rl *Relay) relayBody(w http.ResponseWriter, body io.Reader) {
	flusher, _ := w.(http.Flusher)
	buf := make([]byte, relayBufferSize)
	var relayed int64

	for {
		n, readErr := body.Read(buf)
		if n > 0 {
			if _, writeErr := w.Write(buf[:n]); writeErr != nil {
				rl.logger.Warn().Int64("bytes", relayed).Str("error", writeErr.Error()).Msg("bridge client write failed")
				return
			}
			relayed += int64(n)
			if flusher != nil {
				flusher.Flush()
			}
		}
		if readErr != nil {
			if readErr != io.EOF {
				rl.logger.Warn().Int64("bytes", relayed).Str("error", readErr.Error()).Msg("bridge stream truncated")
			}
			return
		}
	}
}

// readRequestPayload returns the inbound JSON body, defaulting to an empty
// object when the body is absent, unreadable, or not valid JSON.
func readRequestPayload(r *http.Request) json.RawMessage {
	if r.Body != nil {
		raw, err := io.ReadAll(io.LimitReader(r.Body, maxRequestSize))
		if err == nil && len(bytes.TrimSpace(raw)) > 0 && json.Valid(raw) {
			return raw
		}
	}
	return json.RawMessage("{}")
}

// writeProxyError responds with the JSON-RPC-shaped 502 body, echoing the
// request id when one was supplied and null otherwise.
func writeProxyError(w http.ResponseWriter, payload json.RawMessage) {
	var req struct {
		ID json.RawMessage `json:"id"`
	}
	id := json.RawMessage("null")
	if json.Unmarshal(payload, &req) == nil && len(req.ID) > 0 {
		id = req.ID
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusBadGateway)
	fmt.Fprintf(w, `{"jsonrpc":"2.0","id":%s,"error":{"code":-32603,"message":"Upstream proxy error"}}`, id)
}
