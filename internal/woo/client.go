package woo

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/storekit/woo-mcp/internal/common"
)

// maxResponseSize caps response bodies to prevent OOM from unexpectedly large responses.
const maxResponseSize = 50 << 20 // 50MB

// UpstreamError is returned for any non-2xx response from the WooCommerce API.
// It carries the numeric status, the upstream's status text, and a best-effort
// capture of the response body.
type UpstreamError struct {
	Status     int
	StatusText string
	Body       string
}

func (e *UpstreamError) Error() string {
	if e.Body != "" {
		return fmt.Sprintf("%d %s - %s", e.Status, e.StatusText, e.Body)
	}
	return fmt.Sprintf("%d %s", e.Status, e.StatusText)
}

// Client issues authenticated requests against a WooCommerce REST API base URL.
type Client struct {
	baseURL    string
	creds      Credentials
	httpClient *http.Client
	logger     *common.Logger
}

// NewClient creates a WooCommerce API client for the given base URL.
func NewClient(baseURL string, creds Credentials, timeout time.Duration, logger *common.Logger) *Client {
	return &Client{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		creds:   creds,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		logger: logger,
	}
}

// Get performs a GET request and decodes the JSON response into out.
func (c *Client) Get(ctx context.Context, path string, out interface{}) error {
	return c.Do(ctx, http.MethodGet, path, nil, out)
}

// Post performs a POST request with a JSON body and decodes the response into out.
func (c *Client) Post(ctx context.Context, path string, body, out interface{}) error {
	return c.Do(ctx, http.MethodPost, path, body, out)
}

// Put performs a PUT request with a JSON body and decodes the response into out.
func (c *Client) Put(ctx context.Context, path string, body, out interface{}) error {
	return c.Do(ctx, http.MethodPut, path, body, out)
}

// Do performs an HTTP request against the configured base URL. A nonempty body
// is JSON-serialized; credentials are applied per their configured placement.
// A non-2xx status yields an *UpstreamError. On success the response is decoded
// into out only when the upstream declares a JSON content type — other bodies
// are ignored rather than treated as failures.
func (c *Client) Do(ctx context.Context, method, path string, body, out interface{}) error {
	c.logger.Debug().Str("method", method).Str("path", path).Msg("woo request")

	headers, authPath := c.creds.Authorize(path)

	var bodyReader io.Reader
	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request: %w", err)
		}
		bodyReader = bytes.NewReader(jsonData)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+authPath, bodyReader)
	if err != nil {
		return err
	}
	for key, vals := range headers {
		for _, v := range vals {
			req.Header.Set(key, v)
		}
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	duration := time.Since(start)
	if err != nil {
		c.logger.Error().Str("method", method).Str("path", path).Int64("duration_ms", duration.Milliseconds()).Str("error", err.Error()).Msg("woo request failed")
		return fmt.Errorf("upstream request failed: %w", err)
	}
	defer resp.Body.Close()

	raw, readErr := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))

	c.logger.Debug().Int("status", resp.StatusCode).Int64("duration_ms", duration.Milliseconds()).Msg("woo response")

	if resp.StatusCode >= 400 {
		// Body capture is best-effort; an unreadable body degrades to empty.
		captured := ""
		if readErr == nil {
			captured = strings.TrimSpace(string(raw))
		}
		return &UpstreamError{
			Status:     resp.StatusCode,
			StatusText: statusText(resp),
			Body:       captured,
		}
	}

	if readErr != nil {
		return fmt.Errorf("failed to read response: %w", readErr)
	}

	if out == nil || !isJSONContentType(resp.Header.Get("Content-Type")) {
		return nil
	}

	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

// statusText extracts the upstream's status text, falling back to the standard
// phrase when the status line carries none.
func statusText(resp *http.Response) string {
	prefix := fmt.Sprintf("%d ", resp.StatusCode)
	if strings.HasPrefix(resp.Status, prefix) {
		return strings.TrimPrefix(resp.Status, prefix)
	}
	return http.StatusText(resp.StatusCode)
}

// isJSONContentType reports whether a Content-Type header indicates JSON.
func isJSONContentType(ct string) bool {
	ct = strings.ToLower(ct)
	return strings.Contains(ct, "application/json") || strings.Contains(ct, "+json")
}
