// Package woo contains the WooCommerce REST API client and its credential handling.
package woo

import (
	"encoding/base64"
	"net/http"
	"net/url"
	"strings"
)

// Credentials holds the static API credentials loaded once at startup.
// QueryAuth selects query-string placement (consumer_key/consumer_secret
// appended to the target path) over the default Basic authorization header.
type Credentials struct {
	Key       string
	Secret    string
	QueryAuth bool
}

// Authorize returns the headers and the (possibly rewritten) request path for
// a call to the given API path.
//
// In query mode the credentials are appended URL-encoded, choosing '?' or '&'
// depending on whether the path already carries a query string, and no extra
// headers are returned. In header mode the path is unchanged and the standard
// Basic authorization header plus a JSON content type are returned.
func (c Credentials) Authorize(path string) (http.Header, string) {
	headers := make(http.Header)

	if c.QueryAuth {
		sep := "?"
		if strings.Contains(path, "?") {
			sep = "&"
		}
		path = path + sep +
			"consumer_key=" + url.QueryEscape(c.Key) +
			"&consumer_secret=" + url.QueryEscape(c.Secret)
		return headers, path
	}

	token := base64.StdEncoding.EncodeToString([]byte(c.Key + ":" + c.Secret))
	headers.Set("Authorization", "Basic "+token)
	headers.Set("Content-Type", "application/json")
	return headers, path
}
