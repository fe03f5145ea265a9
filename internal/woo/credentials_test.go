package woo

import (
	"encoding/base64"
	"strings"
	"testing"
)

func TestCredentials_QueryAuth_NoExistingQuery(t *testing.T) {
	creds := Credentials{Key: "ck_123", Secret: "cs_456", QueryAuth: true}

	headers, path := creds.Authorize("/products")

	expected := "/products?consumer_key=ck_123&consumer_secret=cs_456"
	if path != expected {
		t.Errorf("Expected path %q, got %q", expected, path)
	}
	if len(headers) != 0 {
		t.Errorf("Expected no headers in query mode, got %v", headers)
	}
}

func TestCredentials_QueryAuth_ExistingQuery(t *testing.T) {
	creds := Credentials{Key: "ck_123", Secret: "cs_456", QueryAuth: true}

	_, path := creds.Authorize("/products?foo=bar")

	expected := "/products?foo=bar&consumer_key=ck_123&consumer_secret=cs_456"
	if path != expected {
		t.Errorf("Expected path %q, got %q", expected, path)
	}
}

func TestCredentials_QueryAuth_EncodesSpecialChars(t *testing.T) {
	creds := Credentials{Key: "ck&1", Secret: "cs=2 3", QueryAuth: true}

	_, path := creds.Authorize("/products")

	if !strings.Contains(path, "consumer_key=ck%261") {
		t.Errorf("Expected URL-encoded key, got %q", path)
	}
	if !strings.Contains(path, "consumer_secret=cs%3D2+3") {
		t.Errorf("Expected URL-encoded secret, got %q", path)
	}
}

func TestCredentials_HeaderAuth_BasicValue(t *testing.T) {
	creds := Credentials{Key: "ck_123", Secret: "cs_456"}

	headers, path := creds.Authorize("/products")

	if path != "/products" {
		t.Errorf("Expected unchanged path, got %q", path)
	}
	expected := "Basic " + base64.StdEncoding.EncodeToString([]byte("ck_123:cs_456"))
	if got := headers.Get("Authorization"); got != expected {
		t.Errorf("Expected Authorization %q, got %q", expected, got)
	}
	if got := headers.Get("Content-Type"); got != "application/json" {
		t.Errorf("Expected Content-Type application/json, got %q", got)
	}
}
