package testutil

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/dalemusser/invtrack/internal/app/system/auth"
)

// WithUser adds an identity to the request context, bypassing the token
// middleware.
func WithUser(r *http.Request, email string) *http.Request {
	return auth.WithTestUser(r, email)
}

// NewJSONRequest creates a request with a JSON-encoded body.
func NewJSONRequest(t *testing.T, method, target string, body any) *http.Request {
	t.Helper()

	var rdr io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("failed to marshal request body: %v", err)
		}
		rdr = bytes.NewReader(buf)
	}
	req := httptest.NewRequest(method, target, rdr)
	req.Header.Set("Content-Type", "application/json")
	return req
}

// NewAuthenticatedJSONRequest creates a JSON request with an identity in
// context.
func NewAuthenticatedJSONRequest(t *testing.T, method, target, email string, body any) *http.Request {
	t.Helper()
	return WithUser(NewJSONRequest(t, method, target, body), email)
}

// DecodeJSON unmarshals a response body into v.
func DecodeJSON(t *testing.T, rec *httptest.ResponseRecorder, v any) {
	t.Helper()
	if err := json.Unmarshal(rec.Body.Bytes(), v); err != nil {
		t.Fatalf("failed to decode response body %q: %v", rec.Body.String(), err)
	}
}
