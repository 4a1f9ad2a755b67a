package auth_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/dalemusser/invtrack/internal/app/system/auth"
	"go.uber.org/zap"
)

func newTestManager(t *testing.T, maxAge time.Duration) *auth.TokenManager {
	t.Helper()
	tm, err := auth.NewTokenManager("test-token-key-for-testing-only-0123", "test-token", "", maxAge, false, zap.NewNop())
	if err != nil {
		t.Fatalf("NewTokenManager failed: %v", err)
	}
	return tm
}

func TestNewTokenManager_EmptyKey(t *testing.T) {
	_, err := auth.NewTokenManager("", "test-token", "", time.Hour, false, zap.NewNop())
	if err == nil {
		t.Fatal("expected error for empty signing key")
	}
}

func TestIssueVerify_RoundTrip(t *testing.T) {
	tm := newTestManager(t, time.Hour)

	tok, err := tm.Issue("user@example.com")
	if err != nil {
		t.Fatalf("Issue failed: %v", err)
	}

	email, err := tm.Verify(tok)
	if err != nil {
		t.Fatalf("Verify failed: %v", err)
	}
	if email != "user@example.com" {
		t.Errorf("email: got %q, want %q", email, "user@example.com")
	}
}

func TestVerify_Expired(t *testing.T) {
	// A manager with a negative window issues tokens that are already expired.
	expired := newTestManager(t, -time.Minute)

	tok, err := expired.Issue("user@example.com")
	if err != nil {
		t.Fatalf("Issue failed: %v", err)
	}
	if _, err := expired.Verify(tok); err != auth.ErrInvalidToken {
		t.Errorf("expected ErrInvalidToken for expired token, got %v", err)
	}
}

func TestVerify_WrongKey(t *testing.T) {
	tm := newTestManager(t, time.Hour)

	other, err := auth.NewTokenManager("another-token-key-for-testing-9876", "test-token", "", time.Hour, false, zap.NewNop())
	if err != nil {
		t.Fatalf("NewTokenManager failed: %v", err)
	}
	tok, err := other.Issue("user@example.com")
	if err != nil {
		t.Fatalf("Issue failed: %v", err)
	}
	if _, err := tm.Verify(tok); err != auth.ErrInvalidToken {
		t.Errorf("expected ErrInvalidToken for wrong key, got %v", err)
	}
}

func TestVerify_Malformed(t *testing.T) {
	tm := newTestManager(t, time.Hour)

	for _, tok := range []string{"", "not.a.jwt", "garbage"} {
		if _, err := tm.Verify(tok); err != auth.ErrInvalidToken {
			t.Errorf("Verify(%q): expected ErrInvalidToken, got %v", tok, err)
		}
	}
}

func TestLoadUser_ValidCookie(t *testing.T) {
	tm := newTestManager(t, time.Hour)

	tok, err := tm.Issue("user@example.com")
	if err != nil {
		t.Fatalf("Issue failed: %v", err)
	}

	var gotEmail string
	var gotOK bool
	handler := tm.LoadUser(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotEmail, gotOK = auth.CurrentUser(r)
	}))

	req := httptest.NewRequest("GET", "/api/todos", nil)
	req.AddCookie(&http.Cookie{Name: "test-token", Value: tok})
	handler.ServeHTTP(httptest.NewRecorder(), req)

	if !gotOK {
		t.Fatal("expected identity in context")
	}
	if gotEmail != "user@example.com" {
		t.Errorf("email: got %q, want %q", gotEmail, "user@example.com")
	}
}

func TestLoadUser_BadCookie(t *testing.T) {
	tm := newTestManager(t, time.Hour)

	var gotOK bool
	handler := tm.LoadUser(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, gotOK = auth.CurrentUser(r)
	}))

	req := httptest.NewRequest("GET", "/api/todos", nil)
	req.AddCookie(&http.Cookie{Name: "test-token", Value: "tampered"})
	handler.ServeHTTP(httptest.NewRecorder(), req)

	if gotOK {
		t.Error("expected no identity for a tampered token")
	}
}

func TestRequireSignedIn_NoIdentity(t *testing.T) {
	tm := newTestManager(t, time.Hour)

	called := false
	handler := tm.RequireSignedIn(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))

	req := httptest.NewRequest("GET", "/api/todos", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if called {
		t.Error("handler must not run without an identity")
	}
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status: got %d, want %d", rec.Code, http.StatusUnauthorized)
	}
	var body struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to parse body: %v", err)
	}
	if body.Error != "unauthorized" {
		t.Errorf("error: got %q, want %q", body.Error, "unauthorized")
	}
}

func TestRequireSignedIn_WithTestUser(t *testing.T) {
	tm := newTestManager(t, time.Hour)

	called := false
	handler := tm.RequireSignedIn(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))

	req := auth.WithTestUser(httptest.NewRequest("GET", "/api/todos", nil), "user@example.com")
	handler.ServeHTTP(httptest.NewRecorder(), req)

	if !called {
		t.Error("expected handler to run with injected identity")
	}
}

func TestSetCookie_Attributes(t *testing.T) {
	tm := newTestManager(t, time.Hour)

	rec := httptest.NewRecorder()
	tm.SetCookie(rec, "token-value")

	cookies := rec.Result().Cookies()
	if len(cookies) != 1 {
		t.Fatalf("expected 1 cookie, got %d", len(cookies))
	}
	c := cookies[0]
	if c.Name != "test-token" || c.Value != "token-value" {
		t.Errorf("cookie: got %s=%s", c.Name, c.Value)
	}
	if !c.HttpOnly {
		t.Error("cookie must be HttpOnly")
	}
	if c.Path != "/" {
		t.Errorf("path: got %q, want %q", c.Path, "/")
	}
	if c.MaxAge != int(time.Hour.Seconds()) {
		t.Errorf("max age: got %d, want %d", c.MaxAge, int(time.Hour.Seconds()))
	}
}

func TestClearCookie(t *testing.T) {
	tm := newTestManager(t, time.Hour)

	rec := httptest.NewRecorder()
	tm.ClearCookie(rec)

	cookies := rec.Result().Cookies()
	if len(cookies) != 1 {
		t.Fatalf("expected 1 cookie, got %d", len(cookies))
	}
	if cookies[0].MaxAge >= 0 {
		t.Errorf("expected negative max age, got %d", cookies[0].MaxAge)
	}
}
