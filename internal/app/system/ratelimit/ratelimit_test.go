package ratelimit

import (
	"net/http/httptest"
	"testing"
	"time"
)

func TestLimiter_AllowWithinBudget(t *testing.T) {
	l := New(3, time.Minute)

	for i := 0; i < 3; i++ {
		if !l.Allow("10.0.0.1") {
			t.Fatalf("request %d should be allowed", i+1)
		}
	}
	if l.Allow("10.0.0.1") {
		t.Error("fourth request should be blocked")
	}
	// A different key has its own window.
	if !l.Allow("10.0.0.2") {
		t.Error("different key should be allowed")
	}
}

func TestLimiter_Reset(t *testing.T) {
	l := New(1, time.Minute)

	if !l.Allow("k") {
		t.Fatal("first request should be allowed")
	}
	if l.Allow("k") {
		t.Fatal("second request should be blocked")
	}
	l.Reset("k")
	if !l.Allow("k") {
		t.Error("request after reset should be allowed")
	}
}

func TestClientIP(t *testing.T) {
	tests := []struct {
		name       string
		remoteAddr string
		xff        string
		xri        string
		want       string
	}{
		{"remote addr with port", "192.168.1.10:54321", "", "", "192.168.1.10"},
		{"x-forwarded-for single", "10.0.0.1:1234", "203.0.113.5", "", "203.0.113.5"},
		{"x-forwarded-for list", "10.0.0.1:1234", "203.0.113.5, 10.0.0.1", "", "203.0.113.5"},
		{"x-real-ip", "10.0.0.1:1234", "", "203.0.113.9", "203.0.113.9"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest("POST", "/api/auth/login", nil)
			r.RemoteAddr = tt.remoteAddr
			if tt.xff != "" {
				r.Header.Set("X-Forwarded-For", tt.xff)
			}
			if tt.xri != "" {
				r.Header.Set("X-Real-IP", tt.xri)
			}
			if got := ClientIP(r); got != tt.want {
				t.Errorf("ClientIP() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestLoginLimiter_PerAccount(t *testing.T) {
	ll := NewLoginLimiter(100, time.Minute, 2, time.Minute)

	r := httptest.NewRequest("POST", "/api/auth/login", nil)
	r.RemoteAddr = "10.0.0.1:1234"

	for i := 0; i < 2; i++ {
		if ok, _ := ll.Check(r, "User@Example.com"); !ok {
			t.Fatalf("attempt %d should be allowed", i+1)
		}
	}
	// Case variants of the same address share a window.
	if ok, reason := ll.Check(r, "user@example.com"); ok || reason == "" {
		t.Error("third attempt for the same account should be blocked with a reason")
	}

	ll.ResetEmail("USER@EXAMPLE.COM")
	if ok, _ := ll.Check(r, "user@example.com"); !ok {
		t.Error("attempt after reset should be allowed")
	}
}
