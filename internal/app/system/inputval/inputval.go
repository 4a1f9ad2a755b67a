// Package inputval validates request payload fields before they reach a
// store. Validation failures are reported as plain messages suitable for a
// 400 response body.
package inputval

import (
	"fmt"
	"regexp"
	"strings"
)

// Field length ceilings shared by create and update payloads.
const (
	MaxModalNameLen   = 55
	MaxSubLocationLen = 55
)

// MaxImageBytes caps the decoded size of an inline image payload.
const MaxImageBytes = 1 << 20 // 1 MiB

// emailRe rejects leading/trailing/consecutive dots in the local part and
// dotted-out domains while still allowing single-label domains for dev use.
var emailRe = regexp.MustCompile(`^[a-zA-Z0-9_%+\-]+(\.[a-zA-Z0-9_%+\-]+)*@[a-zA-Z0-9\-]+(\.[a-zA-Z0-9\-]+)*$`)

// IsValidEmail reports whether s looks like a usable email address.
func IsValidEmail(s string) bool {
	s = strings.TrimSpace(s)
	if s == "" {
		return false
	}
	return emailRe.MatchString(s)
}

// RequireString checks a required text field: non-blank after trimming and,
// when max > 0, no longer than max characters. Returns a client-facing
// message on failure.
func RequireString(field, value string, max int) error {
	if strings.TrimSpace(value) == "" {
		return fmt.Errorf("%s is required", field)
	}
	if max > 0 && len([]rune(value)) > max {
		return fmt.Errorf("%s must be at most %d characters", field, max)
	}
	return nil
}

// OptionalString checks an optional text field against a length ceiling.
func OptionalString(field, value string, max int) error {
	if value == "" {
		return nil
	}
	if max > 0 && len([]rune(value)) > max {
		return fmt.Errorf("%s must be at most %d characters", field, max)
	}
	return nil
}

// ValidateImage checks an inline image payload. Empty is allowed (no image).
// Otherwise the value must be a base64 data URL with an image media type,
// and its decoded size must not exceed MaxImageBytes. The size check uses
// the base64 expansion ratio rather than decoding the payload.
func ValidateImage(dataURL string) error {
	if dataURL == "" {
		return nil
	}
	if !strings.HasPrefix(dataURL, "data:image/") {
		return fmt.Errorf("image must be a data URL with an image media type")
	}
	idx := strings.Index(dataURL, ";base64,")
	if idx < 0 {
		return fmt.Errorf("image must be base64 encoded")
	}
	payload := dataURL[idx+len(";base64,"):]
	if payload == "" {
		return fmt.Errorf("image payload is empty")
	}
	decoded := len(payload) * 3 / 4
	if decoded > MaxImageBytes {
		return fmt.Errorf("image exceeds the %d byte limit", MaxImageBytes)
	}
	return nil
}
