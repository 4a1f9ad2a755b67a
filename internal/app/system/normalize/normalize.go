// Package normalize provides small input-normalization helpers applied
// before values reach storage or queries.
package normalize

import "strings"

// Email lowercases and trims an email address. Emails are stored and
// looked up in this form, which makes uniqueness case-insensitive.
func Email(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// QueryParam trims a query-string value without changing its case.
func QueryParam(s string) string {
	return strings.TrimSpace(s)
}
