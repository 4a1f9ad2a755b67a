// Package htmlsanitize strips markup from user-entered text fields.
//
// Record fields are plain text, so the strict policy is used: all tags are
// removed and entities are escaped. Leading and trailing whitespace left
// behind by stripped tags is trimmed.
package htmlsanitize

import (
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

var strict = bluemonday.StrictPolicy()

// Clean removes all HTML from s.
func Clean(s string) string {
	return strings.TrimSpace(strict.Sanitize(s))
}

// CleanAll applies Clean to every element of ss in place and returns ss.
func CleanAll(ss []string) []string {
	for i, s := range ss {
		ss[i] = Clean(s)
	}
	return ss
}
