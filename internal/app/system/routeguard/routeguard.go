// Package routeguard redirects page requests based on sign-in state.
//
// Signed-in visitors are bounced off the login and signup pages; signed-out
// visitors are bounced off the app pages. API routes are not guarded here;
// they answer 401 instead of redirecting.
package routeguard

import (
	"net/http"
	"strings"

	"github.com/dalemusser/invtrack/internal/app/system/auth"
)

var entryPages = map[string]bool{
	"/login":  true,
	"/signup": true,
}

var appPrefixes = []string{"/settings", "/todos"}

// Decide returns the redirect target for a page request, or ok=true when the
// request may proceed. Paths outside both groups always proceed.
func Decide(signedIn bool, path string) (redirect string, ok bool) {
	if entryPages[path] {
		if signedIn {
			return "/", false
		}
		return "", true
	}
	if isAppPage(path) {
		if !signedIn {
			return "/login", false
		}
		return "", true
	}
	return "", true
}

func isAppPage(path string) bool {
	if path == "/" {
		return true
	}
	for _, p := range appPrefixes {
		if path == p || strings.HasPrefix(path, p+"/") {
			return true
		}
	}
	return false
}

// Middleware applies Decide to each request using the identity resolved by
// the token middleware. Redirects use 303 so a guarded POST lands on a GET.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, signedIn := auth.CurrentUser(r)
		if target, ok := Decide(signedIn, r.URL.Path); !ok {
			http.Redirect(w, r, target, http.StatusSeeOther)
			return
		}
		next.ServeHTTP(w, r)
	})
}
