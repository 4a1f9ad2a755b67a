// Package auth implements the identity token and the request-level access
// gate.
//
// The token is a signed, time-limited credential (JWT HS256) that encodes
// the account email, issuance and expiry times, and a token id. It is
// stateless: possession, a valid signature, and non-expiry are the only
// checks, and verification never touches storage. The token travels in an
// HTTP-only cookie.
//
// The resolved email is the scoping key for every storage call made on a
// request. It always comes from the verified token, never from a
// client-supplied body or query field.
package auth

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// DefaultTokenMaxAge is the fixed validity window for issued tokens.
const DefaultTokenMaxAge = 7 * 24 * time.Hour

// ErrInvalidToken covers every verification failure: missing, malformed,
// expired, or bad signature. Callers must not distinguish between them.
var ErrInvalidToken = errors.New("invalid token")

type ctxKey string

const currentEmailKey ctxKey = "currentEmail"

// claims is the token payload. The account email rides in the registered
// Subject claim; ID (jti) is reserved for a future deny-list.
type claims struct {
	jwt.RegisteredClaims
}

// TokenManager issues and verifies identity tokens and manages the cookie
// they travel in.
type TokenManager struct {
	secret     []byte
	cookieName string
	domain     string
	maxAge     time.Duration
	secure     bool
	log        *zap.Logger
}

// NewTokenManager builds a TokenManager. The signing key must be non-empty;
// keys shorter than 32 characters log a warning. The `secure` flag controls
// the cookie's Secure attribute and SameSite mode: in production
// (secure=true) cookies are Secure + SameSite=None, in local dev Lax.
func NewTokenManager(signingKey, cookieName, domain string, maxAge time.Duration, secure bool, logger *zap.Logger) (*TokenManager, error) {
	if signingKey == "" {
		return nil, fmt.Errorf("token signing key is empty; provide ≥32 random chars")
	}
	if len(signingKey) < 32 {
		logger.Warn("token signing key is short; 32+ chars recommended",
			zap.Int("length", len(signingKey)))
	}
	return &TokenManager{
		secret:     []byte(signingKey),
		cookieName: cookieName,
		domain:     domain,
		maxAge:     maxAge,
		secure:     secure,
		log:        logger,
	}, nil
}

// CookieName returns the name of the credential cookie.
func (tm *TokenManager) CookieName() string { return tm.cookieName }

// MaxAge returns the token validity window.
func (tm *TokenManager) MaxAge() time.Duration { return tm.maxAge }

// Issue creates a signed token for the given email. It has no side effects
// beyond token creation and never touches storage.
func (tm *TokenManager) Issue(email string) (string, error) {
	now := time.Now()
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   email,
			ID:        uuid.NewString(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(tm.maxAge)),
		},
	})
	return tok.SignedString(tm.secret)
}

// Verify checks the signature and expiry of a token and returns the email
// it was issued for. Every failure mode returns ErrInvalidToken.
func (tm *TokenManager) Verify(token string) (string, error) {
	var c claims
	parsed, err := jwt.ParseWithClaims(token, &c, func(t *jwt.Token) (interface{}, error) {
		return tm.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil || !parsed.Valid || c.Subject == "" {
		return "", ErrInvalidToken
	}
	return c.Subject, nil
}

// SetCookie attaches the token to the response as an HTTP-only cookie whose
// max age matches the token's validity window.
func (tm *TokenManager) SetCookie(w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     tm.cookieName,
		Value:    token,
		Path:     "/",
		Domain:   tm.domain,
		MaxAge:   int(tm.maxAge.Seconds()),
		HttpOnly: true,
		Secure:   tm.secure,
		SameSite: tm.sameSite(),
	})
}

// ClearCookie expires the credential cookie. There is no server-side state
// to tear down; a copied token stays valid until natural expiry.
func (tm *TokenManager) ClearCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     tm.cookieName,
		Value:    "",
		Path:     "/",
		Domain:   tm.domain,
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   tm.secure,
		SameSite: tm.sameSite(),
	})
}

func (tm *TokenManager) sameSite() http.SameSite {
	if tm.secure {
		return http.SameSiteNoneMode
	}
	return http.SameSiteLaxMode
}

// LoadUser resolves the caller identity from the credential cookie and, if
// the token verifies, injects the email into the request context. A missing
// or invalid token is not an error here; protected routes enforce presence
// via RequireSignedIn.
func (tm *TokenManager) LoadUser(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if cookie, err := r.Cookie(tm.cookieName); err == nil && cookie.Value != "" {
			if email, err := tm.Verify(cookie.Value); err == nil {
				r = withEmail(r, email)
			}
		}
		next.ServeHTTP(w, r)
	})
}

// RequireSignedIn short-circuits with a JSON 401 before any handler or
// storage work when no verified identity is in context.
func (tm *TokenManager) RequireSignedIn(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := CurrentUser(r); !ok {
			writeUnauthorized(w)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// CurrentUser returns the verified caller email and a "found?" flag.
func CurrentUser(r *http.Request) (string, bool) {
	email, ok := r.Context().Value(currentEmailKey).(string)
	return email, ok
}

// WithTestUser injects an identity directly into the request context,
// bypassing cookie verification. For handler tests only.
func WithTestUser(r *http.Request, email string) *http.Request {
	return withEmail(r, email)
}

func withEmail(r *http.Request, email string) *http.Request {
	return r.WithContext(context.WithValue(r.Context(), currentEmailKey, email))
}

// writeUnauthorized is a local copy of the uniform 401 body so this package
// does not depend on httputil (which handlers already import).
func writeUnauthorized(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	_, _ = w.Write([]byte(`{"error":"unauthorized"}` + "\n"))
}
