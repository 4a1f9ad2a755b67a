// Package authapi serves the JSON credential endpoints: signup, login,
// logout, and the current-user lookup.
package authapi

import (
	"context"
	"encoding/json"
	"net/http"

	userstore "github.com/dalemusser/invtrack/internal/app/store/users"
	"github.com/dalemusser/invtrack/internal/app/system/auth"
	"github.com/dalemusser/invtrack/internal/app/system/httputil"
	"github.com/dalemusser/invtrack/internal/app/system/inputval"
	"github.com/dalemusser/invtrack/internal/app/system/ratelimit"
	"github.com/dalemusser/invtrack/internal/app/system/timeouts"
	"go.uber.org/zap"
)

// Handler holds dependencies for the credential endpoints.
type Handler struct {
	Users   *userstore.Store
	Tokens  *auth.TokenManager
	Limiter *ratelimit.LoginLimiter
	Log     *zap.Logger
}

func NewHandler(users *userstore.Store, tokens *auth.TokenManager, limiter *ratelimit.LoginLimiter, logger *zap.Logger) *Handler {
	return &Handler{
		Users:   users,
		Tokens:  tokens,
		Limiter: limiter,
		Log:     logger,
	}
}

type credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// ServeSignup handles POST /api/auth/signup. A successful signup also signs
// the caller in. Signup shares the login limiter: account creation burns a
// bcrypt hash and an insert, so it gets the same budget.
func (h *Handler) ServeSignup(w http.ResponseWriter, r *http.Request) {
	var creds credentials
	if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
		httputil.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if ok, reason := h.Limiter.Check(r, creds.Email); !ok {
		httputil.Error(w, http.StatusTooManyRequests, reason)
		return
	}

	if !inputval.IsValidEmail(creds.Email) {
		httputil.Error(w, http.StatusBadRequest, "a valid email is required")
		return
	}
	if creds.Password == "" {
		httputil.Error(w, http.StatusBadRequest, "password is required")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	u, err := h.Users.Create(ctx, creds.Email, creds.Password)
	if err == userstore.ErrDuplicateEmail {
		httputil.Error(w, http.StatusBadRequest, "user already exists")
		return
	}
	if err != nil {
		httputil.Internal(w, h.Log, "signup", err)
		return
	}

	h.issueSession(w, u.Email, "signup")
}

// ServeLogin handles POST /api/auth/login. Unknown email and wrong password
// share one response.
func (h *Handler) ServeLogin(w http.ResponseWriter, r *http.Request) {
	var creds credentials
	if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
		httputil.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if ok, reason := h.Limiter.Check(r, creds.Email); !ok {
		httputil.Error(w, http.StatusTooManyRequests, reason)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	u, err := h.Users.VerifyPassword(ctx, creds.Email, creds.Password)
	if err == userstore.ErrInvalidCredentials {
		httputil.Error(w, http.StatusUnauthorized, "invalid email or password")
		return
	}
	if err != nil {
		httputil.Internal(w, h.Log, "login", err)
		return
	}

	h.Limiter.ResetEmail(u.Email)
	h.issueSession(w, u.Email, "login")
}

// ServeLogout handles POST /api/auth/logout. Logging out without a session
// still succeeds; there is nothing server-side to tear down.
func (h *Handler) ServeLogout(w http.ResponseWriter, r *http.Request) {
	h.Tokens.ClearCookie(w)
	httputil.OKMessage(w, true, "Logged out")
}

// ServeMe handles GET /api/auth/me. The account is re-read so a deleted
// user with a still-valid token gets 404, not stale data.
func (h *Handler) ServeMe(w http.ResponseWriter, r *http.Request) {
	email, ok := auth.CurrentUser(r)
	if !ok {
		httputil.Unauthorized(w)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	u, err := h.Users.GetByEmail(ctx, email)
	if err == userstore.ErrNotFound {
		httputil.Error(w, http.StatusNotFound, "user not found")
		return
	}
	if err != nil {
		httputil.Internal(w, h.Log, "me", err)
		return
	}

	httputil.JSON(w, http.StatusOK, u)
}

func (h *Handler) issueSession(w http.ResponseWriter, email, op string) {
	token, err := h.Tokens.Issue(email)
	if err != nil {
		httputil.Internal(w, h.Log, op, err)
		return
	}
	h.Tokens.SetCookie(w, token)
	httputil.JSON(w, http.StatusOK, map[string]any{
		"success": true,
		"email":   email,
	})
}
