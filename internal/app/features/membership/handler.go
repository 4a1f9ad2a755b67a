// Package membership serves the promotional membership claim endpoint.
package membership

import (
	"context"
	"net/http"

	userstore "github.com/dalemusser/invtrack/internal/app/store/users"
	"github.com/dalemusser/invtrack/internal/app/system/auth"
	"github.com/dalemusser/invtrack/internal/app/system/httputil"
	"github.com/dalemusser/invtrack/internal/app/system/timeouts"
	"go.uber.org/zap"
)

// Handler holds dependencies for the membership endpoint.
type Handler struct {
	Users *userstore.Store
	Log   *zap.Logger
}

func NewHandler(users *userstore.Store, logger *zap.Logger) *Handler {
	return &Handler{Users: users, Log: logger}
}

// ServeClaim handles POST /api/membership. The first claim activates the
// six-month promotion; repeats report the existing membership unchanged.
func (h *Handler) ServeClaim(w http.ResponseWriter, r *http.Request) {
	email, ok := auth.CurrentUser(r)
	if !ok {
		httputil.Unauthorized(w)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	res, err := h.Users.ClaimMembership(ctx, email)
	if err == userstore.ErrNotFound {
		httputil.Error(w, http.StatusNotFound, "user not found")
		return
	}
	if err != nil {
		httputil.Internal(w, h.Log, "membership claim", err)
		return
	}

	if res.AlreadyMember {
		httputil.JSON(w, http.StatusOK, map[string]any{
			"success": true,
			"message": "You already have prime membership!",
			"user":    res.User,
		})
		return
	}

	httputil.JSON(w, http.StatusOK, map[string]any{
		"success": true,
		"message": "Prime membership activated",
		"user":    res.User,
	})
}
