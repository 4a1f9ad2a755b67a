// internal/app/features/authapi/routes.go
package authapi

import "github.com/go-chi/chi/v5"

// Routes returns a subrouter for the credential endpoints. Mounted under
// /api/auth. ServeMe enforces its own auth check so the subrouter needs no
// middleware.
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Post("/signup", h.ServeSignup)
	r.Post("/login", h.ServeLogin)
	r.Post("/logout", h.ServeLogout)
	r.Get("/me", h.ServeMe)
	return r
}
