// internal/app/features/pages/routes.go
package pages

import (
	"github.com/dalemusser/invtrack/internal/app/system/routeguard"
	"github.com/go-chi/chi/v5"
)

// Routes returns a subrouter for the HTML pages, wrapped in the route
// guard. Mounted at /.
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Use(routeguard.Middleware)
	r.Get("/", h.ServeHome)
	r.Get("/login", h.ServeLogin)
	r.Get("/signup", h.ServeSignup)
	r.Get("/todos", h.ServeTodos)
	r.Get("/settings", h.ServeSettings)
	return r
}
