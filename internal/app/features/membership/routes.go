// internal/app/features/membership/routes.go
package membership

import "github.com/go-chi/chi/v5"

// Routes returns a subrouter for the membership endpoint. Mounted under
// /api/membership behind the signed-in gate.
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Post("/", h.ServeClaim)
	return r
}
