// internal/app/features/settings/routes.go
package settings

import "github.com/go-chi/chi/v5"

// Routes returns a subrouter for the settings endpoints. Mounted under
// /api/settings behind the signed-in gate.
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.ServeGet)
	r.Post("/", h.ServeSave)
	r.Delete("/", h.ServeDelete)
	return r
}
