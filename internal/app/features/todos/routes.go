// internal/app/features/todos/routes.go
package todos

import "github.com/go-chi/chi/v5"

// Routes returns a subrouter for the task endpoints. Mounted under
// /api/todos behind the signed-in gate.
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.ServeList)
	r.Post("/", h.ServeCreate)
	r.Put("/", h.ServeUpdate)
	r.Delete("/", h.ServeDelete)
	return r
}
