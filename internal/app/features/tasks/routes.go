// internal/app/features/tasks/routes.go
package tasks

import "github.com/go-chi/chi/v5"

// Routes returns a subrouter for task mutations; mounted at /task.
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Post("/new", h.HandleNew)
	r.Post("/update", h.HandleUpdate)
	return r
}
