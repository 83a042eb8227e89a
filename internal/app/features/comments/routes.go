// internal/app/features/comments/routes.go
package comments

import "github.com/go-chi/chi/v5"

// Routes returns a subrouter for comment creation; mounted at
// /comment.
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Post("/new", h.HandleNew)
	return r
}
