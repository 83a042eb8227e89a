// internal/app/features/authenticate/routes.go
package authenticate

import "github.com/go-chi/chi/v5"

// Routes returns a subrouter for the login endpoint; mounted at
// /authenticate.
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Post("/", h.HandleLogin)
	return r
}
