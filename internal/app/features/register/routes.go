// internal/app/features/register/routes.go
package register

import "github.com/go-chi/chi/v5"

// Routes returns a subrouter for account creation; mounted at /user.
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Post("/create", h.HandleRegister)
	return r
}
