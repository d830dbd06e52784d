package habit

import (
	"github.com/go-chi/chi/v5"
)

// Routes mounts the habit endpoints. extra lets sibling features hang
// sub-routes (check-ins) under /habits/active.
func Routes(h *Handler, extra func(r chi.Router)) chi.Router {
	r := chi.NewRouter()

	r.Post("/", h.Create)
	r.Route("/active", func(r chi.Router) {
		r.Get("/", h.GetActive)
		r.Delete("/", h.ResetActive)
		if extra != nil {
			extra(r)
		}
	})
	return r
}
