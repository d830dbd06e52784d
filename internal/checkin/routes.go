package checkin

import "github.com/go-chi/chi/v5"

// Mount registers the check-in endpoints on the active-habit router.
func Mount(h *Handler) func(r chi.Router) {
	return func(r chi.Router) {
		r.Post("/checkins", h.Create)
		r.Get("/checkins", h.List)
	}
}
