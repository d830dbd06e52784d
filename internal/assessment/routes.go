package assessment

import "github.com/go-chi/chi/v5"

func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()

	r.Get("/", h.ListTests)
	r.Get("/submissions", h.ListSubmissions)
	r.Get("/{id}", h.GetTest)
	r.Post("/{id}/submissions", h.Submit)
	return r
}
