package finance

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func Routes(h *Handler) http.Handler {
	r := chi.NewRouter()

	r.Post("/", h.Create)
	r.Get("/", h.List)
	r.Get("/summary", h.Summary)
	r.Get("/breakdown", h.Breakdown)
	r.Get("/download", h.Download)
	r.Delete("/{id}", h.Delete)

	return r
}
