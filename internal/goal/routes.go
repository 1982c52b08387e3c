package goal

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func Routes(h *Handler) http.Handler {
	r := chi.NewRouter()

	r.Post("/", h.Create)
	r.Get("/", h.List)
	r.Delete("/completed", h.ClearCompleted)
	r.Post("/{id}/toggle", h.Toggle)
	r.Delete("/{id}", h.Delete)

	return r
}
