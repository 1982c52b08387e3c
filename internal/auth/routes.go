package auth

import "github.com/go-chi/chi/v5"

func Routes(h *Handler, tokens *TokenManager) chi.Router {
	r := chi.NewRouter()

	r.Post("/login", h.Login)
	r.Post("/logout", h.Logout)
	r.With(tokens.Middleware).Get("/me", h.Me)
	return r
}
