package auth

import (
	"net/http"
	"strings"

	"github.com/saulo-duarte/clubhouse/internal/config"
)

const cookieName = "jwt"

// Middleware rejects requests without a valid session token, read from the
// jwt cookie or an Authorization bearer header.
func (m *TokenManager) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := config.WithContext(r.Context())

		token := tokenFromRequest(r)
		if token == "" {
			config.Error(w, http.StatusUnauthorized, "unauthorized")
			return
		}

		claims, err := m.ValidateJWT(token)
		if err != nil {
			log.WithError(err).Warn("Rejected session token")
			config.Error(w, http.StatusUnauthorized, "unauthorized")
			return
		}

		next.ServeHTTP(w, r.WithContext(WithClaims(r.Context(), claims)))
	})
}

func tokenFromRequest(r *http.Request) string {
	if h := r.Header.Get("Authorization"); h != "" {
		if token, ok := strings.CutPrefix(h, "Bearer "); ok {
			return strings.TrimSpace(token)
		}
	}
	if c, err := r.Cookie(cookieName); err == nil {
		return c.Value
	}
	return ""
}
