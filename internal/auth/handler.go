package auth

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/saulo-duarte/clubhouse/internal/config"
)

type CookieOptions struct {
	Domain string
	Secure bool
}

type Handler struct {
	creds  CredentialProvider
	tokens *TokenManager
	cookie CookieOptions
}

func NewHandler(creds CredentialProvider, tokens *TokenManager, cookie CookieOptions) *Handler {
	return &Handler{creds: creds, tokens: tokens, cookie: cookie}
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type LoginResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
	User      Identity  `json:"user"`
}

func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.WithError(err).Warn("Invalid login body")
		config.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	identity, err := h.creds.Authenticate(req.Username, req.Password)
	if err != nil {
		if errors.Is(err, ErrInvalidCredentials) {
			log.WithField("username", req.Username).Warn("Failed login attempt")
			config.Error(w, http.StatusUnauthorized, "invalid username or password")
			return
		}
		log.WithError(err).Error("Credential check failed")
		config.Error(w, http.StatusInternalServerError, "internal server error")
		return
	}

	ttl := h.tokens.TTL()
	token, err := h.tokens.GenerateJWT(identity.UserID, identity.Role, ttl)
	if err != nil {
		log.WithError(err).Error("Failed to sign session token")
		config.Error(w, http.StatusInternalServerError, "internal server error")
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     cookieName,
		Value:    token,
		Path:     "/",
		Domain:   h.cookie.Domain,
		MaxAge:   int(ttl.Seconds()),
		HttpOnly: true,
		Secure:   h.cookie.Secure,
		SameSite: http.SameSiteLaxMode,
	})

	log.WithField("username", identity.Username).Info("Admin logged in")
	config.JSON(w, http.StatusOK, LoginResponse{
		Token:     token,
		ExpiresAt: time.Now().Add(ttl).UTC(),
		User:      *identity,
	})
}

func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, &http.Cookie{
		Name:     cookieName,
		Value:    "",
		Path:     "/",
		Domain:   h.cookie.Domain,
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.cookie.Secure,
		SameSite: http.SameSiteLaxMode,
	})

	config.JSON(w, http.StatusOK, map[string]string{
		"message": "logout successful",
	})
}

func (h *Handler) Me(w http.ResponseWriter, r *http.Request) {
	claims, err := GetUserClaimsFromContext(r.Context())
	if err != nil {
		config.Error(w, http.StatusUnauthorized, "unauthorized")
		return
	}
	config.JSON(w, http.StatusOK, map[string]string{
		"user_id": claims.UserID,
		"role":    claims.Role,
	})
}
