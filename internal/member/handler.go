package member

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/saulo-duarte/clubhouse/internal/config"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var dto CreateMemberDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		config.WithContext(r.Context()).WithError(err).Warn("Invalid request body")
		config.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	m, err := h.service.Create(r.Context(), dto)
	if err != nil {
		config.Fail(w, r, err, "add member")
		return
	}

	config.JSON(w, http.StatusCreated, m)
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	members, err := h.service.List(r.Context())
	if err != nil {
		members = []Member{}
	}
	config.JSON(w, http.StatusOK, members)
}

func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r)
	if !ok {
		return
	}

	var dto UpdateMemberDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		config.WithContext(r.Context()).WithError(err).Warn("Invalid request body")
		config.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	m, err := h.service.Update(r.Context(), id, dto)
	if err != nil {
		if errors.Is(err, ErrMemberNotFound) {
			config.Error(w, http.StatusNotFound, "member not found")
			return
		}
		config.Fail(w, r, err, "update member")
		return
	}

	config.JSON(w, http.StatusOK, m)
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r)
	if !ok {
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		if errors.Is(err, ErrMemberNotFound) {
			config.Error(w, http.StatusNotFound, "member not found")
			return
		}
		config.Fail(w, r, err, "delete member")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) Download(w http.ResponseWriter, r *http.Request) {
	config.Attachment(w, "members.csv")
	if err := h.service.Export(r.Context(), w); err != nil {
		config.Fail(w, r, err, "export members")
	}
}

func idParam(w http.ResponseWriter, r *http.Request) (string, bool) {
	idStr := chi.URLParam(r, "id")
	id, err := uuid.Parse(idStr)
	if err != nil {
		config.Error(w, http.StatusBadRequest, "invalid id")
		return "", false
	}
	return id.String(), true
}
