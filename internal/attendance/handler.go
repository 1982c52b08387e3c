package attendance

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
	var dto CreateAttendanceDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		config.WithContext(r.Context()).WithError(err).Warn("Invalid request body")
		config.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	rec, err := h.service.Create(r.Context(), dto)
	if err != nil {
		config.Fail(w, r, err, "record attendance")
		return
	}

	config.JSON(w, http.StatusCreated, rec)
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	config.JSON(w, http.StatusOK, h.service.Page(r.Context()))
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r)
	if !ok {
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		if errors.Is(err, ErrRecordNotFound) {
			config.Error(w, http.StatusNotFound, "attendance record not found")
			return
		}
		config.Fail(w, r, err, "delete attendance record")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) Download(w http.ResponseWriter, r *http.Request) {
	config.Attachment(w, "attendance.csv")
	if err := h.service.Export(r.Context(), w); err != nil {
		config.Fail(w, r, err, "export attendance")
	}
}

// idParam returns the canonical lowercase form of the {id} URL parameter.
func idParam(w http.ResponseWriter, r *http.Request) (string, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		config.Error(w, http.StatusBadRequest, "invalid id")
		return "", false
	}
	return id.String(), true
}
