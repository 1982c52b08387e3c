package finance

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
	var dto CreateEntryDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		config.WithContext(r.Context()).WithError(err).Warn("Invalid request body")
		config.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	e, err := h.service.Create(r.Context(), dto)
	if err != nil {
		config.Fail(w, r, err, "add financial record")
		return
	}

	config.JSON(w, http.StatusCreated, e)
}

// List serves the records with their summary, as the finances page shows them.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	entries, err := h.service.List(r.Context())
	if err != nil {
		entries = []Entry{}
	}
	b := Summarize(entries, config.WithContext(r.Context()))

	config.JSON(w, http.StatusOK, FinancesPageResponse{Summary: b.Summary, Records: entries})
}

func (h *Handler) Summary(w http.ResponseWriter, r *http.Request) {
	summary, err := h.service.Summary(r.Context())
	if err != nil {
		config.Fail(w, r, err, "compute financial summary")
		return
	}
	config.JSON(w, http.StatusOK, summary)
}

func (h *Handler) Breakdown(w http.ResponseWriter, r *http.Request) {
	b, err := h.service.Breakdown(r.Context())
	if err != nil {
		config.Fail(w, r, err, "compute financial breakdown")
		return
	}
	config.JSON(w, http.StatusOK, b)
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r)
	if !ok {
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		if errors.Is(err, ErrEntryNotFound) {
			config.Error(w, http.StatusNotFound, "financial record not found")
			return
		}
		config.Fail(w, r, err, "delete financial record")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) Download(w http.ResponseWriter, r *http.Request) {
	config.Attachment(w, "finances.csv")
	if err := h.service.Export(r.Context(), w); err != nil {
		config.Fail(w, r, err, "export finances")
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
