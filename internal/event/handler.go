package event

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
	var dto CreateEventDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		config.WithContext(r.Context()).WithError(err).Warn("Invalid request body")
		config.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	e, err := h.service.Create(r.Context(), dto)
	if err != nil {
		config.Fail(w, r, err, "schedule event")
		return
	}

	config.JSON(w, http.StatusCreated, e)
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	events, err := h.service.List(r.Context())
	if err != nil {
		events = []Event{}
	}
	config.JSON(w, http.StatusOK, events)
}

func (h *Handler) Calendar(w http.ResponseWriter, r *http.Request) {
	entries, err := h.service.Calendar(r.Context())
	if err != nil {
		entries = []CalendarEntry{}
	}
	config.JSON(w, http.StatusOK, entries)
}

func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r)
	if !ok {
		return
	}

	var dto UpdateEventDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		config.WithContext(r.Context()).WithError(err).Warn("Invalid request body")
		config.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	e, err := h.service.Update(r.Context(), id, dto)
	if err != nil {
		if errors.Is(err, ErrEventNotFound) {
			config.Error(w, http.StatusNotFound, "event not found")
			return
		}
		config.Fail(w, r, err, "update event")
		return
	}

	config.JSON(w, http.StatusOK, e)
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r)
	if !ok {
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		if errors.Is(err, ErrEventNotFound) {
			config.Error(w, http.StatusNotFound, "event not found")
			return
		}
		config.Fail(w, r, err, "delete event")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) Download(w http.ResponseWriter, r *http.Request) {
	config.Attachment(w, "events.csv")
	if err := h.service.Export(r.Context(), w); err != nil {
		config.Fail(w, r, err, "export events")
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
