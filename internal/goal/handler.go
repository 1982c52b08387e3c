package goal

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
	log := config.WithContext(r.Context())

	var dto CreateGoalDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		log.WithError(err).Warn("Invalid request body")
		config.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	response, err := h.service.Create(r.Context(), dto)
	if err != nil {
		config.Fail(w, r, err, "create goal")
		return
	}

	config.JSON(w, http.StatusCreated, response)
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	responses, err := h.service.List(r.Context())
	if err != nil {
		config.WithContext(r.Context()).WithError(err).Warn("Serving empty goal list")
		responses = []GoalResponse{}
	}

	config.JSON(w, http.StatusOK, responses)
}

func (h *Handler) Toggle(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r)
	if !ok {
		return
	}

	response, err := h.service.Toggle(r.Context(), id)
	if err != nil {
		if errors.Is(err, ErrGoalNotFound) {
			config.Error(w, http.StatusNotFound, "goal not found")
			return
		}
		config.Fail(w, r, err, "toggle goal")
		return
	}

	config.JSON(w, http.StatusOK, response)
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r)
	if !ok {
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		if errors.Is(err, ErrGoalNotFound) {
			config.Error(w, http.StatusNotFound, "goal not found")
			return
		}
		config.Fail(w, r, err, "delete goal")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) ClearCompleted(w http.ResponseWriter, r *http.Request) {
	n, err := h.service.ClearCompleted(r.Context())
	if err != nil {
		config.Fail(w, r, err, "clear completed goals")
		return
	}

	config.JSON(w, http.StatusOK, ClearCompletedResponse{Removed: n})
}

func idParam(w http.ResponseWriter, r *http.Request) (string, bool) {
	idStr := chi.URLParam(r, "id")
	if idStr == "" {
		config.Error(w, http.StatusBadRequest, "id required")
		return "", false
	}
	id, err := uuid.Parse(idStr)
	if err != nil {
		config.Error(w, http.StatusBadRequest, "invalid id")
		return "", false
	}
	return id.String(), true
}
