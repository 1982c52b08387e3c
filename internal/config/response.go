package config

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/saulo-duarte/clubhouse/internal/recordstore"
)

func JSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if v == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(v); err != nil {
		Logger.WithError(err).Error("Failed to encode response")
	}
}

// Error writes {"error": message} with the given status.
func Error(w http.ResponseWriter, status int, message string) {
	JSON(w, status, map[string]string{"error": message})
}

// Fail maps a service error onto a response: validation failures become 400
// with the reason, storage faults and anything else become 500. A pending
// attachment header is dropped so the error body is not saved as a file.
func Fail(w http.ResponseWriter, r *http.Request, err error, action string) {
	log := WithContext(r.Context())
	w.Header().Del("Content-Disposition")

	var verr *recordstore.ValidationError
	switch {
	case errors.As(err, &verr):
		log.WithError(err).Warnf("Rejected request to %s", action)
		JSON(w, http.StatusBadRequest, map[string]string{"error": verr.Error(), "field": verr.Field})
	case errors.Is(err, recordstore.ErrStorageFault):
		log.WithError(err).Errorf("Storage fault while trying to %s", action)
		Error(w, http.StatusInternalServerError, "storage unavailable")
	default:
		log.WithError(err).Errorf("Failed to %s", action)
		Error(w, http.StatusInternalServerError, "internal server error")
	}
}

// Attachment sets the headers for a CSV download named filename.
func Attachment(w http.ResponseWriter, filename string) {
	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="`+filename+`"`)
}
