package handlers

import (
	"errors"
	"net/http"
	"time"

	"gorm.io/gorm"

	"github.com/ClemRoy/epicEvents/gate"
	"github.com/ClemRoy/epicEvents/httpx"
	"github.com/ClemRoy/epicEvents/internal/workflow"
)

// writeError maps domain errors onto HTTP statuses. Policy and validation
// failures are ordinary responses, not server faults; only unknown errors
// become 500s.
func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, gate.ErrUnauthenticated):
		httpx.JSONError(w, http.StatusUnauthorized, "unauthenticated", nil)
	case errors.Is(err, gate.ErrForbidden), errors.Is(err, gate.ErrNoPolicyDefined):
		httpx.JSONError(w, http.StatusForbidden, "forbidden", nil)
	case errors.Is(err, workflow.ErrValidation):
		httpx.JSONError(w, http.StatusBadRequest, "validation_failed", err.Error())
	case errors.Is(err, gorm.ErrRecordNotFound):
		httpx.JSONError(w, http.StatusNotFound, "not_found", nil)
	default:
		httpx.JSONError(w, http.StatusInternalServerError, "internal_error", nil)
	}
}

// parseDate accepts the API's date inputs: plain dates or full RFC 3339
// timestamps.
func parseDate(value string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02", value); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, value)
}
