package httputil

import (
	"net/http"
	"strconv"

	"schedule-service/internal/apperr"

	"github.com/go-chi/chi/v5"
)

// IntParam reads a positive integer path parameter.
func IntParam(r *http.Request, name string) (int, error) {
	raw := chi.URLParam(r, name)
	id, err := strconv.Atoi(raw)
	if err != nil || id <= 0 {
		return 0, apperr.Validation("invalid %s %q", name, raw)
	}
	return id, nil
}

// CIParam reads a ci path parameter. A ci is exactly 11 characters.
func CIParam(r *http.Request, name string) (string, error) {
	ci := chi.URLParam(r, name)
	if len(ci) != 11 {
		return "", apperr.Validation("invalid %s %q", name, ci)
	}
	return ci, nil
}
