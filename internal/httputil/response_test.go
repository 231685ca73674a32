package httputil_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"schedule-service/internal/apperr"
	"schedule-service/internal/httputil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusFor(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"NotFound", apperr.New(apperr.ErrNotFound, "class not found"), http.StatusNotFound},
		{"Validation", apperr.Validation("bad"), http.StatusBadRequest},
		{"Conflict", apperr.New(apperr.ErrConflict, "duplicate entry"), http.StatusConflict},
		{"Unauthorized", apperr.New(apperr.ErrUnauthorized, "nope"), http.StatusUnauthorized},
		{"Storage", apperr.Storage(errors.New("dial tcp")), http.StatusInternalServerError},
		{"Unknown", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, httputil.StatusFor(tt.err))
		})
	}
}

func TestRespondWithServiceError(t *testing.T) {
	w := httptest.NewRecorder()
	httputil.RespondWithServiceError(w, apperr.Storage(errors.New("password authentication failed")))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"error":"storage error"}`, w.Body.String())
}

func TestDecodeJSON(t *testing.T) {
	type slot struct {
		Start string `json:"start_time" validate:"required,hhmm"`
	}
	v := httputil.NewValidator()

	valid := []string{"00:00", "09:05", "23:59"}
	for _, s := range valid {
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"start_time":"`+s+`"}`))
		var dst slot
		require.NoError(t, httputil.DecodeJSON(req, v, &dst), s)
		assert.Equal(t, s, dst.Start)
	}

	invalid := []string{"24:00", "9:00", "09:60", "0900", "", "09:00:00"}
	for _, s := range invalid {
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"start_time":"`+s+`"}`))
		var dst slot
		assert.Error(t, httputil.DecodeJSON(req, v, &dst), s)
	}

	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{`))
	var dst slot
	assert.Error(t, httputil.DecodeJSON(req, v, &dst))
}
