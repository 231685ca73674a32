package health_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"schedule-service/internal/health"
	"schedule-service/internal/logger"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
)

type pinger struct{ err error }

func (p pinger) PingContext(context.Context) error { return p.err }

func TestHealth(t *testing.T) {
	tests := []struct {
		name   string
		path   string
		ping   error
		code   int
		status string
	}{
		{"Live", "/health", nil, http.StatusOK, `{"status":"ok"}`},
		{"LiveWithoutDB", "/health", errors.New("down"), http.StatusOK, `{"status":"ok"}`},
		{"Ready", "/ready", nil, http.StatusOK, `{"status":"ready"}`},
		{"NotReady", "/ready", errors.New("down"), http.StatusServiceUnavailable, `{"status":"unavailable"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := chi.NewRouter()
			health.NewHandler(pinger{err: tt.ping}, logger.Discard()).RegisterRoutes(router)

			w := httptest.NewRecorder()
			router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, tt.path, nil))

			assert.Equal(t, tt.code, w.Code)
			assert.JSONEq(t, tt.status, w.Body.String())
		})
	}
}
