package app_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"schedule-service/internal/app"
	"schedule-service/internal/events"
	"schedule-service/internal/logger"
	"schedule-service/internal/metrics"
	"schedule-service/internal/schema"
	"schedule-service/internal/testdb"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRouter_Shared(t *testing.T) {
	pgContainer := testdb.SetupSharedPostgres(t)
	defer pgContainer.Cleanup(t)

	pgContainer.RunMigrations(t, schema.Models()...)

	log := logger.Discard()
	m := metrics.NewMock()
	emitter := events.NewEmitter(events.Noop{}, log, m)
	router := app.NewRouter(pgContainer.DB, m, emitter, []string{"http://localhost:5173"}, log)

	send := func(method, target string, payload interface{}) *httptest.ResponseRecorder {
		var body []byte
		if payload != nil {
			body, _ = json.Marshal(payload)
		}
		req := httptest.NewRequest(method, target, bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		return w
	}

	t.Run("Health", func(t *testing.T) {
		assert.Equal(t, http.StatusOK, send(http.MethodGet, "/health", nil).Code)
		assert.Equal(t, http.StatusOK, send(http.MethodGet, "/ready", nil).Code)
	})

	t.Run("RegisterAndLogin", func(t *testing.T) {
		testdb.CleanupTables(t, pgContainer.DB, schema.Tables()...)

		w := send(http.MethodPost, "/students", map[string]string{
			"ci":         "45678901234",
			"name":       "Lucía",
			"surname":    "Gómez",
			"phone":      "099123456",
			"birth_date": "2000-01-31",
			"email":      "lucia@example.com",
		})
		require.Equal(t, http.StatusCreated, w.Code)

		w = send(http.MethodPost, "/register", map[string]string{
			"identity": "45678901234",
			"password": "correct horse",
			"email":    "lucia@example.com",
		})
		require.Equal(t, http.StatusCreated, w.Code)

		w = send(http.MethodPost, "/login", map[string]string{
			"identity": "45678901234",
			"password": "correct horse",
		})
		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"status":"success","email":"lucia@example.com"}`, w.Body.String())

		w = send(http.MethodPost, "/login", map[string]string{
			"identity": "45678901234",
			"password": "battery staple",
		})
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("RegisterUnknownIdentity", func(t *testing.T) {
		testdb.CleanupTables(t, pgContainer.DB, schema.Tables()...)

		w := send(http.MethodPost, "/register", map[string]string{
			"identity": "45678901234",
			"password": "correct horse",
			"email":    "lucia@example.com",
		})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("EquipmentNeedsActivity", func(t *testing.T) {
		testdb.CleanupTables(t, pgContainer.DB, schema.Tables()...)

		w := send(http.MethodPost, "/equipment", map[string]interface{}{
			"activity_id": 1,
			"description": "Helmet",
			"cost":        10,
		})
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.JSONEq(t, `{"error":"activity 1 does not exist"}`, w.Body.String())

		require.Equal(t, http.StatusCreated, send(http.MethodPost, "/activities", map[string]interface{}{
			"description": "Climbing",
			"cost":        40,
		}).Code)

		w = send(http.MethodPost, "/equipment", map[string]interface{}{
			"activity_id": 1,
			"description": "Helmet",
			"cost":        10,
		})
		assert.Equal(t, http.StatusCreated, w.Code)
	})

	t.Run("UpdateAndDeleteEquipment", func(t *testing.T) {
		testdb.CleanupTables(t, pgContainer.DB, schema.Tables()...)

		for _, description := range []string{"Climbing", "Kayak"} {
			require.Equal(t, http.StatusCreated, send(http.MethodPost, "/activities", map[string]interface{}{
				"description": description,
				"cost":        40,
			}).Code)
		}
		require.Equal(t, http.StatusCreated, send(http.MethodPost, "/equipment", map[string]interface{}{
			"activity_id": 1,
			"description": "Helmet",
			"cost":        10,
		}).Code)

		w := send(http.MethodPut, "/equipment/1", map[string]interface{}{
			"activity_id": 2,
			"description": "Paddle",
			"cost":        15.5,
		})
		require.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"id":1,"activity_id":2,"description":"Paddle","cost":15.5}`, w.Body.String())

		w = send(http.MethodGet, "/equipment/1", nil)
		require.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"id":1,"activity_id":2,"description":"Paddle","cost":15.5}`, w.Body.String())

		w = send(http.MethodPut, "/equipment/1", map[string]interface{}{
			"activity_id": 9,
			"description": "Paddle",
			"cost":        15.5,
		})
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.JSONEq(t, `{"error":"activity 9 does not exist"}`, w.Body.String())

		w = send(http.MethodDelete, "/equipment/1", nil)
		require.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"message":"Equipment deleted successfully"}`, w.Body.String())

		assert.Equal(t, http.StatusNotFound, send(http.MethodGet, "/equipment/1", nil).Code)
		assert.Equal(t, http.StatusNotFound, send(http.MethodDelete, "/equipment/1", nil).Code)
	})

	t.Run("DeleteReferencedActivity", func(t *testing.T) {
		testdb.CleanupTables(t, pgContainer.DB, schema.Tables()...)

		require.Equal(t, http.StatusCreated, send(http.MethodPost, "/activities", map[string]interface{}{
			"description": "Climbing",
			"cost":        40,
		}).Code)
		require.Equal(t, http.StatusCreated, send(http.MethodPost, "/equipment", map[string]interface{}{
			"activity_id": 1,
			"description": "Helmet",
			"cost":        10,
		}).Code)

		w := send(http.MethodDelete, "/activities/1", nil)
		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.JSONEq(t, `{"error":"constraint violation"}`, w.Body.String())
	})

	t.Run("CORSPreflight", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodOptions, "/activities", nil)
		req.Header.Set("Origin", "http://localhost:5173")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "http://localhost:5173", w.Header().Get("Access-Control-Allow-Origin"))
	})
}
