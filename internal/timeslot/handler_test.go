package timeslot_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"schedule-service/internal/logger"
	"schedule-service/internal/metrics"
	"schedule-service/internal/testdb"
	"schedule-service/internal/timeslot"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimeSlotService_Shared(t *testing.T) {
	pgContainer := testdb.SetupSharedPostgres(t)
	defer pgContainer.Cleanup(t)

	pgContainer.RunMigrations(t, (*timeslot.TimeSlot)(nil))

	repo := timeslot.NewRepository(pgContainer.DB, metrics.NewMock())
	service := timeslot.NewService(repo, nil)
	handler := timeslot.NewHandler(service, logger.Discard())
	router := chi.NewRouter()
	handler.RegisterRoutes(router)

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

	t.Run("RoundTrip", func(t *testing.T) {
		testdb.CleanupTables(t, pgContainer.DB, "timeslots")

		w := send(http.MethodPost, "/timeslots", map[string]string{
			"start_time": "09:00",
			"end_time":   "10:30",
		})
		require.Equal(t, http.StatusCreated, w.Code)
		assert.JSONEq(t, `{"id":1,"start_time":"09:00","end_time":"10:30"}`, w.Body.String())

		w = send(http.MethodGet, "/timeslots", nil)
		require.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `[{"id":1,"start_time":"09:00","end_time":"10:30"}]`, w.Body.String())
	})

	t.Run("InvertedWindow", func(t *testing.T) {
		testdb.CleanupTables(t, pgContainer.DB, "timeslots")

		w := send(http.MethodPost, "/timeslots", map[string]string{
			"start_time": "11:00",
			"end_time":   "10:00",
		})
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "must be before")
	})

	t.Run("MalformedTime", func(t *testing.T) {
		w := send(http.MethodPost, "/timeslots", map[string]string{
			"start_time": "9:00",
			"end_time":   "10:00",
		})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("UpdateTimeSlot", func(t *testing.T) {
		testdb.CleanupTables(t, pgContainer.DB, "timeslots")

		require.Equal(t, http.StatusCreated, send(http.MethodPost, "/timeslots", map[string]string{
			"start_time": "09:00",
			"end_time":   "10:00",
		}).Code)

		w := send(http.MethodPut, "/timeslots/1", map[string]string{
			"start_time": "14:15",
			"end_time":   "15:45",
		})
		require.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"id":1,"start_time":"14:15","end_time":"15:45"}`, w.Body.String())
	})

	t.Run("DeleteTimeSlot_NotFound", func(t *testing.T) {
		testdb.CleanupTables(t, pgContainer.DB, "timeslots")

		w := send(http.MethodDelete, "/timeslots/3", nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.JSONEq(t, `{"error":"timeslot not found"}`, w.Body.String())
	})
}
