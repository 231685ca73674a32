package student_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"schedule-service/internal/logger"
	"schedule-service/internal/metrics"
	"schedule-service/internal/student"
	"schedule-service/internal/testdb"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStudentService_Shared(t *testing.T) {
	pgContainer := testdb.SetupSharedPostgres(t)
	defer pgContainer.Cleanup(t)

	pgContainer.RunMigrations(t, (*student.Student)(nil))

	repo := student.NewRepository(pgContainer.DB, metrics.NewMock())
	service := student.NewService(repo, nil)
	handler := student.NewHandler(service, logger.Discard())
	router := chi.NewRouter()
	handler.RegisterRoutes(router)

	newStudent := func(t *testing.T, ci string) {
		t.Helper()
		birthDate, err := student.ParseDate("2000-01-31")
		require.NoError(t, err)
		_, err = repo.Create(context.Background(), &student.Student{
			CI:        ci,
			Name:      "Lucía",
			Surname:   "Gómez",
			Phone:     "099123456",
			BirthDate: birthDate,
			Email:     "lucia@example.com",
		})
		require.NoError(t, err)
	}

	t.Run("CreateStudent", func(t *testing.T) {
		testdb.CleanupTables(t, pgContainer.DB, "students")

		body, _ := json.Marshal(map[string]interface{}{
			"ci":         "45678901234",
			"name":       "Lucía",
			"surname":    "Gómez",
			"phone":      "099123456",
			"birth_date": "2000-01-31",
			"email":      "lucia@example.com",
		})
		req := httptest.NewRequest(http.MethodPost, "/students", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)
		var response map[string]interface{}
		require.NoError(t, json.NewDecoder(w.Body).Decode(&response))
		assert.Equal(t, "45678901234", response["ci"])
		assert.Equal(t, "2000-01-31", response["birth_date"])
	})

	t.Run("GetStudent", func(t *testing.T) {
		testdb.CleanupTables(t, pgContainer.DB, "students")
		newStudent(t, "45678901234")

		req := httptest.NewRequest(http.MethodGet, "/students/45678901234", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		var response student.Student
		require.NoError(t, json.NewDecoder(w.Body).Decode(&response))
		assert.Equal(t, "Lucía", response.Name)
		assert.Equal(t, "2000-01-31", response.BirthDate.String())
	})

	t.Run("UpdateStudent_KeepsPathCI", func(t *testing.T) {
		testdb.CleanupTables(t, pgContainer.DB, "students")
		newStudent(t, "45678901234")

		body, _ := json.Marshal(map[string]interface{}{
			"ci":         "99999999999",
			"name":       "Lucía",
			"surname":    "Gómez Ruiz",
			"phone":      "098000000",
			"birth_date": "2000-02-01",
			"email":      "lucia.gomez@example.com",
		})
		req := httptest.NewRequest(http.MethodPut, "/students/45678901234", bytes.NewReader(body))
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		var response student.Student
		require.NoError(t, json.NewDecoder(w.Body).Decode(&response))
		assert.Equal(t, "45678901234", response.CI)
		assert.Equal(t, "Gómez Ruiz", response.Surname)
		assert.Equal(t, "2000-02-01", response.BirthDate.String())
	})

	t.Run("GetAllStudents_Empty", func(t *testing.T) {
		testdb.CleanupTables(t, pgContainer.DB, "students")

		req := httptest.NewRequest(http.MethodGet, "/students", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.JSONEq(t, `{"error":"no students found"}`, w.Body.String())
	})

	t.Run("DeleteStudent", func(t *testing.T) {
		testdb.CleanupTables(t, pgContainer.DB, "students")
		newStudent(t, "45678901234")

		req := httptest.NewRequest(http.MethodDelete, "/students/45678901234", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"message":"Student deleted successfully"}`, w.Body.String())
	})
}
