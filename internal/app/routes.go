package app

import (
	"log/slog"

	"schedule-service/internal/activity"
	"schedule-service/internal/auth"
	"schedule-service/internal/class"
	"schedule-service/internal/enrollment"
	"schedule-service/internal/equipment"
	"schedule-service/internal/events"
	"schedule-service/internal/health"
	"schedule-service/internal/instructor"
	"schedule-service/internal/metrics"
	"schedule-service/internal/middleware"
	"schedule-service/internal/student"
	"schedule-service/internal/timeslot"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/uptrace/bun"
)

// NewRouter wires every repository, service and handler on top of database.
func NewRouter(database *bun.DB, m *metrics.Metrics, emitter *events.Emitter, corsOrigins []string, logger *slog.Logger) chi.Router {
	router := chi.NewRouter()
	router.Use(chimiddleware.RequestID)
	router.Use(chimiddleware.Recoverer)
	router.Use(middleware.CORS(corsOrigins))

	health.NewHandler(database, logger).RegisterRoutes(router)

	activityRepo := activity.NewRepository(database, m)
	equipmentRepo := equipment.NewRepository(database, m)
	instructorRepo := instructor.NewRepository(database, m)
	timeslotRepo := timeslot.NewRepository(database, m)
	classRepo := class.NewRepository(database, m)
	studentRepo := student.NewRepository(database, m)
	enrollmentRepo := enrollment.NewRepository(database, m)
	credentialRepo := auth.NewRepository(database, m)

	activity.NewHandler(activity.NewService(activityRepo, emitter), logger).RegisterRoutes(router)
	equipment.NewHandler(equipment.NewService(equipmentRepo, activityRepo, emitter), logger).RegisterRoutes(router)
	instructor.NewHandler(instructor.NewService(instructorRepo, emitter), logger).RegisterRoutes(router)
	timeslot.NewHandler(timeslot.NewService(timeslotRepo, emitter), logger).RegisterRoutes(router)

	classService := class.NewService(classRepo, instructorRepo, activityRepo, timeslotRepo, enrollmentRepo, emitter, m)
	class.NewHandler(classService, logger).RegisterRoutes(router)

	student.NewHandler(student.NewService(studentRepo, emitter), logger).RegisterRoutes(router)

	enrollmentService := enrollment.NewService(enrollmentRepo, classRepo, studentRepo, equipmentRepo, emitter, m)
	enrollment.NewHandler(enrollmentService, logger).RegisterRoutes(router)

	authService := auth.NewService(credentialRepo, studentRepo, instructorRepo, emitter, m)
	auth.NewHandler(authService, logger).RegisterRoutes(router)

	return router
}
