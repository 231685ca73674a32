package enrollment

import (
	"errors"
	"log/slog"
	"net/http"

	"schedule-service/internal/apperr"
	"schedule-service/internal/httputil"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
)

type Handler struct {
	service  Service
	validate *validator.Validate
	logger   *slog.Logger
}

func NewHandler(service Service, logger *slog.Logger) *Handler {
	return &Handler{
		service:  service,
		validate: httputil.NewValidator(),
		logger:   logger,
	}
}

func (h *Handler) RegisterRoutes(router chi.Router) {
	router.Get("/enrollments", h.GetAllEnrollments)
	router.Post("/enrollments", h.CreateEnrollment)
	router.Route("/enrollments/{class_id}/{student_ci}/{equipment_id}", func(r chi.Router) {
		r.Get("/", h.GetEnrollment)
		r.Put("/", h.UpdateEnrollment)
		r.Delete("/", h.DeleteEnrollment)
	})
}

func keyFromPath(r *http.Request) (Key, error) {
	classID, err := httputil.IntParam(r, "class_id")
	if err != nil {
		return Key{}, err
	}
	studentCI, err := httputil.CIParam(r, "student_ci")
	if err != nil {
		return Key{}, err
	}
	equipmentID, err := httputil.IntParam(r, "equipment_id")
	if err != nil {
		return Key{}, err
	}
	return Key{ClassID: classID, StudentCI: studentCI, EquipmentID: equipmentID}, nil
}

func (h *Handler) CreateEnrollment(w http.ResponseWriter, r *http.Request) {
	var req CreateEnrollmentRequest
	if err := httputil.DecodeJSON(r, h.validate, &req); err != nil {
		h.logger.WarnContext(r.Context(), "invalid enrollment request", "error", err)
		httputil.RespondWithError(w, http.StatusBadRequest, "Invalid request")
		return
	}

	h.logger.InfoContext(r.Context(), "creating enrollment", "key", req.Key().String())
	created, err := h.service.CreateEnrollment(r.Context(), req)
	if err != nil {
		h.handleServiceError(w, r, err)
		return
	}

	httputil.RespondWithJSON(w, http.StatusCreated, created)
}

func (h *Handler) GetAllEnrollments(w http.ResponseWriter, r *http.Request) {
	enrollments, err := h.service.GetAllEnrollments(r.Context())
	if err != nil {
		h.handleServiceError(w, r, err)
		return
	}

	httputil.RespondWithJSON(w, http.StatusOK, enrollments)
}

func (h *Handler) GetEnrollment(w http.ResponseWriter, r *http.Request) {
	key, err := keyFromPath(r)
	if err != nil {
		h.handleServiceError(w, r, err)
		return
	}

	enrollment, err := h.service.GetEnrollment(r.Context(), key)
	if err != nil {
		h.handleServiceError(w, r, err)
		return
	}

	httputil.RespondWithJSON(w, http.StatusOK, enrollment)
}

func (h *Handler) UpdateEnrollment(w http.ResponseWriter, r *http.Request) {
	key, err := keyFromPath(r)
	if err != nil {
		h.handleServiceError(w, r, err)
		return
	}

	var req UpdateEnrollmentRequest
	if err := httputil.DecodeJSON(r, h.validate, &req); err != nil {
		h.logger.WarnContext(r.Context(), "invalid enrollment request", "error", err)
		httputil.RespondWithError(w, http.StatusBadRequest, "Invalid request")
		return
	}

	h.logger.InfoContext(r.Context(), "updating enrollment", "key", key.String(), "new_key", req.Key().String())
	updated, err := h.service.UpdateEnrollment(r.Context(), key, req)
	if err != nil {
		h.handleServiceError(w, r, err)
		return
	}

	httputil.RespondWithJSON(w, http.StatusOK, updated)
}

func (h *Handler) DeleteEnrollment(w http.ResponseWriter, r *http.Request) {
	key, err := keyFromPath(r)
	if err != nil {
		h.handleServiceError(w, r, err)
		return
	}

	h.logger.InfoContext(r.Context(), "deleting enrollment", "key", key.String())
	if err := h.service.DeleteEnrollment(r.Context(), key); err != nil {
		h.handleServiceError(w, r, err)
		return
	}

	httputil.RespondWithMessage(w, http.StatusOK, "Enrollment deleted successfully")
}

func (h *Handler) handleServiceError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, apperr.ErrNotFound), errors.Is(err, apperr.ErrValidation), errors.Is(err, apperr.ErrConflict):
		h.logger.InfoContext(r.Context(), "enrollment request rejected", "error", err)
	default:
		h.logger.ErrorContext(r.Context(), "internal error", "error", err)
	}
	httputil.RespondWithServiceError(w, err)
}
