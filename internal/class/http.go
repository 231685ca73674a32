package class

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
	router.Get("/classes", h.GetAllClasses)
	router.Post("/classes", h.CreateClass)
	router.Get("/classes/{id}", h.GetClass)
	router.Put("/classes/{id}", h.UpdateClass)
	router.Delete("/classes/{id}", h.DeleteClass)
}

func (h *Handler) CreateClass(w http.ResponseWriter, r *http.Request) {
	var req CreateClassRequest
	if err := httputil.DecodeJSON(r, h.validate, &req); err != nil {
		h.logger.WarnContext(r.Context(), "invalid class request", "error", err)
		httputil.RespondWithError(w, http.StatusBadRequest, "Invalid request")
		return
	}

	h.logger.InfoContext(r.Context(), "creating class", "instructor_ci", req.InstructorCI, "activity_id", req.ActivityID, "timeslot_id", req.TimeSlotID)
	created, err := h.service.CreateClass(r.Context(), req)
	if err != nil {
		h.handleServiceError(w, r, err)
		return
	}

	httputil.RespondWithJSON(w, http.StatusCreated, created)
}

func (h *Handler) GetAllClasses(w http.ResponseWriter, r *http.Request) {
	classes, err := h.service.GetAllClasses(r.Context())
	if err != nil {
		h.handleServiceError(w, r, err)
		return
	}

	httputil.RespondWithJSON(w, http.StatusOK, classes)
}

func (h *Handler) GetClass(w http.ResponseWriter, r *http.Request) {
	id, err := httputil.IntParam(r, "id")
	if err != nil {
		h.handleServiceError(w, r, err)
		return
	}

	class, err := h.service.GetClassByID(r.Context(), id)
	if err != nil {
		h.handleServiceError(w, r, err)
		return
	}

	httputil.RespondWithJSON(w, http.StatusOK, class)
}

func (h *Handler) UpdateClass(w http.ResponseWriter, r *http.Request) {
	id, err := httputil.IntParam(r, "id")
	if err != nil {
		h.handleServiceError(w, r, err)
		return
	}

	var req UpdateClassRequest
	if err := httputil.DecodeJSON(r, h.validate, &req); err != nil {
		h.logger.WarnContext(r.Context(), "invalid class request", "error", err)
		httputil.RespondWithError(w, http.StatusBadRequest, "Invalid request")
		return
	}

	h.logger.InfoContext(r.Context(), "updating class", "id", id)
	updated, err := h.service.UpdateClass(r.Context(), id, req)
	if err != nil {
		h.handleServiceError(w, r, err)
		return
	}

	httputil.RespondWithJSON(w, http.StatusOK, updated)
}

func (h *Handler) DeleteClass(w http.ResponseWriter, r *http.Request) {
	id, err := httputil.IntParam(r, "id")
	if err != nil {
		h.handleServiceError(w, r, err)
		return
	}

	h.logger.InfoContext(r.Context(), "deleting class", "id", id)
	if err := h.service.DeleteClass(r.Context(), id); err != nil {
		h.handleServiceError(w, r, err)
		return
	}

	httputil.RespondWithMessage(w, http.StatusOK, "Class deleted successfully")
}

func (h *Handler) handleServiceError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, apperr.ErrNotFound), errors.Is(err, apperr.ErrValidation):
		h.logger.InfoContext(r.Context(), "class request rejected", "error", err)
	default:
		h.logger.ErrorContext(r.Context(), "internal error", "error", err)
	}
	httputil.RespondWithServiceError(w, err)
}
