package instructor

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
	router.Get("/instructors", h.GetAllInstructors)
	router.Post("/instructors", h.CreateInstructor)
	router.Get("/instructors/{ci}", h.GetInstructor)
	router.Put("/instructors/{ci}", h.UpdateInstructor)
	router.Delete("/instructors/{ci}", h.DeleteInstructor)
}

func (h *Handler) CreateInstructor(w http.ResponseWriter, r *http.Request) {
	var req CreateInstructorRequest
	if err := httputil.DecodeJSON(r, h.validate, &req); err != nil {
		h.logger.WarnContext(r.Context(), "invalid instructor request", "error", err)
		httputil.RespondWithError(w, http.StatusBadRequest, "Invalid request")
		return
	}

	h.logger.InfoContext(r.Context(), "creating instructor", "ci", req.CI)
	created, err := h.service.CreateInstructor(r.Context(), req)
	if err != nil {
		h.handleServiceError(w, r, err)
		return
	}

	httputil.RespondWithJSON(w, http.StatusCreated, created)
}

func (h *Handler) GetAllInstructors(w http.ResponseWriter, r *http.Request) {
	instructors, err := h.service.GetAllInstructors(r.Context())
	if err != nil {
		h.handleServiceError(w, r, err)
		return
	}

	httputil.RespondWithJSON(w, http.StatusOK, instructors)
}

func (h *Handler) GetInstructor(w http.ResponseWriter, r *http.Request) {
	ci, err := httputil.CIParam(r, "ci")
	if err != nil {
		h.handleServiceError(w, r, err)
		return
	}

	instructor, err := h.service.GetInstructorByCI(r.Context(), ci)
	if err != nil {
		h.handleServiceError(w, r, err)
		return
	}

	httputil.RespondWithJSON(w, http.StatusOK, instructor)
}

func (h *Handler) UpdateInstructor(w http.ResponseWriter, r *http.Request) {
	ci, err := httputil.CIParam(r, "ci")
	if err != nil {
		h.handleServiceError(w, r, err)
		return
	}

	var req UpdateInstructorRequest
	if err := httputil.DecodeJSON(r, h.validate, &req); err != nil {
		h.logger.WarnContext(r.Context(), "invalid instructor request", "error", err)
		httputil.RespondWithError(w, http.StatusBadRequest, "Invalid request")
		return
	}

	h.logger.InfoContext(r.Context(), "updating instructor", "ci", ci)
	updated, err := h.service.UpdateInstructor(r.Context(), ci, req)
	if err != nil {
		h.handleServiceError(w, r, err)
		return
	}

	httputil.RespondWithJSON(w, http.StatusOK, updated)
}

func (h *Handler) DeleteInstructor(w http.ResponseWriter, r *http.Request) {
	ci, err := httputil.CIParam(r, "ci")
	if err != nil {
		h.handleServiceError(w, r, err)
		return
	}

	h.logger.InfoContext(r.Context(), "deleting instructor", "ci", ci)
	if err := h.service.DeleteInstructor(r.Context(), ci); err != nil {
		h.handleServiceError(w, r, err)
		return
	}

	httputil.RespondWithMessage(w, http.StatusOK, "Instructor deleted successfully")
}

func (h *Handler) handleServiceError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, apperr.ErrNotFound), errors.Is(err, apperr.ErrValidation), errors.Is(err, apperr.ErrConflict):
		h.logger.InfoContext(r.Context(), "instructor request rejected", "error", err)
	default:
		h.logger.ErrorContext(r.Context(), "internal error", "error", err)
	}
	httputil.RespondWithServiceError(w, err)
}
