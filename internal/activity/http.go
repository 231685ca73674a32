package activity

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
	router.Get("/activities", h.GetAllActivities)
	router.Post("/activities", h.CreateActivity)
	router.Get("/activities/{id}", h.GetActivity)
	router.Put("/activities/{id}", h.UpdateActivity)
	router.Delete("/activities/{id}", h.DeleteActivity)
}

func (h *Handler) CreateActivity(w http.ResponseWriter, r *http.Request) {
	var req CreateActivityRequest
	if err := httputil.DecodeJSON(r, h.validate, &req); err != nil {
		h.logger.WarnContext(r.Context(), "invalid activity request", "error", err)
		httputil.RespondWithError(w, http.StatusBadRequest, "Invalid request")
		return
	}

	h.logger.InfoContext(r.Context(), "creating activity", "description", req.Description)
	created, err := h.service.CreateActivity(r.Context(), req)
	if err != nil {
		h.handleServiceError(w, r, err)
		return
	}

	httputil.RespondWithJSON(w, http.StatusCreated, created)
}

func (h *Handler) GetAllActivities(w http.ResponseWriter, r *http.Request) {
	h.logger.InfoContext(r.Context(), "fetching all activities")

	activities, err := h.service.GetAllActivities(r.Context())
	if err != nil {
		h.handleServiceError(w, r, err)
		return
	}

	httputil.RespondWithJSON(w, http.StatusOK, activities)
}

func (h *Handler) GetActivity(w http.ResponseWriter, r *http.Request) {
	id, err := httputil.IntParam(r, "id")
	if err != nil {
		h.handleServiceError(w, r, err)
		return
	}

	activity, err := h.service.GetActivityByID(r.Context(), id)
	if err != nil {
		h.handleServiceError(w, r, err)
		return
	}

	httputil.RespondWithJSON(w, http.StatusOK, activity)
}

func (h *Handler) UpdateActivity(w http.ResponseWriter, r *http.Request) {
	id, err := httputil.IntParam(r, "id")
	if err != nil {
		h.handleServiceError(w, r, err)
		return
	}

	var req UpdateActivityRequest
	if err := httputil.DecodeJSON(r, h.validate, &req); err != nil {
		h.logger.WarnContext(r.Context(), "invalid activity request", "error", err)
		httputil.RespondWithError(w, http.StatusBadRequest, "Invalid request")
		return
	}

	h.logger.InfoContext(r.Context(), "updating activity", "id", id)
	updated, err := h.service.UpdateActivity(r.Context(), id, req)
	if err != nil {
		h.handleServiceError(w, r, err)
		return
	}

	httputil.RespondWithJSON(w, http.StatusOK, updated)
}

func (h *Handler) DeleteActivity(w http.ResponseWriter, r *http.Request) {
	id, err := httputil.IntParam(r, "id")
	if err != nil {
		h.handleServiceError(w, r, err)
		return
	}

	h.logger.InfoContext(r.Context(), "deleting activity", "id", id)
	if err := h.service.DeleteActivity(r.Context(), id); err != nil {
		h.handleServiceError(w, r, err)
		return
	}

	httputil.RespondWithMessage(w, http.StatusOK, "Activity deleted successfully")
}

func (h *Handler) handleServiceError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, apperr.ErrNotFound), errors.Is(err, apperr.ErrValidation):
		h.logger.InfoContext(r.Context(), "activity request rejected", "error", err)
	default:
		h.logger.ErrorContext(r.Context(), "internal error", "error", err)
	}
	httputil.RespondWithServiceError(w, err)
}
