package equipment

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
	router.Get("/equipment", h.GetAllEquipment)
	router.Post("/equipment", h.CreateEquipment)
	router.Get("/equipment/{id}", h.GetEquipment)
	router.Put("/equipment/{id}", h.UpdateEquipment)
	router.Delete("/equipment/{id}", h.DeleteEquipment)
}

func (h *Handler) CreateEquipment(w http.ResponseWriter, r *http.Request) {
	var req CreateEquipmentRequest
	if err := httputil.DecodeJSON(r, h.validate, &req); err != nil {
		h.logger.WarnContext(r.Context(), "invalid equipment request", "error", err)
		httputil.RespondWithError(w, http.StatusBadRequest, "Invalid request")
		return
	}

	h.logger.InfoContext(r.Context(), "creating equipment", "activity_id", req.ActivityID)
	created, err := h.service.CreateEquipment(r.Context(), req)
	if err != nil {
		h.handleServiceError(w, r, err)
		return
	}

	httputil.RespondWithJSON(w, http.StatusCreated, created)
}

func (h *Handler) GetAllEquipment(w http.ResponseWriter, r *http.Request) {
	items, err := h.service.GetAllEquipment(r.Context())
	if err != nil {
		h.handleServiceError(w, r, err)
		return
	}

	httputil.RespondWithJSON(w, http.StatusOK, items)
}

func (h *Handler) GetEquipment(w http.ResponseWriter, r *http.Request) {
	id, err := httputil.IntParam(r, "id")
	if err != nil {
		h.handleServiceError(w, r, err)
		return
	}

	item, err := h.service.GetEquipmentByID(r.Context(), id)
	if err != nil {
		h.handleServiceError(w, r, err)
		return
	}

	httputil.RespondWithJSON(w, http.StatusOK, item)
}

func (h *Handler) UpdateEquipment(w http.ResponseWriter, r *http.Request) {
	id, err := httputil.IntParam(r, "id")
	if err != nil {
		h.handleServiceError(w, r, err)
		return
	}

	var req UpdateEquipmentRequest
	if err := httputil.DecodeJSON(r, h.validate, &req); err != nil {
		h.logger.WarnContext(r.Context(), "invalid equipment request", "error", err)
		httputil.RespondWithError(w, http.StatusBadRequest, "Invalid request")
		return
	}

	h.logger.InfoContext(r.Context(), "updating equipment", "id", id)
	updated, err := h.service.UpdateEquipment(r.Context(), id, req)
	if err != nil {
		h.handleServiceError(w, r, err)
		return
	}

	httputil.RespondWithJSON(w, http.StatusOK, updated)
}

func (h *Handler) DeleteEquipment(w http.ResponseWriter, r *http.Request) {
	id, err := httputil.IntParam(r, "id")
	if err != nil {
		h.handleServiceError(w, r, err)
		return
	}

	h.logger.InfoContext(r.Context(), "deleting equipment", "id", id)
	if err := h.service.DeleteEquipment(r.Context(), id); err != nil {
		h.handleServiceError(w, r, err)
		return
	}

	httputil.RespondWithMessage(w, http.StatusOK, "Equipment deleted successfully")
}

func (h *Handler) handleServiceError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, apperr.ErrNotFound), errors.Is(err, apperr.ErrValidation):
		h.logger.InfoContext(r.Context(), "equipment request rejected", "error", err)
	default:
		h.logger.ErrorContext(r.Context(), "internal error", "error", err)
	}
	httputil.RespondWithServiceError(w, err)
}
