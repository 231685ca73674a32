package auth

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
	service   *Service
	logger    *slog.Logger
	validator *validator.Validate
}

func NewHandler(service *Service, logger *slog.Logger) *Handler {
	return &Handler{
		service:   service,
		logger:    logger,
		validator: httputil.NewValidator(),
	}
}

func (h *Handler) RegisterRoutes(router chi.Router) {
	router.Post("/login", h.Login)
	router.Post("/register", h.Register)
}

// Login checks an identity/password pair
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := httputil.DecodeJSON(r, h.validator, &req); err != nil {
		h.logger.WarnContext(r.Context(), "validation failed", "error", err)
		httputil.RespondWithError(w, http.StatusBadRequest, "Invalid request")
		return
	}

	resp, err := h.service.Login(r.Context(), req)
	if err != nil {
		if errors.Is(err, apperr.ErrUnauthorized) {
			h.logger.InfoContext(r.Context(), "login rejected", "identity", req.Identity)
		} else {
			h.logger.ErrorContext(r.Context(), "login failed", "error", err)
		}
		httputil.RespondWithServiceError(w, err)
		return
	}

	h.logger.InfoContext(r.Context(), "user logged in", "identity", req.Identity)
	httputil.RespondWithJSON(w, http.StatusOK, resp)
}

// Register creates a credential for an existing student or instructor
func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if err := httputil.DecodeJSON(r, h.validator, &req); err != nil {
		h.logger.WarnContext(r.Context(), "validation failed", "error", err)
		httputil.RespondWithError(w, http.StatusBadRequest, "Invalid request")
		return
	}

	resp, err := h.service.Register(r.Context(), req)
	if err != nil {
		if httputil.StatusFor(err) == http.StatusInternalServerError {
			h.logger.ErrorContext(r.Context(), "registration failed", "error", err)
		} else {
			h.logger.InfoContext(r.Context(), "registration rejected", "identity", req.Identity, "error", err)
		}
		httputil.RespondWithServiceError(w, err)
		return
	}

	h.logger.InfoContext(r.Context(), "credential registered", "identity", req.Identity)
	httputil.RespondWithJSON(w, http.StatusCreated, resp)
}
