package handler

import (
	"net/http"

	"frankit/internal/model"
	"frankit/internal/service"

	"github.com/rs/zerolog"
)

// UserHandler handles account registration.
type UserHandler struct {
	service service.UserService
	logger  zerolog.Logger
}

// NewUserHandler creates a new user handler.
func NewUserHandler(service service.UserService, logger zerolog.Logger) *UserHandler {
	return &UserHandler{
		service: service,
		logger:  logger.With().Str("handler", "user").Logger(),
	}
}

// Register handles POST /api/users/register requests.
func (h *UserHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req model.RegisterRequest
	if !decodeJSON(w, r, &req, h.logger) {
		return
	}

	user, err := h.service.Register(r.Context(), &req)
	if err != nil {
		writeServiceError(w, r, err, h.logger)
		return
	}

	writeJSON(w, http.StatusCreated, user)
}
