package handler

import (
	"context"
	"net/http"

	"frankit/internal/model"
	"frankit/internal/service"

	"github.com/rs/zerolog"
)

// DetailHandler handles option detail HTTP requests.
type DetailHandler struct {
	service service.OptionDetailService
	logger  zerolog.Logger
}

// NewDetailHandler creates a new detail handler.
func NewDetailHandler(service service.OptionDetailService, logger zerolog.Logger) *DetailHandler {
	return &DetailHandler{
		service: service,
		logger:  logger.With().Str("handler", "detail").Logger(),
	}
}

// Create handles POST /api/option-details/options/{optionId} requests.
func (h *DetailHandler) Create(w http.ResponseWriter, r *http.Request) {
	optionID, ok := pathID(w, r, "optionId", h.logger)
	if !ok {
		return
	}

	var req model.OptionDetailRequest
	if !decodeJSON(w, r, &req, h.logger) {
		return
	}

	detail, err := h.service.Create(r.Context(), optionID, &req)
	if err != nil {
		writeServiceError(w, r, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, detail)
}

// Update handles PUT /api/option-details/{detailId} requests.
func (h *DetailHandler) Update(w http.ResponseWriter, r *http.Request) {
	detailID, ok := pathID(w, r, "detailId", h.logger)
	if !ok {
		return
	}

	var req model.OptionDetailRequest
	if !decodeJSON(w, r, &req, h.logger) {
		return
	}

	detail, err := h.service.Update(r.Context(), detailID, &req)
	if err != nil {
		writeServiceError(w, r, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, detail)
}

// Delete handles DELETE /api/option-details/{detailId} requests.
func (h *DetailHandler) Delete(w http.ResponseWriter, r *http.Request) {
	runCommand(w, r, "detailId", h.service.Delete, h.logger)
}

// Activate handles PUT /api/option-details/{detailId}/activate requests.
func (h *DetailHandler) Activate(w http.ResponseWriter, r *http.Request) {
	runCommand(w, r, "detailId", h.service.Activate, h.logger)
}

// Deactivate handles PUT /api/option-details/{detailId}/deactivate requests.
func (h *DetailHandler) Deactivate(w http.ResponseWriter, r *http.Request) {
	runCommand(w, r, "detailId", h.service.Deactivate, h.logger)
}

// ListByOption handles GET /api/option-details/options/{optionId} requests.
func (h *DetailHandler) ListByOption(w http.ResponseWriter, r *http.Request) {
	h.list(w, r, h.service.ListByOption)
}

// ListActiveByOption handles GET /api/option-details/options/{optionId}/active requests.
func (h *DetailHandler) ListActiveByOption(w http.ResponseWriter, r *http.Request) {
	h.list(w, r, h.service.ListActiveByOption)
}

func (h *DetailHandler) list(w http.ResponseWriter, r *http.Request, fetch func(ctx context.Context, optionID int64) ([]*model.OptionDetail, error)) {
	optionID, ok := pathID(w, r, "optionId", h.logger)
	if !ok {
		return
	}

	details, err := fetch(r.Context(), optionID)
	if err != nil {
		writeServiceError(w, r, err, h.logger)
		return
	}
	if details == nil {
		details = []*model.OptionDetail{}
	}

	writeJSON(w, http.StatusOK, details)
}
