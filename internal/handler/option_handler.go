package handler

import (
	"context"
	"net/http"

	"frankit/internal/model"
	"frankit/internal/service"

	"github.com/rs/zerolog"
)

// OptionHandler handles product option HTTP requests.
type OptionHandler struct {
	service service.ProductOptionService
	logger  zerolog.Logger
}

// NewOptionHandler creates a new option handler.
func NewOptionHandler(service service.ProductOptionService, logger zerolog.Logger) *OptionHandler {
	return &OptionHandler{
		service: service,
		logger:  logger.With().Str("handler", "option").Logger(),
	}
}

// Create handles POST /api/product-options/products/{productId} requests.
func (h *OptionHandler) Create(w http.ResponseWriter, r *http.Request) {
	productID, ok := pathID(w, r, "productId", h.logger)
	if !ok {
		return
	}

	var req model.ProductOptionRequest
	if !decodeJSON(w, r, &req, h.logger) {
		return
	}

	option, err := h.service.Create(r.Context(), productID, &req)
	if err != nil {
		writeServiceError(w, r, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, option)
}

// Update handles PUT /api/product-options/{optionId} requests. A type change
// answers with the replacement option.
func (h *OptionHandler) Update(w http.ResponseWriter, r *http.Request) {
	optionID, ok := pathID(w, r, "optionId", h.logger)
	if !ok {
		return
	}

	var req model.ProductOptionRequest
	if !decodeJSON(w, r, &req, h.logger) {
		return
	}

	option, err := h.service.Update(r.Context(), optionID, &req)
	if err != nil {
		writeServiceError(w, r, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, option)
}

// Delete handles DELETE /api/product-options/{optionId} requests.
func (h *OptionHandler) Delete(w http.ResponseWriter, r *http.Request) {
	runCommand(w, r, "optionId", h.service.Delete, h.logger)
}

// Activate handles PUT /api/product-options/{optionId}/activate requests.
func (h *OptionHandler) Activate(w http.ResponseWriter, r *http.Request) {
	runCommand(w, r, "optionId", h.service.Activate, h.logger)
}

// Deactivate handles PUT /api/product-options/{optionId}/deactivate requests.
func (h *OptionHandler) Deactivate(w http.ResponseWriter, r *http.Request) {
	runCommand(w, r, "optionId", h.service.Deactivate, h.logger)
}

// ListByProduct handles GET /api/product-options/products/{productId} requests.
func (h *OptionHandler) ListByProduct(w http.ResponseWriter, r *http.Request) {
	h.list(w, r, h.service.ListByProduct)
}

// ListActiveByProduct handles GET /api/product-options/products/{productId}/active requests.
func (h *OptionHandler) ListActiveByProduct(w http.ResponseWriter, r *http.Request) {
	h.list(w, r, h.service.ListActiveByProduct)
}

func (h *OptionHandler) list(w http.ResponseWriter, r *http.Request, fetch func(ctx context.Context, productID int64) ([]*model.ProductOption, error)) {
	productID, ok := pathID(w, r, "productId", h.logger)
	if !ok {
		return
	}

	options, err := fetch(r.Context(), productID)
	if err != nil {
		writeServiceError(w, r, err, h.logger)
		return
	}
	if options == nil {
		options = []*model.ProductOption{}
	}

	writeJSON(w, http.StatusOK, options)
}
