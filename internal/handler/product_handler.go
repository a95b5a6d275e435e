package handler

import (
	"net/http"

	"frankit/internal/model"
	"frankit/internal/service"

	"github.com/rs/zerolog"
)

// ProductHandler handles product-related HTTP requests.
type ProductHandler struct {
	service service.ProductService
	logger  zerolog.Logger
}

// NewProductHandler creates a new product handler.
func NewProductHandler(service service.ProductService, logger zerolog.Logger) *ProductHandler {
	return &ProductHandler{
		service: service,
		logger:  logger.With().Str("handler", "product").Logger(),
	}
}

// Create handles POST /api/products requests.
func (h *ProductHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req model.ProductRequest
	if !decodeJSON(w, r, &req, h.logger) {
		return
	}

	product, err := h.service.Create(r.Context(), &req)
	if err != nil {
		writeServiceError(w, r, err, h.logger)
		return
	}

	writeJSON(w, http.StatusCreated, product)
}

// Update handles PUT /api/products/{id} requests.
func (h *ProductHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id", h.logger)
	if !ok {
		return
	}

	var req model.ProductRequest
	if !decodeJSON(w, r, &req, h.logger) {
		return
	}

	product, err := h.service.Update(r.Context(), id, &req)
	if err != nil {
		writeServiceError(w, r, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, product)
}

// Delete handles DELETE /api/products/{id} requests.
func (h *ProductHandler) Delete(w http.ResponseWriter, r *http.Request) {
	runCommand(w, r, "id", h.service.Delete, h.logger)
}

// Activate handles PUT /api/products/{id}/activate requests.
func (h *ProductHandler) Activate(w http.ResponseWriter, r *http.Request) {
	runCommand(w, r, "id", h.service.Activate, h.logger)
}

// Deactivate handles PUT /api/products/{id}/deactivate requests.
func (h *ProductHandler) Deactivate(w http.ResponseWriter, r *http.Request) {
	runCommand(w, r, "id", h.service.Deactivate, h.logger)
}

// GetByID handles GET /api/products/{id} requests.
func (h *ProductHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id", h.logger)
	if !ok {
		return
	}

	product, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		writeServiceError(w, r, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, product)
}

// GetAll handles GET /api/products requests with pagination.
func (h *ProductHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	page, err := queryInt(r, "page", 0)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, model.ErrCodeInvalidRequest, "invalid page parameter", h.logger)
		return
	}

	size, err := queryInt(r, "size", 10)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, model.ErrCodeInvalidRequest, "invalid size parameter", h.logger)
		return
	}

	products, err := h.service.GetAll(r.Context(), page, size)
	if err != nil {
		writeServiceError(w, r, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, products)
}
