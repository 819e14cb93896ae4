package http

import (
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/shopapi/catalog/internal/domain"
	"github.com/shopapi/catalog/internal/repository"
	"github.com/shopapi/catalog/internal/service"
	apperrors "github.com/shopapi/catalog/pkg/errors"
	"github.com/shopapi/catalog/pkg/httputil"
)

// ProductHandler handles HTTP requests for product endpoints.
type ProductHandler struct {
	service *service.ProductService
	logger  *slog.Logger
}

// NewProductHandler creates a new product HTTP handler.
func NewProductHandler(svc *service.ProductService, logger *slog.Logger) *ProductHandler {
	return &ProductHandler{
		service: svc,
		logger:  logger,
	}
}

// --- Request DTOs ---

// CreateProductRequest is the JSON request body for creating a product.
type CreateProductRequest struct {
	Title       string            `json:"title"`
	Description string            `json:"description"`
	Price       float64           `json:"price"`
	Images      []domain.NewImage `json:"images"`
}

// AddImagesRequest is the JSON request body for attaching images to a product.
type AddImagesRequest struct {
	ProductID string            `json:"productId"`
	Images    []domain.NewImage `json:"images"`
}

// --- Handlers ---

// ListProducts handles GET /products
func (h *ProductHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	products, err := h.service.ListProducts(r.Context())
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, products)
}

// SearchProducts handles GET /products/search
// Query parameters title, description, priceFrom and priceTo are optional and combined with AND.
func (h *ProductHandler) SearchProducts(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	var filter repository.ProductFilter
	if v := q.Get("title"); v != "" {
		filter.Title = &v
	}
	if v := q.Get("description"); v != "" {
		filter.Description = &v
	}

	var err error
	if filter.PriceFrom, err = parsePrice(q.Get("priceFrom"), "priceFrom"); err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}
	if filter.PriceTo, err = parsePrice(q.Get("priceTo"), "priceTo"); err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	products, err := h.service.SearchProducts(r.Context(), filter)
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, products)
}

// GetProduct handles GET /products/{id}
func (h *ProductHandler) GetProduct(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	product, err := h.service.GetProduct(r.Context(), id)
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, product)
}

// CreateProduct handles POST /products
func (h *ProductHandler) CreateProduct(w http.ResponseWriter, r *http.Request) {
	var req CreateProductRequest
	if err := httputil.DecodeJSON(w, r, &req); err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	id, err := h.service.CreateProduct(r.Context(), service.CreateProductInput{
		Title:       req.Title,
		Description: req.Description,
		Price:       req.Price,
		Images:      req.Images,
	})
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	httputil.WriteText(w, http.StatusCreated, fmt.Sprintf("Product id:%s has been added!", id))
}

// AddImages handles POST /products/add-images
func (h *ProductHandler) AddImages(w http.ResponseWriter, r *http.Request) {
	var req AddImagesRequest
	if err := httputil.DecodeJSON(w, r, &req); err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	if err := h.service.AddImages(r.Context(), req.ProductID, req.Images); err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	httputil.WriteText(w, http.StatusCreated, fmt.Sprintf("Images for a product id:%s have been added!", req.ProductID))
}

// RemoveImages handles DELETE /products/remove-images
// The body is a JSON array of image IDs.
func (h *ProductHandler) RemoveImages(w http.ResponseWriter, r *http.Request) {
	var ids []string
	if err := httputil.DecodeJSON(w, r, &ids); err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	if err := h.service.RemoveImages(r.Context(), ids); err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	httputil.WriteText(w, http.StatusOK, "Images have been removed!")
}

// DeleteProduct handles DELETE /products/{id}
func (h *ProductHandler) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.service.DeleteProduct(r.Context(), id); err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	httputil.WriteEmpty(w, http.StatusOK)
}

func parsePrice(raw, param string) (*float64, error) {
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, apperrors.InvalidInput(fmt.Sprintf("%s must be a valid number", param))
	}
	return &v, nil
}
