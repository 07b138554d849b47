package handlers

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/Cheertaboi/minimal-shop/internal/models"
	"github.com/Cheertaboi/minimal-shop/internal/service"
)

type ProductsResponse struct {
	Products   []models.Product `json:"products"`
	Categories []string         `json:"categories"`
}

type CatalogHandler struct {
	service *service.StorefrontService
	logger  *zap.Logger
}

func NewCatalogHandler(svc *service.StorefrontService, logger *zap.Logger) *CatalogHandler {
	return &CatalogHandler{service: svc, logger: logger}
}

// ListProducts handles GET /api/products?category=
func (h *CatalogHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	products, err := h.service.Products(ctx, r.URL.Query().Get("category"))
	if err != nil {
		h.logger.Error("list products", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "internal_error")
		return
	}
	categories, err := h.service.Categories(ctx)
	if err != nil {
		h.logger.Error("list categories", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "internal_error")
		return
	}
	writeJSON(w, http.StatusOK, ProductsResponse{Products: products, Categories: categories})
}

// ListReviews handles GET /api/reviews
func (h *CatalogHandler) ListReviews(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.service.Reviews())
}
