package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"go.uber.org/zap"

	"github.com/Cheertaboi/minimal-shop/internal/api/middleware"
	"github.com/Cheertaboi/minimal-shop/internal/cart"
	"github.com/Cheertaboi/minimal-shop/internal/service"
)

// --- Request DTOs ---

type AddItemRequest struct {
	ProductID int `json:"product_id"`
}

type ChangeQuantityRequest struct {
	Delta int `json:"delta"`
}

// DeliveryRequest updates whichever fields are present.
type DeliveryRequest struct {
	Method  *cart.DeliveryMethod `json:"method,omitempty"`
	Address *string              `json:"address,omitempty"`
}

type CartHandler struct {
	service *service.StorefrontService
	logger  *zap.Logger
}

func NewCartHandler(svc *service.StorefrontService, logger *zap.Logger) *CartHandler {
	return &CartHandler{service: svc, logger: logger}
}

// GetCart handles GET /api/cart
func (h *CartHandler) GetCart(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.service.Cart(middleware.SessionID(r.Context())))
}

// AddItem handles POST /api/cart/items
func (h *CartHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	var req AddItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_body")
		return
	}
	summary, err := h.service.AddToCart(r.Context(), middleware.SessionID(r.Context()), req.ProductID)
	if err != nil {
		h.writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, summary)
}

// RemoveItem handles DELETE /api/cart/items/{id}
func (h *CartHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	id, ok := productIDParam(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid_product_id")
		return
	}
	writeJSON(w, http.StatusOK, h.service.RemoveFromCart(middleware.SessionID(r.Context()), id))
}

// ChangeQuantity handles PATCH /api/cart/items/{id}
func (h *CartHandler) ChangeQuantity(w http.ResponseWriter, r *http.Request) {
	id, ok := productIDParam(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid_product_id")
		return
	}
	var req ChangeQuantityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_body")
		return
	}
	if !validDelta(req.Delta) {
		writeError(w, http.StatusBadRequest, "invalid_delta")
		return
	}
	writeJSON(w, http.StatusOK, h.service.ChangeQuantity(middleware.SessionID(r.Context()), id, req.Delta))
}

// SetDelivery handles PUT /api/cart/delivery
func (h *CartHandler) SetDelivery(w http.ResponseWriter, r *http.Request) {
	var req DeliveryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		if errors.Is(err, cart.ErrUnknownDeliveryMethod) {
			writeError(w, http.StatusBadRequest, "unknown_delivery_method")
			return
		}
		writeError(w, http.StatusBadRequest, "invalid_body")
		return
	}

	writeJSON(w, http.StatusOK, h.service.SetDelivery(middleware.SessionID(r.Context()), req.Method, req.Address))
}

// --- HTML form endpoints ---

// AddItemForm handles POST /cart/items
func (h *CartHandler) AddItemForm(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(r.FormValue("product_id"))
	if err != nil {
		http.Error(w, "invalid product_id", http.StatusBadRequest)
		return
	}
	if _, err := h.service.AddToCart(r.Context(), middleware.SessionID(r.Context()), id); err != nil {
		if errors.Is(err, service.ErrProductNotFound) {
			http.Error(w, "product not found", http.StatusNotFound)
			return
		}
		h.logger.Error("add to cart", zap.Error(err))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	redirectBack(w, r, "catalog")
}

// RemoveItemForm handles POST /cart/items/{id}/remove
func (h *CartHandler) RemoveItemForm(w http.ResponseWriter, r *http.Request) {
	id, ok := productIDParam(r)
	if !ok {
		http.Error(w, "invalid product id", http.StatusBadRequest)
		return
	}
	h.service.RemoveFromCart(middleware.SessionID(r.Context()), id)
	redirectBack(w, r, "cart")
}

// ChangeQuantityForm handles POST /cart/items/{id}/quantity
func (h *CartHandler) ChangeQuantityForm(w http.ResponseWriter, r *http.Request) {
	id, ok := productIDParam(r)
	if !ok {
		http.Error(w, "invalid product id", http.StatusBadRequest)
		return
	}
	delta, err := strconv.Atoi(r.FormValue("delta"))
	if err != nil || !validDelta(delta) {
		http.Error(w, "invalid delta", http.StatusBadRequest)
		return
	}
	h.service.ChangeQuantity(middleware.SessionID(r.Context()), id, delta)
	redirectBack(w, r, "cart")
}

// SetDeliveryForm handles POST /cart/delivery
func (h *CartHandler) SetDeliveryForm(w http.ResponseWriter, r *http.Request) {
	var method *cart.DeliveryMethod
	if raw := r.FormValue("method"); raw != "" {
		m, err := cart.ParseDeliveryMethod(raw)
		if err != nil {
			http.Error(w, "unknown delivery method", http.StatusBadRequest)
			return
		}
		method = &m
	}
	var address *string
	if _, ok := r.PostForm["address"]; ok {
		a := r.PostForm.Get("address")
		address = &a
	}
	h.service.SetDelivery(middleware.SessionID(r.Context()), method, address)
	redirectBack(w, r, "cart")
}

// validDelta bounds a quantity change to what a single line can hold.
func validDelta(delta int) bool {
	return delta >= -cart.MaxQuantity && delta <= cart.MaxQuantity
}

func (h *CartHandler) writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrProductNotFound):
		writeError(w, http.StatusNotFound, "product_not_found")
	default:
		h.logger.Error("cart operation failed", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "internal_error")
	}
}
