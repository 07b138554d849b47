package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/Cheertaboi/minimal-shop/internal/api/middleware"
	"github.com/Cheertaboi/minimal-shop/internal/contact"
	"github.com/Cheertaboi/minimal-shop/internal/service"
)

type ContactResponse struct {
	Message string `json:"message"`
}

type ContactHandler struct {
	service *service.StorefrontService
	logger  *zap.Logger
}

func NewContactHandler(svc *service.StorefrontService, logger *zap.Logger) *ContactHandler {
	return &ContactHandler{service: svc, logger: logger}
}

// Submit handles POST /api/contact
func (h *ContactHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var form contact.Form
	if err := json.NewDecoder(r.Body).Decode(&form); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_body")
		return
	}

	err := h.service.SubmitContact(r.Context(), middleware.SessionID(r.Context()), form)
	switch {
	case err == nil:
		writeJSON(w, http.StatusOK, ContactResponse{Message: "Спасибо за сообщение! Мы свяжемся с вами в ближайшее время."})
	case errors.Is(err, contact.ErrMissingAt):
		writeJSON(w, http.StatusUnprocessableEntity, map[string]string{
			"error":   "invalid_email",
			"message": "Пожалуйста, введите корректный email",
		})
	case errors.Is(err, contact.ErrMissingField):
		writeJSON(w, http.StatusUnprocessableEntity, map[string]string{
			"error":   "missing_field",
			"message": err.Error(),
		})
	default:
		h.logger.Error("submit contact", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "internal_error")
	}
}

// SubmitForm handles POST /contact. Validation failures are reported through
// the page's notices, so the visitor is always sent back to the form.
func (h *ContactHandler) SubmitForm(w http.ResponseWriter, r *http.Request) {
	form := contact.Form{
		Name:    r.FormValue("name"),
		Email:   r.FormValue("email"),
		Message: r.FormValue("message"),
	}
	err := h.service.SubmitContact(r.Context(), middleware.SessionID(r.Context()), form)
	if err != nil && !errors.Is(err, contact.ErrMissingAt) && !errors.Is(err, contact.ErrMissingField) {
		h.logger.Error("submit contact", zap.Error(err))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	redirectBack(w, r, "contacts")
}
