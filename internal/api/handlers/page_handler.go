package handlers

import (
	"bytes"
	"html/template"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"github.com/Cheertaboi/minimal-shop/internal/api/middleware"
	"github.com/Cheertaboi/minimal-shop/internal/cart"
	"github.com/Cheertaboi/minimal-shop/internal/contact"
	"github.com/Cheertaboi/minimal-shop/internal/format"
	"github.com/Cheertaboi/minimal-shop/internal/models"
	"github.com/Cheertaboi/minimal-shop/internal/service"
	"github.com/Cheertaboi/minimal-shop/internal/web"
)

var sectionLabels = map[string]string{
	"home":     "Главная",
	"catalog":  "Каталог",
	"about":    "О магазине",
	"reviews":  "Отзывы",
	"contacts": "Контакты",
}

type navItem struct {
	ID     string
	Label  string
	Active bool
}

type methodOption struct {
	Value    string
	Label    string
	Fee      string
	Selected bool
}

type pageData struct {
	Nav        []navItem
	Categories []string
	Category   string
	Products   []models.Product
	Reviews    []models.Review
	Cart       cart.Summary
	Methods    []methodOption
	Notices    []models.Notice
	Contact    contact.Form
}

type PageHandler struct {
	service *service.StorefrontService
	money   *format.Formatter
	tmpl    *template.Template
	logger  *zap.Logger
}

func NewPageHandler(svc *service.StorefrontService, money *format.Formatter, logger *zap.Logger) (*PageHandler, error) {
	tmpl, err := web.Templates(template.FuncMap{
		"money":  money.Money,
		"number": money.Number,
		"stars":  func(n int) string { return strings.Repeat("★", n) },
	})
	if err != nil {
		return nil, err
	}
	return &PageHandler{service: svc, money: money, tmpl: tmpl, logger: logger}, nil
}

// Index handles GET /. ?section= moves the navigation highlight and
// ?category= narrows the catalog.
func (h *PageHandler) Index(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	sid := middleware.SessionID(ctx)

	if section := r.URL.Query().Get("section"); section != "" {
		// unknown sections keep the current highlight
		_ = h.service.Navigate(sid, section)
	}

	category := r.URL.Query().Get("category")
	products, err := h.service.Products(ctx, category)
	if err != nil {
		h.logger.Error("render page", zap.Error(err))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	categories, err := h.service.Categories(ctx)
	if err != nil {
		h.logger.Error("render page", zap.Error(err))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	view := h.service.View(sid)
	data := pageData{
		Categories: categories,
		Category:   category,
		Products:   products,
		Reviews:    h.service.Reviews(),
		Cart:       view.Cart,
		Notices:    view.Notices,
		Contact:    view.ContactDraft,
	}
	for _, id := range service.Sections {
		data.Nav = append(data.Nav, navItem{ID: id, Label: sectionLabels[id], Active: id == view.ActiveSection})
	}
	for _, m := range cart.Methods() {
		fee := h.money.Money(m.Fee())
		if m.Fee() == 0 {
			fee = "Бесплатно"
		}
		data.Methods = append(data.Methods, methodOption{
			Value:    m.String(),
			Label:    m.Label(),
			Fee:      fee,
			Selected: m == view.Cart.DeliveryMethod,
		})
	}

	var buf bytes.Buffer
	if err := h.tmpl.ExecuteTemplate(&buf, "index.html", data); err != nil {
		h.logger.Error("execute template", zap.Error(err))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = buf.WriteTo(w)
}

// Notices handles GET /api/notices, draining the session's queued toasts.
func (h *PageHandler) Notices(w http.ResponseWriter, r *http.Request) {
	view := h.service.View(middleware.SessionID(r.Context()))
	notices := view.Notices
	if notices == nil {
		notices = []models.Notice{}
	}
	writeJSON(w, http.StatusOK, notices)
}
