package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/Cheertaboi/minimal-shop/internal/api/handlers"
	"github.com/Cheertaboi/minimal-shop/internal/api/middleware"
	"github.com/Cheertaboi/minimal-shop/internal/cache"
	"github.com/Cheertaboi/minimal-shop/internal/format"
	"github.com/Cheertaboi/minimal-shop/internal/service"
)

// NewRouter builds the HTTP router for the storefront
func NewRouter(svc *service.StorefrontService, sessions *cache.SessionCache, money *format.Formatter, logger *zap.Logger) (http.Handler, error) {
	pageHandler, err := handlers.NewPageHandler(svc, money, logger)
	if err != nil {
		return nil, err
	}
	catalogHandler := handlers.NewCatalogHandler(svc, logger)
	cartHandler := handlers.NewCartHandler(svc, logger)
	contactHandler := handlers.NewContactHandler(svc, logger)

	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(middleware.Logger(logger))
	r.Use(chimw.Recoverer)

	// health
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	r.Group(func(r chi.Router) {
		r.Use(middleware.Session(sessions))

		// Page and its HTML forms
		r.Get("/", pageHandler.Index)
		r.Post("/cart/items", cartHandler.AddItemForm)
		r.Post("/cart/items/{id}/remove", cartHandler.RemoveItemForm)
		r.Post("/cart/items/{id}/quantity", cartHandler.ChangeQuantityForm)
		r.Post("/cart/delivery", cartHandler.SetDeliveryForm)
		r.Post("/contact", contactHandler.SubmitForm)

		// JSON API
		r.Route("/api", func(r chi.Router) {
			r.Get("/products", catalogHandler.ListProducts)
			r.Get("/reviews", catalogHandler.ListReviews)
			r.Get("/notices", pageHandler.Notices)
			r.Post("/contact", contactHandler.Submit)

			r.Route("/cart", func(r chi.Router) {
				r.Get("/", cartHandler.GetCart)
				r.Post("/items", cartHandler.AddItem)
				r.Delete("/items/{id}", cartHandler.RemoveItem)
				r.Patch("/items/{id}", cartHandler.ChangeQuantity)
				r.Put("/delivery", cartHandler.SetDelivery)
			})
		})
	})

	return r, nil
}
