// Package http is the storefront's REST surface: routing, auth, DTOs and
// the mapping from service errors to status codes.
package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/sreerojavusa/Travelgear/internal/auth"
)

type RouterDeps struct {
	Tokens   *auth.TokenManager
	Catalog  *CatalogHandler
	Cart     *CartHandler
	Wishlist *WishlistHandler
	Checkout *CheckoutHandler
	Rentals  *RentalsHandler
	Session  *SessionHandler

	RequestTimeout time.Duration
}

// NewRouter wires every handler behind the shared middleware stack. Catalog
// and session routes are public; cart, wishlist, checkout and rental history
// require a bearer token.
func NewRouter(deps RouterDeps) chi.Router {
	r := chi.NewRouter()

	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(RequestIDMiddleware)
	r.Use(middleware.Timeout(deps.RequestTimeout))
	r.Use(middleware.Compress(5))
	r.Use(MetricsMiddleware)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/auth/session", deps.Session.Create)

		r.Get("/categories", deps.Catalog.ListCategories)
		r.Get("/items", deps.Catalog.ListItems)
		r.Get("/items/{item_id}", deps.Catalog.GetItem)

		r.Group(func(r chi.Router) {
			r.Use(AuthMiddleware(deps.Tokens))

			r.Route("/cart", func(r chi.Router) {
				r.Get("/", deps.Cart.GetCart)
				r.Post("/items", deps.Cart.AddItem)
				r.Put("/items/{line_id}/quantity", deps.Cart.UpdateQuantity)
				r.Put("/items/{line_id}/days", deps.Cart.UpdateDays)
				r.Delete("/items/{line_id}", deps.Cart.RemoveItem)
				r.Delete("/", deps.Cart.ClearCart)
			})

			r.Route("/wishlist", func(r chi.Router) {
				r.Get("/", deps.Wishlist.List)
				r.Post("/items", deps.Wishlist.Add)
				r.Delete("/items/{item_id}", deps.Wishlist.Remove)
			})

			r.Route("/checkout", func(r chi.Router) {
				r.Post("/", deps.Checkout.BeginFromCart)
				r.Post("/rent-now", deps.Checkout.BeginRentNow)
				r.Get("/", deps.Checkout.GetCheckout)
				r.Post("/payment", deps.Checkout.Submit)
			})

			r.Get("/rentals", deps.Rentals.ListRentals)
		})
	})

	return r
}
