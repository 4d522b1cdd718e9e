// Package handler exposes the order lifecycle core over HTTP for the POS
// screens. It only maps JSON to domain calls; every rule lives in the
// domain packages.
package handler

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/bersihin/laundry-pos/internal/domain/catalog"
	"github.com/bersihin/laundry-pos/internal/domain/order"
)

// Handler serves the POS API.
type Handler struct {
	orders  *order.Service
	catalog catalog.Repository
}

// New constructs a Handler with its domain dependencies.
func New(orders *order.Service, catalog catalog.Repository) *Handler {
	return &Handler{orders: orders, catalog: catalog}
}

// Routes mounts every API endpoint on a fresh chi router.
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()

	r.Route("/orders", func(r chi.Router) {
		r.Get("/", h.listOrders)
		r.Post("/", h.createOrder)
		r.Get("/export", h.exportOrders)
		r.Get("/{id}", h.getOrder)
		r.Post("/{id}/advance", h.advanceProduction)
		r.Post("/{id}/payment", h.recordPayment)
	})
	r.Get("/dashboard", h.dashboard)
	r.Get("/customers/suggest", h.suggestCustomers)
	r.Get("/catalog", h.getCatalog)

	return r
}

// writeJSON encodes v as the response body with the given status.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
