package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/sreerojavusa/Travelgear/internal/cart"
	"github.com/sreerojavusa/Travelgear/internal/domain"
	"github.com/sreerojavusa/Travelgear/internal/metrics"
	"github.com/sreerojavusa/Travelgear/internal/pricing"
)

type CartHandler struct {
	cart    *cart.Service
	taxRate decimal.Decimal
}

func NewCartHandler(svc *cart.Service, taxRate decimal.Decimal) *CartHandler {
	return &CartHandler{cart: svc, taxRate: taxRate}
}

// CartResponseDTO is the cart page payload: lines plus the running totals.
type CartResponseDTO struct {
	Lines  []domain.CartLine `json:"lines"`
	Totals pricing.Totals    `json:"totals"`
}

type UpdateQuantityRequestDTO struct {
	Quantity int `json:"quantity"`
}

type UpdateDaysRequestDTO struct {
	RentalDays int `json:"rental_days"`
}

func (h *CartHandler) GetCart(w http.ResponseWriter, r *http.Request) {
	userID := getUserIDFromContext(r.Context())
	if userID == "" {
		respondError(w, http.StatusUnauthorized, "unauthorized", "missing user authentication")
		return
	}

	lines, err := h.cart.Get(r.Context(), userID)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, CartResponseDTO{
		Lines:  lines,
		Totals: pricing.CartTotals(lines, h.taxRate),
	})
}

func (h *CartHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	userID := getUserIDFromContext(r.Context())
	if userID == "" {
		respondError(w, http.StatusUnauthorized, "unauthorized", "missing user authentication")
		return
	}

	var req cart.AddRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}
	if req.ItemID == "" {
		respondError(w, http.StatusBadRequest, "invalid_item_id", "item_id is required")
		return
	}

	line, err := h.cart.Add(r.Context(), userID, req)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	metrics.CartOperationsTotal.WithLabelValues("add").Inc()
	respondJSON(w, http.StatusCreated, line)
}

func (h *CartHandler) UpdateQuantity(w http.ResponseWriter, r *http.Request) {
	userID := getUserIDFromContext(r.Context())
	if userID == "" {
		respondError(w, http.StatusUnauthorized, "unauthorized", "missing user authentication")
		return
	}

	lineID := chi.URLParam(r, "line_id")

	var req UpdateQuantityRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}

	if err := h.cart.UpdateQuantity(r.Context(), userID, lineID, req.Quantity); err != nil {
		handleServiceError(w, err)
		return
	}

	metrics.CartOperationsTotal.WithLabelValues("update_quantity").Inc()
	w.WriteHeader(http.StatusNoContent)
}

func (h *CartHandler) UpdateDays(w http.ResponseWriter, r *http.Request) {
	userID := getUserIDFromContext(r.Context())
	if userID == "" {
		respondError(w, http.StatusUnauthorized, "unauthorized", "missing user authentication")
		return
	}

	lineID := chi.URLParam(r, "line_id")

	var req UpdateDaysRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}

	if err := h.cart.UpdateDays(r.Context(), userID, lineID, req.RentalDays); err != nil {
		handleServiceError(w, err)
		return
	}

	metrics.CartOperationsTotal.WithLabelValues("update_days").Inc()
	w.WriteHeader(http.StatusNoContent)
}

func (h *CartHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	userID := getUserIDFromContext(r.Context())
	if userID == "" {
		respondError(w, http.StatusUnauthorized, "unauthorized", "missing user authentication")
		return
	}

	lineID := chi.URLParam(r, "line_id")
	if err := h.cart.Remove(r.Context(), userID, lineID); err != nil {
		handleServiceError(w, err)
		return
	}

	metrics.CartOperationsTotal.WithLabelValues("remove").Inc()
	w.WriteHeader(http.StatusNoContent)
}

func (h *CartHandler) ClearCart(w http.ResponseWriter, r *http.Request) {
	userID := getUserIDFromContext(r.Context())
	if userID == "" {
		respondError(w, http.StatusUnauthorized, "unauthorized", "missing user authentication")
		return
	}

	if err := h.cart.Clear(r.Context(), userID); err != nil {
		handleServiceError(w, err)
		return
	}

	metrics.CartOperationsTotal.WithLabelValues("clear").Inc()
	w.WriteHeader(http.StatusNoContent)
}
