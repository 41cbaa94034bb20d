package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/sreerojavusa/Travelgear/internal/checkout"
	"github.com/sreerojavusa/Travelgear/internal/metrics"
	"github.com/sreerojavusa/Travelgear/internal/payment"
)

type CheckoutHandler struct {
	checkout *checkout.Service
}

func NewCheckoutHandler(svc *checkout.Service) *CheckoutHandler {
	return &CheckoutHandler{checkout: svc}
}

type SubmitRequestDTO struct {
	CardNumber string `json:"card_number"`
	CardHolder string `json:"card_holder"`
	Expiry     string `json:"expiry"`
	CVV        string `json:"cvv"`
}

// BeginFromCart snapshots the current cart into a checkout session.
func (h *CheckoutHandler) BeginFromCart(w http.ResponseWriter, r *http.Request) {
	userID := getUserIDFromContext(r.Context())
	if userID == "" {
		respondError(w, http.StatusUnauthorized, "unauthorized", "missing user authentication")
		return
	}

	view, err := h.checkout.BeginFromCart(r.Context(), userID)
	if err != nil {
		handleServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, view)
}

// BeginRentNow starts a single-item checkout that bypasses the cart.
func (h *CheckoutHandler) BeginRentNow(w http.ResponseWriter, r *http.Request) {
	userID := getUserIDFromContext(r.Context())
	if userID == "" {
		respondError(w, http.StatusUnauthorized, "unauthorized", "missing user authentication")
		return
	}

	var req checkout.RentNowRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}
	if req.ItemID == "" {
		respondError(w, http.StatusBadRequest, "invalid_item_id", "item_id is required")
		return
	}

	view, err := h.checkout.BeginRentNow(r.Context(), userID, req)
	if err != nil {
		handleServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, view)
}

func (h *CheckoutHandler) GetCheckout(w http.ResponseWriter, r *http.Request) {
	userID := getUserIDFromContext(r.Context())
	if userID == "" {
		respondError(w, http.StatusUnauthorized, "unauthorized", "missing user authentication")
		return
	}

	view, err := h.checkout.Get(r.Context(), userID)
	if err != nil {
		handleServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, view)
}

// Submit charges the active session. A declined payment leaves the session
// in place so the client can retry.
func (h *CheckoutHandler) Submit(w http.ResponseWriter, r *http.Request) {
	userID := getUserIDFromContext(r.Context())
	if userID == "" {
		respondError(w, http.StatusUnauthorized, "unauthorized", "missing user authentication")
		return
	}

	var req SubmitRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}
	if req.CardNumber == "" {
		respondError(w, http.StatusBadRequest, "invalid_card", "card_number is required")
		return
	}

	result, err := h.checkout.Submit(r.Context(), userID, payment.CardDetails{
		Number:     req.CardNumber,
		NameOnCard: req.CardHolder,
		ExpiryDate: req.Expiry,
		CVV:        req.CVV,
	})
	if err != nil {
		if errors.Is(err, checkout.ErrPaymentDeclined) {
			metrics.CheckoutsTotal.WithLabelValues("failed").Inc()
		}
		handleServiceError(w, err)
		return
	}

	metrics.CheckoutsTotal.WithLabelValues("succeeded").Inc()
	amount, _ := result.TotalAmount.Float64()
	metrics.ChargeAmount.Observe(amount)

	respondJSON(w, http.StatusOK, result)
}
