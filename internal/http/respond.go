package http

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/sreerojavusa/Travelgear/internal/cart"
	"github.com/sreerojavusa/Travelgear/internal/catalog"
	"github.com/sreerojavusa/Travelgear/internal/checkout"
)

type ErrorResponse struct {
	Error   string `json:"error"`
	Code    string `json:"code,omitempty"`
	Details string `json:"details,omitempty"`
}

func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Printf("failed to encode response: %v", err)
	}
}

func respondError(w http.ResponseWriter, status int, code, message string) {
	respondJSON(w, status, ErrorResponse{
		Error:   message,
		Code:    code,
		Details: "",
	})
}

// handleServiceError converts service sentinel errors to HTTP status codes.
func handleServiceError(w http.ResponseWriter, err error) {
	var httpStatus int
	var code string

	switch {
	case errors.Is(err, cart.ErrItemNotFound),
		errors.Is(err, catalog.ErrItemNotFound),
		errors.Is(err, cart.ErrLineNotFound),
		errors.Is(err, checkout.ErrNoActiveCheckout):
		httpStatus = http.StatusNotFound
		code = "not_found"
	case errors.Is(err, cart.ErrItemUnavailable):
		httpStatus = http.StatusConflict
		code = "item_unavailable"
	case errors.Is(err, checkout.ErrEmptyCart):
		httpStatus = http.StatusConflict
		code = "empty_cart"
	case errors.Is(err, cart.ErrSizeRequired),
		errors.Is(err, cart.ErrColorRequired),
		errors.Is(err, cart.ErrUnknownSize),
		errors.Is(err, cart.ErrUnknownColor),
		errors.Is(err, cart.ErrInvalidQuantity),
		errors.Is(err, cart.ErrInvalidRentalDays),
		errors.Is(err, checkout.ErrInvalidSelection):
		httpStatus = http.StatusBadRequest
		code = "invalid_request"
	case errors.Is(err, checkout.ErrPaymentDeclined):
		httpStatus = http.StatusPaymentRequired
		code = "payment_declined"
	case errors.Is(err, checkout.ErrIllegalTransition):
		httpStatus = http.StatusConflict
		code = "illegal_transition"
	default:
		log.Printf("internal error: %v", err)
		respondError(w, http.StatusInternalServerError, "internal_error", "internal server error")
		return
	}

	respondError(w, httpStatus, code, err.Error())
}
