package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/sreerojavusa/Travelgear/internal/cart"
)

type WishlistHandler struct {
	cart *cart.Service
}

func NewWishlistHandler(svc *cart.Service) *WishlistHandler {
	return &WishlistHandler{cart: svc}
}

type AddWishRequestDTO struct {
	ItemID string `json:"item_id"`
}

func (h *WishlistHandler) List(w http.ResponseWriter, r *http.Request) {
	userID := getUserIDFromContext(r.Context())
	if userID == "" {
		respondError(w, http.StatusUnauthorized, "unauthorized", "missing user authentication")
		return
	}

	entries, err := h.cart.ListWishes(r.Context(), userID)
	if err != nil {
		handleServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, entries)
}

func (h *WishlistHandler) Add(w http.ResponseWriter, r *http.Request) {
	userID := getUserIDFromContext(r.Context())
	if userID == "" {
		respondError(w, http.StatusUnauthorized, "unauthorized", "missing user authentication")
		return
	}

	var req AddWishRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}
	if req.ItemID == "" {
		respondError(w, http.StatusBadRequest, "invalid_item_id", "item_id is required")
		return
	}

	entry, err := h.cart.AddWish(r.Context(), userID, req.ItemID)
	if err != nil {
		handleServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, entry)
}

func (h *WishlistHandler) Remove(w http.ResponseWriter, r *http.Request) {
	userID := getUserIDFromContext(r.Context())
	if userID == "" {
		respondError(w, http.StatusUnauthorized, "unauthorized", "missing user authentication")
		return
	}

	itemID := chi.URLParam(r, "item_id")
	if err := h.cart.RemoveWish(r.Context(), userID, itemID); err != nil {
		handleServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
