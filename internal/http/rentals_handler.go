package http

import (
	"net/http"

	"github.com/sreerojavusa/Travelgear/internal/rentals"
)

type RentalsHandler struct {
	rentals rentals.RepoInterface
}

func NewRentalsHandler(repo rentals.RepoInterface) *RentalsHandler {
	return &RentalsHandler{rentals: repo}
}

func (h *RentalsHandler) ListRentals(w http.ResponseWriter, r *http.Request) {
	userID := getUserIDFromContext(r.Context())
	if userID == "" {
		respondError(w, http.StatusUnauthorized, "unauthorized", "missing user authentication")
		return
	}

	history, err := h.rentals.ListByUser(r.Context(), userID)
	if err != nil {
		handleServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, history)
}
