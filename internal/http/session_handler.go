package http

import (
	"encoding/json"
	"net/http"

	"github.com/sreerojavusa/Travelgear/internal/auth"
)

// SessionHandler issues bearer tokens for the demo storefront. There is no
// account database; any non-empty user id gets a signed session.
type SessionHandler struct {
	tokens *auth.TokenManager
}

func NewSessionHandler(tokens *auth.TokenManager) *SessionHandler {
	return &SessionHandler{tokens: tokens}
}

type SessionRequestDTO struct {
	UserID string `json:"user_id"`
}

type SessionResponseDTO struct {
	Token string `json:"token"`
}

func (h *SessionHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req SessionRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}
	if req.UserID == "" {
		respondError(w, http.StatusBadRequest, "invalid_user_id", "user_id is required")
		return
	}

	token, err := h.tokens.Issue(req.UserID)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "internal_error", "failed to issue token")
		return
	}
	respondJSON(w, http.StatusCreated, SessionResponseDTO{Token: token})
}
