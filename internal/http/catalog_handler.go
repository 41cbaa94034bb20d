package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/sreerojavusa/Travelgear/internal/catalog"
)

type CatalogHandler struct {
	catalog *catalog.Service
}

func NewCatalogHandler(svc *catalog.Service) *CatalogHandler {
	return &CatalogHandler{catalog: svc}
}

func (h *CatalogHandler) ListCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.catalog.ListCategories(r.Context())
	if err != nil {
		handleServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, categories)
}

func (h *CatalogHandler) ListItems(w http.ResponseWriter, r *http.Request) {
	filter := catalog.ItemFilter{
		CategoryID:    r.URL.Query().Get("category"),
		OnlyAvailable: r.URL.Query().Get("available") == "true",
	}

	items, err := h.catalog.ListItems(r.Context(), filter)
	if err != nil {
		handleServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, items)
}

func (h *CatalogHandler) GetItem(w http.ResponseWriter, r *http.Request) {
	itemID := chi.URLParam(r, "item_id")
	if itemID == "" {
		respondError(w, http.StatusBadRequest, "invalid_item_id", "item_id is required")
		return
	}

	item, err := h.catalog.GetItem(r.Context(), itemID)
	if err != nil {
		handleServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, item)
}
