package http

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sreerojavusa/Travelgear/internal/cart"
	"github.com/sreerojavusa/Travelgear/internal/catalog"
	"github.com/sreerojavusa/Travelgear/internal/domain"
	"github.com/sreerojavusa/Travelgear/internal/storage"
)

type catalogStub struct {
	items map[string]*domain.Item
	err   error
}

func (c catalogStub) GetItem(_ context.Context, id string) (*domain.Item, error) {
	if c.err != nil {
		return nil, c.err
	}
	if item, ok := c.items[id]; ok {
		return item, nil
	}
	return nil, catalog.ErrItemNotFound
}

func testCartHandler() *CartHandler {
	weekly := decimal.NewFromInt(600)
	catalog := catalogStub{items: map[string]*domain.Item{
		"tent-1": {
			ID:           "tent-1",
			Title:        "Alpine Tent",
			DailyRate:    decimal.NewFromInt(100),
			WeeklyRate:   &weekly,
			Availability: true,
		},
	}}
	svc := cart.NewService(storage.NewMemoryStore(), catalog)
	return NewCartHandler(svc, decimal.RequireFromString("0.18"))
}

func authenticated(r *http.Request, userID string) *http.Request {
	ctx := context.WithValue(r.Context(), userIDKey, userID)
	return r.WithContext(ctx)
}

func TestAddItem_Success(t *testing.T) {
	handler := testCartHandler()

	body, _ := json.Marshal(map[string]interface{}{
		"item_id":     "tent-1",
		"quantity":    2,
		"rental_days": 10,
	})
	recorder := httptest.NewRecorder()
	request := authenticated(httptest.NewRequest("POST", "/api/v1/cart/items", bytes.NewReader(body)), "u1")

	handler.AddItem(recorder, request)

	require.Equal(t, http.StatusCreated, recorder.Code)

	var line domain.CartLine
	require.NoError(t, json.NewDecoder(recorder.Body).Decode(&line))
	assert.Equal(t, "tent-1", line.ItemID)
	assert.Equal(t, "Alpine Tent", line.Title)
	assert.Equal(t, 2, line.Quantity)
	assert.Equal(t, 10, line.RentalDays)
}

func TestAddItem_UnknownItem(t *testing.T) {
	handler := testCartHandler()

	body, _ := json.Marshal(map[string]string{"item_id": "nope"})
	recorder := httptest.NewRecorder()
	request := authenticated(httptest.NewRequest("POST", "/api/v1/cart/items", bytes.NewReader(body)), "u1")

	handler.AddItem(recorder, request)

	assert.Equal(t, http.StatusNotFound, recorder.Code)
}

func TestAddItem_CatalogOutageIsServerError(t *testing.T) {
	svc := cart.NewService(storage.NewMemoryStore(), catalogStub{err: errors.New("catalog store unreachable")})
	handler := NewCartHandler(svc, decimal.RequireFromString("0.18"))

	body, _ := json.Marshal(map[string]string{"item_id": "tent-1"})
	recorder := httptest.NewRecorder()
	request := authenticated(httptest.NewRequest("POST", "/api/v1/cart/items", bytes.NewReader(body)), "u1")

	handler.AddItem(recorder, request)

	assert.Equal(t, http.StatusInternalServerError, recorder.Code)
}

func TestAddItem_Unauthenticated(t *testing.T) {
	handler := testCartHandler()

	body, _ := json.Marshal(map[string]string{"item_id": "tent-1"})
	recorder := httptest.NewRecorder()
	request := httptest.NewRequest("POST", "/api/v1/cart/items", bytes.NewReader(body))

	handler.AddItem(recorder, request)

	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
}

func TestGetCart_Totals(t *testing.T) {
	handler := testCartHandler()

	body, _ := json.Marshal(map[string]interface{}{
		"item_id":     "tent-1",
		"quantity":    2,
		"rental_days": 10,
	})
	recorder := httptest.NewRecorder()
	handler.AddItem(recorder, authenticated(httptest.NewRequest("POST", "/", bytes.NewReader(body)), "u1"))
	require.Equal(t, http.StatusCreated, recorder.Code)

	recorder = httptest.NewRecorder()
	handler.GetCart(recorder, authenticated(httptest.NewRequest("GET", "/api/v1/cart", nil), "u1"))
	require.Equal(t, http.StatusOK, recorder.Code)

	var resp CartResponseDTO
	require.NoError(t, json.NewDecoder(recorder.Body).Decode(&resp))
	require.Len(t, resp.Lines, 1)

	// (1*600 + 3*100) * 2 = 1800, plus 18% tax.
	assert.True(t, resp.Totals.Subtotal.Equal(decimal.NewFromInt(1800)))
	assert.True(t, resp.Totals.Tax.Equal(decimal.NewFromInt(324)))
	assert.True(t, resp.Totals.Total.Equal(decimal.NewFromInt(2124)))
}

func TestGetCart_Empty(t *testing.T) {
	handler := testCartHandler()

	recorder := httptest.NewRecorder()
	handler.GetCart(recorder, authenticated(httptest.NewRequest("GET", "/api/v1/cart", nil), "u1"))

	require.Equal(t, http.StatusOK, recorder.Code)

	var resp CartResponseDTO
	require.NoError(t, json.NewDecoder(recorder.Body).Decode(&resp))
	assert.Empty(t, resp.Lines)
	assert.True(t, resp.Totals.Total.IsZero())
}
