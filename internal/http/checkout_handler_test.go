package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sreerojavusa/Travelgear/internal/checkout"
	"github.com/sreerojavusa/Travelgear/internal/domain"
	"github.com/sreerojavusa/Travelgear/internal/events"
	"github.com/sreerojavusa/Travelgear/internal/payment"
	"github.com/sreerojavusa/Travelgear/internal/storage"
)

type cartStoreStub struct {
	lines []domain.CartLine
}

func (c *cartStoreStub) Get(context.Context, string) ([]domain.CartLine, error) {
	return c.lines, nil
}

func (c *cartStoreStub) Clear(context.Context, string) error {
	c.lines = nil
	return nil
}

type gatewayStub struct {
	result *payment.ChargeResult
}

func (g gatewayStub) Charge(context.Context, payment.ChargeRequest) (*payment.ChargeResult, error) {
	return g.result, nil
}

type recorderStub struct{}

func (recorderStub) Save(context.Context, []domain.Rental) error { return nil }

func testCheckoutHandler(lines []domain.CartLine, charge *payment.ChargeResult) *CheckoutHandler {
	svc := checkout.NewService(
		storage.NewMemoryStore(),
		&cartStoreStub{lines: lines},
		catalogStub{},
		gatewayStub{result: charge},
		recorderStub{},
		events.NopPublisher{},
		decimal.RequireFromString("0.18"),
		"INR",
	)
	return NewCheckoutHandler(svc)
}

func demoLines() []domain.CartLine {
	return []domain.CartLine{
		{
			ID:         "line-1",
			ItemID:     "tent-1",
			Title:      "Alpine Tent",
			DailyRate:  decimal.NewFromInt(50),
			Quantity:   1,
			RentalDays: 5,
		},
	}
}

func TestBeginFromCart_Handler(t *testing.T) {
	handler := testCheckoutHandler(demoLines(), nil)

	recorder := httptest.NewRecorder()
	request := authenticated(httptest.NewRequest("POST", "/api/v1/checkout", nil), "u1")

	handler.BeginFromCart(recorder, request)

	require.Equal(t, http.StatusCreated, recorder.Code)

	var view checkout.View
	require.NoError(t, json.NewDecoder(recorder.Body).Decode(&view))
	assert.Equal(t, domain.CheckoutStatusIdle, view.Status)
	assert.True(t, view.Totals.Subtotal.Equal(decimal.NewFromInt(250)))
}

func TestBeginFromCart_EmptyCart(t *testing.T) {
	handler := testCheckoutHandler(nil, nil)

	recorder := httptest.NewRecorder()
	handler.BeginFromCart(recorder, authenticated(httptest.NewRequest("POST", "/api/v1/checkout", nil), "u1"))

	assert.Equal(t, http.StatusConflict, recorder.Code)

	var errResp ErrorResponse
	require.NoError(t, json.NewDecoder(recorder.Body).Decode(&errResp))
	assert.Equal(t, "empty_cart", errResp.Code)
}

func TestSubmit_Handler_Success(t *testing.T) {
	handler := testCheckoutHandler(demoLines(), &payment.ChargeResult{
		PaymentID: "pay-9",
		Status:    payment.ChargeStatusSuccess,
	})

	recorder := httptest.NewRecorder()
	handler.BeginFromCart(recorder, authenticated(httptest.NewRequest("POST", "/", nil), "u1"))
	require.Equal(t, http.StatusCreated, recorder.Code)

	body, _ := json.Marshal(map[string]string{"card_number": "4111111111111111"})
	recorder = httptest.NewRecorder()
	handler.Submit(recorder, authenticated(httptest.NewRequest("POST", "/", bytes.NewReader(body)), "u1"))

	require.Equal(t, http.StatusOK, recorder.Code)

	var result domain.CheckoutResult
	require.NoError(t, json.NewDecoder(recorder.Body).Decode(&result))
	assert.Equal(t, domain.CheckoutStatusSucceeded, result.Status)
	assert.Equal(t, "pay-9", result.PaymentID)
}

func TestSubmit_Handler_Declined(t *testing.T) {
	handler := testCheckoutHandler(demoLines(), &payment.ChargeResult{
		Status: payment.ChargeStatusFailed,
		Reason: "insufficient funds",
	})

	recorder := httptest.NewRecorder()
	handler.BeginFromCart(recorder, authenticated(httptest.NewRequest("POST", "/", nil), "u1"))
	require.Equal(t, http.StatusCreated, recorder.Code)

	body, _ := json.Marshal(map[string]string{"card_number": "4111111111111111"})
	recorder = httptest.NewRecorder()
	handler.Submit(recorder, authenticated(httptest.NewRequest("POST", "/", bytes.NewReader(body)), "u1"))

	assert.Equal(t, http.StatusPaymentRequired, recorder.Code)
}

func TestSubmit_Handler_NoSession(t *testing.T) {
	handler := testCheckoutHandler(nil, nil)

	body, _ := json.Marshal(map[string]string{"card_number": "4111111111111111"})
	recorder := httptest.NewRecorder()
	handler.Submit(recorder, authenticated(httptest.NewRequest("POST", "/", bytes.NewReader(body)), "u1"))

	assert.Equal(t, http.StatusNotFound, recorder.Code)
}
