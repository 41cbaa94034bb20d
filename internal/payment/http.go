package payment

import (
	"context"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/sony/gobreaker"
)

// HTTPGateway charges through an external processor endpoint. Calls run
// through a circuit breaker so a dying processor fails fast instead of
// tying up checkout submissions.
type HTTPGateway struct {
	client  *resty.Client
	breaker *gobreaker.CircuitBreaker
}

type chargeRequestDTO struct {
	OrderID  string `json:"order_id"`
	Amount   string `json:"amount"`
	Currency string `json:"currency"`
}

type chargeResponseDTO struct {
	PaymentID string `json:"payment_id"`
	Status    string `json:"status"`
	Reason    string `json:"reason,omitempty"`
}

func NewHTTPGateway(baseURL string) *HTTPGateway {
	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(10 * time.Second).
		SetRetryCount(2)

	cb := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        "payment-gateway",
		MaxRequests: 3,
		Interval:    15 * time.Second,
		Timeout:     30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			failureRatio := float64(counts.TotalFailures) / float64(counts.Requests)
			return counts.Requests >= 3 && failureRatio >= 0.6
		},
	})

	return &HTTPGateway{
		client:  client,
		breaker: cb,
	}
}

func (g *HTTPGateway) Charge(ctx context.Context, req ChargeRequest) (*ChargeResult, error) {
	result, err := g.breaker.Execute(func() (interface{}, error) {
		var out chargeResponseDTO
		resp, err := g.client.R().
			SetContext(ctx).
			SetBody(chargeRequestDTO{
				OrderID:  req.OrderID,
				Amount:   req.Amount.String(),
				Currency: req.Currency,
			}).
			SetResult(&out).
			Post("/charges")
		if err != nil {
			return nil, fmt.Errorf("charge request failed: %w", err)
		}
		if resp.IsError() {
			return nil, fmt.Errorf("charge request returned %s", resp.Status())
		}
		return &out, nil
	})
	if err != nil {
		return nil, err
	}

	out := result.(*chargeResponseDTO)
	status := ChargeStatusFailed
	if out.Status == "SUCCESS" {
		status = ChargeStatusSuccess
	}
	return &ChargeResult{
		PaymentID: out.PaymentID,
		Status:    status,
		Reason:    out.Reason,
	}, nil
}
