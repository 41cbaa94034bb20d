package payment

import (
	"context"
	"math/rand"
	"time"

	"github.com/google/uuid"
)

// SimulatedGateway stands in for a payment processor: it waits a fixed
// processing delay and approves the charge. A non-zero failure percentage
// makes it refuse a share of charges, which keeps the failure path honest
// in demos and tests.
type SimulatedGateway struct {
	delay       time.Duration
	failurePct  int
	randomIntFn func(int) int
}

func NewSimulatedGateway(delay time.Duration, failurePct int) *SimulatedGateway {
	return &SimulatedGateway{
		delay:       delay,
		failurePct:  failurePct,
		randomIntFn: rand.Intn,
	}
}

func (g *SimulatedGateway) Charge(ctx context.Context, req ChargeRequest) (*ChargeResult, error) {
	select {
	case <-time.After(g.delay):
	case <-ctx.Done():
		return nil, ctx.Err()
	}

	if g.failurePct > 0 && g.randomIntFn(100) < g.failurePct {
		return &ChargeResult{
			Status: ChargeStatusFailed,
			Reason: "card declined",
		}, nil
	}

	return &ChargeResult{
		PaymentID: uuid.New().String(),
		Status:    ChargeStatusSuccess,
	}, nil
}
