package checkout

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"github.com/sreerojavusa/Travelgear/internal/domain"
	"github.com/sreerojavusa/Travelgear/internal/events"
	"github.com/sreerojavusa/Travelgear/internal/payment"
	"github.com/sreerojavusa/Travelgear/internal/pricing"
)

// Submit charges the active session and completes or fails it. The state
// machine is total: there is no path out of SUBMITTING except a terminal
// status. A failed session keeps its snapshot so the user can resubmit.
func (s *Service) Submit(ctx context.Context, userID string, card payment.CardDetails) (*domain.CheckoutResult, error) {
	sess, err := s.loadSession(ctx, userID)
	if err != nil {
		return nil, err
	}

	if !domain.CanTransitionTo(sess.Status, domain.CheckoutStatusSubmitting) {
		return nil, ErrIllegalTransition
	}
	sess.Status = domain.CheckoutStatusSubmitting
	if err := s.persistSession(ctx, userID, *sess); err != nil {
		return nil, err
	}

	totals := pricing.OrderTotals(sess.Lines, s.taxRate)

	result, err := s.gateway.Charge(ctx, payment.ChargeRequest{
		OrderID:  sess.OrderID,
		Amount:   totals.Total,
		Currency: s.currency,
		Card:     card,
	})
	if err != nil {
		s.fail(ctx, userID, sess)
		return nil, fmt.Errorf("charge failed: %w", err)
	}
	if result.Status != payment.ChargeStatusSuccess {
		s.fail(ctx, userID, sess)
		return nil, fmt.Errorf("%w: %s", ErrPaymentDeclined, result.Reason)
	}

	return s.complete(ctx, userID, sess, result.PaymentID, totals)
}

func (s *Service) fail(ctx context.Context, userID string, sess *session) {
	sess.Status = domain.CheckoutStatusFailed
	if err := s.persistSession(ctx, userID, *sess); err != nil {
		log.Printf("failed to persist FAILED checkout %s: %v", sess.OrderID, err)
	}
}

func (s *Service) complete(ctx context.Context, userID string, sess *session, paymentID string, totals pricing.Totals) (*domain.CheckoutResult, error) {
	if !domain.CanTransitionTo(sess.Status, domain.CheckoutStatusSucceeded) {
		return nil, ErrIllegalTransition
	}

	now := time.Now()

	rentals := make([]domain.Rental, 0, len(sess.Lines))
	for _, line := range sess.Lines {
		rentals = append(rentals, domain.Rental{
			ID:            uuid.New().String(),
			UserID:        userID,
			ItemID:        line.ItemID,
			Title:         line.Title,
			Quantity:      line.Quantity,
			RentalDays:    line.RentalDays,
			SizeSelected:  line.SizeSelected,
			ColorSelected: line.ColorSelected,
			TotalAmount:   pricing.CartLineTotal(line),
			DepositAmount: line.DepositAmount,
			Status:        "confirmed",
			CreatedAt:     now,
		})
	}
	if err := s.rentals.Save(ctx, rentals); err != nil {
		// The charge went through; surfacing the record failure without a
		// terminal status would leave the machine stuck in SUBMITTING.
		log.Printf("failed to record rentals for order %s: %v", sess.OrderID, err)
	}

	if err := s.events.Publish(ctx, events.RentalConfirmed{
		OrderID:     sess.OrderID,
		UserID:      userID,
		Lines:       sess.Lines,
		TotalAmount: totals.Total,
		Currency:    s.currency,
		CompletedAt: now,
	}); err != nil {
		log.Printf("failed to publish rental-confirmed for order %s: %v", sess.OrderID, err)
	}

	// Clear all durable cart and checkout state.
	if err := s.cart.Clear(ctx, userID); err != nil {
		log.Printf("failed to clear cart for user %s: %v", userID, err)
	}
	if err := s.store.Delete(ctx, checkoutKey(userID)); err != nil {
		log.Printf("failed to clear checkout slot for user %s: %v", userID, err)
	}

	return &domain.CheckoutResult{
		OrderID:     sess.OrderID,
		PaymentID:   paymentID,
		Status:      domain.CheckoutStatusSucceeded,
		TotalAmount: totals.Total,
		CompletedAt: now,
	}, nil
}
