package checkout

import "errors"

var (
	ErrEmptyCart         = errors.New("cart is empty, nothing to checkout")
	ErrNoActiveCheckout  = errors.New("no active checkout session")
	ErrPaymentDeclined   = errors.New("payment was declined")
	ErrIllegalTransition = errors.New("illegal transition of checkout status")
	ErrInvalidSelection  = errors.New("invalid rental selection")
)
