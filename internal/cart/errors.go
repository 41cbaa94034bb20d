package cart

import "errors"

var (
	ErrItemNotFound      = errors.New("catalog item not found")
	ErrItemUnavailable   = errors.New("item is not available for rent")
	ErrSizeRequired      = errors.New("size selection is required for this item")
	ErrColorRequired     = errors.New("color selection is required for this item")
	ErrUnknownSize       = errors.New("selected size is not offered for this item")
	ErrUnknownColor      = errors.New("selected color is not offered for this item")
	ErrInvalidQuantity   = errors.New("quantity must be at least 1")
	ErrInvalidRentalDays = errors.New("rental days must be at least 1")
	ErrLineNotFound      = errors.New("line item not found in cart")
)
