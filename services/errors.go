package services

import "errors"

// Failure taxonomy for the order submission pipeline. Every failure is
// recovered at the boundary and mapped to a {success:false, message}
// result; none of these escape to the HTTP layer as raw errors.
var (
	ErrUnauthenticated    = errors.New("caller is not authenticated")
	ErrInvalidCartPayload = errors.New("cart payload is malformed")
	ErrEmptyCart          = errors.New("cart is empty")
	ErrOrderCreateFailed  = errors.New("order header insert failed")
	ErrOrderItemsFailed   = errors.New("order items insert failed")

	// ErrOrphanedOrder means the items insert failed AND the compensating
	// delete of the header also failed, leaving an order row with no items.
	ErrOrphanedOrder = errors.New("order items insert failed and compensation failed")
)

// ValidationError carries the first violated field of the shipping or
// payment input.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}
