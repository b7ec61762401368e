package cart

import "github.com/shopspring/decimal"

// FlatShippingFee is charged whenever the cart is non-empty.
var FlatShippingFee = decimal.NewFromFloat(5.00)

// Pricing is derived from a line set, never stored.
type Pricing struct {
	Subtotal decimal.Decimal
	Shipping decimal.Decimal
	Total    decimal.Decimal
}

// Calculate derives subtotal, shipping, and grand total from lines. The
// flat fee applies iff the subtotal is positive. Pure function: the same
// lines always yield the same result.
func Calculate(lines []Line) Pricing {
	subtotal := decimal.Zero
	for _, line := range lines {
		subtotal = subtotal.Add(line.Price.Mul(decimal.NewFromInt(int64(line.Quantity))))
	}

	shipping := decimal.Zero
	if subtotal.IsPositive() {
		shipping = FlatShippingFee
	}

	return Pricing{
		Subtotal: subtotal,
		Shipping: shipping,
		Total:    subtotal.Add(shipping),
	}
}
