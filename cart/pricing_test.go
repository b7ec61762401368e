package cart

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestCalculate_TwoLineCart(t *testing.T) {
	lines := []Line{
		{ProductID: "p1", Price: decimal.NewFromFloat(10.00), Quantity: 2},
		{ProductID: "p2", Price: decimal.NewFromFloat(5.00), Quantity: 1},
	}

	pricing := Calculate(lines)

	assert.True(t, pricing.Subtotal.Equal(decimal.NewFromFloat(25.00)), "subtotal = %s", pricing.Subtotal)
	assert.True(t, pricing.Shipping.Equal(decimal.NewFromFloat(5.00)), "shipping = %s", pricing.Shipping)
	assert.True(t, pricing.Total.Equal(decimal.NewFromFloat(30.00)), "total = %s", pricing.Total)
}

func TestCalculate_EmptyCartHasNoShipping(t *testing.T) {
	pricing := Calculate(nil)

	assert.True(t, pricing.Subtotal.IsZero())
	assert.True(t, pricing.Shipping.IsZero())
	assert.True(t, pricing.Total.IsZero())
}

func TestCalculate_ZeroQuantitiesHaveNoShipping(t *testing.T) {
	lines := []Line{
		{ProductID: "p1", Price: decimal.NewFromFloat(10.00), Quantity: 0},
	}

	pricing := Calculate(lines)

	assert.True(t, pricing.Shipping.IsZero())
	assert.True(t, pricing.Total.IsZero())
}

func TestCalculate_TotalIsSubtotalPlusShipping(t *testing.T) {
	carts := [][]Line{
		nil,
		{{ProductID: "p1", Price: decimal.NewFromFloat(0.01), Quantity: 1}},
		{{ProductID: "p1", Price: decimal.NewFromFloat(19.99), Quantity: 3},
			{ProductID: "p2", Price: decimal.NewFromFloat(2.50), Quantity: 7}},
	}

	for _, lines := range carts {
		pricing := Calculate(lines)
		assert.True(t, pricing.Total.Equal(pricing.Subtotal.Add(pricing.Shipping)))
	}
}

func TestCalculate_IsPure(t *testing.T) {
	lines := []Line{
		{ProductID: "p1", Price: decimal.NewFromFloat(10.00), Quantity: 2},
	}

	first := Calculate(lines)
	second := Calculate(lines)

	assert.True(t, first.Total.Equal(second.Total))
	assert.True(t, first.Subtotal.Equal(second.Subtotal))
	assert.True(t, first.Shipping.Equal(second.Shipping))
}
