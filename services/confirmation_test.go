package services

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"artisan-axis/models"
)

func sampleConfirmation(paymentMethod string) *models.OrderConfirmation {
	return &models.OrderConfirmation{
		OrderID:       "order-123",
		TotalAmount:   decimal.NewFromFloat(30.00),
		PaymentMethod: paymentMethod,
		ShippingAddress: models.ShippingAddress{
			Name:    "Asha Verma",
			Phone:   "9876543210",
			Address: "14 Pottery Lane, Jaipur",
			Pincode: "302001",
		},
		Items: []models.ConfirmationItem{
			{Name: "Ceramic Mug", Quantity: 2, Price: decimal.NewFromFloat(10.00), ImageURL: "/mug.jpg"},
			{Name: "Walnut Bowl", Quantity: 1, Price: decimal.NewFromFloat(5.00), ImageURL: "/bowl.jpg"},
		},
	}
}

func TestProjectConfirmation(t *testing.T) {
	view := ProjectConfirmation(sampleConfirmation(models.PaymentCashOnDelivery))

	assert.Equal(t, "order-123", view.OrderID)
	assert.Equal(t, "30.00", view.TotalAmount)
	assert.Equal(t, "Cash on Delivery", view.PaymentMethod)
	assert.Equal(t, "Asha Verma", view.ShippingAddress.Name)

	require.Len(t, view.Items, 2)
	assert.Equal(t, "Ceramic Mug", view.Items[0].Name)
	assert.Equal(t, 2, view.Items[0].Quantity)
	assert.Equal(t, "10.00", view.Items[0].Price)
	assert.Equal(t, "/mug.jpg", view.Items[0].ImageURL)
	assert.Equal(t, "5.00", view.Items[1].Price)
}

func TestPaymentMethodLabel(t *testing.T) {
	assert.Equal(t, "Cash on Delivery", PaymentMethodLabel(models.PaymentCashOnDelivery))
	assert.Equal(t, "UPI", PaymentMethodLabel(models.PaymentUPI))
	assert.Equal(t, "Other", PaymentMethodLabel("crypto"))
	assert.Equal(t, "Other", PaymentMethodLabel(""))
}

func TestProjectConfirmation_UnknownPaymentMethodDoesNotFail(t *testing.T) {
	view := ProjectConfirmation(sampleConfirmation("gift_card"))

	assert.Equal(t, "Other", view.PaymentMethod)
	assert.Equal(t, "30.00", view.TotalAmount)
}
