package models

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	OrderStatusPending = "Pending"

	PaymentCashOnDelivery = "cash_on_delivery"
	PaymentUPI            = "upi"
)

// ShippingAddress is embedded into the order row as an immutable snapshot.
type ShippingAddress struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
	Pincode string `json:"pincode"`
}

type Order struct {
	ID            string          `json:"id"`
	UserID        string          `json:"user_id"`
	TotalAmount   decimal.Decimal `json:"total_amount"`
	Status        string          `json:"status"`
	ShippingInfo  ShippingAddress `json:"shipping_info"`
	PaymentMethod string          `json:"payment_method"`
	Items         []OrderItem     `json:"items,omitempty"`
	CreatedAt     time.Time       `json:"created_at"`
}

type OrderItem struct {
	ID              string          `json:"id"`
	OrderID         string          `json:"order_id"`
	ProductID       string          `json:"product_id"`
	Quantity        int             `json:"quantity"`
	PriceAtPurchase decimal.Decimal `json:"price_at_purchase"`
}

// OrderConfirmation echoes the submitted request back to the caller. It is
// assembled from the request, never re-read from storage.
type OrderConfirmation struct {
	OrderID         string             `json:"orderId"`
	TotalAmount     decimal.Decimal    `json:"totalAmount"`
	ShippingAddress ShippingAddress    `json:"shippingAddress"`
	PaymentMethod   string             `json:"paymentMethod"`
	Items           []ConfirmationItem `json:"items"`
}

type ConfirmationItem struct {
	Name     string          `json:"name"`
	Quantity int             `json:"quantity"`
	Price    decimal.Decimal `json:"price"`
	ImageURL string          `json:"imageUrl"`
}
