package services

import "artisan-axis/models"

// ConfirmationView is the user-facing receipt: money formatted to two
// decimals, payment method turned into a display label.
type ConfirmationView struct {
	OrderID         string                 `json:"orderId"`
	TotalAmount     string                 `json:"totalAmount"`
	PaymentMethod   string                 `json:"paymentMethod"`
	ShippingAddress models.ShippingAddress `json:"shippingAddress"`
	Items           []ConfirmationViewItem `json:"items"`
}

type ConfirmationViewItem struct {
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
	Price    string `json:"price"`
	ImageURL string `json:"imageUrl"`
}

// ProjectConfirmation shapes the pipeline's success payload for display.
// No network calls, no re-reads. Unknown payment methods fall back to a
// generic label instead of failing.
func ProjectConfirmation(c *models.OrderConfirmation) ConfirmationView {
	items := make([]ConfirmationViewItem, 0, len(c.Items))
	for _, item := range c.Items {
		items = append(items, ConfirmationViewItem{
			Name:     item.Name,
			Quantity: item.Quantity,
			Price:    item.Price.StringFixed(2),
			ImageURL: item.ImageURL,
		})
	}

	return ConfirmationView{
		OrderID:         c.OrderID,
		TotalAmount:     c.TotalAmount.StringFixed(2),
		PaymentMethod:   PaymentMethodLabel(c.PaymentMethod),
		ShippingAddress: c.ShippingAddress,
		Items:           items,
	}
}

func PaymentMethodLabel(method string) string {
	switch method {
	case models.PaymentCashOnDelivery:
		return "Cash on Delivery"
	case models.PaymentUPI:
		return "UPI"
	default:
		return "Other"
	}
}
