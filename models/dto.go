package models

// PlaceOrderRequest is the submission entry point payload. The cart line
// array arrives serialized, exactly as the client holds it, along with the
// totals the client displayed.
type PlaceOrderRequest struct {
	CartItems     string `json:"cart_items" form:"cart_items"`
	CartTotal     string `json:"cart_total" form:"cart_total"`
	ShippingCost  string `json:"shipping_cost" form:"shipping_cost"`
	Name          string `json:"name" form:"name"`
	Phone         string `json:"phone" form:"phone"`
	Address       string `json:"address" form:"address"`
	Pincode       string `json:"pincode" form:"pincode"`
	PaymentMethod string `json:"payment_method" form:"payment_method"`
}

type SubmitReviewRequest struct {
	ProductID string `json:"product_id" form:"product_id"`
	Rating    int    `json:"rating" form:"rating"`
	Comment   string `json:"comment" form:"comment"`
}

type ToggleWishlistRequest struct {
	ProductID string `json:"product_id" form:"product_id"`
	IsAdded   bool   `json:"is_added" form:"is_added"`
}

type SubscribeRequest struct {
	Email string `json:"email" form:"email"`
}

type ContactRequest struct {
	Name    string `json:"name" form:"name"`
	Email   string `json:"email" form:"email"`
	Subject string `json:"subject" form:"subject"`
	Message string `json:"message" form:"message"`
}
