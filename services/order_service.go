package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"artisan-axis/cart"
	"artisan-axis/models"
	"artisan-axis/repositories"
)

// OrderService turns a client-held cart into a durable, priced, validated
// order. The write is two-phase: header first, then one item row per cart
// line, with a compensating delete of the header if the items fail.
type OrderService struct {
	orders   repositories.OrderStore
	validate *validator.Validate
}

func NewOrderService(orders repositories.OrderStore) *OrderService {
	return &OrderService{
		orders:   orders,
		validate: validator.New(),
	}
}

// shippingForm mirrors the checkout form. Field order matters: the first
// violated field's message is what the user sees.
type shippingForm struct {
	Name          string `validate:"required"`
	Phone         string `validate:"required,min=10,max=15"`
	Address       string `validate:"required,min=5"`
	Pincode       string `validate:"required,min=4,max=10"`
	PaymentMethod string `validate:"required,oneof=cash_on_delivery upi"`
}

// Submit is the submission entry point exposed to the UI. All pipeline
// failures are mapped to a uniform result here.
func (s *OrderService) Submit(ctx context.Context, userID string, req models.PlaceOrderRequest) *models.OrderResult {
	confirmation, err := s.PlaceOrder(ctx, userID, req)
	if err != nil {
		return &models.OrderResult{Success: false, Message: FailureMessage(err)}
	}
	return &models.OrderResult{
		Success: true,
		Message: "Your order has been placed successfully!",
		Order:   confirmation,
	}
}

// PlaceOrder runs the pipeline and returns a typed failure from the
// taxonomy in errors.go. Preconditions short-circuit in order:
// authentication, payload parse, empty cart, shipping/payment validation.
func (s *OrderService) PlaceOrder(ctx context.Context, userID string, req models.PlaceOrderRequest) (*models.OrderConfirmation, error) {
	if userID == "" {
		return nil, ErrUnauthenticated
	}

	var lines []cart.Line
	if err := json.Unmarshal([]byte(req.CartItems), &lines); err != nil {
		return nil, ErrInvalidCartPayload
	}

	cartTotal, err := decimal.NewFromString(strings.TrimSpace(req.CartTotal))
	if err != nil {
		return nil, ErrInvalidCartPayload
	}
	shippingCost, err := decimal.NewFromString(strings.TrimSpace(req.ShippingCost))
	if err != nil {
		return nil, ErrInvalidCartPayload
	}

	if len(lines) == 0 {
		return nil, ErrEmptyCart
	}

	form := shippingForm{
		Name:          strings.TrimSpace(req.Name),
		Phone:         strings.TrimSpace(req.Phone),
		Address:       strings.TrimSpace(req.Address),
		Pincode:       strings.TrimSpace(req.Pincode),
		PaymentMethod: req.PaymentMethod,
	}
	if err := s.validate.Struct(form); err != nil {
		return nil, firstViolation(err)
	}

	totalAmount := cartTotal.Add(shippingCost)
	address := models.ShippingAddress{
		Name:    form.Name,
		Phone:   form.Phone,
		Address: form.Address,
		Pincode: form.Pincode,
	}

	// Phase 1: order header.
	orderID, err := s.orders.CreateOrder(ctx, &models.Order{
		UserID:        userID,
		TotalAmount:   totalAmount,
		Status:        models.OrderStatusPending,
		ShippingInfo:  address,
		PaymentMethod: form.PaymentMethod,
	})
	if err != nil {
		log.Println("Error creating order:", err)
		return nil, fmt.Errorf("%w: %v", ErrOrderCreateFailed, err)
	}

	// Phase 2: one item per cart line. Quantity and price are copied
	// verbatim from the submitted lines; the price the customer saw is the
	// price they pay.
	items := make([]models.OrderItem, 0, len(lines))
	for _, line := range lines {
		items = append(items, models.OrderItem{
			OrderID:         orderID,
			ProductID:       line.ProductID,
			Quantity:        line.Quantity,
			PriceAtPurchase: line.Price,
		})
	}

	if err := s.orders.CreateOrderItems(ctx, items); err != nil {
		log.Println("Error creating order items:", err)
		// Best-effort compensation: without it an order header with no
		// items would survive.
		if delErr := s.orders.DeleteOrder(ctx, orderID); delErr != nil {
			log.Printf("Orphaned order header %s: compensating delete failed: %v", orderID, delErr)
			return nil, fmt.Errorf("%w: %v", ErrOrphanedOrder, err)
		}
		return nil, fmt.Errorf("%w: %v", ErrOrderItemsFailed, err)
	}

	confirmationItems := make([]models.ConfirmationItem, 0, len(lines))
	for _, line := range lines {
		confirmationItems = append(confirmationItems, models.ConfirmationItem{
			Name:     line.Name,
			Quantity: line.Quantity,
			Price:    line.Price,
			ImageURL: line.ImageURL,
		})
	}

	return &models.OrderConfirmation{
		OrderID:         orderID,
		TotalAmount:     totalAmount,
		ShippingAddress: address,
		PaymentMethod:   form.PaymentMethod,
		Items:           confirmationItems,
	}, nil
}

// firstViolation maps the first failed field to the user-facing message.
func firstViolation(err error) error {
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return &ValidationError{Message: "Invalid shipping details."}
	}

	fe := fieldErrs[0]
	msg := ""
	switch fe.Field() {
	case "Name":
		msg = "Full Name is required."
	case "Phone":
		if fe.Tag() == "max" {
			msg = "Phone number is too long."
		} else {
			msg = "Phone number must be at least 10 digits."
		}
	case "Address":
		msg = "Address is required."
	case "Pincode":
		if fe.Tag() == "max" {
			msg = "Pincode is too long."
		} else {
			msg = "Pincode is required."
		}
	case "PaymentMethod":
		msg = "Invalid payment method."
	default:
		msg = "Invalid shipping details."
	}
	return &ValidationError{Field: fe.Field(), Message: msg}
}

// FailureMessage maps a pipeline error to the user-facing toast copy.
func FailureMessage(err error) string {
	var vErr *ValidationError
	switch {
	case errors.Is(err, ErrUnauthenticated):
		return "You must be logged in to place an order."
	case errors.Is(err, ErrInvalidCartPayload):
		return "Invalid cart data. Please try again."
	case errors.Is(err, ErrEmptyCart):
		return "Your cart is empty. Please add items before checking out."
	case errors.As(err, &vErr):
		return vErr.Message
	case errors.Is(err, ErrOrderCreateFailed):
		return "Failed to place order. Please try again."
	case errors.Is(err, ErrOrderItemsFailed), errors.Is(err, ErrOrphanedOrder):
		return "Failed to add order items. Order cancelled."
	default:
		return "An unexpected error occurred while placing your order."
	}
}
