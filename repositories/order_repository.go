package repositories

import (
	"context"
	"encoding/json"
	"time"

	"artisan-axis/config"
	"artisan-axis/models"
)

// OrderStore is what the submission pipeline needs from the persistence
// gateway. The two writes are deliberately separate calls, not one
// transaction; the pipeline compensates with DeleteOrder when the second
// phase fails.
type OrderStore interface {
	CreateOrder(ctx context.Context, order *models.Order) (string, error)
	CreateOrderItems(ctx context.Context, items []models.OrderItem) error
	DeleteOrder(ctx context.Context, orderID string) error
}

type OrderRepository struct{}

func NewOrderRepository() *OrderRepository {
	return &OrderRepository{}
}

// CreateOrder inserts the order header and returns the generated id.
func (r *OrderRepository) CreateOrder(ctx context.Context, order *models.Order) (string, error) {
	shippingInfo, err := json.Marshal(order.ShippingInfo)
	if err != nil {
		return "", err
	}

	query := `
		INSERT INTO orders (user_id, total_amount, status, shipping_info, payment_method, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`
	var orderID string
	err = config.DB.QueryRow(ctx, query,
		order.UserID, order.TotalAmount, order.Status, shippingInfo, order.PaymentMethod, time.Now(),
	).Scan(&orderID)
	if err != nil {
		return "", err
	}
	return orderID, nil
}

func (r *OrderRepository) CreateOrderItems(ctx context.Context, items []models.OrderItem) error {
	query := `
		INSERT INTO order_items (order_id, product_id, quantity, price_at_purchase)
		VALUES ($1, $2, $3, $4)
	`
	for _, item := range items {
		_, err := config.DB.Exec(ctx, query,
			item.OrderID, item.ProductID, item.Quantity, item.PriceAtPurchase)
		if err != nil {
			return err
		}
	}
	return nil
}

// DeleteOrder removes the header row. Item rows cascade.
func (r *OrderRepository) DeleteOrder(ctx context.Context, orderID string) error {
	_, err := config.DB.Exec(ctx, "DELETE FROM orders WHERE id = $1", orderID)
	return err
}

// GetOrdersByUser returns the caller's order history, newest first, items
// included.
func (r *OrderRepository) GetOrdersByUser(ctx context.Context, userID string) ([]models.Order, error) {
	query := `
		SELECT id, user_id, total_amount, status, shipping_info, payment_method, created_at
		FROM orders
		WHERE user_id = $1
		ORDER BY created_at DESC
	`
	rows, err := config.DB.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := []models.Order{}
	for rows.Next() {
		var o models.Order
		var shippingInfo []byte
		if err := rows.Scan(&o.ID, &o.UserID, &o.TotalAmount, &o.Status, &shippingInfo, &o.PaymentMethod, &o.CreatedAt); err != nil {
			return nil, err
		}
		if err := json.Unmarshal(shippingInfo, &o.ShippingInfo); err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range orders {
		items, err := r.getOrderItems(ctx, orders[i].ID)
		if err != nil {
			return nil, err
		}
		orders[i].Items = items
	}

	return orders, nil
}

func (r *OrderRepository) getOrderItems(ctx context.Context, orderID string) ([]models.OrderItem, error) {
	query := `
		SELECT id, order_id, product_id, quantity, price_at_purchase
		FROM order_items
		WHERE order_id = $1
	`
	rows, err := config.DB.Query(ctx, query, orderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := []models.OrderItem{}
	for rows.Next() {
		var item models.OrderItem
		if err := rows.Scan(&item.ID, &item.OrderID, &item.ProductID, &item.Quantity, &item.PriceAtPurchase); err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}
