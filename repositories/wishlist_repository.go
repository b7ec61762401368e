package repositories

import (
	"context"
	"time"

	"artisan-axis/config"
	"artisan-axis/models"
)

type WishlistRepository struct{}

func NewWishlistRepository() *WishlistRepository {
	return &WishlistRepository{}
}

// AddToWishlist inserts a (user, product) pair. Callers should check
// IsUniqueViolation on the returned error for duplicates.
func (r *WishlistRepository) AddToWishlist(ctx context.Context, userID, productID string) error {
	query := `INSERT INTO wishlist (user_id, product_id, created_at) VALUES ($1, $2, $3)`
	_, err := config.DB.Exec(ctx, query, userID, productID, time.Now())
	return err
}

func (r *WishlistRepository) RemoveFromWishlist(ctx context.Context, userID, productID string) error {
	query := `DELETE FROM wishlist WHERE user_id = $1 AND product_id = $2`
	_, err := config.DB.Exec(ctx, query, userID, productID)
	return err
}

func (r *WishlistRepository) GetWishlistByUser(ctx context.Context, userID string) ([]models.WishlistItem, error) {
	query := `
		SELECT w.id, w.user_id, w.product_id, w.created_at,
		       p.id, p.name, p.description, p.category, p.price, p.image_url, p.rating, p.created_at
		FROM wishlist w
		JOIN products p ON w.product_id = p.id
		WHERE w.user_id = $1
		ORDER BY w.created_at DESC
	`
	rows, err := config.DB.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := []models.WishlistItem{}
	for rows.Next() {
		var item models.WishlistItem
		var p models.Product
		err := rows.Scan(&item.ID, &item.UserID, &item.ProductID, &item.CreatedAt,
			&p.ID, &p.Name, &p.Description, &p.Category, &p.Price, &p.ImageURL, &p.Rating, &p.CreatedAt)
		if err != nil {
			return nil, err
		}
		item.Product = &p
		items = append(items, item)
	}
	return items, rows.Err()
}
