package repositories

import (
	"context"
	"time"

	"artisan-axis/config"
	"artisan-axis/models"
)

type ReviewRepository struct{}

func NewReviewRepository() *ReviewRepository {
	return &ReviewRepository{}
}

func (r *ReviewRepository) CreateReview(ctx context.Context, review *models.Review) error {
	query := `
		INSERT INTO reviews (product_id, user_id, reviewer_name, rating, comment, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at
	`
	return config.DB.QueryRow(ctx, query,
		review.ProductID, review.UserID, review.ReviewerName, review.Rating, review.Comment, time.Now(),
	).Scan(&review.ID, &review.CreatedAt)
}

func (r *ReviewRepository) GetReviewsByProduct(ctx context.Context, productID string) ([]models.Review, error) {
	query := `
		SELECT id, product_id, user_id, reviewer_name, rating, comment, created_at
		FROM reviews
		WHERE product_id = $1
		ORDER BY created_at DESC
	`
	rows, err := config.DB.Query(ctx, query, productID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	reviews := []models.Review{}
	for rows.Next() {
		var rv models.Review
		if err := rows.Scan(&rv.ID, &rv.ProductID, &rv.UserID, &rv.ReviewerName, &rv.Rating, &rv.Comment, &rv.CreatedAt); err != nil {
			return nil, err
		}
		reviews = append(reviews, rv)
	}
	return reviews, rows.Err()
}
