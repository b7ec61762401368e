package repositories

import (
	"context"
	"time"

	"artisan-axis/config"
)

type NewsletterRepository struct{}

func NewNewsletterRepository() *NewsletterRepository {
	return &NewsletterRepository{}
}

// Subscribe inserts the email. A duplicate surfaces as a unique violation;
// callers map it to "already subscribed".
func (r *NewsletterRepository) Subscribe(ctx context.Context, email string) error {
	query := `INSERT INTO newsletter_subscribers (email, created_at) VALUES ($1, $2)`
	_, err := config.DB.Exec(ctx, query, email, time.Now())
	return err
}
