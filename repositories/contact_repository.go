package repositories

import (
	"context"
	"time"

	"artisan-axis/config"
	"artisan-axis/models"
)

type ContactRepository struct{}

func NewContactRepository() *ContactRepository {
	return &ContactRepository{}
}

func (r *ContactRepository) CreateMessage(ctx context.Context, msg *models.ContactMessage) error {
	query := `
		INSERT INTO contact_messages (name, email, subject, message, created_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at
	`
	return config.DB.QueryRow(ctx, query,
		msg.Name, msg.Email, msg.Subject, msg.Message, time.Now(),
	).Scan(&msg.ID, &msg.CreatedAt)
}
