package repositories

import (
	"context"
	"fmt"
	"strings"

	"artisan-axis/config"
	"artisan-axis/models"
)

type ProductRepository struct{}

func NewProductRepository() *ProductRepository {
	return &ProductRepository{}
}

func buildProductWhere(filter models.ProductFilter) (string, []interface{}) {
	conditions := []string{}
	args := []interface{}{}
	argIndex := 1

	if filter.Search != "" {
		conditions = append(conditions, fmt.Sprintf("name ILIKE $%d", argIndex))
		args = append(args, "%"+filter.Search+"%")
		argIndex++
	}
	if filter.Category != "" && filter.Category != "all" {
		conditions = append(conditions, fmt.Sprintf("category = $%d", argIndex))
		args = append(args, filter.Category)
		argIndex++
	}
	if filter.MinPrice != nil {
		conditions = append(conditions, fmt.Sprintf("price >= $%d", argIndex))
		args = append(args, *filter.MinPrice)
		argIndex++
	}
	if filter.MaxPrice != nil {
		conditions = append(conditions, fmt.Sprintf("price <= $%d", argIndex))
		args = append(args, *filter.MaxPrice)
		argIndex++
	}

	if len(conditions) == 0 {
		return "", args
	}
	return " WHERE " + strings.Join(conditions, " AND "), args
}

func productOrderBy(sortBy string) string {
	switch sortBy {
	case "price-asc":
		return " ORDER BY price ASC"
	case "price-desc":
		return " ORDER BY price DESC"
	case "name-asc":
		return " ORDER BY name ASC"
	case "name-desc":
		return " ORDER BY name DESC"
	case "rating-desc":
		return " ORDER BY rating DESC"
	default:
		return " ORDER BY created_at DESC"
	}
}

func (r *ProductRepository) GetProducts(ctx context.Context, filter models.ProductFilter, page, limit int) ([]models.Product, int, error) {
	where, args := buildProductWhere(filter)

	var total int
	countQuery := "SELECT COUNT(*) FROM products" + where
	if err := config.DB.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * limit
	query := "SELECT id, name, description, category, price, image_url, rating, created_at FROM products" +
		where + productOrderBy(filter.SortBy) +
		fmt.Sprintf(" LIMIT $%d OFFSET $%d", len(args)+1, len(args)+2)
	args = append(args, limit, offset)

	rows, err := config.DB.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	products := []models.Product{}
	for rows.Next() {
		var p models.Product
		if err := rows.Scan(&p.ID, &p.Name, &p.Description, &p.Category, &p.Price, &p.ImageURL, &p.Rating, &p.CreatedAt); err != nil {
			return nil, 0, err
		}
		products = append(products, p)
	}
	return products, total, rows.Err()
}

func (r *ProductRepository) GetProductByID(ctx context.Context, id string) (*models.Product, error) {
	query := `SELECT id, name, description, category, price, image_url, rating, created_at
	          FROM products WHERE id = $1`

	var p models.Product
	err := config.DB.QueryRow(ctx, query, id).Scan(
		&p.ID, &p.Name, &p.Description, &p.Category, &p.Price, &p.ImageURL, &p.Rating, &p.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}
