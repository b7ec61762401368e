package services

import (
	"context"
	"crypto/sha1"
	"encoding/json"
	"fmt"
	"math"
	"time"

	"artisan-axis/config"
	"artisan-axis/models"
	"artisan-axis/repositories"
)

const productCacheTTL = 5 * time.Minute

type ProductService struct {
	productRepo *repositories.ProductRepository
}

func NewProductService() *ProductService {
	return &ProductService{
		productRepo: repositories.NewProductRepository(),
	}
}

func (s *ProductService) GetProducts(ctx context.Context, filter models.ProductFilter, page, limit int) (*models.PaginationResponse, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 12
	}
	if limit > 100 {
		limit = 100
	}

	cacheKey := productCacheKey(filter, page, limit)
	if cached := getCachedResponse(ctx, cacheKey); cached != nil {
		return cached, nil
	}

	products, total, err := s.productRepo.GetProducts(ctx, filter, page, limit)
	if err != nil {
		return nil, err
	}

	totalPages := int(math.Ceil(float64(total) / float64(limit)))
	resp := &models.PaginationResponse{
		Success: true,
		Message: "Products retrieved successfully",
		Data:    products,
		Meta: models.MetaData{
			Page:       page,
			Limit:      limit,
			TotalItems: total,
			TotalPages: totalPages,
		},
	}

	setCachedResponse(ctx, cacheKey, resp)
	return resp, nil
}

func (s *ProductService) GetProductByID(ctx context.Context, id string) (*models.Product, error) {
	return s.productRepo.GetProductByID(ctx, id)
}

func productCacheKey(filter models.ProductFilter, page, limit int) string {
	minPrice, maxPrice := "", ""
	if filter.MinPrice != nil {
		minPrice = filter.MinPrice.String()
	}
	if filter.MaxPrice != nil {
		maxPrice = filter.MaxPrice.String()
	}
	sum := sha1.Sum(fmt.Appendf(nil, "%s|%s|%s|%s|%s|%d|%d",
		filter.Search, filter.Category, minPrice, maxPrice, filter.SortBy, page, limit))
	return fmt.Sprintf("products:%x", sum)
}

func getCachedResponse(ctx context.Context, key string) *models.PaginationResponse {
	if config.RedisClient == nil {
		return nil
	}
	data, err := config.RedisClient.Get(ctx, key).Bytes()
	if err != nil {
		return nil
	}
	var resp models.PaginationResponse
	if err := json.Unmarshal(data, &resp); err != nil {
		return nil
	}
	return &resp
}

func setCachedResponse(ctx context.Context, key string, resp *models.PaginationResponse) {
	if config.RedisClient == nil {
		return
	}
	data, err := json.Marshal(resp)
	if err != nil {
		return
	}
	config.RedisClient.Set(ctx, key, data, productCacheTTL)
}
