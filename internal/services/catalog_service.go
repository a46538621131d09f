// internal/services/catalog_service.go
package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"

	"github.com/shopora/storefront-backend/internal/cache"
	"github.com/shopora/storefront-backend/internal/models"
	"github.com/shopora/storefront-backend/internal/utils"
)

var ErrProductNotFound = errors.New("product not found")

// CatalogService is the products backing collaborator: CRUD plus filtered
// search over Postgres, with a short-lived read cache in front.
type CatalogService struct {
	db    *gorm.DB
	cache *cache.Cache
}

type CreateProductRequest struct {
	Name          string   `json:"name" validate:"required,min=2,max=255"`
	Description   string   `json:"description"`
	Price         float64  `json:"price" validate:"required,gt=0"`
	OriginalPrice *float64 `json:"originalPrice,omitempty" validate:"omitempty,gt=0"`
	Category      string   `json:"category" validate:"required"`
	Image         string   `json:"image" validate:"required"`
	Images        []string `json:"images,omitempty"`
	Stock         int      `json:"stock" validate:"gte=0"`
	Rating        float64  `json:"rating" validate:"gte=0,lte=5"`
	ReviewCount   int64    `json:"reviewCount" validate:"gte=0"`
	Tags          []string `json:"tags,omitempty"`
}

type UpdateProductRequest struct {
	Name          *string  `json:"name,omitempty" validate:"omitempty,min=2,max=255"`
	Description   *string  `json:"description,omitempty"`
	Price         *float64 `json:"price,omitempty" validate:"omitempty,gt=0"`
	OriginalPrice *float64 `json:"originalPrice,omitempty" validate:"omitempty,gt=0"`
	Category      *string  `json:"category,omitempty"`
	Image         *string  `json:"image,omitempty"`
	Images        []string `json:"images,omitempty"`
	Stock         *int     `json:"stock,omitempty" validate:"omitempty,gte=0"`
	Rating        *float64 `json:"rating,omitempty" validate:"omitempty,gte=0,lte=5"`
	ReviewCount   *int64   `json:"reviewCount,omitempty" validate:"omitempty,gte=0"`
	Tags          []string `json:"tags,omitempty"`
}

type ProductSearchParams struct {
	utils.PaginationParams
	PriceMin *float64
	PriceMax *float64
	Tag      string
	InStock  *bool
}

func NewCatalogService(db *gorm.DB) *CatalogService {
	return &CatalogService{
		db:    db,
		cache: cache.New(time.Minute),
	}
}

func (s *CatalogService) SearchProducts(params ProductSearchParams) ([]models.Product, int64, error) {
	query := s.db.Model(&models.Product{})

	if params.Category != "" && params.Category != "All" {
		query = query.Where("category = ?", params.Category)
	}
	if params.Search != "" {
		term := "%" + params.Search + "%"
		query = query.Where("name ILIKE ? OR description ILIKE ?", term, term)
	}
	if params.PriceMin != nil {
		query = query.Where("price >= ?", *params.PriceMin)
	}
	if params.PriceMax != nil {
		query = query.Where("price <= ?", *params.PriceMax)
	}
	if params.Tag != "" {
		query = query.Where("? = ANY(tags)", params.Tag)
	}
	if params.InStock != nil {
		if *params.InStock {
			query = query.Where("stock > 0")
		} else {
			query = query.Where("stock = 0")
		}
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count products: %w", err)
	}

	allowedSortFields := []string{"created_at", "price", "name", "rating", "stock"}
	query = utils.ApplySort(query, params.PaginationParams, allowedSortFields)
	query = utils.ApplyPagination(query, params.PaginationParams)

	var products []models.Product
	if err := query.Find(&products).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to fetch products: %w", err)
	}

	return products, total, nil
}

// AllProducts returns the whole catalog, newest first. Used by the cart and
// wishlist surfaces to resolve snapshots, and by the admin export.
func (s *CatalogService) AllProducts() ([]models.Product, error) {
	if cached, ok := s.cache.Get("products:all"); ok {
		return cached.([]models.Product), nil
	}

	var products []models.Product
	if err := s.db.Order("created_at DESC").Find(&products).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch products: %w", err)
	}

	s.cache.Set("products:all", products)
	return products, nil
}

func (s *CatalogService) GetProduct(id string) (*models.Product, error) {
	cacheKey := "product:" + id
	if cached, ok := s.cache.Get(cacheKey); ok {
		product := cached.(models.Product)
		return &product, nil
	}

	var product models.Product
	if err := s.db.First(&product, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, fmt.Errorf("database error: %w", err)
	}

	s.cache.Set(cacheKey, product)
	return &product, nil
}

func (s *CatalogService) CreateProduct(req *CreateProductRequest) (*models.Product, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	product := &models.Product{
		ID:            uuid.NewString(),
		Name:          req.Name,
		Description:   req.Description,
		Price:         req.Price,
		OriginalPrice: req.OriginalPrice,
		Category:      req.Category,
		Image:         req.Image,
		Images:        pq.StringArray(req.Images),
		Stock:         req.Stock,
		Rating:        req.Rating,
		ReviewCount:   req.ReviewCount,
		Tags:          pq.StringArray(req.Tags),
		CreatedAt:     time.Now().UTC(),
	}

	if err := s.db.Create(product).Error; err != nil {
		return nil, fmt.Errorf("failed to create product: %w", err)
	}

	s.cache.Clear()
	return product, nil
}

func (s *CatalogService) UpdateProduct(id string, req *UpdateProductRequest) (*models.Product, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	var product models.Product
	if err := s.db.First(&product, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, fmt.Errorf("database error: %w", err)
	}

	if req.Name != nil {
		product.Name = *req.Name
	}
	if req.Description != nil {
		product.Description = *req.Description
	}
	if req.Price != nil {
		product.Price = *req.Price
	}
	if req.OriginalPrice != nil {
		product.OriginalPrice = req.OriginalPrice
	}
	if req.Category != nil {
		product.Category = *req.Category
	}
	if req.Image != nil {
		product.Image = *req.Image
	}
	if req.Images != nil {
		product.Images = pq.StringArray(req.Images)
	}
	if req.Stock != nil {
		product.Stock = *req.Stock
	}
	if req.Rating != nil {
		product.Rating = *req.Rating
	}
	if req.ReviewCount != nil {
		product.ReviewCount = *req.ReviewCount
	}
	if req.Tags != nil {
		product.Tags = pq.StringArray(req.Tags)
	}

	if err := s.db.Save(&product).Error; err != nil {
		return nil, fmt.Errorf("failed to update product: %w", err)
	}

	s.cache.Clear()
	return &product, nil
}

func (s *CatalogService) DeleteProduct(id string) error {
	result := s.db.Delete(&models.Product{}, "id = ?", id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete product: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrProductNotFound
	}

	s.cache.Clear()
	return nil
}
