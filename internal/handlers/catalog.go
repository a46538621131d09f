// internal/handlers/catalog.go
package handlers

import (
	"github.com/shopora/storefront-backend/internal/models"
	"github.com/shopora/storefront-backend/internal/services"
)

// Catalog is the product collaborator the handlers depend on.
// *services.CatalogService is the production implementation.
type Catalog interface {
	SearchProducts(params services.ProductSearchParams) ([]models.Product, int64, error)
	AllProducts() ([]models.Product, error)
	GetProduct(id string) (*models.Product, error)
	CreateProduct(req *services.CreateProductRequest) (*models.Product, error)
	UpdateProduct(id string, req *services.UpdateProductRequest) (*models.Product, error)
	DeleteProduct(id string) error
}
