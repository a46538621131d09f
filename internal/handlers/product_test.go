// internal/handlers/product_test.go
package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shopora/storefront-backend/internal/i18n"
	"github.com/shopora/storefront-backend/internal/middleware"
	"github.com/shopora/storefront-backend/internal/models"
	"github.com/shopora/storefront-backend/internal/services"
	"github.com/shopora/storefront-backend/internal/utils"
)

// stubCatalog backs handler tests without a database.
type stubCatalog struct {
	products map[string]models.Product
}

func (s *stubCatalog) SearchProducts(params services.ProductSearchParams) ([]models.Product, int64, error) {
	all, _ := s.AllProducts()
	return all, int64(len(all)), nil
}

func (s *stubCatalog) AllProducts() ([]models.Product, error) {
	var out []models.Product
	for _, p := range s.products {
		out = append(out, p)
	}
	return out, nil
}

func (s *stubCatalog) GetProduct(id string) (*models.Product, error) {
	if p, ok := s.products[id]; ok {
		return &p, nil
	}
	return nil, services.ErrProductNotFound
}

func (s *stubCatalog) CreateProduct(req *services.CreateProductRequest) (*models.Product, error) {
	p := models.Product{
		ID:       "p-created",
		Name:     req.Name,
		Price:    req.Price,
		Category: req.Category,
		Image:    req.Image,
		Stock:    req.Stock,
	}
	if s.products == nil {
		s.products = make(map[string]models.Product)
	}
	s.products[p.ID] = p
	return &p, nil
}

func (s *stubCatalog) UpdateProduct(id string, req *services.UpdateProductRequest) (*models.Product, error) {
	p, ok := s.products[id]
	if !ok {
		return nil, services.ErrProductNotFound
	}
	if req.Name != nil {
		p.Name = *req.Name
	}
	s.products[id] = p
	return &p, nil
}

func (s *stubCatalog) DeleteProduct(id string) error {
	if _, ok := s.products[id]; !ok {
		return services.ErrProductNotFound
	}
	delete(s.products, id)
	return nil
}

func newProductTestRouter(t *testing.T, catalog Catalog) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	require.NoError(t, i18n.Initialize())
	utils.SetJWTSecret("test-secret")

	handler := NewProductHandler(catalog)

	r := gin.New()
	r.GET("/v1/products/:id", handler.GetProduct)

	managed := r.Group("/v1/products", middleware.AuthRequired(), middleware.AdminRequired())
	managed.POST("", handler.CreateProduct)
	managed.DELETE("/:id", handler.DeleteProduct)
	return r
}

func getPath(t *testing.T, r *gin.Engine, path, token string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestGetProductMissingIs404(t *testing.T) {
	r := newProductTestRouter(t, &stubCatalog{})

	w := getPath(t, r, "/v1/products/missing", "")

	require.Equal(t, http.StatusNotFound, w.Code)
	resp := decodeResponse(t, w)
	assert.False(t, resp.Success)
	require.NotNil(t, resp.Error)
	assert.Equal(t, "NOT_FOUND", resp.Error.Code)
}

func TestGetProductFound(t *testing.T) {
	catalog := &stubCatalog{products: map[string]models.Product{
		"p1": {ID: "p1", Name: "Headphones", Price: 99.9, Image: "https://cdn.example.com/p1.jpg"},
	}}
	r := newProductTestRouter(t, catalog)

	w := getPath(t, r, "/v1/products/p1", "")

	require.Equal(t, http.StatusOK, w.Code)
	data := decodeResponse(t, w).Data.(map[string]interface{})
	product := data["product"].(map[string]interface{})
	assert.Equal(t, "p1", product["id"])
}

func TestProductMutationRequiresToken(t *testing.T) {
	r := newProductTestRouter(t, &stubCatalog{})

	w := postJSON(t, r, "/v1/products", gin.H{
		"name":     "Headphones",
		"price":    99.9,
		"category": "Electronics",
		"image":    "https://cdn.example.com/p1.jpg",
	}, "")

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestProductMutationRequiresAdminRole(t *testing.T) {
	r := newProductTestRouter(t, &stubCatalog{})

	body := gin.H{
		"name":     "Headphones",
		"price":    99.9,
		"category": "Electronics",
		"image":    "https://cdn.example.com/p1.jpg",
	}

	userToken, err := utils.GenerateJWT("user-1", "sarah@example.com", "user", 1)
	require.NoError(t, err)
	w := postJSON(t, r, "/v1/products", body, userToken)
	assert.Equal(t, http.StatusForbidden, w.Code)

	adminToken, err := utils.GenerateJWT("admin-1", "admin@storefront.local", "admin", 1)
	require.NoError(t, err)
	w = postJSON(t, r, "/v1/products", body, adminToken)
	require.Equal(t, http.StatusCreated, w.Code)

	data := decodeResponse(t, w).Data.(map[string]interface{})
	product := data["product"].(map[string]interface{})
	assert.Equal(t, "Headphones", product["name"])
}

func TestDeleteProductMissingIs404(t *testing.T) {
	r := newProductTestRouter(t, &stubCatalog{})

	adminToken, err := utils.GenerateJWT("admin-1", "admin@storefront.local", "admin", 1)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodDelete, "/v1/products/missing", nil)
	req.Header.Set("Authorization", "Bearer "+adminToken)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}
