// internal/handlers/order_test.go
package handlers

import (
	"io"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shopora/storefront-backend/internal/i18n"
	"github.com/shopora/storefront-backend/internal/middleware"
	"github.com/shopora/storefront-backend/internal/models"
	"github.com/shopora/storefront-backend/internal/persist"
	"github.com/shopora/storefront-backend/internal/store"
	"github.com/shopora/storefront-backend/internal/utils"
)

func newOrderTestRouter(t *testing.T) (*gin.Engine, *store.Orders) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	require.NoError(t, i18n.Initialize())
	utils.SetJWTSecret("test-secret")

	log := logrus.New()
	log.SetOutput(io.Discard)

	orders := store.NewOrders(persist.NewMemoryStore(), log)
	handler := NewOrderHandler(orders)

	r := gin.New()
	g := r.Group("/v1/orders", middleware.AuthRequired())
	g.GET("", handler.GetOrders)
	g.GET("/:id", handler.GetOrder)
	return r, orders
}

func placeTestOrder(t *testing.T, orders *store.Orders, userID string) models.Order {
	t.Helper()
	items := []models.CartItem{{
		Product: models.Product{
			ID:    "p1",
			Name:  "Headphones",
			Price: 99.9,
			Image: "https://cdn.example.com/p1.jpg",
		},
		Quantity: 1,
	}}
	order, err := orders.Add(userID, items, 99.9)
	require.NoError(t, err)
	return order
}

func TestGetOrdersRequiresToken(t *testing.T) {
	r, _ := newOrderTestRouter(t)

	w := getPath(t, r, "/v1/orders", "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestGetOrderForOwner(t *testing.T) {
	r, orders := newOrderTestRouter(t)
	order := placeTestOrder(t, orders, "user-1")

	token, err := utils.GenerateJWT("user-1", "sarah@example.com", "user", 1)
	require.NoError(t, err)

	w := getPath(t, r, "/v1/orders/"+order.ID, token)
	require.Equal(t, http.StatusOK, w.Code)

	data := decodeResponse(t, w).Data.(map[string]interface{})
	got := data["order"].(map[string]interface{})
	assert.Equal(t, order.ID, got["id"])
	assert.Equal(t, "user-1", got["userId"])
}

func TestGetOrderOwnerMismatchIs404(t *testing.T) {
	r, orders := newOrderTestRouter(t)
	order := placeTestOrder(t, orders, "user-1")

	// Existing order, wrong requester: the response must not reveal it exists.
	token, err := utils.GenerateJWT("user-2", "michael@example.com", "user", 1)
	require.NoError(t, err)

	w := getPath(t, r, "/v1/orders/"+order.ID, token)
	require.Equal(t, http.StatusNotFound, w.Code)
	resp := decodeResponse(t, w)
	assert.False(t, resp.Success)
	require.NotNil(t, resp.Error)
	assert.Equal(t, "NOT_FOUND", resp.Error.Code)
}

func TestGetOrdersScopedToRequester(t *testing.T) {
	r, orders := newOrderTestRouter(t)
	placeTestOrder(t, orders, "user-1")
	placeTestOrder(t, orders, "user-2")

	token, err := utils.GenerateJWT("user-1", "sarah@example.com", "user", 1)
	require.NoError(t, err)

	w := getPath(t, r, "/v1/orders", token)
	require.Equal(t, http.StatusOK, w.Code)

	data := decodeResponse(t, w).Data.(map[string]interface{})
	assert.Equal(t, float64(1), data["count"])
	list := data["orders"].([]interface{})
	require.Len(t, list, 1)
	assert.Equal(t, "user-1", list[0].(map[string]interface{})["userId"])
}
