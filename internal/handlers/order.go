// internal/handlers/order.go
package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/shopora/storefront-backend/internal/store"
	"github.com/shopora/storefront-backend/internal/utils"
)

type OrderHandler struct {
	orders *store.Orders
}

func NewOrderHandler(orders *store.Orders) *OrderHandler {
	return &OrderHandler{orders: orders}
}

// GET /orders
func (h *OrderHandler) GetOrders(c *gin.Context) {
	userID, _ := utils.GetUserIDFromContext(c)

	orders := h.orders.ForUser(userID)

	utils.SuccessResponse(c, gin.H{
		"orders": orders,
		"count":  len(orders),
	})
}

// GET /orders/:id
//
// Lookup is scoped to the requesting user. Orders belonging to someone
// else come back as not found, never as a different error.
func (h *OrderHandler) GetOrder(c *gin.Context) {
	userID, _ := utils.GetUserIDFromContext(c)
	orderID := c.Param("id")

	order, err := h.orders.Get(userID, orderID)
	if err != nil {
		if errors.Is(err, store.ErrOrderNotFound) {
			utils.NotFoundResponse(c, "order")
			return
		}
		utils.InternalErrorResponse(c, "failed to fetch order")
		return
	}

	utils.SuccessResponse(c, gin.H{
		"order": order,
	})
}
