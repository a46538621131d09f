// internal/handlers/cart.go
package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/shopora/storefront-backend/internal/i18n"
	"github.com/shopora/storefront-backend/internal/services"
	"github.com/shopora/storefront-backend/internal/store"
	"github.com/shopora/storefront-backend/internal/utils"
)

type CartHandler struct {
	carts    *store.CartManager
	catalog  Catalog
	checkout *services.CheckoutService
}

func NewCartHandler(carts *store.CartManager, catalog Catalog, checkout *services.CheckoutService) *CartHandler {
	return &CartHandler{
		carts:    carts,
		catalog:  catalog,
		checkout: checkout,
	}
}

type AddCartItemRequest struct {
	ProductID string `json:"productId" validate:"required"`
	Quantity  int    `json:"quantity" validate:"omitempty,gt=0"`
}

type UpdateCartItemRequest struct {
	Quantity *int `json:"quantity" validate:"required,gte=0"`
}

func cartPayload(cart *store.Cart) gin.H {
	return gin.H{
		"items":      cart.Items(),
		"totalItems": cart.TotalItems(),
		"totalPrice": cart.TotalPrice(),
	}
}

// GET /cart
func (h *CartHandler) GetCart(c *gin.Context) {
	userID, _ := utils.GetUserIDFromContext(c)
	cart := h.carts.ForUser(userID)

	utils.SuccessResponse(c, cartPayload(cart))
}

// POST /cart/items
func (h *CartHandler) AddItem(c *gin.Context) {
	lang := utils.GetLangFromContext(c)
	userID, _ := utils.GetUserIDFromContext(c)

	var req AddCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyValidationInvalid, "input"), err.Error())
		return
	}
	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(&req)); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors)
		return
	}
	if req.Quantity == 0 {
		req.Quantity = 1
	}

	product, err := h.catalog.GetProduct(req.ProductID)
	if err != nil {
		if errors.Is(err, services.ErrProductNotFound) {
			utils.NotFoundResponse(c, "product")
			return
		}
		utils.InternalErrorResponse(c, "failed to fetch product")
		return
	}

	cart := h.carts.ForUser(userID)
	cart.AddItem(*product, req.Quantity)

	payload := cartPayload(cart)
	payload["message"] = i18n.T(lang, i18n.KeyCartItemAdded)
	utils.SuccessResponse(c, payload)
}

// PUT /cart/items/:productId
func (h *CartHandler) UpdateItem(c *gin.Context) {
	lang := utils.GetLangFromContext(c)
	userID, _ := utils.GetUserIDFromContext(c)
	productID := c.Param("productId")

	var req UpdateCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyValidationInvalid, "input"), err.Error())
		return
	}
	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(&req)); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors)
		return
	}

	cart := h.carts.ForUser(userID)
	cart.UpdateQuantity(productID, *req.Quantity)

	utils.SuccessResponse(c, cartPayload(cart))
}

// DELETE /cart/items/:productId
func (h *CartHandler) RemoveItem(c *gin.Context) {
	lang := utils.GetLangFromContext(c)
	userID, _ := utils.GetUserIDFromContext(c)
	productID := c.Param("productId")

	cart := h.carts.ForUser(userID)
	cart.RemoveItem(productID)

	payload := cartPayload(cart)
	payload["message"] = i18n.T(lang, i18n.KeyCartItemRemoved)
	utils.SuccessResponse(c, payload)
}

// DELETE /cart
func (h *CartHandler) ClearCart(c *gin.Context) {
	lang := utils.GetLangFromContext(c)
	userID, _ := utils.GetUserIDFromContext(c)

	h.carts.ForUser(userID).Clear()

	utils.SuccessResponse(c, gin.H{
		"message": i18n.T(lang, i18n.KeyCartCleared),
	})
}

// POST /cart/checkout
func (h *CartHandler) Checkout(c *gin.Context) {
	lang := utils.GetLangFromContext(c)
	userID, _ := utils.GetUserIDFromContext(c)

	order, err := h.checkout.Checkout(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, services.ErrCartEmpty) {
			utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyCartEmpty), nil)
			return
		}
		utils.InternalErrorResponse(c, "checkout failed")
		return
	}

	utils.CreatedResponse(c, gin.H{
		"message": i18n.T(lang, i18n.KeyOrderPlaced),
		"order":   order,
	})
}
