// internal/handlers/wishlist.go
package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/shopora/storefront-backend/internal/i18n"
	"github.com/shopora/storefront-backend/internal/services"
	"github.com/shopora/storefront-backend/internal/store"
	"github.com/shopora/storefront-backend/internal/utils"
)

type WishlistHandler struct {
	wishlist *store.Wishlist
	catalog  Catalog
}

func NewWishlistHandler(wishlist *store.Wishlist, catalog Catalog) *WishlistHandler {
	return &WishlistHandler{
		wishlist: wishlist,
		catalog:  catalog,
	}
}

type ToggleWishlistRequest struct {
	ProductID string `json:"productId" validate:"required"`
}

// GET /wishlist
func (h *WishlistHandler) GetWishlist(c *gin.Context) {
	userID, _ := utils.GetUserIDFromContext(c)

	utils.SuccessResponse(c, gin.H{
		"items": h.wishlist.ForUser(userID),
		"count": h.wishlist.Count(userID),
	})
}

// POST /wishlist/toggle
func (h *WishlistHandler) Toggle(c *gin.Context) {
	lang := utils.GetLangFromContext(c)
	userID, _ := utils.GetUserIDFromContext(c)

	var req ToggleWishlistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyValidationInvalid, "input"), err.Error())
		return
	}
	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(&req)); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors)
		return
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

	h.wishlist.Toggle(userID, *product)

	utils.SuccessResponse(c, gin.H{
		"message":    i18n.T(lang, i18n.KeyWishlistUpdated),
		"inWishlist": h.wishlist.Contains(userID, req.ProductID),
		"count":      h.wishlist.Count(userID),
	})
}

// DELETE /wishlist/:productId
func (h *WishlistHandler) Remove(c *gin.Context) {
	lang := utils.GetLangFromContext(c)
	userID, _ := utils.GetUserIDFromContext(c)
	productID := c.Param("productId")

	h.wishlist.Remove(userID, productID)

	utils.SuccessResponse(c, gin.H{
		"message": i18n.T(lang, i18n.KeyWishlistUpdated),
		"count":   h.wishlist.Count(userID),
	})
}

// DELETE /wishlist
func (h *WishlistHandler) Clear(c *gin.Context) {
	lang := utils.GetLangFromContext(c)
	userID, _ := utils.GetUserIDFromContext(c)

	h.wishlist.Clear(userID)

	utils.SuccessResponse(c, gin.H{
		"message": i18n.T(lang, i18n.KeyWishlistCleared),
	})
}
