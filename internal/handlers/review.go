// internal/handlers/review.go
package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/shopora/storefront-backend/internal/i18n"
	"github.com/shopora/storefront-backend/internal/services"
	"github.com/shopora/storefront-backend/internal/store"
	"github.com/shopora/storefront-backend/internal/utils"
)

type ReviewHandler struct {
	reviews *store.Reviews
	catalog Catalog
	auth    *store.Auth
}

func NewReviewHandler(reviews *store.Reviews, catalog Catalog, auth *store.Auth) *ReviewHandler {
	return &ReviewHandler{
		reviews: reviews,
		catalog: catalog,
		auth:    auth,
	}
}

type CreateReviewRequest struct {
	Rating  int    `json:"rating" validate:"required,gte=1,lte=5"`
	Comment string `json:"comment" validate:"max=2000"`
}

// GET /products/:id/reviews
//
// The rating block keeps the catalog's seeded figures separate from the
// live ones computed over submitted reviews, so clients can choose which
// to render.
func (h *ReviewHandler) GetProductReviews(c *gin.Context) {
	productID := c.Param("id")

	product, err := h.catalog.GetProduct(productID)
	if err != nil {
		if errors.Is(err, services.ErrProductNotFound) {
			utils.NotFoundResponse(c, "product")
			return
		}
		utils.InternalErrorResponse(c, "failed to fetch product")
		return
	}

	reviews := h.reviews.ByProduct(productID)

	utils.SuccessResponse(c, gin.H{
		"reviews": reviews,
		"rating": gin.H{
			"seeded": gin.H{
				"rating":      product.Rating,
				"reviewCount": product.ReviewCount,
			},
			"live": gin.H{
				"average": h.reviews.AverageRating(productID),
				"count":   h.reviews.Count(productID),
			},
		},
	})
}

// POST /products/:id/reviews
func (h *ReviewHandler) CreateReview(c *gin.Context) {
	lang := utils.GetLangFromContext(c)
	productID := c.Param("id")

	userID, ok := utils.GetUserIDFromContext(c)
	if !ok {
		utils.UnauthorizedResponse(c, "")
		return
	}

	var req CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyValidationInvalid, "input"), err.Error())
		return
	}
	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(&req)); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors)
		return
	}

	if _, err := h.catalog.GetProduct(productID); err != nil {
		if errors.Is(err, services.ErrProductNotFound) {
			utils.NotFoundResponse(c, "product")
			return
		}
		utils.InternalErrorResponse(c, "failed to fetch product")
		return
	}

	user, err := h.auth.GetUser(userID)
	if err != nil {
		utils.UnauthorizedResponse(c, "")
		return
	}

	review, ok := h.reviews.Add(productID, userID, user.Name, req.Rating, req.Comment)
	if !ok {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyValidationInvalid, "review"), nil)
		return
	}

	utils.CreatedResponse(c, gin.H{
		"message": i18n.T(lang, i18n.KeyReviewAdded),
		"review":  review,
	})
}
