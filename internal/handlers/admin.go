// internal/handlers/admin.go
package handlers

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/tealeg/xlsx"

	"github.com/shopora/storefront-backend/internal/i18n"
	"github.com/shopora/storefront-backend/internal/models"
	"github.com/shopora/storefront-backend/internal/store"
	"github.com/shopora/storefront-backend/internal/utils"
)

// AdminHandler backs the management surface: user directory, review and
// order moderation, dashboard counters and the catalog export.
type AdminHandler struct {
	auth    *store.Auth
	reviews *store.Reviews
	orders  *store.Orders
	catalog Catalog
}

func NewAdminHandler(auth *store.Auth, reviews *store.Reviews, orders *store.Orders, catalog Catalog) *AdminHandler {
	return &AdminHandler{
		auth:    auth,
		reviews: reviews,
		orders:  orders,
		catalog: catalog,
	}
}

type CreateUserRequest struct {
	Name     string `json:"name" validate:"required,min=2,max=100"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	Role     string `json:"role" validate:"required,oneof=admin user"`
}

type UpdateUserRequest struct {
	Name     *string `json:"name,omitempty" validate:"omitempty,min=2,max=100"`
	Email    *string `json:"email,omitempty" validate:"omitempty,email"`
	Avatar   *string `json:"avatar,omitempty"`
	Role     *string `json:"role,omitempty" validate:"omitempty,oneof=admin user"`
	Password *string `json:"password,omitempty" validate:"omitempty,min=6"`
}

// GET /admin/users
func (h *AdminHandler) GetUsers(c *gin.Context) {
	users := h.auth.Users()

	utils.SuccessResponse(c, gin.H{
		"users": users,
		"count": len(users),
	})
}

// POST /admin/users
func (h *AdminHandler) CreateUser(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	var req CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyValidationInvalid, "input"), err.Error())
		return
	}
	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(&req)); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors)
		return
	}

	user, err := h.auth.AddUser(req.Name, req.Email, req.Password, models.Role(req.Role))
	if err != nil {
		if errors.Is(err, store.ErrEmailTaken) {
			utils.ConflictResponse(c, i18n.T(lang, i18n.KeyAuthEmailTaken))
			return
		}
		utils.InternalErrorResponse(c, err.Error())
		return
	}

	utils.CreatedResponse(c, gin.H{
		"message": i18n.T(lang, i18n.KeyUserCreated),
		"user":    user,
	})
}

// PUT /admin/users/:id
func (h *AdminHandler) UpdateUser(c *gin.Context) {
	lang := utils.GetLangFromContext(c)
	id := c.Param("id")

	var req UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyValidationInvalid, "input"), err.Error())
		return
	}
	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(&req)); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors)
		return
	}

	updates := store.UserUpdate{
		Name:     req.Name,
		Email:    req.Email,
		Avatar:   req.Avatar,
		Password: req.Password,
	}
	if req.Role != nil {
		role := models.Role(*req.Role)
		updates.Role = &role
	}

	user, err := h.auth.Update(id, updates)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrUserNotFound):
			utils.NotFoundResponse(c, "user")
		case errors.Is(err, store.ErrProtectedUser):
			utils.ForbiddenResponse(c, i18n.T(lang, i18n.KeyUserProtected))
		case errors.Is(err, store.ErrEmailTaken):
			utils.ConflictResponse(c, i18n.T(lang, i18n.KeyAuthEmailTaken))
		default:
			utils.InternalErrorResponse(c, err.Error())
		}
		return
	}

	utils.SuccessResponse(c, gin.H{
		"message": i18n.T(lang, i18n.KeyUserUpdated),
		"user":    user,
	})
}

// DELETE /admin/users/:id
func (h *AdminHandler) DeleteUser(c *gin.Context) {
	lang := utils.GetLangFromContext(c)
	id := c.Param("id")

	if err := h.auth.Delete(id); err != nil {
		switch {
		case errors.Is(err, store.ErrUserNotFound):
			utils.NotFoundResponse(c, "user")
		case errors.Is(err, store.ErrProtectedUser):
			utils.ForbiddenResponse(c, i18n.T(lang, i18n.KeyUserProtected))
		default:
			utils.InternalErrorResponse(c, err.Error())
		}
		return
	}

	utils.SuccessResponse(c, gin.H{
		"message": i18n.T(lang, i18n.KeyUserDeleted),
	})
}

// GET /admin/reviews
func (h *AdminHandler) GetReviews(c *gin.Context) {
	reviews := h.reviews.All()

	utils.SuccessResponse(c, gin.H{
		"reviews": reviews,
		"count":   len(reviews),
	})
}

// DELETE /admin/reviews/:id
func (h *AdminHandler) DeleteReview(c *gin.Context) {
	lang := utils.GetLangFromContext(c)
	id := c.Param("id")

	if err := h.reviews.Delete(id); err != nil {
		if errors.Is(err, store.ErrReviewNotFound) {
			utils.NotFoundResponse(c, "review")
			return
		}
		utils.InternalErrorResponse(c, err.Error())
		return
	}

	utils.SuccessResponse(c, gin.H{
		"message": i18n.T(lang, i18n.KeyReviewDeleted),
	})
}

// GET /admin/orders
func (h *AdminHandler) GetOrders(c *gin.Context) {
	orders := h.orders.All()

	utils.SuccessResponse(c, gin.H{
		"orders": orders,
		"count":  len(orders),
	})
}

// GET /admin/dashboard
func (h *AdminHandler) GetDashboardStats(c *gin.Context) {
	products, err := h.catalog.AllProducts()
	if err != nil {
		utils.InternalErrorResponse(c, "failed to fetch products")
		return
	}

	orders := h.orders.All()
	var revenue float64
	for _, o := range orders {
		revenue += o.Total
	}

	lowStock := 0
	for _, p := range products {
		if p.Stock > 0 && p.Stock <= 5 {
			lowStock++
		}
	}

	utils.SuccessResponse(c, gin.H{
		"products": gin.H{
			"total":    len(products),
			"lowStock": lowStock,
		},
		"users": gin.H{
			"total": len(h.auth.Users()),
		},
		"orders": gin.H{
			"total":   len(orders),
			"revenue": revenue,
		},
		"reviews": gin.H{
			"total": len(h.reviews.All()),
		},
	})
}

// GET /admin/products/export
func (h *AdminHandler) ExportProducts(c *gin.Context) {
	products, err := h.catalog.AllProducts()
	if err != nil {
		utils.InternalErrorResponse(c, "failed to fetch products")
		return
	}

	file := xlsx.NewFile()
	sheet, err := file.AddSheet("Products")
	if err != nil {
		utils.InternalErrorResponse(c, "failed to create export sheet")
		return
	}

	headers := []string{
		"ID", "Name", "Category", "Price", "OriginalPrice",
		"Stock", "Rating", "ReviewCount", "Tags", "CreatedAt",
	}
	headerRow := sheet.AddRow()
	for _, header := range headers {
		headerRow.AddCell().SetValue(header)
	}

	for _, p := range products {
		row := sheet.AddRow()

		row.AddCell().SetValue(p.ID)
		row.AddCell().SetValue(p.Name)
		row.AddCell().SetValue(p.Category)
		row.AddCell().SetValue(utils.FormatPrice(p.Price))
		if p.OriginalPrice != nil {
			row.AddCell().SetValue(utils.FormatPrice(*p.OriginalPrice))
		} else {
			row.AddCell().SetValue("")
		}
		row.AddCell().SetValue(p.Stock)
		row.AddCell().SetValue(p.Rating)
		row.AddCell().SetValue(p.ReviewCount)
		row.AddCell().SetValue(strings.Join(p.Tags, ","))
		row.AddCell().SetValue(p.CreatedAt.Format("2006-01-02 15:04:05"))
	}

	c.Header("Content-Disposition", "attachment; filename=products.xlsx")
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Transfer-Encoding", "binary")
	c.Header("Expires", "0")

	if err := file.Write(c.Writer); err != nil {
		utils.InternalErrorResponse(c, "failed to write export file")
		return
	}
}
