// internal/handlers/auth.go
package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/shopora/storefront-backend/internal/i18n"
	"github.com/shopora/storefront-backend/internal/store"
	"github.com/shopora/storefront-backend/internal/utils"
)

type AuthHandler struct {
	auth   *store.Auth
	jwtTTL int
}

func NewAuthHandler(auth *store.Auth, jwtTTLHours int) *AuthHandler {
	return &AuthHandler{
		auth:   auth,
		jwtTTL: jwtTTLHours,
	}
}

type RegisterRequest struct {
	Name     string `json:"name" validate:"required,min=2,max=100"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// POST /auth/register
func (h *AuthHandler) Register(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyValidationInvalid, "input"), err.Error())
		return
	}
	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(&req)); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors)
		return
	}

	user, err := h.auth.Signup(req.Name, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, store.ErrEmailTaken) {
			utils.ConflictResponse(c, i18n.T(lang, i18n.KeyAuthEmailTaken))
			return
		}
		utils.InternalErrorResponse(c, err.Error())
		return
	}

	token, err := utils.GenerateJWT(user.ID, user.Email, string(user.Role), h.jwtTTL)
	if err != nil {
		utils.InternalErrorResponse(c, "failed to generate access token")
		return
	}

	utils.CreatedResponse(c, gin.H{
		"message":      i18n.T(lang, i18n.KeyAuthRegisterSuccess),
		"user":         user,
		"access_token": token,
		"token_type":   "Bearer",
		"expires_in":   h.jwtTTL * 3600,
	})
}

// POST /auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyValidationInvalid, "input"), err.Error())
		return
	}
	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(&req)); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors)
		return
	}

	user, err := h.auth.Login(req.Email, req.Password)
	if err != nil {
		utils.ErrorResponse(c, 401, "UNAUTHORIZED", i18n.T(lang, i18n.KeyAuthInvalidCredentials), nil)
		return
	}

	token, err := utils.GenerateJWT(user.ID, user.Email, string(user.Role), h.jwtTTL)
	if err != nil {
		utils.InternalErrorResponse(c, "failed to generate access token")
		return
	}

	utils.SuccessResponse(c, gin.H{
		"message":      i18n.T(lang, i18n.KeyAuthLoginSuccess),
		"user":         user,
		"access_token": token,
		"token_type":   "Bearer",
		"expires_in":   h.jwtTTL * 3600,
	})
}

// POST /auth/logout
func (h *AuthHandler) Logout(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	h.auth.Logout()

	utils.SuccessResponse(c, gin.H{
		"message": i18n.T(lang, i18n.KeyAuthLogoutSuccess),
	})
}

// GET /auth/me
func (h *AuthHandler) GetProfile(c *gin.Context) {
	userID, exists := utils.GetUserIDFromContext(c)
	if !exists {
		utils.UnauthorizedResponse(c, "")
		return
	}

	user, err := h.auth.GetUser(userID)
	if err != nil {
		utils.NotFoundResponse(c, "user")
		return
	}

	utils.SuccessResponse(c, gin.H{
		"user": user,
	})
}
