// internal/i18n/keys.go
package i18n

// Translation keys constants
const (
	// Authentication
	KeyAuthRequired           = "auth.required"
	KeyAuthInvalidToken       = "auth.invalid_token"
	KeyAuthTokenExpired       = "auth.token_expired"
	KeyAuthInvalidCredentials = "auth.invalid_credentials"
	KeyAuthEmailTaken         = "auth.email_taken"
	KeyAuthLoginSuccess       = "auth.login_success"
	KeyAuthLogoutSuccess      = "auth.logout_success"
	KeyAuthRegisterSuccess    = "auth.register_success"

	// Users
	KeyUserNotFound  = "user.not_found"
	KeyUserCreated   = "user.created"
	KeyUserUpdated   = "user.updated"
	KeyUserDeleted   = "user.deleted"
	KeyUserProtected = "user.protected"

	// Products
	KeyProductCreated    = "product.created"
	KeyProductUpdated    = "product.updated"
	KeyProductDeleted    = "product.deleted"
	KeyProductNotFound   = "product.not_found"
	KeyProductIDRequired = "product.id_required"

	// Cart
	KeyCartItemAdded   = "cart.item_added"
	KeyCartItemRemoved = "cart.item_removed"
	KeyCartCleared     = "cart.cleared"
	KeyCartEmpty       = "cart.empty"

	// Orders
	KeyOrderPlaced   = "order.placed"
	KeyOrderNotFound = "order.not_found"

	// Reviews
	KeyReviewAdded    = "review.added"
	KeyReviewDeleted  = "review.deleted"
	KeyReviewNotFound = "review.not_found"

	// Wishlist
	KeyWishlistUpdated = "wishlist.updated"
	KeyWishlistCleared = "wishlist.cleared"

	// Admin
	KeyAdminAccessDenied = "admin.access_denied"

	// Validation
	KeyValidationInvalid = "validation.invalid"
)
