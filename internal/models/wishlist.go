// internal/models/wishlist.go
package models

// WishlistEntry ties a product snapshot to the user who liked it. At most one
// entry exists per (userId, product.id) pair.
type WishlistEntry struct {
	UserID  string  `json:"userId"`
	Product Product `json:"product"`
}
