// internal/persist/persist.go
package persist

import "errors"

// ErrNotFound is returned by Load when a namespace has no snapshot yet.
var ErrNotFound = errors.New("snapshot not found")

// Snapshot namespaces. Each holds a JSON snapshot of exactly the durable
// fields of one store; UI-only flags are never persisted.
const (
	NamespaceAuth     = "auth-storage"
	NamespaceCart     = "cart-storage"
	NamespaceOrders   = "order-storage"
	NamespaceReviews  = "review-storage"
	NamespaceWishlist = "wishlist-storage"
	NamespaceProducts = "product-storage"
)

// Store is a namespaced key-value snapshot store. Save is best-effort: callers
// treat failures as non-fatal and keep serving from memory.
type Store interface {
	Load(namespace string, v interface{}) error
	Save(namespace string, v interface{}) error
	Delete(namespace string) error
}
