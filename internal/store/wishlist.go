// internal/store/wishlist.go
package store

import (
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/shopora/storefront-backend/internal/models"
	"github.com/shopora/storefront-backend/internal/persist"
)

// Wishlist tracks liked products per user. At most one entry exists per
// (userId, productId) pair.
type Wishlist struct {
	mu        sync.Mutex
	entries   []models.WishlistEntry
	snapshots persist.Store
	log       *logrus.Logger
}

type wishlistSnapshot struct {
	Items []models.WishlistEntry `json:"items"`
}

func NewWishlist(snapshots persist.Store, log *logrus.Logger) *Wishlist {
	w := &Wishlist{snapshots: snapshots, log: log}

	var snap wishlistSnapshot
	switch err := snapshots.Load(persist.NamespaceWishlist, &snap); err {
	case nil:
		for _, entry := range snap.Items {
			if entry.UserID != "" && entry.Product.ID != "" {
				w.entries = append(w.entries, entry)
			}
		}
		if dropped := len(snap.Items) - len(w.entries); dropped > 0 {
			log.WithField("dropped", dropped).Warn("Discarded stale wishlist entries from snapshot")
		}
	case persist.ErrNotFound:
	default:
		log.WithError(err).Warn("Failed to load wishlist snapshot, starting empty")
	}
	return w
}

// Add records a liked product. Duplicates and malformed input are dropped
// silently.
func (w *Wishlist) Add(userID string, product models.Product) {
	if userID == "" || product.ID == "" {
		return
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	if w.containsLocked(userID, product.ID) {
		return
	}
	w.entries = append(w.entries, models.WishlistEntry{UserID: userID, Product: product.Clone()})
	w.persistLocked()
}

func (w *Wishlist) Remove(userID, productID string) {
	w.mu.Lock()
	defer w.mu.Unlock()

	kept := make([]models.WishlistEntry, 0, len(w.entries))
	for _, entry := range w.entries {
		if entry.UserID == userID && entry.Product.ID == productID {
			continue
		}
		kept = append(kept, entry)
	}
	w.entries = kept
	w.persistLocked()
}

// Toggle adds the product when absent and removes it when present. Two calls
// in a row restore the original membership.
func (w *Wishlist) Toggle(userID string, product models.Product) {
	if w.Contains(userID, product.ID) {
		w.Remove(userID, product.ID)
	} else {
		w.Add(userID, product)
	}
}

func (w *Wishlist) Contains(userID, productID string) bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.containsLocked(userID, productID)
}

func (w *Wishlist) containsLocked(userID, productID string) bool {
	for _, entry := range w.entries {
		if entry.UserID == userID && entry.Product.ID == productID {
			return true
		}
	}
	return false
}

// ForUser projects a user's entries to products, in insertion order.
func (w *Wishlist) ForUser(userID string) []models.Product {
	w.mu.Lock()
	defer w.mu.Unlock()

	var products []models.Product
	for _, entry := range w.entries {
		if entry.UserID == userID {
			products = append(products, entry.Product.Clone())
		}
	}
	return products
}

func (w *Wishlist) Count(userID string) int {
	w.mu.Lock()
	defer w.mu.Unlock()

	n := 0
	for _, entry := range w.entries {
		if entry.UserID == userID {
			n++
		}
	}
	return n
}

// Clear removes all of one user's entries; other users are untouched.
func (w *Wishlist) Clear(userID string) {
	w.mu.Lock()
	defer w.mu.Unlock()

	kept := make([]models.WishlistEntry, 0, len(w.entries))
	for _, entry := range w.entries {
		if entry.UserID != userID {
			kept = append(kept, entry)
		}
	}
	w.entries = kept
	w.persistLocked()
}

func (w *Wishlist) persistLocked() {
	if err := w.snapshots.Save(persist.NamespaceWishlist, wishlistSnapshot{Items: w.entries}); err != nil {
		w.log.WithError(err).Warn("Failed to persist wishlist snapshot")
	}
}
