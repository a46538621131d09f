// internal/store/cart.go
package store

import (
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/shopora/storefront-backend/internal/models"
	"github.com/shopora/storefront-backend/internal/persist"
)

// Cart holds one session's prospective purchase list and derives totals.
// Mutations are synchronous; snapshot writes are best-effort and never fail
// the caller.
type Cart struct {
	mu        sync.Mutex
	namespace string
	items     []models.CartItem
	open      bool
	snapshots persist.Store
	log       *logrus.Logger
}

// Only the item list is persisted; the drawer open/closed flag is UI state.
type cartSnapshot struct {
	Items []models.CartItem `json:"items"`
}

func NewCart(namespace string, snapshots persist.Store, log *logrus.Logger) *Cart {
	c := &Cart{
		namespace: namespace,
		snapshots: snapshots,
		log:       log,
	}

	var snap cartSnapshot
	switch err := snapshots.Load(namespace, &snap); err {
	case nil:
		c.items = validItems(snap.Items)
		if dropped := len(snap.Items) - len(c.items); dropped > 0 {
			log.WithFields(logrus.Fields{
				"namespace": namespace,
				"dropped":   dropped,
			}).Warn("Discarded stale cart items from snapshot")
		}
	case persist.ErrNotFound:
		// First session, empty cart.
	default:
		log.WithError(err).WithField("namespace", namespace).
			Warn("Failed to load cart snapshot, starting empty")
	}
	return c
}

func validItems(items []models.CartItem) []models.CartItem {
	out := make([]models.CartItem, 0, len(items))
	for _, item := range items {
		if item.Valid() {
			out = append(out, item)
		}
	}
	return out
}

// AddItem inserts a line item or increments an existing one, clamping the
// resulting quantity to the product's stock. Malformed products are dropped
// silently: stale persisted data is expected and must not crash the caller.
func (c *Cart) AddItem(product models.Product, quantity int) {
	if !product.Sellable() {
		return
	}
	if quantity < 1 {
		quantity = 1
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	// Stale entries are purged on every mutation, not just at read time.
	c.items = validItems(c.items)

	for i := range c.items {
		if c.items[i].Product.ID == product.ID {
			next := c.items[i].Quantity + quantity
			if next > product.Stock {
				next = product.Stock
			}
			if next >= 1 {
				c.items[i].Quantity = next
			}
			c.persistLocked()
			return
		}
	}

	if quantity > product.Stock {
		quantity = product.Stock
	}
	if quantity < 1 {
		// Out of stock, nothing to add.
		return
	}
	c.items = append(c.items, models.CartItem{Product: product.Clone(), Quantity: quantity})
	c.persistLocked()
}

// RemoveItem drops the line item for productId. No-op when absent.
func (c *Cart) RemoveItem(productID string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	kept := make([]models.CartItem, 0, len(c.items))
	for _, item := range c.items {
		if item.Valid() && item.Product.ID != productID {
			kept = append(kept, item)
		}
	}
	c.items = kept
	c.persistLocked()
}

// UpdateQuantity sets the quantity directly. A quantity of zero or less
// removes the item. Unlike AddItem, the direct set is not clamped to stock.
func (c *Cart) UpdateQuantity(productID string, quantity int) {
	if quantity <= 0 {
		c.RemoveItem(productID)
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.items = validItems(c.items)
	for i := range c.items {
		if c.items[i].Product.ID == productID {
			c.items[i].Quantity = quantity
		}
	}
	c.persistLocked()
}

// Clear empties the cart. Called after checkout.
func (c *Cart) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = nil
	c.persistLocked()
}

// Items returns deep copies of the valid line items, in insertion order.
func (c *Cart) Items() []models.CartItem {
	c.mu.Lock()
	defer c.mu.Unlock()
	return models.CloneItems(validItems(c.items))
}

// TotalItems sums quantities across valid items.
func (c *Cart) TotalItems() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	total := 0
	for _, item := range validItems(c.items) {
		total += item.Quantity
	}
	return total
}

// TotalPrice sums price times quantity across valid items.
func (c *Cart) TotalPrice() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()

	total := 0.0
	for _, item := range validItems(c.items) {
		total += item.Product.Price * float64(item.Quantity)
	}
	return total
}

// Drawer visibility. Pure UI flag, never persisted.

func (c *Cart) Open() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.open = true
}

func (c *Cart) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.open = false
}

func (c *Cart) Toggle() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.open = !c.open
}

func (c *Cart) IsOpen() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.open
}

func (c *Cart) persistLocked() {
	if err := c.snapshots.Save(c.namespace, cartSnapshot{Items: c.items}); err != nil {
		c.log.WithError(err).WithField("namespace", c.namespace).
			Warn("Failed to persist cart snapshot")
	}
}
