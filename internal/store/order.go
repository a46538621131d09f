// internal/store/order.go
package store

import (
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/shopora/storefront-backend/internal/models"
	"github.com/shopora/storefront-backend/internal/persist"
)

// Orders records checkout events as immutable receipts, scoped per user.
type Orders struct {
	mu        sync.Mutex
	orders    []models.Order
	snapshots persist.Store
	log       *logrus.Logger
}

type orderSnapshot struct {
	Orders []models.Order `json:"orders"`
}

func NewOrders(snapshots persist.Store, log *logrus.Logger) *Orders {
	o := &Orders{snapshots: snapshots, log: log}

	var snap orderSnapshot
	switch err := snapshots.Load(persist.NamespaceOrders, &snap); err {
	case nil:
		for _, order := range snap.Orders {
			if order.ID != "" && order.UserID != "" {
				o.orders = append(o.orders, order)
			}
		}
		if dropped := len(snap.Orders) - len(o.orders); dropped > 0 {
			log.WithField("dropped", dropped).Warn("Discarded stale orders from snapshot")
		}
	case persist.ErrNotFound:
	default:
		log.WithError(err).Warn("Failed to load order snapshot, starting empty")
	}
	return o
}

// Add creates a pending order from a snapshot of the given line items. The
// items are deep-copied: later cart mutations must not alter the receipt.
func (o *Orders) Add(userID string, items []models.CartItem, total float64) (models.Order, error) {
	if userID == "" || len(items) == 0 {
		return models.Order{}, ErrEmptyOrder
	}

	order := models.Order{
		ID:        compositeID("ORD"),
		UserID:    userID,
		Items:     models.CloneItems(items),
		Total:     total,
		Status:    models.OrderStatusPending,
		CreatedAt: time.Now().UTC(),
	}

	o.mu.Lock()
	defer o.mu.Unlock()
	o.orders = append([]models.Order{order}, o.orders...)
	o.persistLocked()
	return order.Clone(), nil
}

// ForUser returns a user's orders, newest first.
func (o *Orders) ForUser(userID string) []models.Order {
	o.mu.Lock()
	defer o.mu.Unlock()

	var out []models.Order
	for _, order := range o.orders {
		if order.UserID == userID {
			out = append(out, order.Clone())
		}
	}
	return out
}

// Get looks up an order by id for its owner. A mismatched requester gets
// ErrOrderNotFound rather than a hint that the order exists.
func (o *Orders) Get(userID, orderID string) (models.Order, error) {
	o.mu.Lock()
	defer o.mu.Unlock()

	for _, order := range o.orders {
		if order.ID == orderID && order.UserID == userID {
			return order.Clone(), nil
		}
	}
	return models.Order{}, ErrOrderNotFound
}

// All returns every order, newest first. Admin surface only.
func (o *Orders) All() []models.Order {
	o.mu.Lock()
	defer o.mu.Unlock()

	out := make([]models.Order, 0, len(o.orders))
	for _, order := range o.orders {
		out = append(out, order.Clone())
	}
	return out
}

func (o *Orders) persistLocked() {
	if err := o.snapshots.Save(persist.NamespaceOrders, orderSnapshot{Orders: o.orders}); err != nil {
		o.log.WithError(err).Warn("Failed to persist order snapshot")
	}
}
