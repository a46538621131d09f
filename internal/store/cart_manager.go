// internal/store/cart_manager.go
package store

import (
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/shopora/storefront-backend/internal/persist"
)

// CartManager hands out one Cart per user. Each cart persists under its own
// namespace so sessions survive restarts independently.
type CartManager struct {
	mu        sync.Mutex
	carts     map[string]*Cart
	snapshots persist.Store
	log       *logrus.Logger
}

func NewCartManager(snapshots persist.Store, log *logrus.Logger) *CartManager {
	return &CartManager{
		carts:     make(map[string]*Cart),
		snapshots: snapshots,
		log:       log,
	}
}

func (m *CartManager) ForUser(userID string) *Cart {
	m.mu.Lock()
	defer m.mu.Unlock()

	if cart, ok := m.carts[userID]; ok {
		return cart
	}
	cart := NewCart(persist.NamespaceCart+":"+userID, m.snapshots, m.log)
	m.carts[userID] = cart
	return cart
}
