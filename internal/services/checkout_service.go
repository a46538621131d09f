// internal/services/checkout_service.go
package services

import (
	"context"
	"errors"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/shopora/storefront-backend/internal/models"
	"github.com/shopora/storefront-backend/internal/store"
)

var ErrCartEmpty = errors.New("cart is empty")

// CheckoutService turns a cart into an order. Payment is a simulated
// settlement delay; no real processor is involved.
type CheckoutService struct {
	carts  *store.CartManager
	orders *store.Orders
	delay  time.Duration
	log    *logrus.Logger
}

func NewCheckoutService(carts *store.CartManager, orders *store.Orders, delay time.Duration, log *logrus.Logger) *CheckoutService {
	return &CheckoutService{
		carts:  carts,
		orders: orders,
		delay:  delay,
		log:    log,
	}
}

// Checkout snapshots the user's valid cart items into a pending order and
// then clears the cart. The two steps are deliberately independent: a crash
// in between leaves either an order without a cleared cart or vice versa.
func (s *CheckoutService) Checkout(ctx context.Context, userID string) (models.Order, error) {
	cart := s.carts.ForUser(userID)

	items := cart.Items()
	if len(items) == 0 {
		return models.Order{}, ErrCartEmpty
	}
	total := cart.TotalPrice()

	// Simulated payment settlement.
	if s.delay > 0 {
		select {
		case <-ctx.Done():
			return models.Order{}, ctx.Err()
		case <-time.After(s.delay):
		}
	}

	order, err := s.orders.Add(userID, items, total)
	if err != nil {
		return models.Order{}, err
	}

	cart.Clear()

	s.log.WithFields(logrus.Fields{
		"order_id": order.ID,
		"user_id":  userID,
		"total":    order.Total,
	}).Info("Order placed")
	return order, nil
}
