// internal/store/order_test.go
package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shopora/storefront-backend/internal/models"
	"github.com/shopora/storefront-backend/internal/persist"
)

func TestOrdersAddCreatesPendingReceipt(t *testing.T) {
	o := NewOrders(persist.NewMemoryStore(), testLogger())

	items := []models.CartItem{{Product: testProduct("p1", 10.0, 5), Quantity: 2}}
	order, err := o.Add("u1", items, 20.0)
	require.NoError(t, err)

	assert.NotEmpty(t, order.ID)
	assert.Equal(t, "u1", order.UserID)
	assert.Equal(t, models.OrderStatusPending, order.Status)
	assert.Equal(t, 20.0, order.Total)
	assert.False(t, order.CreatedAt.IsZero())
}

func TestOrdersAddRejectsEmptyOrder(t *testing.T) {
	o := NewOrders(persist.NewMemoryStore(), testLogger())

	_, err := o.Add("u1", nil, 0)
	assert.ErrorIs(t, err, ErrEmptyOrder)

	_, err = o.Add("", []models.CartItem{{Product: testProduct("p1", 10.0, 5), Quantity: 1}}, 10.0)
	assert.ErrorIs(t, err, ErrEmptyOrder)
}

func TestOrdersReceiptIsImmutable(t *testing.T) {
	o := NewOrders(persist.NewMemoryStore(), testLogger())

	items := []models.CartItem{{Product: testProduct("p1", 10.0, 5), Quantity: 2}}
	order, err := o.Add("u1", items, 20.0)
	require.NoError(t, err)

	// Mutating the source slice after the fact must not alter the receipt.
	items[0].Quantity = 99
	items[0].Product.Price = 0

	stored, err := o.Get("u1", order.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, stored.Items[0].Quantity)
	assert.Equal(t, 10.0, stored.Items[0].Product.Price)
}

func TestOrdersGetIsOwnerScoped(t *testing.T) {
	o := NewOrders(persist.NewMemoryStore(), testLogger())

	order, err := o.Add("u1", []models.CartItem{{Product: testProduct("p1", 10.0, 5), Quantity: 1}}, 10.0)
	require.NoError(t, err)

	_, err = o.Get("u1", order.ID)
	assert.NoError(t, err)

	// Someone else's lookup reads as not found, not as forbidden.
	_, err = o.Get("u2", order.ID)
	assert.ErrorIs(t, err, ErrOrderNotFound)

	_, err = o.Get("u1", "missing")
	assert.ErrorIs(t, err, ErrOrderNotFound)
}

func TestOrdersForUserNewestFirst(t *testing.T) {
	o := NewOrders(persist.NewMemoryStore(), testLogger())

	items := []models.CartItem{{Product: testProduct("p1", 10.0, 5), Quantity: 1}}
	first, err := o.Add("u1", items, 10.0)
	require.NoError(t, err)
	second, err := o.Add("u1", items, 10.0)
	require.NoError(t, err)
	_, err = o.Add("u2", items, 10.0)
	require.NoError(t, err)

	orders := o.ForUser("u1")
	require.Len(t, orders, 2)
	assert.Equal(t, second.ID, orders[0].ID)
	assert.Equal(t, first.ID, orders[1].ID)

	assert.Len(t, o.All(), 3)
}

func TestOrdersSurviveReload(t *testing.T) {
	snapshots := persist.NewMemoryStore()

	o := NewOrders(snapshots, testLogger())
	order, err := o.Add("u1", []models.CartItem{{Product: testProduct("p1", 10.0, 5), Quantity: 1}}, 10.0)
	require.NoError(t, err)

	reloaded := NewOrders(snapshots, testLogger())
	stored, err := reloaded.Get("u1", order.ID)
	require.NoError(t, err)
	assert.Equal(t, order.Total, stored.Total)
}
