// internal/store/cart_test.go
package store

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shopora/storefront-backend/internal/models"
	"github.com/shopora/storefront-backend/internal/persist"
)

func newTestCart(t *testing.T) (*Cart, persist.Store) {
	t.Helper()
	snapshots := persist.NewMemoryStore()
	return NewCart(persist.NamespaceCart+":u1", snapshots, testLogger()), snapshots
}

func TestCartAddItemNewLine(t *testing.T) {
	cart, _ := newTestCart(t)

	cart.AddItem(testProduct("p1", 10.0, 5), 2)

	items := cart.Items()
	require.Len(t, items, 1)
	assert.Equal(t, "p1", items[0].Product.ID)
	assert.Equal(t, 2, items[0].Quantity)
	assert.Equal(t, 2, cart.TotalItems())
	assert.Equal(t, 20.0, cart.TotalPrice())
}

func TestCartAddItemIncrementsExistingLine(t *testing.T) {
	cart, _ := newTestCart(t)
	p := testProduct("p1", 10.0, 10)

	cart.AddItem(p, 2)
	cart.AddItem(p, 3)

	items := cart.Items()
	require.Len(t, items, 1)
	assert.Equal(t, 5, items[0].Quantity)
}

func TestCartAddItemClampsToStock(t *testing.T) {
	cart, _ := newTestCart(t)
	p := testProduct("p1", 10.0, 5)

	// Incrementing past stock clamps at stock.
	cart.AddItem(p, 3)
	cart.AddItem(p, 4)
	require.Len(t, cart.Items(), 1)
	assert.Equal(t, 5, cart.Items()[0].Quantity)

	// A fresh insert above stock clamps too.
	other := testProduct("p2", 8.0, 2)
	cart.AddItem(other, 9)
	require.Len(t, cart.Items(), 2)
	assert.Equal(t, 2, cart.Items()[1].Quantity)
}

func TestCartAddItemOutOfStock(t *testing.T) {
	cart, _ := newTestCart(t)

	cart.AddItem(testProduct("p1", 10.0, 0), 1)

	assert.Empty(t, cart.Items())
}

func TestCartAddItemRejectsUnsellable(t *testing.T) {
	cart, _ := newTestCart(t)

	cart.AddItem(testProduct("", 10.0, 5), 1)
	cart.AddItem(testProduct("p1", math.NaN(), 5), 1)
	cart.AddItem(testProduct("p2", math.Inf(1), 5), 1)

	assert.Empty(t, cart.Items())
}

func TestCartUpdateQuantityZeroRemoves(t *testing.T) {
	cart, _ := newTestCart(t)
	cart.AddItem(testProduct("p1", 10.0, 5), 2)

	cart.UpdateQuantity("p1", 0)

	assert.Empty(t, cart.Items())
	assert.Equal(t, 0, cart.TotalItems())
}

func TestCartUpdateQuantityIsNotClamped(t *testing.T) {
	cart, _ := newTestCart(t)
	cart.AddItem(testProduct("p1", 10.0, 5), 2)

	// Direct sets bypass the stock clamp, unlike AddItem.
	cart.UpdateQuantity("p1", 50)

	require.Len(t, cart.Items(), 1)
	assert.Equal(t, 50, cart.Items()[0].Quantity)
}

func TestCartUpdateQuantityPurgesStaleItems(t *testing.T) {
	cart, _ := newTestCart(t)
	cart.AddItem(testProduct("p1", 10.0, 5), 1)

	stale := testProduct("p2", 5.0, 5)
	stale.Image = ""
	cart.items = append(cart.items, models.CartItem{Product: stale, Quantity: 1})

	cart.UpdateQuantity("p1", 2)

	cart.mu.Lock()
	defer cart.mu.Unlock()
	require.Len(t, cart.items, 1)
	assert.Equal(t, "p1", cart.items[0].Product.ID)
	assert.Equal(t, 2, cart.items[0].Quantity)
}

func TestCartRemoveItemAbsentIsNoop(t *testing.T) {
	cart, _ := newTestCart(t)
	cart.AddItem(testProduct("p1", 10.0, 5), 1)

	cart.RemoveItem("nope")

	assert.Len(t, cart.Items(), 1)
}

func TestCartTotalsAcrossLines(t *testing.T) {
	cart, _ := newTestCart(t)
	cart.AddItem(testProduct("p1", 10.0, 10), 2)
	cart.AddItem(testProduct("p2", 5.5, 10), 3)

	assert.Equal(t, 5, cart.TotalItems())
	assert.InDelta(t, 36.5, cart.TotalPrice(), 1e-9)
}

func TestCartClear(t *testing.T) {
	cart, _ := newTestCart(t)
	cart.AddItem(testProduct("p1", 10.0, 10), 2)

	cart.Clear()

	assert.Empty(t, cart.Items())
	assert.Equal(t, 0.0, cart.TotalPrice())
}

func TestCartDrawerFlag(t *testing.T) {
	cart, _ := newTestCart(t)

	assert.False(t, cart.IsOpen())
	cart.Open()
	assert.True(t, cart.IsOpen())
	cart.Toggle()
	assert.False(t, cart.IsOpen())
	cart.Toggle()
	assert.True(t, cart.IsOpen())
	cart.Close()
	assert.False(t, cart.IsOpen())
}

func TestCartSurvivesReload(t *testing.T) {
	snapshots := persist.NewMemoryStore()
	namespace := persist.NamespaceCart + ":u1"

	cart := NewCart(namespace, snapshots, testLogger())
	cart.AddItem(testProduct("p1", 10.0, 10), 2)
	cart.Open()

	reloaded := NewCart(namespace, snapshots, testLogger())
	require.Len(t, reloaded.Items(), 1)
	assert.Equal(t, 2, reloaded.Items()[0].Quantity)

	// The drawer flag is session state, never persisted.
	assert.False(t, reloaded.IsOpen())
}

func TestCartReloadDropsStaleItems(t *testing.T) {
	snapshots := persist.NewMemoryStore()
	namespace := persist.NamespaceCart + ":u1"

	stale := testProduct("p2", 5.0, 10)
	stale.Image = ""
	snap := cartSnapshot{Items: []models.CartItem{
		{Product: testProduct("p1", 10.0, 10), Quantity: 1},
		{Product: stale, Quantity: 3},
	}}
	require.NoError(t, snapshots.Save(namespace, snap))

	cart := NewCart(namespace, snapshots, testLogger())

	items := cart.Items()
	require.Len(t, items, 1)
	assert.Equal(t, "p1", items[0].Product.ID)
}

func TestCartItemsAreDeepCopies(t *testing.T) {
	cart, _ := newTestCart(t)
	cart.AddItem(testProduct("p1", 10.0, 10), 2)

	items := cart.Items()
	items[0].Quantity = 99
	items[0].Product.Price = 0

	assert.Equal(t, 2, cart.Items()[0].Quantity)
	assert.Equal(t, 10.0, cart.Items()[0].Product.Price)
}

func TestCartManagerIsolatesUsers(t *testing.T) {
	snapshots := persist.NewMemoryStore()
	manager := NewCartManager(snapshots, testLogger())

	manager.ForUser("u1").AddItem(testProduct("p1", 10.0, 10), 1)
	manager.ForUser("u2").AddItem(testProduct("p2", 20.0, 10), 2)

	assert.Equal(t, 1, manager.ForUser("u1").TotalItems())
	assert.Equal(t, 2, manager.ForUser("u2").TotalItems())

	manager.ForUser("u1").Clear()
	assert.Equal(t, 0, manager.ForUser("u1").TotalItems())
	assert.Equal(t, 2, manager.ForUser("u2").TotalItems())
}

func TestCartManagerReturnsSameCart(t *testing.T) {
	manager := NewCartManager(persist.NewMemoryStore(), testLogger())

	assert.Same(t, manager.ForUser("u1"), manager.ForUser("u1"))
	assert.NotSame(t, manager.ForUser("u1"), manager.ForUser("u2"))
}
