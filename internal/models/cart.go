// internal/models/cart.go
package models

// CartItem is a line item: a product snapshot plus a quantity. The product is
// copied by value, not referenced, so a line item survives catalog deletion.
type CartItem struct {
	Product  Product `json:"product"`
	Quantity int     `json:"quantity"`
}

func (i *CartItem) Valid() bool {
	return i.Product.Valid()
}

func (i CartItem) Clone() CartItem {
	return CartItem{Product: i.Product.Clone(), Quantity: i.Quantity}
}

// CloneItems deep-copies a line-item list so later cart mutations cannot
// retroactively alter a stored order.
func CloneItems(items []CartItem) []CartItem {
	out := make([]CartItem, 0, len(items))
	for _, item := range items {
		out = append(out, item.Clone())
	}
	return out
}
