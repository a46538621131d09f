// internal/models/order.go
package models

import "time"

// Order is an immutable receipt created at checkout. Status is set once to
// pending; no state machine advances it.
type Order struct {
	ID        string      `json:"id"`
	UserID    string      `json:"userId"`
	Items     []CartItem  `json:"items"`
	Total     float64     `json:"total"`
	Status    OrderStatus `json:"status"`
	CreatedAt time.Time   `json:"createdAt"`
}

func (o Order) Clone() Order {
	out := o
	out.Items = CloneItems(o.Items)
	return out
}
