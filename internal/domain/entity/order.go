package entity

import "time"

// Order records a completed checkout. Items is an immutable point-in-time
// snapshot of the purchased cart lines; later product edits or deactivations
// must never alter it. The snapshot is serialized only at the storage
// boundary.
type Order struct {
	ID        uint        `json:"id"`
	UserID    uint        `json:"user_id"`
	Total     float64     `json:"total"` // Σ price×quantity over Items at checkout time.
	Status    OrderStatus `json:"status"`
	Items     []OrderItem `json:"items"`
	CreatedAt time.Time   `json:"created_at"`
}

// OrderItem is one snapshotted line of an order. ProductID is kept for
// display convenience only; the name and price here are authoritative for
// the order regardless of what happens to the product afterwards.
type OrderItem struct {
	ProductID   uint    `json:"product_id"`
	ProductName string  `json:"product_name"`
	Quantity    int     `json:"quantity"`
	Price       float64 `json:"price"`
}
