package entity

import "time"

// CartItem is one cart line. At most one line exists per (user, product)
// pair; repeated adds merge into the existing line by incrementing quantity.
type CartItem struct {
	ID        uint      `json:"id"`
	UserID    uint      `json:"user_id"`
	ProductID uint      `json:"product_id"`
	Quantity  int       `json:"quantity"`
	CreatedAt time.Time `json:"created_at"`

	// Product is the joined catalog entry, populated on cart reads so the
	// caller can compute line totals. Nil when not loaded.
	Product *Product `json:"product,omitempty"`
}

// LineTotal returns price × quantity for this line. Returns 0 when the
// product association has not been loaded.
func (ci *CartItem) LineTotal() float64 {
	if ci.Product == nil {
		return 0
	}

	return ci.Product.Price * float64(ci.Quantity)
}
