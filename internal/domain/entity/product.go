package entity

import "time"

// Product is a catalog entry. IsActive is a soft-visibility flag: inactive
// products are hidden from listings and search but keep their row, so
// historical orders and direct detail links stay resolvable.
type Product struct {
	ID          uint      `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Price       float64   `json:"price"` // Unit price. Not enforced non-negative at the data layer.
	Stock       int       `json:"stock"` // Informational only; no operation decrements it.
	Image       string    `json:"image"` // Relative path under the upload root, e.g. "products/20240101_120000_cam.jpg".
	Category    string    `json:"category"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
}
