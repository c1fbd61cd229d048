package usecase

import (
	"context"

	"storefront/internal/domain/entity"
)

// --- Input DTOs ---

// AddToCartInput adds quantity units of a product to the caller's cart.
type AddToCartInput struct {
	UserID    uint
	ProductID uint
	Quantity  int
}

// UpdateCartItemInput overwrites the quantity of one cart line. A quantity
// of zero or less removes the line.
type UpdateCartItemInput struct {
	UserID   uint
	ItemID   uint
	Quantity int
}

// --- Output DTOs ---

// CartOutput is the caller's full cart with its running total.
type CartOutput struct {
	Items []*entity.CartItem
	Total float64
}

// CartUsecase defines the interface for cart and checkout operations.
// Every operation is scoped to the calling user; lines belonging to other
// users are invisible and untouchable.
type CartUsecase interface {
	// AddToCart merges quantity units of the product into the caller's cart.
	// Adding a product already in the cart increments the existing line.
	AddToCart(ctx context.Context, input AddToCartInput) error

	// ViewCart returns the caller's cart lines with products joined and the
	// current total.
	ViewCart(ctx context.Context, userID uint) (*CartOutput, error)

	// UpdateQuantity overwrites a line's quantity, removing the line when the
	// new quantity is not positive. The line must belong to the caller.
	UpdateQuantity(ctx context.Context, input UpdateCartItemInput) error

	// RemoveItem deletes one line from the caller's cart.
	RemoveItem(ctx context.Context, userID, itemID uint) error

	// Checkout atomically converts the caller's cart into a pending order
	// with an immutable price snapshot, then empties the cart. An empty cart
	// cannot be checked out.
	Checkout(ctx context.Context, userID uint) (*entity.Order, error)

	// ListOrders returns the caller's order history, newest first.
	ListOrders(ctx context.Context, userID uint) ([]*entity.Order, error)
}
