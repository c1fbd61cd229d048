package repository

import (
	"context"
	"errors"

	"storefront/internal/domain/entity"
)

// ErrCartItemNotFound is a domain-specific error returned when a cart line is not found.
var ErrCartItemNotFound = errors.New("cart item not found")

// CartRepository defines the standard operations for cart persistence.
type CartRepository interface {
	// FindByUser retrieves all cart lines of a user with their products joined.
	FindByUser(ctx context.Context, userID uint) ([]*entity.CartItem, error)

	// FindByID retrieves a single cart line by its ID.
	FindByID(ctx context.Context, id uint) (*entity.CartItem, error)

	// Upsert merges a cart line: if a line for (userID, productID) exists its
	// quantity is incremented by item.Quantity, otherwise the line is
	// inserted. Backed by the unique index on (user_id, product_id), so two
	// concurrent adds for the same product can never produce two rows.
	Upsert(ctx context.Context, item *entity.CartItem) error

	// UpdateQuantity overwrites the quantity of an existing line.
	UpdateQuantity(ctx context.Context, id uint, quantity int) error

	// Delete removes a single cart line.
	Delete(ctx context.Context, id uint) error

	// DeleteByUser removes every cart line of a user. Used by checkout.
	DeleteByUser(ctx context.Context, userID uint) error
}
