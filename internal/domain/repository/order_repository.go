package repository

import (
	"context"
	"errors"

	"storefront/internal/domain/entity"
)

// ErrOrderNotFound is a domain-specific error returned when an order is not found.
var ErrOrderNotFound = errors.New("order not found")

// OrderRepository defines the standard operations for order persistence.
// Orders are never deleted; the items snapshot is immutable after Create.
type OrderRepository interface {
	// FindByID retrieves a single order by its ID.
	FindByID(ctx context.Context, id uint) (*entity.Order, error)

	// FindByUser retrieves a user's orders, newest first.
	FindByUser(ctx context.Context, userID uint) ([]*entity.Order, error)

	// FindAll retrieves every order, newest first. limit <= 0 means no limit.
	FindAll(ctx context.Context, limit int) ([]*entity.Order, error)

	// Count returns the total number of orders.
	Count(ctx context.Context) (int64, error)

	// CountByStatus returns the number of orders in the given status.
	CountByStatus(ctx context.Context, status entity.OrderStatus) (int64, error)

	// Create persists a new order including its serialized items snapshot.
	Create(ctx context.Context, order *entity.Order) error

	// UpdateStatus sets the status of an existing order.
	UpdateStatus(ctx context.Context, id uint, status entity.OrderStatus) error
}
