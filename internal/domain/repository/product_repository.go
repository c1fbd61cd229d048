package repository

import (
	"context"
	"errors"

	"storefront/internal/domain/entity"
)

// ErrProductNotFound is a domain-specific error returned when a product is not found.
var ErrProductNotFound = errors.New("product not found")

// ProductFilter narrows catalog listings. Zero values mean "no filter".
// ActiveOnly is applied by every listing; detail lookups bypass it.
type ProductFilter struct {
	Category   string // Exact-match category filter.
	Search     string // Case-insensitive substring over name OR description.
	ActiveOnly bool
}

// ProductPage is one page of a paginated catalog listing.
type ProductPage struct {
	Products   []*entity.Product
	Page       int
	PageSize   int
	TotalCount int64
}

// ProductRepository defines the standard operations for product persistence.
type ProductRepository interface {
	// FindByID retrieves a single product by ID, regardless of its active flag.
	FindByID(ctx context.Context, id uint) (*entity.Product, error)

	// FindPage retrieves one page of products matching the filter, newest
	// first. An out-of-range page yields an empty (not erroring) page.
	FindPage(ctx context.Context, filter ProductFilter, page, pageSize int) (*ProductPage, error)

	// FindAll retrieves every product, active or not, newest first.
	FindAll(ctx context.Context) ([]*entity.Product, error)

	// Categories returns the distinct categories across all products.
	Categories(ctx context.Context) ([]string, error)

	// Count returns the total number of products.
	Count(ctx context.Context) (int64, error)

	// Create persists a new product.
	Create(ctx context.Context, product *entity.Product) error

	// Update overwrites all editable fields of an existing product.
	Update(ctx context.Context, product *entity.Product) error
}
