package usecase

import (
	"context"

	"storefront/internal/domain/entity"
)

// --- Input DTOs ---

// ListProductsInput narrows and pages the public catalog listing.
// Page values below 1 are normalized to 1.
type ListProductsInput struct {
	Page     int
	Category string
	Search   string
}

// --- Output DTOs ---

// ProductListOutput is one page of the public catalog plus the category
// index used to render the filter bar.
type ProductListOutput struct {
	Products   []*entity.Product
	Categories []string
	Page       int
	PageSize   int
	TotalPages int
	TotalCount int64
}

// HomeOutput is the storefront landing data: the newest active products.
type HomeOutput struct {
	Featured []*entity.Product
}

// CatalogUsecase defines the interface for the public product catalog.
// Listings only ever show active products; detail lookups resolve any
// existing product so links inside historical orders keep working.
type CatalogUsecase interface {
	// Home returns the landing page's featured products, newest first.
	Home(ctx context.Context) (*HomeOutput, error)

	// ListProducts returns one page of active products, optionally filtered
	// by category and a case-insensitive search term.
	ListProducts(ctx context.Context, input ListProductsInput) (*ProductListOutput, error)

	// GetProduct returns a single product by ID, active or not.
	GetProduct(ctx context.Context, id uint) (*entity.Product, error)
}
