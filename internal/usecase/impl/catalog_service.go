package impl

import (
	"context"
	"log/slog"

	"storefront/config"
	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// catalogService implements the CatalogUsecase interface.
type catalogService struct {
	productRepo   repository.ProductRepository
	pageSize      int
	featuredCount int
	logger        *slog.Logger
}

// CatalogServiceParams holds dependencies for CatalogService, injected by Fx.
type CatalogServiceParams struct {
	fx.In

	ProductRepo repository.ProductRepository
	Config      *config.Config
	Logger      *slog.Logger
}

// NewCatalogService is the constructor for catalogService.
func NewCatalogService(params CatalogServiceParams) usecase.CatalogUsecase {
	return &catalogService{
		productRepo:   params.ProductRepo,
		pageSize:      params.Config.Catalog.PageSize,
		featuredCount: params.Config.Catalog.FeaturedCount,
		logger:        params.Logger,
	}
}

func (srv *catalogService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Home returns the newest active products for the landing page.
func (srv *catalogService) Home(ctx context.Context) (*usecase.HomeOutput, error) {
	page, err := srv.productRepo.FindPage(ctx, repository.ProductFilter{ActiveOnly: true}, 1, srv.featuredCount)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load featured products")
	}

	return &usecase.HomeOutput{Featured: page.Products}, nil
}

// ListProducts returns one page of the public catalog. Inactive products
// never appear here, whatever the filters say.
func (srv *catalogService) ListProducts(ctx context.Context, input usecase.ListProductsInput) (*usecase.ProductListOutput, error) {
	filter := repository.ProductFilter{
		Category:   input.Category,
		Search:     input.Search,
		ActiveOnly: true,
	}

	page, err := srv.productRepo.FindPage(ctx, filter, input.Page, srv.pageSize)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list products")
	}

	categories, err := srv.productRepo.Categories(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list categories")
	}

	totalPages := int((page.TotalCount + int64(page.PageSize) - 1) / int64(page.PageSize))

	return &usecase.ProductListOutput{
		Products:   page.Products,
		Categories: categories,
		Page:       page.Page,
		PageSize:   page.PageSize,
		TotalPages: totalPages,
		TotalCount: page.TotalCount,
	}, nil
}

// GetProduct returns a single product by ID. Inactive products resolve too,
// so links inside historical orders keep working.
func (srv *catalogService) GetProduct(ctx context.Context, id uint) (*entity.Product, error) {
	product, err := srv.productRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, domainerrors.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to load product")
	}

	return product, nil
}
