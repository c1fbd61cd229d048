package impl

import (
	"context"
	"testing"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	mockRepo "storefront/internal/mocks/repository"
	"storefront/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type catalogServiceFixtures struct {
	service     usecase.CatalogUsecase
	productRepo *mockRepo.MockProductRepository
}

func createTestCatalogService(t *testing.T) catalogServiceFixtures {
	productRepo := mockRepo.NewMockProductRepository(t)

	service := NewCatalogService(CatalogServiceParams{
		ProductRepo: productRepo,
		Config:      newTestConfig(),
		Logger:      newDiscardLogger(),
	})

	return catalogServiceFixtures{
		service:     service,
		productRepo: productRepo,
	}
}

func TestCatalogService_Home_ReturnsFeatured(t *testing.T) {
	fx := createTestCatalogService(t)
	ctx := context.Background()

	featured := []*entity.Product{{ID: 1, Name: "camera", IsActive: true}}
	fx.productRepo.EXPECT().
		FindPage(ctx, repository.ProductFilter{ActiveOnly: true}, 1, 8).
		Return(&repository.ProductPage{Products: featured, Page: 1, PageSize: 8, TotalCount: 1}, nil)

	out, err := fx.service.Home(ctx)
	require.NoError(t, err)
	assert.Equal(t, featured, out.Featured)
}

func TestCatalogService_ListProducts_AlwaysActiveOnly(t *testing.T) {
	fx := createTestCatalogService(t)
	ctx := context.Background()

	fx.productRepo.EXPECT().
		FindPage(ctx, repository.ProductFilter{Category: "optics", Search: "lens", ActiveOnly: true}, 2, 12).
		Return(&repository.ProductPage{
			Products:   []*entity.Product{{ID: 4, Name: "Zoom Lens"}},
			Page:       2,
			PageSize:   12,
			TotalCount: 25,
		}, nil)
	fx.productRepo.EXPECT().
		Categories(ctx).
		Return([]string{"optics", "tripods"}, nil)

	out, err := fx.service.ListProducts(ctx, usecase.ListProductsInput{
		Page:     2,
		Category: "optics",
		Search:   "lens",
	})
	require.NoError(t, err)
	assert.Equal(t, 2, out.Page)
	assert.Equal(t, 3, out.TotalPages)
	assert.EqualValues(t, 25, out.TotalCount)
	assert.Equal(t, []string{"optics", "tripods"}, out.Categories)
}

func TestCatalogService_GetProduct_InactiveStillResolves(t *testing.T) {
	fx := createTestCatalogService(t)
	ctx := context.Background()

	inactive := &entity.Product{ID: 9, Name: "Retired", IsActive: false}
	fx.productRepo.EXPECT().FindByID(ctx, uint(9)).Return(inactive, nil)

	product, err := fx.service.GetProduct(ctx, 9)
	require.NoError(t, err)
	assert.Equal(t, inactive, product)
}

func TestCatalogService_GetProduct_NotFound(t *testing.T) {
	fx := createTestCatalogService(t)
	ctx := context.Background()

	fx.productRepo.EXPECT().
		FindByID(ctx, uint(404)).
		Return(nil, repository.ErrProductNotFound)

	_, err := fx.service.GetProduct(ctx, 404)
	assert.ErrorIs(t, err, domainerrors.ErrProductNotFound)
}
