package handler

import (
	"net/http"
	"testing"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	mockUsecase "storefront/internal/mocks/usecase"
	"storefront/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCatalogHandler_Home(t *testing.T) {
	uc := mockUsecase.NewMockCatalogUsecase(t)
	handler := NewCatalogHandler(uc, newDiscardLogger())

	uc.EXPECT().Home(mock.Anything).Return(&usecase.HomeOutput{
		Featured: []*entity.Product{{ID: 1, Name: "camera"}},
	}, nil)

	c, rec := newJSONContext(t, http.MethodGet, "/", "")

	require.NoError(t, handler.Home(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "camera")
}

func TestCatalogHandler_ListProducts_ParsesQuery(t *testing.T) {
	uc := mockUsecase.NewMockCatalogUsecase(t)
	handler := NewCatalogHandler(uc, newDiscardLogger())

	uc.EXPECT().
		ListProducts(mock.Anything, usecase.ListProductsInput{Page: 3, Category: "optics"}).
		Return(&usecase.ProductListOutput{Page: 3, PageSize: 12}, nil)

	c, rec := newJSONContext(t, http.MethodGet, "/products?category=optics&page=3", "")

	require.NoError(t, handler.ListProducts(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestCatalogHandler_ListProducts_DefaultsBadPageToOne(t *testing.T) {
	uc := mockUsecase.NewMockCatalogUsecase(t)
	handler := NewCatalogHandler(uc, newDiscardLogger())

	uc.EXPECT().
		ListProducts(mock.Anything, usecase.ListProductsInput{Page: 1}).
		Return(&usecase.ProductListOutput{Page: 1}, nil)

	c, _ := newJSONContext(t, http.MethodGet, "/products?page=bogus", "")

	require.NoError(t, handler.ListProducts(c))
}

func TestCatalogHandler_Search_ForwardsTerm(t *testing.T) {
	uc := mockUsecase.NewMockCatalogUsecase(t)
	handler := NewCatalogHandler(uc, newDiscardLogger())

	uc.EXPECT().
		ListProducts(mock.Anything, usecase.ListProductsInput{Page: 1, Search: "tripod"}).
		Return(&usecase.ProductListOutput{}, nil)

	c, _ := newJSONContext(t, http.MethodGet, "/search?q=tripod", "")

	require.NoError(t, handler.Search(c))
}

func TestCatalogHandler_GetProduct_BadID(t *testing.T) {
	uc := mockUsecase.NewMockCatalogUsecase(t)
	handler := NewCatalogHandler(uc, newDiscardLogger())

	c, rec := newJSONContext(t, http.MethodGet, "/product/abc", "")
	c.SetParamNames("id")
	c.SetParamValues("abc")

	require.NoError(t, handler.GetProduct(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCatalogHandler_GetProduct_NotFound(t *testing.T) {
	uc := mockUsecase.NewMockCatalogUsecase(t)
	handler := NewCatalogHandler(uc, newDiscardLogger())

	uc.EXPECT().GetProduct(mock.Anything, uint(9)).Return(nil, domainerrors.ErrProductNotFound)

	c, _ := newJSONContext(t, http.MethodGet, "/product/9", "")
	c.SetParamNames("id")
	c.SetParamValues("9")

	err := handler.GetProduct(c)
	assert.ErrorIs(t, err, domainerrors.ErrProductNotFound)
}
