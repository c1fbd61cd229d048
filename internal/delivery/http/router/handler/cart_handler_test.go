package handler

import (
	"net/http"
	"testing"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	mockUsecase "storefront/internal/mocks/usecase"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func withUser(c echo.Context, id uint) {
	deliverycontext.SetUser(c, &entity.User{ID: id, Username: "alice"})
}

func TestCartHandler_AddToCart(t *testing.T) {
	uc := mockUsecase.NewMockCartUsecase(t)
	handler := NewCartHandler(uc, newDiscardLogger())

	uc.EXPECT().
		AddToCart(mock.Anything, usecase.AddToCartInput{UserID: 1, ProductID: 2, Quantity: 3}).
		Return(nil)

	c, rec := newJSONContext(t, http.MethodPost, "/add_to_cart", `{"product_id":2,"quantity":3}`)
	withUser(c, 1)

	require.NoError(t, handler.AddToCart(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestCartHandler_AddToCart_DefaultsQuantityToOne(t *testing.T) {
	uc := mockUsecase.NewMockCartUsecase(t)
	handler := NewCartHandler(uc, newDiscardLogger())

	uc.EXPECT().
		AddToCart(mock.Anything, usecase.AddToCartInput{UserID: 1, ProductID: 2, Quantity: 1}).
		Return(nil)

	c, _ := newJSONContext(t, http.MethodPost, "/add_to_cart", `{"product_id":2}`)
	withUser(c, 1)

	require.NoError(t, handler.AddToCart(c))
}

func TestCartHandler_AddToCart_RequiresUser(t *testing.T) {
	uc := mockUsecase.NewMockCartUsecase(t)
	handler := NewCartHandler(uc, newDiscardLogger())

	c, _ := newJSONContext(t, http.MethodPost, "/add_to_cart", `{"product_id":2}`)

	err := handler.AddToCart(c)
	assert.ErrorIs(t, err, domainerrors.ErrUnauthenticated)
}

func TestCartHandler_ViewCart(t *testing.T) {
	uc := mockUsecase.NewMockCartUsecase(t)
	handler := NewCartHandler(uc, newDiscardLogger())

	uc.EXPECT().ViewCart(mock.Anything, uint(1)).Return(&usecase.CartOutput{
		Items: []*entity.CartItem{{ID: 5, UserID: 1, ProductID: 2, Quantity: 2}},
		Total: 20,
	}, nil)

	c, rec := newJSONContext(t, http.MethodGet, "/cart", "")
	withUser(c, 1)

	require.NoError(t, handler.ViewCart(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"total":20`)
}

func TestCartHandler_UpdateQuantity_ParsesPathParams(t *testing.T) {
	uc := mockUsecase.NewMockCartUsecase(t)
	handler := NewCartHandler(uc, newDiscardLogger())

	uc.EXPECT().
		UpdateQuantity(mock.Anything, usecase.UpdateCartItemInput{UserID: 1, ItemID: 5, Quantity: 0}).
		Return(nil)

	c, rec := newJSONContext(t, http.MethodGet, "/update_cart/5/0", "")
	c.SetParamNames("itemId", "quantity")
	c.SetParamValues("5", "0")
	withUser(c, 1)

	require.NoError(t, handler.UpdateQuantity(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestCartHandler_RemoveItem_ForwardsOwnershipError(t *testing.T) {
	uc := mockUsecase.NewMockCartUsecase(t)
	handler := NewCartHandler(uc, newDiscardLogger())

	uc.EXPECT().RemoveItem(mock.Anything, uint(1), uint(7)).Return(domainerrors.ErrNotOwner)

	c, _ := newJSONContext(t, http.MethodGet, "/remove_from_cart/7", "")
	c.SetParamNames("itemId")
	c.SetParamValues("7")
	withUser(c, 1)

	err := handler.RemoveItem(c)
	assert.ErrorIs(t, err, domainerrors.ErrNotOwner)
}

func TestCartHandler_Checkout(t *testing.T) {
	uc := mockUsecase.NewMockCartUsecase(t)
	handler := NewCartHandler(uc, newDiscardLogger())

	uc.EXPECT().Checkout(mock.Anything, uint(1)).Return(&entity.Order{
		ID: 42, UserID: 1, Total: 35, Status: entity.OrderStatusPending,
	}, nil)

	c, rec := newJSONContext(t, http.MethodGet, "/checkout", "")
	withUser(c, 1)

	require.NoError(t, handler.Checkout(c))
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), `"pending"`)
}

func TestCartHandler_Checkout_EmptyCart(t *testing.T) {
	uc := mockUsecase.NewMockCartUsecase(t)
	handler := NewCartHandler(uc, newDiscardLogger())

	uc.EXPECT().Checkout(mock.Anything, uint(1)).Return(nil, domainerrors.ErrEmptyCart)

	c, _ := newJSONContext(t, http.MethodGet, "/checkout", "")
	withUser(c, 1)

	err := handler.Checkout(c)
	assert.ErrorIs(t, err, domainerrors.ErrEmptyCart)
}

func TestCartHandler_Orders(t *testing.T) {
	uc := mockUsecase.NewMockCartUsecase(t)
	handler := NewCartHandler(uc, newDiscardLogger())

	uc.EXPECT().ListOrders(mock.Anything, uint(1)).Return([]*entity.Order{
		{ID: 2, UserID: 1, Status: entity.OrderStatusShipped},
		{ID: 1, UserID: 1, Status: entity.OrderStatusCompleted},
	}, nil)

	c, rec := newJSONContext(t, http.MethodGet, "/orders", "")
	withUser(c, 1)

	require.NoError(t, handler.Orders(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"shipped"`)
}
