package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/delivery/http/response"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// CartHandler holds dependencies for the cart, checkout and order-history
// handlers. Every route here sits behind the login gate.
type CartHandler struct {
	uc     usecase.CartUsecase
	logger *slog.Logger
}

// NewCartHandler is the constructor for CartHandler, injected by Fx.
func NewCartHandler(uc usecase.CartUsecase, logger *slog.Logger) *CartHandler {
	return &CartHandler{
		uc:     uc,
		logger: logger,
	}
}

type addToCartRequest struct {
	ProductID uint `json:"product_id" form:"product_id" query:"product_id" validate:"required"`
	Quantity  int  `json:"quantity" form:"quantity" query:"quantity" validate:"omitempty,min=1"`
}

// AddToCart merges the product into the caller's cart.
func (h *CartHandler) AddToCart(c echo.Context) error {
	user := deliverycontext.GetUser(c)
	if user == nil {
		return domainerrors.ErrUnauthenticated
	}

	var req addToCartRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid cart input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}
	if req.Quantity == 0 {
		// A form without an explicit quantity means "one of it".
		req.Quantity = 1
	}

	if err := h.uc.AddToCart(c.Request().Context(), usecase.AddToCartInput{
		UserID:    user.ID,
		ProductID: req.ProductID,
		Quantity:  req.Quantity,
	}); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Product added to cart")
}

// ViewCart returns the caller's cart lines and running total.
func (h *CartHandler) ViewCart(c echo.Context) error {
	user := deliverycontext.GetUser(c)
	if user == nil {
		return domainerrors.ErrUnauthenticated
	}

	output, err := h.uc.ViewCart(c.Request().Context(), user.ID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "")
}

// UpdateQuantity overwrites one cart line's quantity; zero or less removes
// the line.
func (h *CartHandler) UpdateQuantity(c echo.Context) error {
	user := deliverycontext.GetUser(c)
	if user == nil {
		return domainerrors.ErrUnauthenticated
	}

	itemID, err := uintParam(c, "itemId")
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid cart item id")
	}
	quantity, err := strconv.Atoi(c.Param("quantity"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid quantity")
	}

	if err := h.uc.UpdateQuantity(c.Request().Context(), usecase.UpdateCartItemInput{
		UserID:   user.ID,
		ItemID:   itemID,
		Quantity: quantity,
	}); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Cart updated")
}

// RemoveItem deletes one line from the caller's cart.
func (h *CartHandler) RemoveItem(c echo.Context) error {
	user := deliverycontext.GetUser(c)
	if user == nil {
		return domainerrors.ErrUnauthenticated
	}

	itemID, err := uintParam(c, "itemId")
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid cart item id")
	}

	if err := h.uc.RemoveItem(c.Request().Context(), user.ID, itemID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Item removed from cart")
}

// Checkout converts the caller's cart into a pending order.
func (h *CartHandler) Checkout(c echo.Context) error {
	user := deliverycontext.GetUser(c)
	if user == nil {
		return domainerrors.ErrUnauthenticated
	}

	order, err := h.uc.Checkout(c.Request().Context(), user.ID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, order, "Order placed successfully")
}

// Orders returns the caller's order history, newest first.
func (h *CartHandler) Orders(c echo.Context) error {
	user := deliverycontext.GetUser(c)
	if user == nil {
		return domainerrors.ErrUnauthenticated
	}

	orders, err := h.uc.ListOrders(c.Request().Context(), user.ID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, orders, "")
}
