package handler

import (
	"log/slog"
	"net/http"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/delivery/http/response"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AdminHandler holds dependencies for the back-office handlers. Every route
// here sits behind both the login and the admin gate.
type AdminHandler struct {
	uc     usecase.AdminUsecase
	logger *slog.Logger
}

// NewAdminHandler is the constructor for AdminHandler, injected by Fx.
func NewAdminHandler(uc usecase.AdminUsecase, logger *slog.Logger) *AdminHandler {
	return &AdminHandler{
		uc:     uc,
		logger: logger,
	}
}

type productRequest struct {
	Name        string  `json:"name" form:"name" validate:"required"`
	Description string  `json:"description" form:"description"`
	Price       float64 `json:"price" form:"price" validate:"min=0"`
	Stock       int     `json:"stock" form:"stock" validate:"min=0"`
	Image       string  `json:"image" form:"image"`
	Category    string  `json:"category" form:"category"`
	IsActive    bool    `json:"is_active" form:"is_active"`
}

type orderStatusRequest struct {
	Status string `json:"status" form:"status" validate:"required"`
}

// Dashboard returns the back-office landing summary.
func (h *AdminHandler) Dashboard(c echo.Context) error {
	output, err := h.uc.Dashboard(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "")
}

// ListProducts returns every product, active or not.
func (h *AdminHandler) ListProducts(c echo.Context) error {
	products, err := h.uc.ListAllProducts(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, products, "")
}

// NewProductForm backs the creation form route; the JSON surface has nothing
// to prefill, so it only acknowledges.
func (h *AdminHandler) NewProductForm(c echo.Context) error {
	return response.Success(c, http.StatusOK, nil, "")
}

// CreateProduct adds a catalog entry. An optional multipart "image" file is
// stored in the products bucket first and its path recorded on the product.
func (h *AdminHandler) CreateProduct(c echo.Context) error {
	var req productRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid product input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	input, err := h.productInput(c, req)
	if err != nil {
		return err
	}

	product, err := h.uc.CreateProduct(c.Request().Context(), *input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, product, "Product created")
}

// EditProductForm returns the product backing the edit form.
func (h *AdminHandler) EditProductForm(c echo.Context) error {
	id, err := uintParam(c, "id")
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid product id")
	}

	product, err := h.uc.GetProduct(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, product, "")
}

// UpdateProduct overwrites all editable fields of an existing product.
func (h *AdminHandler) UpdateProduct(c echo.Context) error {
	id, err := uintParam(c, "id")
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid product id")
	}

	var req productRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid product input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	input, err := h.productInput(c, req)
	if err != nil {
		return err
	}

	product, err := h.uc.UpdateProduct(c.Request().Context(), id, *input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, product, "Product updated")
}

// productInput converts a bound request into the use-case input and, when a
// multipart image accompanies the form, stores it and records its path.
// Failures here are real errors for the central error handler; the response
// helpers must not be returned from this depth, their nil result would let
// the caller keep going.
func (h *AdminHandler) productInput(c echo.Context, req productRequest) (*usecase.ProductInput, error) {
	input := &usecase.ProductInput{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Stock:       req.Stock,
		Image:       req.Image,
		Category:    req.Category,
		IsActive:    req.IsActive,
	}

	fileHeader, err := c.FormFile("image")
	if err != nil {
		// No image attached; keep whatever path the form carried.
		return input, nil
	}

	src, err := fileHeader.Open()
	if err != nil {
		return nil, domainerrors.ErrInvalidUpload
	}
	defer src.Close()

	user := deliverycontext.GetUser(c)
	if user == nil {
		return nil, domainerrors.ErrUnauthenticated
	}

	output, err := h.uc.UploadFile(c.Request().Context(), usecase.UploadFileInput{
		UploadedBy:   user.ID,
		FileType:     entity.FileTypeProductImage,
		OriginalName: fileHeader.Filename,
		Content:      src,
	})
	if err != nil {
		return nil, errors.WithStack(err)
	}

	input.Image = entity.FileTypeProductImage.Bucket() + "/" + output.Upload.Filename

	return input, nil
}

// ListOrders returns every order in the system.
func (h *AdminHandler) ListOrders(c echo.Context) error {
	orders, err := h.uc.ListAllOrders(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, orders, "")
}

// UpdateOrderStatus applies a fulfillment transition to an order.
func (h *AdminHandler) UpdateOrderStatus(c echo.Context) error {
	id, err := uintParam(c, "id")
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid order id")
	}

	var req orderStatusRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid status input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	if err := h.uc.UpdateOrderStatus(c.Request().Context(), usecase.UpdateOrderStatusInput{
		OrderID: id,
		Status:  req.Status,
	}); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Order status updated")
}

// ListUsers returns every account, oldest first.
func (h *AdminHandler) ListUsers(c echo.Context) error {
	users, err := h.uc.ListUsers(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, users, "")
}

// ToggleAdmin flips the target user's admin flag. Acting on oneself is
// rejected by the use case.
func (h *AdminHandler) ToggleAdmin(c echo.Context) error {
	actor := deliverycontext.GetUser(c)
	if actor == nil {
		return domainerrors.ErrUnauthenticated
	}

	targetID, err := uintParam(c, "id")
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid user id")
	}

	user, err := h.uc.ToggleAdmin(c.Request().Context(), usecase.ToggleAdminInput{
		ActorID:  actor.ID,
		TargetID: targetID,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, user, "Admin flag updated")
}

// ListUploads returns the upload registry, newest first.
func (h *AdminHandler) ListUploads(c echo.Context) error {
	uploads, err := h.uc.ListUploads(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, uploads, "")
}

// UploadFile takes a multipart file plus a file_type tag and stores it in
// the matching bucket.
func (h *AdminHandler) UploadFile(c echo.Context) error {
	user := deliverycontext.GetUser(c)
	if user == nil {
		return domainerrors.ErrUnauthenticated
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		return domainerrors.ErrInvalidUpload
	}

	src, err := fileHeader.Open()
	if err != nil {
		return domainerrors.ErrInvalidUpload
	}
	defer src.Close()

	output, err := h.uc.UploadFile(c.Request().Context(), usecase.UploadFileInput{
		UploadedBy:   user.ID,
		FileType:     entity.FileType(c.FormValue("file_type")),
		OriginalName: fileHeader.Filename,
		Content:      src,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, output.Upload, "File uploaded")
}
