package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"storefront/internal/delivery/http/response"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// CatalogHandler holds dependencies for the public catalog handlers.
type CatalogHandler struct {
	uc     usecase.CatalogUsecase
	logger *slog.Logger
}

// NewCatalogHandler is the constructor for CatalogHandler, injected by Fx.
func NewCatalogHandler(uc usecase.CatalogUsecase, logger *slog.Logger) *CatalogHandler {
	return &CatalogHandler{
		uc:     uc,
		logger: logger,
	}
}

// Home returns the landing page data: the newest active products.
func (h *CatalogHandler) Home(c echo.Context) error {
	output, err := h.uc.Home(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "")
}

// ListProducts returns one page of the catalog, optionally filtered by
// category.
func (h *CatalogHandler) ListProducts(c echo.Context) error {
	output, err := h.uc.ListProducts(c.Request().Context(), usecase.ListProductsInput{
		Page:     pageParam(c),
		Category: c.QueryParam("category"),
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "")
}

// Search runs a case-insensitive substring search over name and description.
func (h *CatalogHandler) Search(c echo.Context) error {
	output, err := h.uc.ListProducts(c.Request().Context(), usecase.ListProductsInput{
		Page:   pageParam(c),
		Search: c.QueryParam("q"),
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "")
}

// GetProduct returns one product's detail, active or not.
func (h *CatalogHandler) GetProduct(c echo.Context) error {
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

// pageParam reads the page query parameter, defaulting to the first page.
func pageParam(c echo.Context) int {
	page, err := strconv.Atoi(c.QueryParam("page"))
	if err != nil || page < 1 {
		return 1
	}

	return page
}

// uintParam parses a numeric path parameter.
func uintParam(c echo.Context, name string) (uint, error) {
	v, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil {
		return 0, err
	}

	return uint(v), nil
}

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"}, "Service is healthy")
}
