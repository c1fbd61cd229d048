// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"storefront/internal/delivery/http/middleware"
	"storefront/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler    *handler.AuthHandler
	CatalogHandler *handler.CatalogHandler
	CartHandler    *handler.CartHandler
	AdminHandler   *handler.AdminHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler    *handler.AuthHandler
	catalogHandler *handler.CatalogHandler
	cartHandler    *handler.CartHandler
	adminHandler   *handler.AdminHandler
	authMiddleware *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:    params.AuthHandler,
		catalogHandler: params.CatalogHandler,
		cartHandler:    params.CartHandler,
		adminHandler:   params.AdminHandler,
		authMiddleware: params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the routes for the application. Paths mirror the
// storefront's public surface; the admin back-office lives under /admin with
// /admin-secret-panel kept as the legacy dashboard alias.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Public catalog surface
	e.GET("/", r.catalogHandler.Home)
	e.GET("/products", r.catalogHandler.ListProducts)
	e.GET("/search", r.catalogHandler.Search)
	e.GET("/product/:id", r.catalogHandler.GetProduct)

	// Session establishment. GET is kept alongside POST because the original
	// form pages answered both; echo binds query parameters on GET.
	e.GET("/register", r.authHandler.Register)
	e.POST("/register", r.authHandler.Register)
	e.GET("/login", r.authHandler.Login)
	e.POST("/login", r.authHandler.Login)

	// Routes that require a live session
	userGroup := e.Group("")
	userGroup.Use(r.authMiddleware.RequireLogin)
	{
		userGroup.GET("/logout", r.authHandler.Logout)
		userGroup.POST("/add_to_cart", r.cartHandler.AddToCart)
		userGroup.GET("/cart", r.cartHandler.ViewCart)
		userGroup.GET("/update_cart/:itemId/:quantity", r.cartHandler.UpdateQuantity)
		userGroup.GET("/remove_from_cart/:itemId", r.cartHandler.RemoveItem)
		userGroup.GET("/checkout", r.cartHandler.Checkout)
		userGroup.GET("/orders", r.cartHandler.Orders)
	}

	// Back-office routes: login first, then the admin flag
	adminGroup := e.Group("/admin")
	adminGroup.Use(r.authMiddleware.RequireLogin)
	adminGroup.Use(r.authMiddleware.RequireAdmin)
	{
		adminGroup.GET("", r.adminHandler.Dashboard)
		adminGroup.GET("/products", r.adminHandler.ListProducts)
		adminGroup.GET("/products/add", r.adminHandler.NewProductForm)
		adminGroup.POST("/products/add", r.adminHandler.CreateProduct)
		adminGroup.GET("/products/edit/:id", r.adminHandler.EditProductForm)
		adminGroup.POST("/products/edit/:id", r.adminHandler.UpdateProduct)
		adminGroup.GET("/orders", r.adminHandler.ListOrders)
		adminGroup.POST("/orders/:id/status", r.adminHandler.UpdateOrderStatus)
		adminGroup.GET("/users", r.adminHandler.ListUsers)
		adminGroup.GET("/users/toggle-admin/:id", r.adminHandler.ToggleAdmin)
		adminGroup.GET("/files", r.adminHandler.ListUploads)
		adminGroup.POST("/files/upload", r.adminHandler.UploadFile)
	}

	// Legacy dashboard alias
	e.GET("/admin-secret-panel", r.adminHandler.Dashboard,
		r.authMiddleware.RequireLogin, r.authMiddleware.RequireAdmin)
}
