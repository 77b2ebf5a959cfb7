// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"storefront/internal/delivery/http/middleware"
	"storefront/internal/delivery/http/router/handler"
	"storefront/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler     *handler.AuthHandler
	AccountHandler  *handler.AccountHandler
	CategoryHandler *handler.CategoryHandler
	ProductHandler  *handler.ProductHandler
	WishlistHandler *handler.WishlistHandler
	CartHandler     *handler.CartHandler
	AddressHandler  *handler.AddressHandler
	AuthMiddleware  *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	params RouterParams
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{params: params}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	auth := r.params.AuthMiddleware

	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Auth routes
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/signup", r.params.AuthHandler.SignUp)
		authGroup.POST("/login", r.params.AuthHandler.Login)
		authGroup.POST("/verify-account", r.params.AuthHandler.VerifyAccount)
		authGroup.POST("/resend-verification", r.params.AuthHandler.ResendVerification)
		authGroup.POST("/reset-password/request", r.params.AuthHandler.RequestPasswordReset)
		authGroup.POST("/reset-password/confirm", r.params.AuthHandler.ConfirmPasswordReset)
	}

	// Category catalog: reads are public, mutations need the admin role.
	categoryGroup := e.Group("/categories")
	{
		categoryGroup.GET("/find/:id", r.params.CategoryHandler.Find)
		categoryGroup.GET("/paginable", r.params.CategoryHandler.Paginable)

		categoryAdmin := categoryGroup.Group("", auth.Authenticate, auth.RequireRole(entity.RoleAdmin.String()))
		categoryAdmin.POST("/add", r.params.CategoryHandler.Add)
		categoryAdmin.PUT("/rename/:id", r.params.CategoryHandler.Rename)
		categoryAdmin.DELETE("/delete/:id", r.params.CategoryHandler.Delete)
	}

	// Product catalog: reads are public, mutations need the admin role.
	productGroup := e.Group("/products")
	{
		productGroup.GET("/find/:id", r.params.ProductHandler.Find)
		productGroup.GET("/paginable", r.params.ProductHandler.Paginable)
		productGroup.GET("/paginable/search", r.params.ProductHandler.Search)

		productAdmin := productGroup.Group("", auth.Authenticate, auth.RequireRole(entity.RoleAdmin.String()))
		productAdmin.POST("/add", r.params.ProductHandler.Add)
		productAdmin.PUT("/update/:id", r.params.ProductHandler.Update)
		productAdmin.DELETE("/delete/:id", r.params.ProductHandler.Delete)
	}

	// Wishlists are always scoped to the authenticated caller.
	wishlistGroup := e.Group("/wishlists")
	wishlistGroup.Use(auth.Authenticate)
	{
		wishlistGroup.GET("/find/:id", r.params.WishlistHandler.Find)
		wishlistGroup.GET("/find-by-name", r.params.WishlistHandler.FindByName)
		wishlistGroup.GET("/paginable", r.params.WishlistHandler.Paginable)
		wishlistGroup.POST("/add", r.params.WishlistHandler.Add)
		wishlistGroup.PUT("/rename/:id", r.params.WishlistHandler.Rename)
		wishlistGroup.DELETE("/delete/:id", r.params.WishlistHandler.Delete)
		wishlistGroup.POST("/add-product/:id/:productId", r.params.WishlistHandler.AddProduct)
		wishlistGroup.DELETE("/remove-product/:id/:productId", r.params.WishlistHandler.RemoveProduct)
	}

	// Shopping cart, one per authenticated caller.
	cartGroup := e.Group("/shopping-cart")
	cartGroup.Use(auth.Authenticate)
	{
		cartGroup.GET("/get", r.params.CartHandler.Get)
		cartGroup.POST("/add", r.params.CartHandler.AddProduct)
		cartGroup.DELETE("/remove/:productId", r.params.CartHandler.RemoveProduct)
		cartGroup.DELETE("/clear", r.params.CartHandler.Clear)
	}

	// Cart line operations, addressed by item id.
	cartItemGroup := e.Group("/cart-item")
	cartItemGroup.Use(auth.Authenticate)
	{
		cartItemGroup.PUT("/update/:id", r.params.CartHandler.UpdateItem)
		cartItemGroup.DELETE("/remove/:id", r.params.CartHandler.RemoveItem)
	}

	// Account-scoped routes.
	userGroup := e.Group("/user")
	userGroup.Use(auth.Authenticate)
	{
		userGroup.DELETE("/account", r.params.AccountHandler.Delete)

		addressGroup := userGroup.Group("/address")
		addressGroup.GET("/all", r.params.AddressHandler.All)
		addressGroup.GET("/get/:id", r.params.AddressHandler.Get)
		addressGroup.POST("/add", r.params.AddressHandler.Add)
		addressGroup.PUT("/update/:id", r.params.AddressHandler.Update)
		addressGroup.DELETE("/remove/:id", r.params.AddressHandler.Remove)
	}
}
