package handler

import (
	"log/slog"
	"net/http"

	"storefront/internal/delivery/http/middleware"
	"storefront/internal/delivery/http/response"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

type addCartProductRequest struct {
	ProductID string `json:"productId" validate:"required,uuid"`
	Quantity  int    `json:"quantity" validate:"required,gt=0"`
}

type updateCartItemRequest struct {
	Quantity int `json:"quantity" validate:"required,gt=0"`
}

// CartHandler holds dependencies for shopping cart handlers. Every route here
// sits behind the authentication middleware.
type CartHandler struct {
	uc     usecase.CartUsecase
	logger *slog.Logger
}

// NewCartHandler is the constructor for CartHandler, injected by Fx.
func NewCartHandler(uc usecase.CartUsecase, logger *slog.Logger) *CartHandler {
	return &CartHandler{uc: uc, logger: logger}
}

// Get returns the caller's cart, creating an empty one on first access.
func (h *CartHandler) Get(c echo.Context) error {
	principal, err := middleware.Principal(c)
	if err != nil {
		return errors.WithStack(err)
	}

	cart, err := h.uc.Get(c.Request().Context(), principal)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toCartView(cart), "")
}

// AddProduct puts a product into the caller's cart. Adding a product already
// in the cart accumulates its quantity on the existing line.
func (h *CartHandler) AddProduct(c echo.Context) error {
	principal, err := middleware.Principal(c)
	if err != nil {
		return errors.WithStack(err)
	}

	var input addCartProductRequest
	if err := c.Bind(&input); err != nil {
		return response.Error(c, http.StatusBadRequest, "Invalid cart input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	productID, err := parseUUIDField(input.ProductID, "productId")
	if err != nil {
		return errors.WithStack(err)
	}

	cart, err := h.uc.AddProduct(c.Request().Context(), principal, productID, input.Quantity)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toCartView(cart), "Product added to cart")
}

// RemoveProduct drops a product's line from the caller's cart regardless of
// its quantity.
func (h *CartHandler) RemoveProduct(c echo.Context) error {
	principal, err := middleware.Principal(c)
	if err != nil {
		return errors.WithStack(err)
	}

	productID, err := pathUUID(c, "productId")
	if err != nil {
		return errors.WithStack(err)
	}

	cart, err := h.uc.RemoveProduct(c.Request().Context(), principal, productID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toCartView(cart), "Product removed from cart")
}

// Clear empties the caller's cart.
func (h *CartHandler) Clear(c echo.Context) error {
	principal, err := middleware.Principal(c)
	if err != nil {
		return errors.WithStack(err)
	}

	if err := h.uc.Clear(c.Request().Context(), principal); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Cart cleared")
}

// UpdateItem sets the quantity of one cart line, addressed by item id.
func (h *CartHandler) UpdateItem(c echo.Context) error {
	principal, err := middleware.Principal(c)
	if err != nil {
		return errors.WithStack(err)
	}

	itemID, err := pathUUID(c, "id")
	if err != nil {
		return errors.WithStack(err)
	}

	var input updateCartItemRequest
	if err := c.Bind(&input); err != nil {
		return response.Error(c, http.StatusBadRequest, "Invalid cart item input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	item, err := h.uc.UpdateItemQuantity(c.Request().Context(), principal, itemID, input.Quantity)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toCartItemView(item), "Cart item updated")
}

// RemoveItem drops one cart line, addressed by item id.
func (h *CartHandler) RemoveItem(c echo.Context) error {
	principal, err := middleware.Principal(c)
	if err != nil {
		return errors.WithStack(err)
	}

	itemID, err := pathUUID(c, "id")
	if err != nil {
		return errors.WithStack(err)
	}

	if err := h.uc.RemoveItem(c.Request().Context(), principal, itemID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Cart item removed")
}
