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

type wishlistRequest struct {
	Name string `json:"name" validate:"required,min=1,max=255"`
}

// WishlistHandler holds dependencies for wishlist handlers. Every route here
// sits behind the authentication middleware.
type WishlistHandler struct {
	uc     usecase.WishlistUsecase
	logger *slog.Logger
}

// NewWishlistHandler is the constructor for WishlistHandler, injected by Fx.
func NewWishlistHandler(uc usecase.WishlistUsecase, logger *slog.Logger) *WishlistHandler {
	return &WishlistHandler{uc: uc, logger: logger}
}

// Find returns one of the caller's wishlists by id.
func (h *WishlistHandler) Find(c echo.Context) error {
	principal, err := middleware.Principal(c)
	if err != nil {
		return errors.WithStack(err)
	}

	id, err := pathUUID(c, "id")
	if err != nil {
		return errors.WithStack(err)
	}

	wishlist, err := h.uc.Get(c.Request().Context(), principal, id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toWishlistView(wishlist), "")
}

// FindByName returns one of the caller's wishlists by its exact name.
func (h *WishlistHandler) FindByName(c echo.Context) error {
	principal, err := middleware.Principal(c)
	if err != nil {
		return errors.WithStack(err)
	}

	name := c.QueryParam("name")
	if name == "" {
		return response.Error(c, http.StatusBadRequest, "Query parameter 'name' is required")
	}

	wishlist, err := h.uc.GetByName(c.Request().Context(), principal, name)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toWishlistView(wishlist), "")
}

// Add creates a new empty wishlist for the caller.
func (h *WishlistHandler) Add(c echo.Context) error {
	principal, err := middleware.Principal(c)
	if err != nil {
		return errors.WithStack(err)
	}

	var input wishlistRequest
	if err := c.Bind(&input); err != nil {
		return response.Error(c, http.StatusBadRequest, "Invalid wishlist input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	wishlist, err := h.uc.Create(c.Request().Context(), principal, input.Name)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toWishlistView(wishlist), "Wishlist created successfully")
}

// Rename changes one of the caller's wishlists.
func (h *WishlistHandler) Rename(c echo.Context) error {
	principal, err := middleware.Principal(c)
	if err != nil {
		return errors.WithStack(err)
	}

	id, err := pathUUID(c, "id")
	if err != nil {
		return errors.WithStack(err)
	}

	var input wishlistRequest
	if err := c.Bind(&input); err != nil {
		return response.Error(c, http.StatusBadRequest, "Invalid wishlist input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	wishlist, err := h.uc.Rename(c.Request().Context(), principal, id, input.Name)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toWishlistView(wishlist), "Wishlist renamed successfully")
}

// Delete removes one of the caller's wishlists.
func (h *WishlistHandler) Delete(c echo.Context) error {
	principal, err := middleware.Principal(c)
	if err != nil {
		return errors.WithStack(err)
	}

	id, err := pathUUID(c, "id")
	if err != nil {
		return errors.WithStack(err)
	}

	if err := h.uc.Delete(c.Request().Context(), principal, id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Wishlist deleted successfully")
}

// AddProduct links a product into one of the caller's wishlists.
func (h *WishlistHandler) AddProduct(c echo.Context) error {
	principal, err := middleware.Principal(c)
	if err != nil {
		return errors.WithStack(err)
	}

	wishlistID, err := pathUUID(c, "id")
	if err != nil {
		return errors.WithStack(err)
	}

	productID, err := pathUUID(c, "productId")
	if err != nil {
		return errors.WithStack(err)
	}

	wishlist, err := h.uc.AddProduct(c.Request().Context(), principal, wishlistID, productID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toWishlistView(wishlist), "Product added to wishlist")
}

// RemoveProduct unlinks a product from one of the caller's wishlists.
func (h *WishlistHandler) RemoveProduct(c echo.Context) error {
	principal, err := middleware.Principal(c)
	if err != nil {
		return errors.WithStack(err)
	}

	wishlistID, err := pathUUID(c, "id")
	if err != nil {
		return errors.WithStack(err)
	}

	productID, err := pathUUID(c, "productId")
	if err != nil {
		return errors.WithStack(err)
	}

	wishlist, err := h.uc.RemoveProduct(c.Request().Context(), principal, wishlistID, productID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toWishlistView(wishlist), "Product removed from wishlist")
}

// Paginable returns one page of the caller's wishlists.
func (h *WishlistHandler) Paginable(c echo.Context) error {
	principal, err := middleware.Principal(c)
	if err != nil {
		return errors.WithStack(err)
	}

	input, err := listInput(c)
	if err != nil {
		return errors.WithStack(err)
	}

	wishlists, err := h.uc.List(c.Request().Context(), principal, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toWishlistViews(wishlists), "")
}
