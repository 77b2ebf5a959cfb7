package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"storefront/internal/delivery/http/response"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

type productRequest struct {
	Name       string   `json:"name" validate:"required,min=1,max=255"`
	Price      float64  `json:"price" validate:"required,gt=0"`
	Categories []string `json:"categories" validate:"dive,required"`
}

// ProductHandler holds dependencies for product catalog handlers.
type ProductHandler struct {
	uc     usecase.ProductUsecase
	logger *slog.Logger
}

// NewProductHandler is the constructor for ProductHandler, injected by Fx.
func NewProductHandler(uc usecase.ProductUsecase, logger *slog.Logger) *ProductHandler {
	return &ProductHandler{uc: uc, logger: logger}
}

// Find returns one product by id, categories included.
func (h *ProductHandler) Find(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return errors.WithStack(err)
	}

	product, err := h.uc.Get(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toProductView(product), "")
}

// Add creates a new product. Category names that do not exist yet are created
// within the same transaction.
func (h *ProductHandler) Add(c echo.Context) error {
	var input productRequest
	if err := c.Bind(&input); err != nil {
		return response.Error(c, http.StatusBadRequest, "Invalid product input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	product, err := h.uc.Create(c.Request().Context(), usecase.ProductInput{
		Name:       input.Name,
		Price:      input.Price,
		Categories: input.Categories,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toProductView(product), "Product created successfully")
}

// Update replaces a product's name, price and category set.
func (h *ProductHandler) Update(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return errors.WithStack(err)
	}

	var input productRequest
	if err := c.Bind(&input); err != nil {
		return response.Error(c, http.StatusBadRequest, "Invalid product input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	product, err := h.uc.Update(c.Request().Context(), id, usecase.ProductInput{
		Name:       input.Name,
		Price:      input.Price,
		Categories: input.Categories,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toProductView(product), "Product updated successfully")
}

// Delete removes a product together with its wishlist and cart references.
func (h *ProductHandler) Delete(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return errors.WithStack(err)
	}

	if err := h.uc.Delete(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Product deleted successfully")
}

// Paginable returns one page of products.
func (h *ProductHandler) Paginable(c echo.Context) error {
	input, err := listInput(c)
	if err != nil {
		return errors.WithStack(err)
	}

	products, err := h.uc.List(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toProductViews(products), "")
}

// Search returns one page of products matching the optional name, category and
// price-range filters.
func (h *ProductHandler) Search(c echo.Context) error {
	page, err := listInput(c)
	if err != nil {
		return errors.WithStack(err)
	}

	input := usecase.ProductSearchInput{
		Name:     c.QueryParam("name"),
		Category: c.QueryParam("category"),
		Page:     page,
	}

	if input.MinPrice, err = priceParam(c, "min-price"); err != nil {
		return errors.WithStack(err)
	}
	if input.MaxPrice, err = priceParam(c, "max-price"); err != nil {
		return errors.WithStack(err)
	}

	products, err := h.uc.Search(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toProductViews(products), "")
}

func priceParam(c echo.Context, name string) (*float64, error) {
	raw := c.QueryParam(name)
	if raw == "" {
		return nil, nil
	}

	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, domainerrors.ErrValidationFailed.With("field", name)
	}

	return &value, nil
}
