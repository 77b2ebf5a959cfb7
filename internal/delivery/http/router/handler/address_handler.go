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

type addressRequest struct {
	Street     string `json:"street" validate:"required,min=1,max=255"`
	City       string `json:"city" validate:"required,min=1,max=100"`
	State      string `json:"state" validate:"required,min=1,max=100"`
	PostalCode string `json:"postalCode" validate:"required,postalcode"`
}

// AddressHandler holds dependencies for the delivery address book handlers.
// Every route here sits behind the authentication middleware.
type AddressHandler struct {
	uc     usecase.AddressUsecase
	logger *slog.Logger
}

// NewAddressHandler is the constructor for AddressHandler, injected by Fx.
func NewAddressHandler(uc usecase.AddressUsecase, logger *slog.Logger) *AddressHandler {
	return &AddressHandler{uc: uc, logger: logger}
}

// All returns every address of the caller, oldest first.
func (h *AddressHandler) All(c echo.Context) error {
	principal, err := middleware.Principal(c)
	if err != nil {
		return errors.WithStack(err)
	}

	addresses, err := h.uc.List(c.Request().Context(), principal)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toAddressViews(addresses), "")
}

// Get returns one of the caller's addresses by id.
func (h *AddressHandler) Get(c echo.Context) error {
	principal, err := middleware.Principal(c)
	if err != nil {
		return errors.WithStack(err)
	}

	id, err := pathUUID(c, "id")
	if err != nil {
		return errors.WithStack(err)
	}

	address, err := h.uc.Get(c.Request().Context(), principal, id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toAddressView(address), "")
}

// Add stores a new address for the caller.
func (h *AddressHandler) Add(c echo.Context) error {
	principal, err := middleware.Principal(c)
	if err != nil {
		return errors.WithStack(err)
	}

	var input addressRequest
	if err := c.Bind(&input); err != nil {
		return response.Error(c, http.StatusBadRequest, "Invalid address input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	address, err := h.uc.Add(c.Request().Context(), principal, usecase.AddressInput{
		Street:     input.Street,
		City:       input.City,
		State:      input.State,
		PostalCode: input.PostalCode,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toAddressView(address), "Address added successfully")
}

// Update replaces one of the caller's addresses.
func (h *AddressHandler) Update(c echo.Context) error {
	principal, err := middleware.Principal(c)
	if err != nil {
		return errors.WithStack(err)
	}

	id, err := pathUUID(c, "id")
	if err != nil {
		return errors.WithStack(err)
	}

	var input addressRequest
	if err := c.Bind(&input); err != nil {
		return response.Error(c, http.StatusBadRequest, "Invalid address input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	address, err := h.uc.Update(c.Request().Context(), principal, id, usecase.AddressInput{
		Street:     input.Street,
		City:       input.City,
		State:      input.State,
		PostalCode: input.PostalCode,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toAddressView(address), "Address updated successfully")
}

// Remove deletes one of the caller's addresses.
func (h *AddressHandler) Remove(c echo.Context) error {
	principal, err := middleware.Principal(c)
	if err != nil {
		return errors.WithStack(err)
	}

	id, err := pathUUID(c, "id")
	if err != nil {
		return errors.WithStack(err)
	}

	if err := h.uc.Remove(c.Request().Context(), principal, id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Address removed successfully")
}
