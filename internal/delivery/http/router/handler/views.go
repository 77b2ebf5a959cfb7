// Package handler contains the HTTP handlers for the application.
package handler

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/entity"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// --- Response views ---
// Entities never leave the delivery layer directly; these views pin the JSON
// shape and keep fields like the password hash and the pending OTP out of
// responses.

// CategoryView is the JSON shape of one category.
type CategoryView struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

// ProductView is the JSON shape of one product.
type ProductView struct {
	ID         uuid.UUID      `json:"id"`
	Name       string         `json:"name"`
	Price      float64        `json:"price"`
	Categories []CategoryView `json:"categories"`
}

// WishlistView is the JSON shape of one wishlist.
type WishlistView struct {
	ID       uuid.UUID     `json:"id"`
	Name     string        `json:"name"`
	Products []ProductView `json:"products"`
}

// CartItemView is the JSON shape of one cart line. Prices are computed from
// the product at read time.
type CartItemView struct {
	ID         uuid.UUID   `json:"id"`
	Product    ProductView `json:"product"`
	Quantity   int         `json:"quantity"`
	UnitPrice  float64     `json:"unitPrice"`
	TotalPrice float64     `json:"totalPrice"`
}

// CartView is the JSON shape of the shopping cart.
type CartView struct {
	ID         uuid.UUID      `json:"id"`
	Items      []CartItemView `json:"items"`
	TotalPrice float64        `json:"totalPrice"`
	CreatedAt  time.Time      `json:"createdAt"`
	UpdatedAt  time.Time      `json:"updatedAt"`
}

// AddressView is the JSON shape of one address.
type AddressView struct {
	ID         uuid.UUID `json:"id"`
	Street     string    `json:"street"`
	City       string    `json:"city"`
	State      string    `json:"state"`
	PostalCode string    `json:"postalCode"`
}

// UserView is the JSON shape of one account.
type UserView struct {
	ID          uuid.UUID `json:"id"`
	Login       string    `json:"login"`
	Email       string    `json:"email"`
	BirthDate   string    `json:"birthDate"`
	MobilePhone string    `json:"mobilePhone"`
	Enabled     bool      `json:"enabled"`
	Role        string    `json:"role"`
}

// LoginView is the JSON shape of a successful login.
type LoginView struct {
	AccessToken string   `json:"accessToken"`
	TokenType   string   `json:"tokenType"`
	ExpiresIn   int64    `json:"expiresIn"` // Seconds.
	User        UserView `json:"user"`
}

func toCategoryView(category *entity.Category) CategoryView {
	return CategoryView{ID: category.ID, Name: category.Name}
}

func toCategoryViews(categories []*entity.Category) []CategoryView {
	views := make([]CategoryView, 0, len(categories))
	for _, category := range categories {
		views = append(views, toCategoryView(category))
	}

	return views
}

func toProductView(product *entity.Product) ProductView {
	categories := make([]CategoryView, 0, len(product.Categories))
	for i := range product.Categories {
		categories = append(categories, toCategoryView(&product.Categories[i]))
	}

	return ProductView{
		ID:         product.ID,
		Name:       product.Name,
		Price:      product.Price,
		Categories: categories,
	}
}

func toProductViews(products []*entity.Product) []ProductView {
	views := make([]ProductView, 0, len(products))
	for _, product := range products {
		views = append(views, toProductView(product))
	}

	return views
}

func toWishlistView(wishlist *entity.Wishlist) WishlistView {
	products := make([]ProductView, 0, len(wishlist.Products))
	for i := range wishlist.Products {
		products = append(products, toProductView(&wishlist.Products[i]))
	}

	return WishlistView{
		ID:       wishlist.ID,
		Name:     wishlist.Name,
		Products: products,
	}
}

func toWishlistViews(wishlists []*entity.Wishlist) []WishlistView {
	views := make([]WishlistView, 0, len(wishlists))
	for _, wishlist := range wishlists {
		views = append(views, toWishlistView(wishlist))
	}

	return views
}

func toCartItemView(item *entity.CartItem) CartItemView {
	return CartItemView{
		ID:         item.ID,
		Product:    toProductView(&item.Product),
		Quantity:   item.Quantity,
		UnitPrice:  item.UnitPrice(),
		TotalPrice: item.TotalPrice(),
	}
}

func toCartView(cart *entity.ShoppingCart) CartView {
	items := make([]CartItemView, 0, len(cart.Items))
	var total float64
	for i := range cart.Items {
		items = append(items, toCartItemView(&cart.Items[i]))
		total += cart.Items[i].TotalPrice()
	}

	return CartView{
		ID:         cart.ID,
		Items:      items,
		TotalPrice: total,
		CreatedAt:  cart.CreatedAt,
		UpdatedAt:  cart.UpdatedAt,
	}
}

func toAddressView(address *entity.Address) AddressView {
	return AddressView{
		ID:         address.ID,
		Street:     address.Street,
		City:       address.City,
		State:      address.State,
		PostalCode: address.PostalCode,
	}
}

func toAddressViews(addresses []*entity.Address) []AddressView {
	views := make([]AddressView, 0, len(addresses))
	for _, address := range addresses {
		views = append(views, toAddressView(address))
	}

	return views
}

func toUserView(user *entity.User) UserView {
	return UserView{
		ID:          user.ID,
		Login:       user.Login,
		Email:       user.Email,
		BirthDate:   user.BirthDate.Format(time.DateOnly),
		MobilePhone: user.MobilePhone,
		Enabled:     user.Enabled,
		Role:        user.Role.String(),
	}
}

// --- Shared request parsing helpers ---

// pathUUID parses one UUID path parameter.
func pathUUID(c echo.Context, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		return uuid.Nil, domainerrors.ErrValidationFailed.With("field", name)
	}

	return id, nil
}

// parseUUIDField parses a UUID carried in a request body field.
func parseUUIDField(raw, field string) (uuid.UUID, error) {
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, domainerrors.ErrValidationFailed.With("field", field)
	}

	return id, nil
}

// listInput parses the page/size/sort query triple. Sort params may repeat and
// each may carry a comma-joined "field,direction" pair; validation of the
// result happens in the pagination package.
func listInput(c echo.Context) (usecase.ListInput, error) {
	input := usecase.ListInput{Page: 0, Size: 20, Sort: []string{"id", "asc"}}

	if raw := c.QueryParam("page"); raw != "" {
		page, err := strconv.Atoi(raw)
		if err != nil {
			return usecase.ListInput{}, domainerrors.ErrInvalidPagination
		}
		input.Page = page
	}

	if raw := c.QueryParam("size"); raw != "" {
		size, err := strconv.Atoi(raw)
		if err != nil {
			return usecase.ListInput{}, domainerrors.ErrInvalidPagination
		}
		input.Size = size
	}

	if rawSort, ok := c.QueryParams()["sort"]; ok {
		sort := make([]string, 0, len(rawSort))
		for _, part := range rawSort {
			sort = append(sort, strings.Split(part, ",")...)
		}
		input.Sort = sort
	}

	return input, nil
}

// HealthCheck reports liveness.
func HealthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}
