// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// ShoppingCart is the single cart of one user, created lazily on the first
// cart interaction.
type ShoppingCart struct {
	ID        uuid.UUID
	OwnerID   uuid.UUID
	Items     []CartItem
	CreatedAt time.Time
	UpdatedAt time.Time
}

// CartItem is one product line inside a cart. Prices are derived from the
// product at read time and never stored.
type CartItem struct {
	ID          uuid.UUID
	CartID      uuid.UUID
	CartOwnerID uuid.UUID // Owner of the enclosing cart, used for the tamper check.
	Product     Product
	Quantity    int // Always positive.
}

// UnitPrice returns the current price of the underlying product.
func (i CartItem) UnitPrice() float64 {
	return i.Product.Price
}

// TotalPrice returns unit price times quantity.
func (i CartItem) TotalPrice() float64 {
	return i.Product.Price * float64(i.Quantity)
}
