package repository

import (
	"context"
	"time"

	"storefront/internal/domain/entity"
	"storefront/internal/errors"

	"github.com/google/uuid"
)

// ErrCartNotFound is returned when the owner has no cart yet.
var ErrCartNotFound = errors.New("shopping cart not found")

// ErrCartItemNotFound is returned when no cart item matches the query.
var ErrCartItemNotFound = errors.New("cart item not found")

// CartRepository persists shopping carts and their items. Cart lookups are
// owner-scoped; item lookups by id return the cart owner so the caller can run
// the tamper check.
type CartRepository interface {
	Create(ctx context.Context, cart *entity.ShoppingCart) error
	FindByOwner(ctx context.Context, ownerID uuid.UUID) (*entity.ShoppingCart, error)
	Touch(ctx context.Context, cartID uuid.UUID, at time.Time) error
	AddItem(ctx context.Context, item *entity.CartItem) error
	FindItemByID(ctx context.Context, itemID uuid.UUID) (*entity.CartItem, error)
	FindItemByCartAndProduct(ctx context.Context, cartID, productID uuid.UUID) (*entity.CartItem, error)
	UpdateItemQuantity(ctx context.Context, itemID uuid.UUID, quantity int) error
	DeleteItem(ctx context.Context, itemID uuid.UUID) error
	ClearItems(ctx context.Context, cartID uuid.UUID) error
	DeleteByOwner(ctx context.Context, ownerID uuid.UUID) error
}
