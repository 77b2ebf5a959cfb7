package usecase

import (
	"context"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
)

// CartUsecase defines the shopping cart operations. The cart itself is created
// lazily on the first call; item-level calls take the item id and enforce that
// the item's cart belongs to the principal.
type CartUsecase interface {
	Get(ctx context.Context, principal uuid.UUID) (*entity.ShoppingCart, error)
	AddProduct(ctx context.Context, principal, productID uuid.UUID, quantity int) (*entity.ShoppingCart, error)
	RemoveProduct(ctx context.Context, principal, productID uuid.UUID) (*entity.ShoppingCart, error)
	Clear(ctx context.Context, principal uuid.UUID) error
	UpdateItemQuantity(ctx context.Context, principal, itemID uuid.UUID, quantity int) (*entity.CartItem, error)
	RemoveItem(ctx context.Context, principal, itemID uuid.UUID) error
}
