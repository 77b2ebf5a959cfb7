package usecase

import (
	"context"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
)

// WishlistUsecase defines wishlist operations. Every call is scoped to the
// authenticated principal; a wishlist belonging to someone else behaves
// exactly like a missing one.
type WishlistUsecase interface {
	Create(ctx context.Context, principal uuid.UUID, name string) (*entity.Wishlist, error)
	Get(ctx context.Context, principal, id uuid.UUID) (*entity.Wishlist, error)
	GetByName(ctx context.Context, principal uuid.UUID, name string) (*entity.Wishlist, error)
	Rename(ctx context.Context, principal, id uuid.UUID, name string) (*entity.Wishlist, error)
	Delete(ctx context.Context, principal, id uuid.UUID) error
	AddProduct(ctx context.Context, principal, wishlistID, productID uuid.UUID) (*entity.Wishlist, error)
	RemoveProduct(ctx context.Context, principal, wishlistID, productID uuid.UUID) (*entity.Wishlist, error)
	List(ctx context.Context, principal uuid.UUID, input ListInput) ([]*entity.Wishlist, error)
}
