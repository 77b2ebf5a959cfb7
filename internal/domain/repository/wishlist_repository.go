package repository

import (
	"context"

	"storefront/internal/domain/entity"
	"storefront/internal/errors"
	"storefront/internal/pagination"

	"github.com/google/uuid"
)

// ErrWishlistNotFound is returned when no wishlist matches the query. Owner
// mismatch deliberately yields the same error as a missing id.
var ErrWishlistNotFound = errors.New("wishlist not found")

// WishlistRepository persists wishlists. Every lookup is owner-scoped; there
// is intentionally no FindByID without an owner predicate.
type WishlistRepository interface {
	Create(ctx context.Context, wishlist *entity.Wishlist) error
	FindByIDAndOwner(ctx context.Context, id, ownerID uuid.UUID) (*entity.Wishlist, error)
	FindByNameAndOwner(ctx context.Context, name string, ownerID uuid.UUID) (*entity.Wishlist, error)
	ExistsByNameAndOwner(ctx context.Context, name string, ownerID uuid.UUID) (bool, error)
	CountByOwner(ctx context.Context, ownerID uuid.UUID) (int64, error)
	Rename(ctx context.Context, id uuid.UUID, name string) error
	AddProduct(ctx context.Context, wishlistID, productID uuid.UUID) error
	RemoveProduct(ctx context.Context, wishlistID, productID uuid.UUID) error
	Delete(ctx context.Context, id uuid.UUID) error
	DeleteByOwner(ctx context.Context, ownerID uuid.UUID) error
	ListByOwner(ctx context.Context, ownerID uuid.UUID, page pagination.Request) ([]*entity.Wishlist, error)
}
