package repository

import (
	"context"

	"storefront/internal/domain/entity"
	"storefront/internal/errors"

	"github.com/google/uuid"
)

// ErrAddressNotFound is returned when no address matches the query. Owner
// mismatch yields the same error as a missing id.
var ErrAddressNotFound = errors.New("address not found")

// AddressRepository persists user addresses. Lookups are owner-scoped.
type AddressRepository interface {
	Create(ctx context.Context, address *entity.Address) error
	FindByIDAndOwner(ctx context.Context, id, ownerID uuid.UUID) (*entity.Address, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entity.Address, error)
	CountByOwner(ctx context.Context, ownerID uuid.UUID) (int64, error)
	Update(ctx context.Context, address *entity.Address) error
	Delete(ctx context.Context, id uuid.UUID) error
	DeleteByOwner(ctx context.Context, ownerID uuid.UUID) error
}
