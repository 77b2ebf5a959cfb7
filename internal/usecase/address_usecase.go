package usecase

import (
	"context"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
)

// AddressInput defines the data of one delivery address.
type AddressInput struct {
	Street     string
	City       string
	State      string
	PostalCode string
}

// AddressUsecase defines the delivery address book operations, all scoped to
// the authenticated principal.
type AddressUsecase interface {
	List(ctx context.Context, principal uuid.UUID) ([]*entity.Address, error)
	Get(ctx context.Context, principal, id uuid.UUID) (*entity.Address, error)
	Add(ctx context.Context, principal uuid.UUID, input AddressInput) (*entity.Address, error)
	Update(ctx context.Context, principal, id uuid.UUID, input AddressInput) (*entity.Address, error)
	Remove(ctx context.Context, principal, id uuid.UUID) error
}
