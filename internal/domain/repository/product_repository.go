package repository

import (
	"context"

	"storefront/internal/domain/entity"
	"storefront/internal/errors"
	"storefront/internal/pagination"

	"github.com/google/uuid"
)

// ErrProductNotFound is returned when no product matches the query.
var ErrProductNotFound = errors.New("product not found")

// ProductSearch describes the optional filters of the product search endpoint.
// Zero values mean "no constraint".
type ProductSearch struct {
	Name     string
	Category string
	MinPrice *float64
	MaxPrice *float64
}

// ProductRepository persists products and their category links.
type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Product, error)
	Update(ctx context.Context, product *entity.Product) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, page pagination.Request) ([]*entity.Product, error)
	Search(ctx context.Context, filter ProductSearch, page pagination.Request) ([]*entity.Product, error)
}
