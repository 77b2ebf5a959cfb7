package usecase

import (
	"context"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
)

// ProductInput defines the data required to create or update a product.
// Categories are given by name; unknown names are created on the fly.
type ProductInput struct {
	Name       string
	Price      float64
	Categories []string
}

// ProductSearchInput combines the optional search filters with paging.
type ProductSearchInput struct {
	Name     string
	Category string
	MinPrice *float64
	MaxPrice *float64
	Page     ListInput
}

// ProductUsecase defines the product catalog operations. Mutations require the
// admin role and invalidate both the product and category cache regions.
type ProductUsecase interface {
	Create(ctx context.Context, input ProductInput) (*entity.Product, error)
	Get(ctx context.Context, id uuid.UUID) (*entity.Product, error)
	Update(ctx context.Context, id uuid.UUID, input ProductInput) (*entity.Product, error)
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, input ListInput) ([]*entity.Product, error)
	Search(ctx context.Context, input ProductSearchInput) ([]*entity.Product, error)
}
