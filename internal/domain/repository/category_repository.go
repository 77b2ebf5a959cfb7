package repository

import (
	"context"

	"storefront/internal/domain/entity"
	"storefront/internal/errors"
	"storefront/internal/pagination"

	"github.com/google/uuid"
)

// ErrCategoryNotFound is returned when no category matches the query.
var ErrCategoryNotFound = errors.New("category not found")

// CategoryRepository persists categories.
type CategoryRepository interface {
	Create(ctx context.Context, category *entity.Category) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Category, error)
	FindByName(ctx context.Context, name string) (*entity.Category, error)
	ExistsByName(ctx context.Context, name string) (bool, error)
	Update(ctx context.Context, category *entity.Category) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, page pagination.Request) ([]*entity.Category, error)
}
