// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
)

// ListInput carries the raw paging arguments of a list endpoint, exactly as
// they arrived. Normalization happens inside the service.
type ListInput struct {
	Page int
	Size int
	Sort []string
}

// CategoryUsecase defines the category catalog operations. Mutations require
// the admin role and invalidate the category cache region.
type CategoryUsecase interface {
	Create(ctx context.Context, name string) (*entity.Category, error)
	Get(ctx context.Context, id uuid.UUID) (*entity.Category, error)
	Rename(ctx context.Context, id uuid.UUID, name string) (*entity.Category, error)
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, input ListInput) ([]*entity.Category, error)
}
