// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/errors"
	"storefront/internal/infra/cache"
	"storefront/internal/pagination"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

// categoryService implements the CategoryUsecase interface.
type categoryService struct {
	categoryRepo repository.CategoryRepository
	cache        *cache.Store
	logger       *slog.Logger
}

// CategoryServiceParams holds dependencies for the category service, injected by Fx.
type CategoryServiceParams struct {
	fx.In

	CategoryRepo repository.CategoryRepository
	Cache        *cache.Store
	Logger       *slog.Logger
}

// NewCategoryService is the constructor for categoryService.
func NewCategoryService(params CategoryServiceParams) usecase.CategoryUsecase {
	return &categoryService{
		categoryRepo: params.CategoryRepo,
		cache:        params.Cache,
		logger:       params.Logger,
	}
}

func (srv *categoryService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Create adds a new category with a unique name.
func (srv *categoryService) Create(ctx context.Context, name string) (*entity.Category, error) {
	exists, err := srv.categoryRepo.ExistsByName(ctx, name)
	if err != nil {
		return nil, errors.Wrap(err, "failed to check category name")
	}
	if exists {
		return nil, domainerrors.ErrCategoryAlreadyExists.With("name", name)
	}

	category := &entity.Category{Name: name}
	if err := srv.categoryRepo.Create(ctx, category); err != nil {
		return nil, err
	}

	srv.cache.EvictRegion(cache.RegionCategories)
	srv.log(ctx).Info("Category created", slog.String("name", name), slog.Any("categoryID", category.ID))

	return category, nil
}

// Get retrieves one category through the lookup cache.
func (srv *categoryService) Get(ctx context.Context, id uuid.UUID) (*entity.Category, error) {
	return cache.GetOrFetch(ctx, srv.cache, cache.RegionCategories, cache.Key("find", id),
		func(ctx context.Context) (*entity.Category, error) {
			category, err := srv.categoryRepo.FindByID(ctx, id)
			if errors.Is(err, repository.ErrCategoryNotFound) {
				return nil, domainerrors.ErrCategoryNotFound.With("id", id.String())
			}
			if err != nil {
				return nil, err
			}

			return category, nil
		})
}

// Rename changes a category's name.
func (srv *categoryService) Rename(ctx context.Context, id uuid.UUID, name string) (*entity.Category, error) {
	category, err := srv.categoryRepo.FindByID(ctx, id)
	if errors.Is(err, repository.ErrCategoryNotFound) {
		return nil, domainerrors.ErrCategoryNotFound.With("id", id.String())
	}
	if err != nil {
		return nil, err
	}

	if err := srv.categoryRepo.Update(ctx, &entity.Category{ID: id, Name: name}); err != nil {
		return nil, err
	}

	category.Name = name

	// Product pages embed category names, so both regions go stale.
	srv.cache.EvictRegion(cache.RegionCategories)
	srv.cache.EvictRegion(cache.RegionProducts)
	srv.log(ctx).Info("Category renamed", slog.Any("categoryID", id), slog.String("name", name))

	return category, nil
}

// Delete removes a category. Products inside it are kept, only the links go.
func (srv *categoryService) Delete(ctx context.Context, id uuid.UUID) error {
	err := srv.categoryRepo.Delete(ctx, id)
	if errors.Is(err, repository.ErrCategoryNotFound) {
		return domainerrors.ErrCategoryNotFound.With("id", id.String())
	}
	if err != nil {
		return err
	}

	srv.cache.EvictRegion(cache.RegionCategories)
	srv.cache.EvictRegion(cache.RegionProducts)
	srv.log(ctx).Info("Category deleted", slog.Any("categoryID", id))

	return nil
}

// List returns one page of categories through the lookup cache. An empty page
// is an error raised inside the loader, so it is never cached.
func (srv *categoryService) List(ctx context.Context, input usecase.ListInput) ([]*entity.Category, error) {
	page, err := pagination.Normalize(input.Page, input.Size, input.Sort, pagination.MaxCategoryPageSize)
	if err != nil {
		return nil, err
	}

	key := cache.Key("paginable", page.Page, page.Size, []string{page.SortField, page.Direction()})

	return cache.GetOrFetch(ctx, srv.cache, cache.RegionCategories, key,
		func(ctx context.Context) ([]*entity.Category, error) {
			categories, err := srv.categoryRepo.List(ctx, page)
			if err != nil {
				return nil, err
			}
			if len(categories) == 0 {
				return nil, domainerrors.ErrCategoriesEmpty
			}

			return categories, nil
		})
}
