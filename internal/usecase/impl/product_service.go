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

// productService implements the ProductUsecase interface.
type productService struct {
	txManager   repository.TransactionManager
	productRepo repository.ProductRepository
	cache       *cache.Store
	logger      *slog.Logger
}

// ProductServiceParams holds dependencies for the product service, injected by Fx.
type ProductServiceParams struct {
	fx.In

	TxManager   repository.TransactionManager
	ProductRepo repository.ProductRepository
	Cache       *cache.Store
	Logger      *slog.Logger
}

// NewProductService is the constructor for productService.
func NewProductService(params ProductServiceParams) usecase.ProductUsecase {
	return &productService{
		txManager:   params.TxManager,
		productRepo: params.ProductRepo,
		cache:       params.Cache,
		logger:      params.Logger,
	}
}

func (srv *productService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Create persists a new product. Category names are resolved inside the same
// transaction: existing names are linked, unknown names are created first.
func (srv *productService) Create(ctx context.Context, input usecase.ProductInput) (*entity.Product, error) {
	var product *entity.Product
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		categories, err := resolveCategories(ctx, repoFactory.CategoryRepo(), input.Categories)
		if err != nil {
			return err
		}

		product = &entity.Product{
			Name:       input.Name,
			Price:      input.Price,
			Categories: categories,
		}

		return repoFactory.ProductRepo().Create(ctx, product)
	})
	if err != nil {
		srv.log(ctx).Error("Failed to create product", slog.String("name", input.Name), slog.Any("error", err))

		return nil, err
	}

	srv.evictProductRegions()
	srv.log(ctx).Info("Product created", slog.Any("productID", product.ID), slog.String("name", input.Name))

	return product, nil
}

// Get retrieves one product through the lookup cache.
func (srv *productService) Get(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	return cache.GetOrFetch(ctx, srv.cache, cache.RegionProducts, cache.Key("find", id),
		func(ctx context.Context) (*entity.Product, error) {
			product, err := srv.productRepo.FindByID(ctx, id)
			if errors.Is(err, repository.ErrProductNotFound) {
				return nil, domainerrors.ErrProductNotFound.With("id", id.String())
			}
			if err != nil {
				return nil, err
			}

			return product, nil
		})
}

// Update rewrites a product and its category links inside one transaction.
func (srv *productService) Update(ctx context.Context, id uuid.UUID, input usecase.ProductInput) (*entity.Product, error) {
	var product *entity.Product
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		productRepo := repoFactory.ProductRepo()

		if _, err := productRepo.FindByID(ctx, id); err != nil {
			if errors.Is(err, repository.ErrProductNotFound) {
				return domainerrors.ErrProductNotFound.With("id", id.String())
			}

			return err
		}

		categories, err := resolveCategories(ctx, repoFactory.CategoryRepo(), input.Categories)
		if err != nil {
			return err
		}

		product = &entity.Product{
			ID:         id,
			Name:       input.Name,
			Price:      input.Price,
			Categories: categories,
		}

		return productRepo.Update(ctx, product)
	})
	if err != nil {
		return nil, err
	}

	srv.evictProductRegions()
	srv.log(ctx).Info("Product updated", slog.Any("productID", id))

	return product, nil
}

// Delete removes a product together with its wishlist and cart references.
func (srv *productService) Delete(ctx context.Context, id uuid.UUID) error {
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		err := repoFactory.ProductRepo().Delete(ctx, id)
		if errors.Is(err, repository.ErrProductNotFound) {
			return domainerrors.ErrProductNotFound.With("id", id.String())
		}

		return err
	})
	if err != nil {
		return err
	}

	srv.evictProductRegions()
	srv.log(ctx).Info("Product deleted", slog.Any("productID", id))

	return nil
}

// List returns one page of products through the lookup cache.
func (srv *productService) List(ctx context.Context, input usecase.ListInput) ([]*entity.Product, error) {
	page, err := pagination.Normalize(input.Page, input.Size, input.Sort, pagination.MaxProductPageSize)
	if err != nil {
		return nil, err
	}

	key := cache.Key("paginable", page.Page, page.Size, []string{page.SortField, page.Direction()})

	return cache.GetOrFetch(ctx, srv.cache, cache.RegionProducts, key,
		func(ctx context.Context) ([]*entity.Product, error) {
			products, err := srv.productRepo.List(ctx, page)
			if err != nil {
				return nil, err
			}
			if len(products) == 0 {
				return nil, domainerrors.ErrProductsEmpty
			}

			return products, nil
		})
}

// Search returns one page of products matching every supplied filter, through
// the lookup cache.
func (srv *productService) Search(ctx context.Context, input usecase.ProductSearchInput) ([]*entity.Product, error) {
	page, err := pagination.Normalize(input.Page.Page, input.Page.Size, input.Page.Sort, pagination.MaxProductPageSize)
	if err != nil {
		return nil, err
	}

	filter := repository.ProductSearch{
		Name:     input.Name,
		Category: input.Category,
		MinPrice: input.MinPrice,
		MaxPrice: input.MaxPrice,
	}

	key := cache.Key("search", filter.Name, filter.Category, filter.MinPrice, filter.MaxPrice,
		page.Page, page.Size, []string{page.SortField, page.Direction()})

	return cache.GetOrFetch(ctx, srv.cache, cache.RegionProducts, key,
		func(ctx context.Context) ([]*entity.Product, error) {
			products, err := srv.productRepo.Search(ctx, filter, page)
			if err != nil {
				return nil, err
			}
			if len(products) == 0 {
				return nil, domainerrors.ErrProductsEmpty
			}

			return products, nil
		})
}

// evictProductRegions drops every region that may embed product data. Category
// upserts can ride along with product writes, and wishlist pages embed the
// products they contain.
func (srv *productService) evictProductRegions() {
	srv.cache.EvictRegion(cache.RegionProducts)
	srv.cache.EvictRegion(cache.RegionCategories)
	srv.cache.EvictRegion(cache.RegionWishlists)
}

// resolveCategories maps category names to entities, creating the ones that do
// not exist yet. Runs inside the caller's transaction.
func resolveCategories(ctx context.Context, categoryRepo repository.CategoryRepository, names []string) ([]entity.Category, error) {
	categories := make([]entity.Category, 0, len(names))
	for _, name := range names {
		category, err := categoryRepo.FindByName(ctx, name)
		if errors.Is(err, repository.ErrCategoryNotFound) {
			category = &entity.Category{Name: name}
			if err := categoryRepo.Create(ctx, category); err != nil {
				return nil, err
			}
		} else if err != nil {
			return nil, err
		}

		categories = append(categories, *category)
	}

	return categories, nil
}
