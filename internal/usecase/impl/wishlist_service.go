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

// wishlistService implements the WishlistUsecase interface. Every repository
// call carries the principal, so foreign wishlists are indistinguishable from
// missing ones.
type wishlistService struct {
	txManager    repository.TransactionManager
	wishlistRepo repository.WishlistRepository
	cache        *cache.Store
	logger       *slog.Logger
}

// WishlistServiceParams holds dependencies for the wishlist service, injected by Fx.
type WishlistServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	WishlistRepo repository.WishlistRepository
	Cache        *cache.Store
	Logger       *slog.Logger
}

// NewWishlistService is the constructor for wishlistService.
func NewWishlistService(params WishlistServiceParams) usecase.WishlistUsecase {
	return &wishlistService{
		txManager:    params.TxManager,
		wishlistRepo: params.WishlistRepo,
		cache:        params.Cache,
		logger:       params.Logger,
	}
}

func (srv *wishlistService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Create adds a new empty wishlist for the principal.
func (srv *wishlistService) Create(ctx context.Context, principal uuid.UUID, name string) (*entity.Wishlist, error) {
	count, err := srv.wishlistRepo.CountByOwner(ctx, principal)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count wishlists")
	}
	if count >= entity.MaxWishlistsPerUser {
		return nil, domainerrors.ErrWishlistLimitReached
	}

	exists, err := srv.wishlistRepo.ExistsByNameAndOwner(ctx, name, principal)
	if err != nil {
		return nil, errors.Wrap(err, "failed to check wishlist name")
	}
	if exists {
		return nil, domainerrors.ErrWishlistAlreadyExists.With("name", name)
	}

	wishlist := &entity.Wishlist{Name: name, OwnerID: principal}
	if err := srv.wishlistRepo.Create(ctx, wishlist); err != nil {
		return nil, err
	}

	srv.cache.EvictRegion(cache.RegionWishlists)
	srv.log(ctx).Info("Wishlist created", slog.Any("wishlistID", wishlist.ID), slog.Any("ownerID", principal))

	return wishlist, nil
}

// Get retrieves one wishlist of the principal through the lookup cache.
func (srv *wishlistService) Get(ctx context.Context, principal, id uuid.UUID) (*entity.Wishlist, error) {
	return cache.GetOrFetch(ctx, srv.cache, cache.RegionWishlists, cache.Key("find", principal, id),
		func(ctx context.Context) (*entity.Wishlist, error) {
			return srv.findOwned(ctx, srv.wishlistRepo, principal, id)
		})
}

// GetByName retrieves one wishlist of the principal by name through the lookup
// cache.
func (srv *wishlistService) GetByName(ctx context.Context, principal uuid.UUID, name string) (*entity.Wishlist, error) {
	return cache.GetOrFetch(ctx, srv.cache, cache.RegionWishlists, cache.Key("find-by-name", principal, name),
		func(ctx context.Context) (*entity.Wishlist, error) {
			wishlist, err := srv.wishlistRepo.FindByNameAndOwner(ctx, name, principal)
			if errors.Is(err, repository.ErrWishlistNotFound) {
				return nil, domainerrors.ErrWishlistNotFound.With("name", name)
			}
			if err != nil {
				return nil, err
			}

			return wishlist, nil
		})
}

// Rename changes a wishlist's name.
func (srv *wishlistService) Rename(ctx context.Context, principal, id uuid.UUID, name string) (*entity.Wishlist, error) {
	wishlist, err := srv.findOwned(ctx, srv.wishlistRepo, principal, id)
	if err != nil {
		return nil, err
	}

	exists, err := srv.wishlistRepo.ExistsByNameAndOwner(ctx, name, principal)
	if err != nil {
		return nil, errors.Wrap(err, "failed to check wishlist name")
	}
	if exists {
		return nil, domainerrors.ErrWishlistAlreadyExists.With("name", name)
	}

	if err := srv.wishlistRepo.Rename(ctx, id, name); err != nil {
		return nil, err
	}

	wishlist.Name = name

	srv.cache.EvictRegion(cache.RegionWishlists)
	srv.log(ctx).Info("Wishlist renamed", slog.Any("wishlistID", id), slog.String("name", name))

	return wishlist, nil
}

// Delete removes one wishlist of the principal.
func (srv *wishlistService) Delete(ctx context.Context, principal, id uuid.UUID) error {
	if _, err := srv.findOwned(ctx, srv.wishlistRepo, principal, id); err != nil {
		return err
	}

	if err := srv.wishlistRepo.Delete(ctx, id); err != nil {
		return err
	}

	srv.cache.EvictRegion(cache.RegionWishlists)
	srv.log(ctx).Info("Wishlist deleted", slog.Any("wishlistID", id))

	return nil
}

// AddProduct links a product to one of the principal's wishlists. The wishlist
// is looked up by its own id under the owner predicate before anything else.
func (srv *wishlistService) AddProduct(ctx context.Context, principal, wishlistID, productID uuid.UUID) (*entity.Wishlist, error) {
	var wishlist *entity.Wishlist
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		wishlistRepo := repoFactory.WishlistRepo()

		if _, err := srv.findOwned(ctx, wishlistRepo, principal, wishlistID); err != nil {
			return err
		}

		if _, err := repoFactory.ProductRepo().FindByID(ctx, productID); err != nil {
			if errors.Is(err, repository.ErrProductNotFound) {
				return domainerrors.ErrProductNotFound.With("id", productID.String())
			}

			return err
		}

		if err := wishlistRepo.AddProduct(ctx, wishlistID, productID); err != nil {
			return err
		}

		var err error
		wishlist, err = wishlistRepo.FindByIDAndOwner(ctx, wishlistID, principal)

		return err
	})
	if err != nil {
		return nil, err
	}

	srv.cache.EvictRegion(cache.RegionWishlists)
	srv.log(ctx).Info("Product added to wishlist", slog.Any("wishlistID", wishlistID), slog.Any("productID", productID))

	return wishlist, nil
}

// RemoveProduct unlinks a product from one of the principal's wishlists.
func (srv *wishlistService) RemoveProduct(ctx context.Context, principal, wishlistID, productID uuid.UUID) (*entity.Wishlist, error) {
	var wishlist *entity.Wishlist
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		wishlistRepo := repoFactory.WishlistRepo()

		if _, err := srv.findOwned(ctx, wishlistRepo, principal, wishlistID); err != nil {
			return err
		}

		if err := wishlistRepo.RemoveProduct(ctx, wishlistID, productID); err != nil {
			return err
		}

		var err error
		wishlist, err = wishlistRepo.FindByIDAndOwner(ctx, wishlistID, principal)

		return err
	})
	if err != nil {
		return nil, err
	}

	srv.cache.EvictRegion(cache.RegionWishlists)
	srv.log(ctx).Info("Product removed from wishlist", slog.Any("wishlistID", wishlistID), slog.Any("productID", productID))

	return wishlist, nil
}

// List returns one page of the principal's wishlists through the lookup cache.
func (srv *wishlistService) List(ctx context.Context, principal uuid.UUID, input usecase.ListInput) ([]*entity.Wishlist, error) {
	page, err := pagination.Normalize(input.Page, input.Size, input.Sort, pagination.MaxWishlistPageSize)
	if err != nil {
		return nil, err
	}

	key := cache.Key("paginable", principal, page.Page, page.Size, []string{page.SortField, page.Direction()})

	return cache.GetOrFetch(ctx, srv.cache, cache.RegionWishlists, key,
		func(ctx context.Context) ([]*entity.Wishlist, error) {
			wishlists, err := srv.wishlistRepo.ListByOwner(ctx, principal, page)
			if err != nil {
				return nil, err
			}
			if len(wishlists) == 0 {
				return nil, domainerrors.ErrWishlistsEmpty
			}

			return wishlists, nil
		})
}

// findOwned resolves a wishlist under the owner predicate and maps the miss to
// the domain error.
func (srv *wishlistService) findOwned(ctx context.Context, wishlistRepo repository.WishlistRepository, principal, id uuid.UUID) (*entity.Wishlist, error) {
	wishlist, err := wishlistRepo.FindByIDAndOwner(ctx, id, principal)
	if errors.Is(err, repository.ErrWishlistNotFound) {
		return nil, domainerrors.ErrWishlistNotFound.With("id", id.String())
	}
	if err != nil {
		return nil, err
	}

	return wishlist, nil
}
