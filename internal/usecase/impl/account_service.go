package impl

import (
	"context"
	"log/slog"

	deliverycontext "storefront/internal/delivery/context"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/errors"
	"storefront/internal/infra/cache"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

// accountService implements the AccountUsecase interface.
type accountService struct {
	txManager repository.TransactionManager
	cache     *cache.Store
	logger    *slog.Logger
}

// AccountServiceParams holds dependencies for the account service, injected by Fx.
type AccountServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	Cache     *cache.Store
	Logger    *slog.Logger
}

// NewAccountService is the constructor for accountService.
func NewAccountService(params AccountServiceParams) usecase.AccountUsecase {
	return &accountService{
		txManager: params.TxManager,
		cache:     params.Cache,
		logger:    params.Logger,
	}
}

func (srv *accountService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// DeleteAccount removes everything the principal owns and then the account
// itself, in one transaction: cart items and cart, wishlists, addresses, user.
func (srv *accountService) DeleteAccount(ctx context.Context, principal uuid.UUID) error {
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.CartRepo().DeleteByOwner(ctx, principal); err != nil {
			return err
		}
		if err := repoFactory.WishlistRepo().DeleteByOwner(ctx, principal); err != nil {
			return err
		}
		if err := repoFactory.AddressRepo().DeleteByOwner(ctx, principal); err != nil {
			return err
		}

		err := repoFactory.UserRepo().Delete(ctx, principal)
		if errors.Is(err, repository.ErrUserNotFound) {
			return domainerrors.ErrUserNotFound
		}

		return err
	})
	if err != nil {
		srv.log(ctx).Error("Failed to delete account", slog.Any("userID", principal), slog.Any("error", err))

		return err
	}

	srv.cache.EvictRegion(cache.RegionWishlists)
	srv.log(ctx).Info("Account deleted", slog.Any("userID", principal))

	return nil
}
