package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/errors"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

// cartService implements the CartUsecase interface. The cart is created lazily
// on the first interaction; cart-level calls are owner-scoped, item-level calls
// load the item first and then compare the cart owner against the principal.
type cartService struct {
	txManager repository.TransactionManager
	cartRepo  repository.CartRepository
	logger    *slog.Logger
	now       func() time.Time
}

// CartServiceParams holds dependencies for the cart service, injected by Fx.
type CartServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	CartRepo  repository.CartRepository
	Logger    *slog.Logger
}

// NewCartService is the constructor for cartService.
func NewCartService(params CartServiceParams) usecase.CartUsecase {
	return &cartService{
		txManager: params.TxManager,
		cartRepo:  params.CartRepo,
		logger:    params.Logger,
		now:       time.Now,
	}
}

func (srv *cartService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Get returns the principal's cart, creating an empty one on first use.
func (srv *cartService) Get(ctx context.Context, principal uuid.UUID) (*entity.ShoppingCart, error) {
	cart, err := srv.cartRepo.FindByOwner(ctx, principal)
	if err == nil {
		return cart, nil
	}
	if !errors.Is(err, repository.ErrCartNotFound) {
		return nil, err
	}

	cart = &entity.ShoppingCart{OwnerID: principal}
	if err := srv.cartRepo.Create(ctx, cart); err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Shopping cart created", slog.Any("ownerID", principal))

	return cart, nil
}

// AddProduct puts a product into the cart. Adding a product that is already an
// item accumulates its quantity on the existing line; the whole operation runs
// in one transaction.
func (srv *cartService) AddProduct(ctx context.Context, principal, productID uuid.UUID, quantity int) (*entity.ShoppingCart, error) {
	var cart *entity.ShoppingCart
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		cartRepo := repoFactory.CartRepo()

		current, err := cartRepo.FindByOwner(ctx, principal)
		if errors.Is(err, repository.ErrCartNotFound) {
			current = &entity.ShoppingCart{OwnerID: principal}
			if err := cartRepo.Create(ctx, current); err != nil {
				return err
			}
		} else if err != nil {
			return err
		}

		product, err := repoFactory.ProductRepo().FindByID(ctx, productID)
		if errors.Is(err, repository.ErrProductNotFound) {
			return domainerrors.ErrProductNotFound.With("id", productID.String())
		}
		if err != nil {
			return err
		}

		item, err := cartRepo.FindItemByCartAndProduct(ctx, current.ID, productID)
		switch {
		case err == nil:
			if err := cartRepo.UpdateItemQuantity(ctx, item.ID, item.Quantity+quantity); err != nil {
				return err
			}
		case errors.Is(err, repository.ErrCartItemNotFound):
			newItem := &entity.CartItem{
				CartID:      current.ID,
				CartOwnerID: principal,
				Product:     *product,
				Quantity:    quantity,
			}
			if err := cartRepo.AddItem(ctx, newItem); err != nil {
				return err
			}
		default:
			return err
		}

		if err := cartRepo.Touch(ctx, current.ID, srv.now()); err != nil {
			return err
		}

		cart, err = cartRepo.FindByOwner(ctx, principal)

		return err
	})
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Product added to cart", slog.Any("ownerID", principal), slog.Any("productID", productID), slog.Int("quantity", quantity))

	return cart, nil
}

// RemoveProduct drops the item line of one product from the cart. A product
// that is not in the cart is reported as a missing product.
func (srv *cartService) RemoveProduct(ctx context.Context, principal, productID uuid.UUID) (*entity.ShoppingCart, error) {
	var cart *entity.ShoppingCart
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		cartRepo := repoFactory.CartRepo()

		current, err := cartRepo.FindByOwner(ctx, principal)
		if errors.Is(err, repository.ErrCartNotFound) {
			return domainerrors.ErrProductNotFound.With("id", productID.String())
		}
		if err != nil {
			return err
		}

		item, err := cartRepo.FindItemByCartAndProduct(ctx, current.ID, productID)
		if errors.Is(err, repository.ErrCartItemNotFound) {
			return domainerrors.ErrProductNotFound.With("id", productID.String())
		}
		if err != nil {
			return err
		}

		if err := cartRepo.DeleteItem(ctx, item.ID); err != nil {
			return err
		}

		if err := cartRepo.Touch(ctx, current.ID, srv.now()); err != nil {
			return err
		}

		cart, err = cartRepo.FindByOwner(ctx, principal)

		return err
	})
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Product removed from cart", slog.Any("ownerID", principal), slog.Any("productID", productID))

	return cart, nil
}

// Clear removes every item line from the cart. A user without a cart has
// nothing to clear.
func (srv *cartService) Clear(ctx context.Context, principal uuid.UUID) error {
	cart, err := srv.cartRepo.FindByOwner(ctx, principal)
	if errors.Is(err, repository.ErrCartNotFound) {
		return nil
	}
	if err != nil {
		return err
	}

	if err := srv.cartRepo.ClearItems(ctx, cart.ID); err != nil {
		return err
	}

	if err := srv.cartRepo.Touch(ctx, cart.ID, srv.now()); err != nil {
		return err
	}

	srv.log(ctx).Info("Shopping cart cleared", slog.Any("ownerID", principal))

	return nil
}

// UpdateItemQuantity overwrites the quantity of one item line. A missing item
// is not-found; an item in someone else's cart is an authorization failure,
// deliberately distinguishable from the miss.
func (srv *cartService) UpdateItemQuantity(ctx context.Context, principal, itemID uuid.UUID, quantity int) (*entity.CartItem, error) {
	item, err := srv.authorizeItem(ctx, principal, itemID)
	if err != nil {
		return nil, err
	}

	if err := srv.cartRepo.UpdateItemQuantity(ctx, itemID, quantity); err != nil {
		return nil, err
	}

	if err := srv.cartRepo.Touch(ctx, item.CartID, srv.now()); err != nil {
		return nil, err
	}

	item.Quantity = quantity
	srv.log(ctx).Info("Cart item quantity updated", slog.Any("itemID", itemID), slog.Int("quantity", quantity))

	return item, nil
}

// RemoveItem deletes one item line, with the same ownership semantics as
// UpdateItemQuantity.
func (srv *cartService) RemoveItem(ctx context.Context, principal, itemID uuid.UUID) error {
	item, err := srv.authorizeItem(ctx, principal, itemID)
	if err != nil {
		return err
	}

	if err := srv.cartRepo.DeleteItem(ctx, itemID); err != nil {
		return err
	}

	if err := srv.cartRepo.Touch(ctx, item.CartID, srv.now()); err != nil {
		return err
	}

	srv.log(ctx).Info("Cart item removed", slog.Any("itemID", itemID))

	return nil
}

// authorizeItem loads an item line and verifies the principal owns its cart.
func (srv *cartService) authorizeItem(ctx context.Context, principal, itemID uuid.UUID) (*entity.CartItem, error) {
	item, err := srv.cartRepo.FindItemByID(ctx, itemID)
	if errors.Is(err, repository.ErrCartItemNotFound) {
		return nil, domainerrors.ErrCartItemNotFound.With("id", itemID.String())
	}
	if err != nil {
		return nil, err
	}

	if item.CartOwnerID != principal {
		return nil, domainerrors.ErrUnauthorizedCartItemUpdate
	}

	return item, nil
}
