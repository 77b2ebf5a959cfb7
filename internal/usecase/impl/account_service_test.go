package impl

import (
	"context"
	"testing"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/infra/cache"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAccountService_DeleteAccount_CascadesOwnedData(t *testing.T) {
	factory := newMemFactory()
	ctx := context.Background()

	svc := NewAccountService(AccountServiceParams{
		TxManager: &memTxManager{factory: factory},
		Cache:     cache.New(cache.Config{}),
		Logger:    newDiscardLogger(),
	})

	user := &entity.User{Login: "johndoe", Email: "john@example.com", Enabled: true, Role: entity.RoleUser}
	require.NoError(t, factory.users.Create(ctx, user))

	product := &entity.Product{Name: "Pen", Price: 2}
	require.NoError(t, factory.products.Create(ctx, product))

	cart := &entity.ShoppingCart{OwnerID: user.ID}
	require.NoError(t, factory.carts.Create(ctx, cart))
	require.NoError(t, factory.carts.AddItem(ctx, &entity.CartItem{CartID: cart.ID, Product: *product, Quantity: 1}))

	wishlist := &entity.Wishlist{Name: "stuff", OwnerID: user.ID}
	require.NoError(t, factory.wishlists.Create(ctx, wishlist))

	require.NoError(t, factory.addresses.Create(ctx, &entity.Address{OwnerID: user.ID, Street: "Main St"}))

	require.NoError(t, svc.DeleteAccount(ctx, user.ID))

	_, err := factory.users.FindByID(ctx, user.ID)
	assert.Error(t, err)
	_, err = factory.carts.FindByOwner(ctx, user.ID)
	assert.Error(t, err)
	count, _ := factory.wishlists.CountByOwner(ctx, user.ID)
	assert.Zero(t, count)
	addresses, _ := factory.addresses.ListByOwner(ctx, user.ID)
	assert.Empty(t, addresses)

	// The products themselves survive the account deletion.
	_, err = factory.products.FindByID(ctx, product.ID)
	assert.NoError(t, err)
}

func TestAccountService_DeleteAccount_UnknownUser(t *testing.T) {
	factory := newMemFactory()
	svc := NewAccountService(AccountServiceParams{
		TxManager: &memTxManager{factory: factory},
		Cache:     cache.New(cache.Config{}),
		Logger:    newDiscardLogger(),
	})

	err := svc.DeleteAccount(context.Background(), uuid.New())
	assert.True(t, errors.Is(err, domainerrors.ErrUserNotFound))
}

// Deleting an account makes its wishlist pages unreachable for a recreated
// principal with the same id, because the whole region is evicted.
func TestAccountService_DeleteAccount_EvictsWishlistPages(t *testing.T) {
	factory := newMemFactory()
	store := cache.New(cache.Config{})
	ctx := context.Background()

	accountSvc := NewAccountService(AccountServiceParams{
		TxManager: &memTxManager{factory: factory},
		Cache:     store,
		Logger:    newDiscardLogger(),
	})
	wishlistSvc := NewWishlistService(WishlistServiceParams{
		TxManager:    &memTxManager{factory: factory},
		WishlistRepo: factory.wishlists,
		Cache:        store,
		Logger:       newDiscardLogger(),
	})

	user := &entity.User{Login: "johndoe", Email: "john@example.com"}
	require.NoError(t, factory.users.Create(ctx, user))
	_, err := wishlistSvc.Create(ctx, user.ID, "keepsakes")
	require.NoError(t, err)

	input := usecase.ListInput{Page: 0, Size: 10, Sort: []string{"name", "asc"}}
	pages, err := wishlistSvc.List(ctx, user.ID, input)
	require.NoError(t, err)
	require.Len(t, pages, 1)

	require.NoError(t, accountSvc.DeleteAccount(ctx, user.ID))

	_, err = wishlistSvc.List(ctx, user.ID, input)
	assert.True(t, errors.Is(err, domainerrors.ErrWishlistsEmpty))
}
