package impl

import (
	"context"
	"fmt"
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

func newWishlistServiceUnderTest() (usecase.WishlistUsecase, *memFactory) {
	factory := newMemFactory()
	svc := NewWishlistService(WishlistServiceParams{
		TxManager:    &memTxManager{factory: factory},
		WishlistRepo: factory.wishlists,
		Cache:        cache.New(cache.Config{}),
		Logger:       newDiscardLogger(),
	})

	return svc, factory
}

func TestWishlistService_Create_EnforcesPerUserLimit(t *testing.T) {
	svc, _ := newWishlistServiceUnderTest()
	ctx := context.Background()
	owner := uuid.New()

	for i := 0; i < entity.MaxWishlistsPerUser; i++ {
		_, err := svc.Create(ctx, owner, fmt.Sprintf("list-%d", i))
		require.NoError(t, err)
	}

	_, err := svc.Create(ctx, owner, "one-too-many")
	assert.True(t, errors.Is(err, domainerrors.ErrWishlistLimitReached))

	// The cap is per owner, not global.
	_, err = svc.Create(ctx, uuid.New(), "fresh-owner")
	assert.NoError(t, err)
}

func TestWishlistService_Create_DuplicateNamePerOwner(t *testing.T) {
	svc, _ := newWishlistServiceUnderTest()
	ctx := context.Background()
	owner := uuid.New()

	_, err := svc.Create(ctx, owner, "birthday")
	require.NoError(t, err)

	_, err = svc.Create(ctx, owner, "birthday")
	assert.True(t, errors.Is(err, domainerrors.ErrWishlistAlreadyExists))

	// The same name under another owner is fine.
	_, err = svc.Create(ctx, uuid.New(), "birthday")
	assert.NoError(t, err)
}

func TestWishlistService_Get_ForeignWishlistLooksMissing(t *testing.T) {
	svc, _ := newWishlistServiceUnderTest()
	ctx := context.Background()
	owner := uuid.New()

	wishlist, err := svc.Create(ctx, owner, "mine")
	require.NoError(t, err)

	_, missingErr := svc.Get(ctx, owner, uuid.New())
	_, foreignErr := svc.Get(ctx, uuid.New(), wishlist.ID)

	assert.True(t, errors.Is(missingErr, domainerrors.ErrWishlistNotFound))
	assert.True(t, errors.Is(foreignErr, domainerrors.ErrWishlistNotFound))
}

func TestWishlistService_AddProduct_ResolvesWishlistUnderOwner(t *testing.T) {
	svc, factory := newWishlistServiceUnderTest()
	ctx := context.Background()
	owner := uuid.New()
	intruder := uuid.New()

	wishlist, err := svc.Create(ctx, owner, "gifts")
	require.NoError(t, err)

	product := &entity.Product{Name: "Lamp", Price: 30}
	require.NoError(t, factory.products.Create(ctx, product))

	// Another principal cannot reach the wishlist even with a valid product.
	_, err = svc.AddProduct(ctx, intruder, wishlist.ID, product.ID)
	assert.True(t, errors.Is(err, domainerrors.ErrWishlistNotFound))
	assert.Empty(t, factory.wishlists.products[wishlist.ID])

	updated, err := svc.AddProduct(ctx, owner, wishlist.ID, product.ID)
	require.NoError(t, err)
	require.Len(t, updated.Products, 1)
	assert.Equal(t, product.ID, updated.Products[0].ID)
}

func TestWishlistService_AddProduct_UnknownProduct(t *testing.T) {
	svc, _ := newWishlistServiceUnderTest()
	ctx := context.Background()
	owner := uuid.New()

	wishlist, err := svc.Create(ctx, owner, "gifts")
	require.NoError(t, err)

	_, err = svc.AddProduct(ctx, owner, wishlist.ID, uuid.New())
	assert.True(t, errors.Is(err, domainerrors.ErrProductNotFound))
}

func TestWishlistService_AddProduct_Idempotent(t *testing.T) {
	svc, factory := newWishlistServiceUnderTest()
	ctx := context.Background()
	owner := uuid.New()

	wishlist, err := svc.Create(ctx, owner, "gifts")
	require.NoError(t, err)
	product := &entity.Product{Name: "Mug", Price: 8}
	require.NoError(t, factory.products.Create(ctx, product))

	_, err = svc.AddProduct(ctx, owner, wishlist.ID, product.ID)
	require.NoError(t, err)
	updated, err := svc.AddProduct(ctx, owner, wishlist.ID, product.ID)
	require.NoError(t, err)
	assert.Len(t, updated.Products, 1)
}

func TestWishlistService_RemoveProduct_AbsentProductIsNoop(t *testing.T) {
	svc, _ := newWishlistServiceUnderTest()
	ctx := context.Background()
	owner := uuid.New()

	wishlist, err := svc.Create(ctx, owner, "gifts")
	require.NoError(t, err)

	updated, err := svc.RemoveProduct(ctx, owner, wishlist.ID, uuid.New())
	require.NoError(t, err)
	assert.Empty(t, updated.Products)
}

func TestWishlistService_List_EmptyPage(t *testing.T) {
	svc, _ := newWishlistServiceUnderTest()

	_, err := svc.List(context.Background(), uuid.New(), usecase.ListInput{
		Page: 0, Size: 10, Sort: []string{"name", "asc"},
	})
	assert.True(t, errors.Is(err, domainerrors.ErrWishlistsEmpty))
}

func TestWishlistService_List_CacheIsPrincipalScoped(t *testing.T) {
	svc, _ := newWishlistServiceUnderTest()
	ctx := context.Background()
	alice := uuid.New()
	bob := uuid.New()

	_, err := svc.Create(ctx, alice, "alice-list")
	require.NoError(t, err)
	_, err = svc.Create(ctx, bob, "bob-list")
	require.NoError(t, err)

	input := usecase.ListInput{Page: 0, Size: 10, Sort: []string{"name", "asc"}}

	aliceLists, err := svc.List(ctx, alice, input)
	require.NoError(t, err)
	bobLists, err := svc.List(ctx, bob, input)
	require.NoError(t, err)

	require.Len(t, aliceLists, 1)
	require.Len(t, bobLists, 1)
	assert.Equal(t, "alice-list", aliceLists[0].Name)
	assert.Equal(t, "bob-list", bobLists[0].Name)
}
