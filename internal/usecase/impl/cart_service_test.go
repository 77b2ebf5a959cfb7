package impl

import (
	"context"
	"testing"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCartServiceUnderTest() (usecase.CartUsecase, *memFactory) {
	factory := newMemFactory()
	svc := NewCartService(CartServiceParams{
		TxManager: &memTxManager{factory: factory},
		CartRepo:  factory.carts,
		Logger:    newDiscardLogger(),
	})

	return svc, factory
}

func TestCartService_Get_CreatesLazily(t *testing.T) {
	svc, factory := newCartServiceUnderTest()
	ctx := context.Background()
	owner := uuid.New()

	cart, err := svc.Get(ctx, owner)
	require.NoError(t, err)
	assert.Equal(t, owner, cart.OwnerID)
	assert.Empty(t, cart.Items)

	again, err := svc.Get(ctx, owner)
	require.NoError(t, err)
	assert.Equal(t, cart.ID, again.ID)
	assert.Len(t, factory.carts.carts, 1)
}

func TestCartService_AddProduct_AccumulatesQuantity(t *testing.T) {
	svc, factory := newCartServiceUnderTest()
	ctx := context.Background()
	owner := uuid.New()

	product := &entity.Product{Name: "Keyboard", Price: 49.90}
	require.NoError(t, factory.products.Create(ctx, product))

	cart, err := svc.AddProduct(ctx, owner, product.ID, 5)
	require.NoError(t, err)
	require.Len(t, cart.Items, 1)
	assert.Equal(t, 5, cart.Items[0].Quantity)

	cart, err = svc.AddProduct(ctx, owner, product.ID, 3)
	require.NoError(t, err)
	require.Len(t, cart.Items, 1)
	assert.Equal(t, 8, cart.Items[0].Quantity)
}

func TestCartService_AddProduct_UnknownProduct(t *testing.T) {
	svc, _ := newCartServiceUnderTest()

	_, err := svc.AddProduct(context.Background(), uuid.New(), uuid.New(), 1)
	assert.True(t, errors.Is(err, domainerrors.ErrProductNotFound))
}

func TestCartService_RemoveProduct_NotInCart(t *testing.T) {
	svc, factory := newCartServiceUnderTest()
	ctx := context.Background()
	owner := uuid.New()

	// No cart at all.
	_, err := svc.RemoveProduct(ctx, owner, uuid.New())
	assert.True(t, errors.Is(err, domainerrors.ErrProductNotFound))

	// Cart exists but the product is not an item.
	product := &entity.Product{Name: "Mouse", Price: 20}
	require.NoError(t, factory.products.Create(ctx, product))
	_, err = svc.AddProduct(ctx, owner, product.ID, 1)
	require.NoError(t, err)

	_, err = svc.RemoveProduct(ctx, owner, uuid.New())
	assert.True(t, errors.Is(err, domainerrors.ErrProductNotFound))
}

func TestCartService_RemoveProduct_DropsWholeLine(t *testing.T) {
	svc, factory := newCartServiceUnderTest()
	ctx := context.Background()
	owner := uuid.New()

	product := &entity.Product{Name: "Monitor", Price: 900}
	require.NoError(t, factory.products.Create(ctx, product))
	_, err := svc.AddProduct(ctx, owner, product.ID, 4)
	require.NoError(t, err)

	cart, err := svc.RemoveProduct(ctx, owner, product.ID)
	require.NoError(t, err)
	assert.Empty(t, cart.Items)
}

func TestCartService_Clear_WithoutCartIsNoop(t *testing.T) {
	svc, _ := newCartServiceUnderTest()

	assert.NoError(t, svc.Clear(context.Background(), uuid.New()))
}

func TestCartService_UpdateItemQuantity_OwnershipAndMisses(t *testing.T) {
	svc, factory := newCartServiceUnderTest()
	ctx := context.Background()
	owner := uuid.New()
	intruder := uuid.New()

	product := &entity.Product{Name: "Desk", Price: 300}
	require.NoError(t, factory.products.Create(ctx, product))
	cart, err := svc.AddProduct(ctx, owner, product.ID, 2)
	require.NoError(t, err)
	itemID := cart.Items[0].ID

	// A missing item and a foreign item fail differently: 404 versus 401.
	_, err = svc.UpdateItemQuantity(ctx, owner, uuid.New(), 7)
	assert.True(t, errors.Is(err, domainerrors.ErrCartItemNotFound))

	_, err = svc.UpdateItemQuantity(ctx, intruder, itemID, 7)
	assert.True(t, errors.Is(err, domainerrors.ErrUnauthorizedCartItemUpdate))

	item, err := svc.UpdateItemQuantity(ctx, owner, itemID, 7)
	require.NoError(t, err)
	assert.Equal(t, 7, item.Quantity)
}

func TestCartService_RemoveItem_ForeignItemIsRejected(t *testing.T) {
	svc, factory := newCartServiceUnderTest()
	ctx := context.Background()
	owner := uuid.New()

	product := &entity.Product{Name: "Chair", Price: 120}
	require.NoError(t, factory.products.Create(ctx, product))
	cart, err := svc.AddProduct(ctx, owner, product.ID, 1)
	require.NoError(t, err)
	itemID := cart.Items[0].ID

	err = svc.RemoveItem(ctx, uuid.New(), itemID)
	assert.True(t, errors.Is(err, domainerrors.ErrUnauthorizedCartItemUpdate))

	require.NoError(t, svc.RemoveItem(ctx, owner, itemID))
	err = svc.RemoveItem(ctx, owner, itemID)
	assert.True(t, errors.Is(err, domainerrors.ErrCartItemNotFound))
}
