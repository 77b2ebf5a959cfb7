package impl

import (
	"context"
	"fmt"
	"testing"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAddressServiceUnderTest() (usecase.AddressUsecase, *memFactory) {
	factory := newMemFactory()
	svc := NewAddressService(AddressServiceParams{
		AddressRepo: factory.addresses,
		Logger:      newDiscardLogger(),
	})

	return svc, factory
}

func sampleAddress(n int) usecase.AddressInput {
	return usecase.AddressInput{
		Street:     fmt.Sprintf("Main Street %d", n),
		City:       "Springfield",
		State:      "SP",
		PostalCode: "12345-678",
	}
}

func TestAddressService_Add_EnforcesPerUserLimit(t *testing.T) {
	svc, _ := newAddressServiceUnderTest()
	ctx := context.Background()
	owner := uuid.New()

	for i := 0; i < entity.MaxAddressesPerUser; i++ {
		_, err := svc.Add(ctx, owner, sampleAddress(i))
		require.NoError(t, err)
	}

	_, err := svc.Add(ctx, owner, sampleAddress(99))
	assert.True(t, errors.Is(err, domainerrors.ErrAddressLimitReached))

	_, err = svc.Add(ctx, uuid.New(), sampleAddress(0))
	assert.NoError(t, err)
}

func TestAddressService_List_EmptyBook(t *testing.T) {
	svc, _ := newAddressServiceUnderTest()

	_, err := svc.List(context.Background(), uuid.New())
	assert.True(t, errors.Is(err, domainerrors.ErrAddressesEmpty))
}

func TestAddressService_Get_ForeignAddressLooksMissing(t *testing.T) {
	svc, _ := newAddressServiceUnderTest()
	ctx := context.Background()
	owner := uuid.New()

	address, err := svc.Add(ctx, owner, sampleAddress(1))
	require.NoError(t, err)

	_, missingErr := svc.Get(ctx, owner, uuid.New())
	_, foreignErr := svc.Get(ctx, uuid.New(), address.ID)

	assert.True(t, errors.Is(missingErr, domainerrors.ErrAddressNotFound))
	assert.True(t, errors.Is(foreignErr, domainerrors.ErrAddressNotFound))
}

func TestAddressService_UpdateAndRemove(t *testing.T) {
	svc, _ := newAddressServiceUnderTest()
	ctx := context.Background()
	owner := uuid.New()

	address, err := svc.Add(ctx, owner, sampleAddress(1))
	require.NoError(t, err)

	updated, err := svc.Update(ctx, owner, address.ID, usecase.AddressInput{
		Street: "New Street 7", City: "Shelbyville", State: "SH", PostalCode: "98765-432",
	})
	require.NoError(t, err)
	assert.Equal(t, "New Street 7", updated.Street)
	assert.Equal(t, address.ID, updated.ID)

	// Another principal cannot update or remove it.
	_, err = svc.Update(ctx, uuid.New(), address.ID, sampleAddress(2))
	assert.True(t, errors.Is(err, domainerrors.ErrAddressNotFound))
	err = svc.Remove(ctx, uuid.New(), address.ID)
	assert.True(t, errors.Is(err, domainerrors.ErrAddressNotFound))

	require.NoError(t, svc.Remove(ctx, owner, address.ID))
	_, err = svc.Get(ctx, owner, address.ID)
	assert.True(t, errors.Is(err, domainerrors.ErrAddressNotFound))
}
