package impl

import (
	"context"
	"testing"

	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/infra/cache"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCategoryServiceUnderTest() (usecase.CategoryUsecase, *memFactory) {
	factory := newMemFactory()
	svc := NewCategoryService(CategoryServiceParams{
		CategoryRepo: factory.categories,
		Cache:        cache.New(cache.Config{}),
		Logger:       newDiscardLogger(),
	})

	return svc, factory
}

func listAll() usecase.ListInput {
	return usecase.ListInput{Page: 0, Size: 20, Sort: []string{"name", "asc"}}
}

func TestCategoryService_Create_DuplicateName(t *testing.T) {
	svc, _ := newCategoryServiceUnderTest()
	ctx := context.Background()

	_, err := svc.Create(ctx, "books")
	require.NoError(t, err)

	_, err = svc.Create(ctx, "books")
	assert.True(t, errors.Is(err, domainerrors.ErrCategoryAlreadyExists))
}

func TestCategoryService_Get_ServesRepeatLookupsFromCache(t *testing.T) {
	svc, factory := newCategoryServiceUnderTest()
	ctx := context.Background()

	category, err := svc.Create(ctx, "books")
	require.NoError(t, err)

	first, err := svc.Get(ctx, category.ID)
	require.NoError(t, err)
	second, err := svc.Get(ctx, category.ID)
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, 1, factory.categories.findCalls)
}

func TestCategoryService_Get_NotFound(t *testing.T) {
	svc, _ := newCategoryServiceUnderTest()

	_, err := svc.Get(context.Background(), uuid.New())
	assert.True(t, errors.Is(err, domainerrors.ErrCategoryNotFound))
}

func TestCategoryService_List_EmptyPageIsNotCached(t *testing.T) {
	svc, factory := newCategoryServiceUnderTest()
	ctx := context.Background()

	_, err := svc.List(ctx, listAll())
	assert.True(t, errors.Is(err, domainerrors.ErrCategoriesEmpty))

	// The miss must not be served from the cache once data exists.
	_, err = svc.Create(ctx, "books")
	require.NoError(t, err)

	categories, err := svc.List(ctx, listAll())
	require.NoError(t, err)
	assert.Len(t, categories, 1)
	assert.Equal(t, 2, factory.categories.listCalls)
}

func TestCategoryService_Create_EvictsListCache(t *testing.T) {
	svc, factory := newCategoryServiceUnderTest()
	ctx := context.Background()

	_, err := svc.Create(ctx, "books")
	require.NoError(t, err)

	categories, err := svc.List(ctx, listAll())
	require.NoError(t, err)
	require.Len(t, categories, 1)

	// Cached page, no second repository hit.
	_, err = svc.List(ctx, listAll())
	require.NoError(t, err)
	assert.Equal(t, 1, factory.categories.listCalls)

	_, err = svc.Create(ctx, "games")
	require.NoError(t, err)

	categories, err = svc.List(ctx, listAll())
	require.NoError(t, err)
	assert.Len(t, categories, 2)
	assert.Equal(t, 2, factory.categories.listCalls)
}

func TestCategoryService_List_InvalidPaging(t *testing.T) {
	svc, _ := newCategoryServiceUnderTest()
	ctx := context.Background()

	_, err := svc.List(ctx, usecase.ListInput{Page: -1, Size: 20, Sort: []string{"name", "asc"}})
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidPagination))

	_, err = svc.List(ctx, usecase.ListInput{Page: 0, Size: 20, Sort: []string{"name", "sideways"}})
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidSortDirection))
}

func TestCategoryService_Rename_NotFound(t *testing.T) {
	svc, _ := newCategoryServiceUnderTest()

	_, err := svc.Rename(context.Background(), uuid.New(), "renamed")
	assert.True(t, errors.Is(err, domainerrors.ErrCategoryNotFound))
}

func TestCategoryService_Delete_RefreshesLookups(t *testing.T) {
	svc, _ := newCategoryServiceUnderTest()
	ctx := context.Background()

	category, err := svc.Create(ctx, "books")
	require.NoError(t, err)

	_, err = svc.Get(ctx, category.ID)
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, category.ID))

	// The cached lookup is gone together with the row.
	_, err = svc.Get(ctx, category.ID)
	assert.True(t, errors.Is(err, domainerrors.ErrCategoryNotFound))
}
