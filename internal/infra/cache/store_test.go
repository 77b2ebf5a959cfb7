package cache

import (
	"context"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// countingLoader counts how often the backing source is reached.
type countingLoader struct {
	calls int
	value string
	err   error
}

func (l *countingLoader) fetch(context.Context) (string, error) {
	l.calls++
	if l.err != nil {
		return "", l.err
	}

	return l.value, nil
}

func TestStore_GetOrFetch_LoadsOnce(t *testing.T) {
	store := New(Config{})
	loader := &countingLoader{value: "page-1"}
	ctx := context.Background()

	first, err := GetOrFetch(ctx, store, RegionProducts, "paginable::0::20", loader.fetch)
	require.NoError(t, err)
	second, err := GetOrFetch(ctx, store, RegionProducts, "paginable::0::20", loader.fetch)
	require.NoError(t, err)

	assert.Equal(t, "page-1", first)
	assert.Equal(t, "page-1", second)
	assert.Equal(t, 1, loader.calls)
}

func TestStore_EvictRegion_ForcesRefetch(t *testing.T) {
	store := New(Config{})
	loader := &countingLoader{value: "stale"}
	ctx := context.Background()

	_, err := GetOrFetch(ctx, store, RegionProducts, "find::x", loader.fetch)
	require.NoError(t, err)

	store.EvictRegion(RegionProducts)
	loader.value = "fresh"

	got, err := GetOrFetch(ctx, store, RegionProducts, "find::x", loader.fetch)
	require.NoError(t, err)
	assert.Equal(t, "fresh", got)
	assert.Equal(t, 2, loader.calls)
}

func TestStore_EvictRegion_LeavesOtherRegionsAlone(t *testing.T) {
	store := New(Config{})
	products := &countingLoader{value: "p"}
	categories := &countingLoader{value: "c"}
	ctx := context.Background()

	_, err := GetOrFetch(ctx, store, RegionProducts, "k", products.fetch)
	require.NoError(t, err)
	_, err = GetOrFetch(ctx, store, RegionCategories, "k", categories.fetch)
	require.NoError(t, err)

	store.EvictRegion(RegionProducts)

	_, err = GetOrFetch(ctx, store, RegionProducts, "k", products.fetch)
	require.NoError(t, err)
	_, err = GetOrFetch(ctx, store, RegionCategories, "k", categories.fetch)
	require.NoError(t, err)

	assert.Equal(t, 2, products.calls)
	assert.Equal(t, 1, categories.calls)
}

func TestStore_GetOrFetch_ErrorsAreNotCached(t *testing.T) {
	store := New(Config{})
	loader := &countingLoader{err: errors.New("empty page")}
	ctx := context.Background()

	_, err := GetOrFetch(ctx, store, RegionCategories, "paginable::0::20", loader.fetch)
	require.Error(t, err)

	// The source recovers; the next read must reach it again.
	loader.err = nil
	loader.value = "recovered"

	got, err := GetOrFetch(ctx, store, RegionCategories, "paginable::0::20", loader.fetch)
	require.NoError(t, err)
	assert.Equal(t, "recovered", got)
	assert.Equal(t, 2, loader.calls)
}

func TestStore_SameKeyDifferentRegionsAreIndependent(t *testing.T) {
	store := New(Config{})
	ctx := context.Background()

	first, err := GetOrFetch(ctx, store, RegionProducts, "find::1", func(context.Context) (string, error) {
		return "product", nil
	})
	require.NoError(t, err)
	second, err := GetOrFetch(ctx, store, RegionWishlists, "find::1", func(context.Context) (string, error) {
		return "wishlist", nil
	})
	require.NoError(t, err)

	assert.Equal(t, "product", first)
	assert.Equal(t, "wishlist", second)
}
