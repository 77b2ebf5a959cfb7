// Package cache is the read-through lookup cache fronting the list and lookup
// endpoints. Keys are partitioned into one region per entity type; a mutation
// on an entity type evicts its whole region rather than individual keys, so a
// stale read after a completed write is impossible.
package cache

import (
	"context"
	"strconv"
	"sync/atomic"
	"time"

	"github.com/puzpuzpuz/xsync/v3"
	"github.com/viccon/sturdyc"
)

// Cache regions, one per cached entity type.
const (
	RegionCategories = "categories"
	RegionProducts   = "products"
	RegionWishlists  = "wishlists"
)

// Config holds the sizing knobs of the underlying sturdyc client.
type Config struct {
	Capacity           int
	NumShards          int
	TTL                time.Duration
	EvictionPercentage int
}

// DefaultConfig returns sizing suitable for a single-node deployment.
func DefaultConfig() Config {
	return Config{
		Capacity:           10000,
		NumShards:          64,
		TTL:                5 * time.Minute,
		EvictionPercentage: 10,
	}
}

// Store is the region-partitioned read-through cache. Region eviction bumps a
// per-region generation counter that is woven into every key, making all
// outstanding entries of the region unreachable at once; the TTL reclaims
// their storage. The counter is atomic, so an eviction ordered after a
// completed write is observed by every subsequent read.
type Store struct {
	client      *sturdyc.Client[any]
	generations *xsync.MapOf[string, *atomic.Uint64]
}

// New constructs a Store from the given config, falling back to defaults for
// unset values.
func New(cfg Config) *Store {
	def := DefaultConfig()
	if cfg.Capacity <= 0 {
		cfg.Capacity = def.Capacity
	}
	if cfg.NumShards <= 0 {
		cfg.NumShards = def.NumShards
	}
	if cfg.TTL <= 0 {
		cfg.TTL = def.TTL
	}
	if cfg.EvictionPercentage < 1 || cfg.EvictionPercentage > 100 {
		cfg.EvictionPercentage = def.EvictionPercentage
	}

	return &Store{
		client:      sturdyc.New[any](cfg.Capacity, cfg.NumShards, cfg.TTL, cfg.EvictionPercentage),
		generations: xsync.NewMapOf[string, *atomic.Uint64](),
	}
}

func (s *Store) counter(region string) *atomic.Uint64 {
	counter, _ := s.generations.LoadOrStore(region, new(atomic.Uint64))

	return counter
}

// EvictRegion drops every cached entry of the region. Called after each
// completed mutation of the corresponding entity type.
func (s *Store) EvictRegion(region string) {
	s.counter(region).Add(1)
}

// GetOrFetch returns the cached value for (region, key), loading it through
// fetch on a miss. The cache is populated only when fetch succeeds; a fetch
// error propagates to the caller without populating anything.
func (s *Store) GetOrFetch(ctx context.Context, region, key string, fetch func(ctx context.Context) (any, error)) (any, error) {
	generation := s.counter(region).Load()
	full := region + keySeparator + strconv.FormatUint(generation, 10) + keySeparator + key

	return s.client.GetOrFetch(ctx, full, fetch)
}

// GetOrFetch is the type-safe wrapper around Store.GetOrFetch.
func GetOrFetch[T any](ctx context.Context, store *Store, region, key string, fetch func(ctx context.Context) (T, error)) (T, error) {
	result, err := store.GetOrFetch(ctx, region, key, func(ctx context.Context) (any, error) {
		return fetch(ctx)
	})
	if err != nil {
		var zero T

		return zero, err
	}

	return result.(T), nil
}
