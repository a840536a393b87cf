package cache

import (
	"context"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/accold/mtg-price-api/internal/domain"
)

const defaultLRUSize = 256

// LRU is a size-bounded result cache backed by an expirable LRU. The TTL is
// fixed when the cache is built; the per-call ttl argument on Set is ignored
// in favor of the configured one.
type LRU struct {
	inner *expirable.LRU[string, domain.MatchResult]
}

// NewLRU creates an LRU cache holding at most size entries, each expiring
// ttl after insertion.
func NewLRU(size int, ttl time.Duration) *LRU {
	if size <= 0 {
		size = defaultLRUSize
	}
	return &LRU{
		inner: expirable.NewLRU[string, domain.MatchResult](size, nil, ttl),
	}
}

// Get retrieves a cached result.
func (c *LRU) Get(ctx context.Context, key string) (*domain.MatchResult, error) {
	result, ok := c.inner.Get(key)
	if !ok {
		return nil, domain.ErrCacheMiss
	}
	return &result, nil
}

// Set stores a result under the configured TTL.
func (c *LRU) Set(ctx context.Context, key string, result *domain.MatchResult, ttl time.Duration) error {
	c.inner.Add(key, *result)
	return nil
}

// Delete removes a key.
func (c *LRU) Delete(ctx context.Context, key string) error {
	c.inner.Remove(key)
	return nil
}
