package cache

import (
	"context"
	"sync"
	"time"

	"github.com/accold/mtg-price-api/internal/domain"
)

// item is one cached result with its expiration time.
type item struct {
	result     domain.MatchResult
	expiration time.Time
}

// Memory is a thread-safe in-memory TTL cache for match results.
type Memory struct {
	data  map[string]item
	mutex sync.RWMutex
	now   func() time.Time
}

// NewMemory creates a new in-memory cache and starts a background sweep
// that drops expired entries every minute.
func NewMemory() *Memory {
	c := &Memory{
		data: make(map[string]item),
		now:  time.Now,
	}
	go c.cleanupExpired()
	return c
}

// Get retrieves a cached result. Absent and expired keys both miss.
func (c *Memory) Get(ctx context.Context, key string) (*domain.MatchResult, error) {
	c.mutex.RLock()
	defer c.mutex.RUnlock()

	it, exists := c.data[key]
	if !exists || c.now().After(it.expiration) {
		return nil, domain.ErrCacheMiss
	}

	result := it.result
	return &result, nil
}

// Set stores a result that expires after ttl.
func (c *Memory) Set(ctx context.Context, key string, result *domain.MatchResult, ttl time.Duration) error {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	c.data[key] = item{
		result:     *result,
		expiration: c.now().Add(ttl),
	}
	return nil
}

// Delete removes a key.
func (c *Memory) Delete(ctx context.Context, key string) error {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	delete(c.data, key)
	return nil
}

// Size returns the current number of entries, live or expired.
func (c *Memory) Size() int {
	c.mutex.RLock()
	defer c.mutex.RUnlock()
	return len(c.data)
}

func (c *Memory) cleanupExpired() {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()

	for range ticker.C {
		c.mutex.Lock()
		now := c.now()
		for key, it := range c.data {
			if now.After(it.expiration) {
				delete(c.data, key)
			}
		}
		c.mutex.Unlock()
	}
}
