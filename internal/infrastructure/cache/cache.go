package cache

import (
	"time"

	gocache "github.com/patrickmn/go-cache"
)

// Cache is an in-memory store with expiration. It satisfies fiber.Storage,
// so middlewares such as the rate limiter can keep their counters in it.
type Cache struct {
	items *gocache.Cache
}

// New creates a cache whose janitor drops expired items every interval.
// The janitor stops once the cache is garbage collected.
func New(interval time.Duration) *Cache {
	return &Cache{items: gocache.New(gocache.NoExpiration, interval)}
}

// Get returns nil without error for missing or expired keys.
func (c *Cache) Get(key string) ([]byte, error) {
	v, found := c.items.Get(key)
	if !found {
		return nil, nil
	}
	value, _ := v.([]byte)
	return value, nil
}

// Set stores val under key. A zero exp keeps the item until deleted.
func (c *Cache) Set(key string, val []byte, exp time.Duration) error {
	if key == "" || len(val) == 0 {
		return nil
	}

	if exp <= 0 {
		exp = gocache.NoExpiration
	}

	// Callers may reuse val after Set returns
	value := make([]byte, len(val))
	copy(value, val)

	c.items.Set(key, value, exp)
	return nil
}

func (c *Cache) Delete(key string) error {
	c.items.Delete(key)
	return nil
}

// DeleteExpired removes all expired items from the cache
func (c *Cache) DeleteExpired() {
	c.items.DeleteExpired()
}

// Reset removes all items from the cache
func (c *Cache) Reset() error {
	c.items.Flush()
	return nil
}

// Close is a no-op; the janitor goes away with the cache.
func (c *Cache) Close() error {
	return nil
}

// Len counts stored items, including expired ones not yet swept.
func (c *Cache) Len() int {
	return c.items.ItemCount()
}
