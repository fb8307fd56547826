package common

import (
	"time"

	"github.com/patrickmn/go-cache"
)

type Cache struct {
	*cache.Cache
}

func NewCache(expirationTime, cleanupTime time.Duration) *Cache {
	return &Cache{cache.New(expirationTime, cleanupTime)}
}

func (c *Cache) Set(key string, value interface{}, expiration ...time.Duration) {
	if len(expiration) > 0 {
		c.Cache.Set(key, value, expiration[0])
		return
	}
	c.Cache.Set(key, value, cache.DefaultExpiration)
}

func (c *Cache) Get(key string) (interface{}, bool) {
	return c.Cache.Get(key)
}

// GetOrAdd returns the value stored under key, storing newValue() first when the key is absent.
// Every call restarts the entry's expiration, so entries in use do not expire.
// When concurrent callers race on an absent key, the first stored value wins.
func (c *Cache) GetOrAdd(key string, newValue func() interface{}) interface{} {
	if v, ok := c.Cache.Get(key); ok {
		c.Set(key, v)
		return v
	}

	v := newValue()
	if err := c.Cache.Add(key, v, cache.DefaultExpiration); err == nil {
		return v
	}

	if stored, ok := c.Cache.Get(key); ok {
		return stored
	}

	// the racing entry expired in between
	c.Set(key, v)
	return v
}

func (c *Cache) Flush() {
	c.Cache.Flush()
}

func CacheKeyVisitor(ip string) string {
	return "visitor:" + ip
}
