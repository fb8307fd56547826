package common

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func setupTestEnvironment(t *testing.T) (*Cache, func()) {
	t.Helper()

	// Set up the test environment
	cache := NewCache(0, 0)

	cleanup := func() {
		cache.Flush()
	}

	return cache, cleanup
}

func TestCache_Set(t *testing.T) {
	cache, cleanup := setupTestEnvironment(t)
	defer cleanup()

	cache.Set("key", "value")

	if _, ok := cache.Get("key"); !ok {
		t.Error("expected key to be set")
	}
}

func TestCache_GetOrAdd(t *testing.T) {
	cache, cleanup := setupTestEnvironment(t)
	defer cleanup()

	calls := 0
	newValue := func() interface{} {
		calls++
		return calls
	}

	first := cache.GetOrAdd(CacheKeyVisitor("10.0.0.1"), newValue)
	second := cache.GetOrAdd(CacheKeyVisitor("10.0.0.1"), newValue)
	other := cache.GetOrAdd(CacheKeyVisitor("10.0.0.2"), newValue)

	assert.Equal(t, 1, first)
	assert.Equal(t, 1, second)
	assert.Equal(t, 2, other)
}

func TestCache_GetOrAddConcurrent(t *testing.T) {
	cache, cleanup := setupTestEnvironment(t)
	defer cleanup()

	type limiter struct{ id int }

	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		results []*limiter
	)

	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			v := cache.GetOrAdd(CacheKeyVisitor("10.0.0.1"), func() interface{} {
				return &limiter{id: i}
			}).(*limiter)

			mu.Lock()
			results = append(results, v)
			mu.Unlock()
		}(i)
	}
	wg.Wait()

	for _, r := range results {
		assert.Same(t, results[0], r)
	}
}

func TestCache_GetOrAddSlidesExpiration(t *testing.T) {
	cache := NewCache(300*time.Millisecond, 0)
	key := CacheKeyVisitor("10.0.0.1")

	calls := 0
	newValue := func() interface{} {
		calls++
		return calls
	}

	assert.Equal(t, 1, cache.GetOrAdd(key, newValue))

	// each hit lands before the entry's current expiry, but the last one comes
	// well after the first insert would have expired
	for i := 0; i < 4; i++ {
		time.Sleep(150 * time.Millisecond)
		assert.Equal(t, 1, cache.GetOrAdd(key, newValue))
	}
	assert.Equal(t, 1, calls)

	time.Sleep(450 * time.Millisecond)
	assert.Equal(t, 2, cache.GetOrAdd(key, newValue))
}

func TestCache_Flush(t *testing.T) {
	cache, cleanup := setupTestEnvironment(t)
	defer cleanup()

	cache.Set("key", "value")
	cache.Flush()

	if _, ok := cache.Get("key"); ok {
		t.Error("expected cache to be flushed")
	}
}
