package cache

import (
	"context"
	"sync"

	"github.com/pricelens/backend/internal/domain"
)

// DefaultCapacity is used when no capacity is configured.
const DefaultCapacity = 100

// FIFOCache is a thread-safe bounded in-memory cache for resolution
// results. When full, the oldest-inserted entry is evicted first;
// insertion order is the only tracked metadata.
type FIFOCache struct {
	capacity int
	data     map[string]domain.ResolutionResult
	order    []string
	mutex    sync.RWMutex
}

// NewFIFOCache creates a new bounded in-memory cache
func NewFIFOCache(capacity int) *FIFOCache {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}

	return &FIFOCache{
		capacity: capacity,
		data:     make(map[string]domain.ResolutionResult, capacity),
		order:    make([]string, 0, capacity),
	}
}

// Get retrieves a result from the cache. The returned value is a copy so
// callers cannot mutate the cached snapshot.
func (c *FIFOCache) Get(ctx context.Context, key string) (*domain.ResolutionResult, error) {
	c.mutex.RLock()
	defer c.mutex.RUnlock()

	result, exists := c.data[key]
	if !exists {
		return nil, domain.ErrCacheMiss
	}

	return &result, nil
}

// Put stores a result in the cache, evicting the oldest-inserted entry
// when at capacity. Re-putting an existing key replaces the value without
// changing its position in the eviction order.
func (c *FIFOCache) Put(ctx context.Context, key string, result *domain.ResolutionResult) error {
	if result == nil {
		return domain.ErrInvalidRequest
	}

	c.mutex.Lock()
	defer c.mutex.Unlock()

	if _, exists := c.data[key]; exists {
		c.data[key] = *result
		return nil
	}

	if len(c.order) >= c.capacity {
		oldest := c.order[0]
		c.order = c.order[1:]
		delete(c.data, oldest)
	}

	c.data[key] = *result
	c.order = append(c.order, key)
	return nil
}

// Size returns the current number of items in the cache (for debugging/monitoring)
func (c *FIFOCache) Size() int {
	c.mutex.RLock()
	defer c.mutex.RUnlock()
	return len(c.data)
}

// Clear removes all items from the cache
func (c *FIFOCache) Clear() {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	c.data = make(map[string]domain.ResolutionResult, c.capacity)
	c.order = c.order[:0]
}
