package photos

import (
	"container/list"
	"sync"
	"time"
)

// cacheEntry is one cached response with its expiry.
type cacheEntry struct {
	key       string
	value     any
	expiresAt time.Time
}

// TTLCache is a bounded LRU map from cache keys to responses with
// per-entry expiry. An expired entry is logically absent even before
// it is physically removed: Get treats it as a miss and evicts it as
// a side effect.
//
// All operations are safe for concurrent use. Get never blocks on
// anything but the cache mutex.
type TTLCache struct {
	mu      sync.Mutex
	entries map[string]*list.Element
	order   *list.List // most recently used at front
	maxSize int
	swept   int // cumulative count of expired entries removed

	now func() time.Time // swappable for tests
}

// NewTTLCache creates a cache bounded to maxSize entries.
func NewTTLCache(maxSize int) *TTLCache {
	return &TTLCache{
		entries: make(map[string]*list.Element),
		order:   list.New(),
		maxSize: maxSize,
		now:     time.Now,
	}
}

// Get looks up a key. A hit refreshes the key's recency. Returns
// (nil, false) for keys never inserted and for expired entries; the
// latter are removed eagerly.
func (c *TTLCache) Get(key string) (any, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	ele, ok := c.entries[key]
	if !ok {
		return nil, false
	}
	entry := ele.Value.(*cacheEntry)
	if c.now().After(entry.expiresAt) {
		c.removeElement(ele)
		c.swept++
		return nil, false
	}
	c.order.MoveToFront(ele)
	return entry.value, true
}

// Set inserts or refreshes a key. Either way the key becomes the most
// recently used. If the key is new and the cache is full, the least
// recently used entry is evicted first.
func (c *TTLCache) Set(key string, value any, ttl time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()

	expiresAt := c.now().Add(ttl)
	if ele, ok := c.entries[key]; ok {
		c.order.MoveToFront(ele)
		entry := ele.Value.(*cacheEntry)
		entry.value = value
		entry.expiresAt = expiresAt
		return
	}

	if c.order.Len() >= c.maxSize {
		if oldest := c.order.Back(); oldest != nil {
			c.removeElement(oldest)
		}
	}
	c.entries[key] = c.order.PushFront(&cacheEntry{
		key:       key,
		value:     value,
		expiresAt: expiresAt,
	})
}

// Invalidate removes every entry whose key matches the predicate and
// returns how many were removed. Used after mutating calls to purge
// the query families a write makes stale.
func (c *TTLCache) Invalidate(match func(key string) bool) int {
	c.mu.Lock()
	defer c.mu.Unlock()

	removed := 0
	var next *list.Element
	for ele := c.order.Front(); ele != nil; ele = next {
		next = ele.Next()
		if match(ele.Value.(*cacheEntry).key) {
			c.removeElement(ele)
			removed++
		}
	}
	return removed
}

// SweepExpired removes every expired entry and returns the count.
// Usable as a background hygiene task; also run before reporting
// cache statistics so the reported size reflects live entries.
func (c *TTLCache) SweepExpired() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()
	removed := 0
	var next *list.Element
	for ele := c.order.Front(); ele != nil; ele = next {
		next = ele.Next()
		if now.After(ele.Value.(*cacheEntry).expiresAt) {
			c.removeElement(ele)
			removed++
		}
	}
	c.swept += removed
	return removed
}

// ExpiredSwept returns the cumulative number of expired entries
// removed, whether lazily on Get or by SweepExpired.
func (c *TTLCache) ExpiredSwept() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.swept
}

// Clear removes all entries.
func (c *TTLCache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries = make(map[string]*list.Element)
	c.order.Init()
}

// Len returns the number of entries, including any expired entries
// that have not been swept yet.
func (c *TTLCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.order.Len()
}

// MaxSize returns the cache bound.
func (c *TTLCache) MaxSize() int {
	return c.maxSize
}

// removeElement unlinks an entry. Caller holds the lock.
func (c *TTLCache) removeElement(ele *list.Element) {
	c.order.Remove(ele)
	delete(c.entries, ele.Value.(*cacheEntry).key)
}
