// Package cache provides a generic sharded LRU cache. The gradient
// library uses it to hold built lookup tables keyed by gradient ID;
// it works for any comparable key and any value type.
package cache

import (
	"hash/fnv"
	"sync"
	"sync/atomic"
)

// Default configuration constants.
const (
	// DefaultShardCount is the number of shards for reduced lock
	// contention. Must be a power of 2 for fast modulo via bitwise AND.
	DefaultShardCount = 16

	// DefaultCapacity is the default maximum entries per shard.
	DefaultCapacity = 256

	// shardMask is used for fast shard selection (DefaultShardCount - 1).
	shardMask = DefaultShardCount - 1
)

// Hasher is a function that computes a hash for a key.
// Used by ShardedCache for shard selection.
type Hasher[K any] func(K) uint64

// StringHasher computes the FNV-1a hash of a string key.
func StringHasher(s string) uint64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte(s)) // fnv.Write never returns an error
	return h.Sum64()
}

// IntHasher computes the FNV-1a hash of an int key.
func IntHasher(i int) uint64 {
	h := fnv.New64a()
	var buf [8]byte
	for n := range buf {
		buf[n] = byte(i >> (8 * n))
	}
	_, _ = h.Write(buf[:])
	return h.Sum64()
}

// ShardedCache is a thread-safe, sharded LRU cache.
//
// Keys are spread across DefaultShardCount shards, each with its own
// lock and LRU list, so concurrent readers and writers rarely contend.
// Eviction is per shard, oldest entry first.
type ShardedCache[K comparable, V any] struct {
	shards   [DefaultShardCount]*cacheShard[K, V]
	hasher   Hasher[K]
	capacity int // per-shard capacity

	// Statistics (atomic for zero-allocation reads)
	hits      atomic.Uint64
	misses    atomic.Uint64
	evictions atomic.Uint64
}

// cacheShard is a single shard of the cache, with its own mutex.
type cacheShard[K comparable, V any] struct {
	mu      sync.RWMutex
	entries map[K]*cacheEntry[K, V]
	lru     *lruList[K]
}

// cacheEntry holds a cached value with its LRU node.
type cacheEntry[K comparable, V any] struct {
	value V
	node  *lruNode[K]
}

// NewSharded creates a sharded cache with the specified capacity per
// shard; total capacity is approximately capacity * DefaultShardCount.
// The hasher computes hash values for shard selection; use StringHasher
// or IntHasher for common key types.
//
// If capacity <= 0, DefaultCapacity is used.
func NewSharded[K comparable, V any](capacity int, hasher Hasher[K]) *ShardedCache[K, V] {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}

	c := &ShardedCache[K, V]{
		hasher:   hasher,
		capacity: capacity,
	}

	for i := range c.shards {
		c.shards[i] = &cacheShard[K, V]{
			entries: make(map[K]*cacheEntry[K, V]),
			lru:     newLRUList[K](),
		}
	}

	return c
}

// getShard returns the shard for a given key.
func (c *ShardedCache[K, V]) getShard(key K) *cacheShard[K, V] {
	return c.shards[c.hasher(key)&shardMask]
}

// Get retrieves a cached value by key.
// Returns (value, true) if found, (zero, false) otherwise.
// On a hit the entry moves to the front of its shard's LRU list.
func (c *ShardedCache[K, V]) Get(key K) (V, bool) {
	shard := c.getShard(key)

	// Fast path: read lock to check existence.
	shard.mu.RLock()
	_, exists := shard.entries[key]
	shard.mu.RUnlock()

	if !exists {
		c.misses.Add(1)
		var zero V
		return zero, false
	}

	// Slow path: write lock for the LRU update. Re-check after
	// acquiring it; the entry may have been evicted in between.
	shard.mu.Lock()
	entry, ok := shard.entries[key]
	if !ok {
		shard.mu.Unlock()
		c.misses.Add(1)
		var zero V
		return zero, false
	}
	shard.lru.MoveToFront(entry.node)
	value := entry.value
	shard.mu.Unlock()

	c.hits.Add(1)
	return value, true
}

// Set stores a value in the cache.
// If the shard exceeds capacity after insertion, oldest entries are
// evicted.
//
// The value is stored as-is, not copied. Callers must not modify it
// after caching.
func (c *ShardedCache[K, V]) Set(key K, value V) {
	shard := c.getShard(key)

	shard.mu.Lock()
	defer shard.mu.Unlock()

	if existing, ok := shard.entries[key]; ok {
		existing.value = value
		shard.lru.MoveToFront(existing.node)
		return
	}

	c.evictLocked(shard)

	node := shard.lru.PushFront(key)
	shard.entries[key] = &cacheEntry[K, V]{value: value, node: node}
}

// GetOrCreate returns the cached value for key, calling create to
// build it on a miss. The create function runs with the shard lock
// held, which prevents duplicate builds for the same key; keep it
// reasonably fast to limit contention on that shard.
func (c *ShardedCache[K, V]) GetOrCreate(key K, create func() V) V {
	shard := c.getShard(key)

	shard.mu.Lock()
	defer shard.mu.Unlock()

	if entry, ok := shard.entries[key]; ok {
		shard.lru.MoveToFront(entry.node)
		c.hits.Add(1)
		return entry.value
	}

	c.misses.Add(1)
	value := create()

	c.evictLocked(shard)

	node := shard.lru.PushFront(key)
	shard.entries[key] = &cacheEntry[K, V]{value: value, node: node}

	return value
}

// evictLocked removes oldest entries until the shard is under
// capacity. The caller must hold the shard lock.
func (c *ShardedCache[K, V]) evictLocked(shard *cacheShard[K, V]) {
	for shard.lru.Len() >= c.capacity {
		oldest, ok := shard.lru.RemoveOldest()
		if !ok {
			break
		}
		delete(shard.entries, oldest)
		c.evictions.Add(1)
	}
}

// Delete removes an entry from the cache.
// Returns true if the entry was found and removed.
func (c *ShardedCache[K, V]) Delete(key K) bool {
	shard := c.getShard(key)

	shard.mu.Lock()
	defer shard.mu.Unlock()

	entry, ok := shard.entries[key]
	if !ok {
		return false
	}

	shard.lru.Remove(entry.node)
	delete(shard.entries, key)
	return true
}

// Clear removes all entries from the cache.
func (c *ShardedCache[K, V]) Clear() {
	for _, shard := range c.shards {
		shard.mu.Lock()
		shard.entries = make(map[K]*cacheEntry[K, V])
		shard.lru.Clear()
		shard.mu.Unlock()
	}
}

// Len returns the total number of entries across all shards.
func (c *ShardedCache[K, V]) Len() int {
	total := 0
	for _, shard := range c.shards {
		shard.mu.RLock()
		total += len(shard.entries)
		shard.mu.RUnlock()
	}
	return total
}

// Capacity returns the per-shard capacity.
func (c *ShardedCache[K, V]) Capacity() int {
	return c.capacity
}

// Stats contains cache statistics.
type Stats struct {
	// Len is the current number of entries.
	Len int
	// Capacity is the per-shard capacity.
	Capacity int
	// TotalCapacity is the total capacity across all shards.
	TotalCapacity int
	// Hits is the number of cache hits.
	Hits uint64
	// Misses is the number of cache misses.
	Misses uint64
	// HitRate is the cache hit rate, 0.0 to 1.0.
	HitRate float64
	// Evictions is the number of evicted entries.
	Evictions uint64
}

// Stats returns current cache statistics.
// The counters are read atomically without locking the shards.
func (c *ShardedCache[K, V]) Stats() Stats {
	hits := c.hits.Load()
	misses := c.misses.Load()
	evictions := c.evictions.Load()

	var hitRate float64
	if total := hits + misses; total > 0 {
		hitRate = float64(hits) / float64(total)
	}

	return Stats{
		Len:           c.Len(),
		Capacity:      c.capacity,
		TotalCapacity: c.capacity * DefaultShardCount,
		Hits:          hits,
		Misses:        misses,
		HitRate:       hitRate,
		Evictions:     evictions,
	}
}

// ResetStats resets all statistics counters to zero.
func (c *ShardedCache[K, V]) ResetStats() {
	c.hits.Store(0)
	c.misses.Store(0)
	c.evictions.Store(0)
}
