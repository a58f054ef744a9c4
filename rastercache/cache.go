// Package rastercache is a reference external cache for rasterized
// glyphs, keyed on [ggtext.RasterKey]. The layout engine never caches
// rasters itself; it only emits keys stable enough for a cache like
// this one to dedupe work across glyphs, spans, and layout passes.
package rastercache

import (
	"sync"
	"sync/atomic"

	"github.com/gogpu/ggtext"
)

// Key is the cache key type, reusing RasterKey's own integer identity
// and Hash method instead of a caller-supplied hasher.
type Key = ggtext.RasterKey

// Default configuration constants.
const (
	// ShardCount is the number of shards for reduced lock contention.
	// Must be a power of 2 for fast modulo via bitwise AND.
	ShardCount = 16

	// DefaultCapacity is the default maximum entries per shard.
	DefaultCapacity = 256

	shardMask = ShardCount - 1
)

// Cache is a thread-safe, sharded LRU cache mapping a RasterKey to a
// caller-defined rasterized value V (e.g. an alpha mask or an atlas
// slot). It never rasterizes anything itself; V is supplied by the
// caller's GetOrCreate create function.
type Cache[V any] struct {
	shards   [ShardCount]*shard[V]
	capacity int

	hits      atomic.Uint64
	misses    atomic.Uint64
	evictions atomic.Uint64
}

type shard[V any] struct {
	mu      sync.RWMutex
	entries map[Key]*entry[V]
	lru     lruList
}

type entry[V any] struct {
	value V
	node  *lruNode
}

// New creates a cache with the given per-shard capacity. If capacity
// <= 0, DefaultCapacity is used. Total capacity is capacity * ShardCount.
func New[V any](capacity int) *Cache[V] {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	c := &Cache[V]{capacity: capacity}
	for i := range c.shards {
		c.shards[i] = &shard[V]{entries: make(map[Key]*entry[V])}
	}
	return c
}

func (c *Cache[V]) shardFor(key Key) *shard[V] {
	return c.shards[key.Hash()&shardMask]
}

// Get retrieves a cached value by key, moving it to the front of its
// shard's LRU list on a hit.
func (c *Cache[V]) Get(key Key) (V, bool) {
	s := c.shardFor(key)

	s.mu.RLock()
	_, exists := s.entries[key]
	s.mu.RUnlock()
	if !exists {
		c.misses.Add(1)
		var zero V
		return zero, false
	}

	s.mu.Lock()
	e, ok := s.entries[key]
	if !ok {
		s.mu.Unlock()
		c.misses.Add(1)
		var zero V
		return zero, false
	}
	s.lru.MoveToFront(e.node)
	value := e.value
	s.mu.Unlock()

	c.hits.Add(1)
	return value, true
}

// Set stores a value, evicting the least-recently-used entry in its
// shard if that shard is at capacity.
func (c *Cache[V]) Set(key Key, value V) {
	s := c.shardFor(key)

	s.mu.Lock()
	defer s.mu.Unlock()

	if existing, ok := s.entries[key]; ok {
		existing.value = value
		s.lru.MoveToFront(existing.node)
		return
	}

	for s.lru.Len() >= c.capacity {
		oldest, ok := s.lru.RemoveOldest()
		if !ok {
			break
		}
		delete(s.entries, oldest)
		c.evictions.Add(1)
	}

	node := s.lru.PushFront(key)
	s.entries[key] = &entry[V]{value: value, node: node}
}

// GetOrCreate returns a cached value, or calls create and caches its
// result under a shard lock so concurrent misses for the same key never
// race to rasterize the same glyph twice.
func (c *Cache[V]) GetOrCreate(key Key, create func() V) V {
	if v, ok := c.Get(key); ok {
		return v
	}

	s := c.shardFor(key)
	s.mu.Lock()
	defer s.mu.Unlock()

	if e, ok := s.entries[key]; ok {
		s.lru.MoveToFront(e.node)
		c.hits.Add(1)
		return e.value
	}
	c.misses.Add(1)

	value := create()

	for s.lru.Len() >= c.capacity {
		oldest, ok := s.lru.RemoveOldest()
		if !ok {
			break
		}
		delete(s.entries, oldest)
		c.evictions.Add(1)
	}

	node := s.lru.PushFront(key)
	s.entries[key] = &entry[V]{value: value, node: node}
	return value
}

// Delete removes an entry, reporting whether it was present.
func (c *Cache[V]) Delete(key Key) bool {
	s := c.shardFor(key)
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.entries[key]
	if !ok {
		return false
	}
	s.lru.Remove(e.node)
	delete(s.entries, key)
	return true
}

// Clear removes every entry from every shard.
func (c *Cache[V]) Clear() {
	for _, s := range c.shards {
		s.mu.Lock()
		s.entries = make(map[Key]*entry[V])
		s.lru.Clear()
		s.mu.Unlock()
	}
}

// Len returns the total number of entries across all shards.
func (c *Cache[V]) Len() int {
	total := 0
	for _, s := range c.shards {
		s.mu.RLock()
		total += len(s.entries)
		s.mu.RUnlock()
	}
	return total
}

// Stats reports cumulative hit/miss/eviction counters.
type Stats struct {
	Len       int
	Capacity  int
	Hits      uint64
	Misses    uint64
	HitRate   float64
	Evictions uint64
}

// Stats returns current cache statistics. Len is computed fresh; the
// counters are lock-free atomic reads.
func (c *Cache[V]) Stats() Stats {
	hits := c.hits.Load()
	misses := c.misses.Load()
	var hitRate float64
	if total := hits + misses; total > 0 {
		hitRate = float64(hits) / float64(total)
	}
	return Stats{
		Len:       c.Len(),
		Capacity:  c.capacity * ShardCount,
		Hits:      hits,
		Misses:    misses,
		HitRate:   hitRate,
		Evictions: c.evictions.Load(),
	}
}
