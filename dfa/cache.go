package dfa

import (
	"container/list"
	"sync"
)

// Cache is a bounded, thread-safe LRU of DFA states keyed by content
// (StateKey). Spec §4.F and §9 call for genuine oldest-entry eviction rather
// than the simpler whole-cache-clear-on-full policy: once the cache is at
// capacity, inserting a new state evicts the least-recently-touched entry,
// leaving every other state (and the content keys other states hold in their
// Transitions) untouched.
type Cache struct {
	mu       sync.RWMutex
	capacity int
	entries  map[StateKey]*list.Element // value: *cacheEntry
	order    *list.List                 // front = most recently used

	nextID StateID

	hits, misses, evictions uint64
}

type cacheEntry struct {
	key   StateKey
	state *State
}

// NewCache returns an empty Cache holding at most capacity states.
func NewCache(capacity int) *Cache {
	if capacity < 1 {
		capacity = 1
	}
	return &Cache{
		capacity: capacity,
		entries:  make(map[StateKey]*list.Element, capacity),
		order:    list.New(),
		nextID:   reservedIDs,
	}
}

// Get looks up a state by content key, promoting it to most-recently-used on
// a hit. A miss here is not itself counted: a probing Get is always followed
// by a GetOrInsert on the same key when the caller actually needs a state to
// exist, and that's where miss-counting belongs (mirroring the teacher's
// Insert-counts-misses, Get-counts-only-hits split).
func (c *Cache) Get(key StateKey) (*State, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	el, ok := c.entries[key]
	if !ok {
		return nil, false
	}
	c.hits++
	c.order.MoveToFront(el)
	return el.Value.(*cacheEntry).state, true
}

// GetOrInsert returns the cached state for key if present (promoting it to
// most-recently-used), or builds one via build, inserts it, and evicts the
// least-recently-used entry if the cache is full. build is only invoked on a
// miss. Returns the resulting state and whether it was newly built.
func (c *Cache) GetOrInsert(key StateKey, build func(id StateID) (pcs []uint32, isMatch bool)) (*State, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if el, ok := c.entries[key]; ok {
		c.hits++
		c.order.MoveToFront(el)
		return el.Value.(*cacheEntry).state, false
	}
	c.misses++

	if c.order.Len() >= c.capacity {
		c.evictOldestLocked()
	}

	id := c.nextID
	c.nextID++
	pcs, isMatch := build(id)
	st := newState(id, pcs, isMatch)

	el := c.order.PushFront(&cacheEntry{key: key, state: st})
	c.entries[key] = el
	return st, true
}

func (c *Cache) evictOldestLocked() {
	back := c.order.Back()
	if back == nil {
		return
	}
	entry := back.Value.(*cacheEntry)
	delete(c.entries, entry.key)
	c.order.Remove(back)
	c.evictions++
}

// Size returns the number of states currently resident.
func (c *Cache) Size() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.order.Len()
}

// IsFull reports whether the cache is at capacity.
func (c *Cache) IsFull() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.order.Len() >= c.capacity
}

// Stats is a point-in-time snapshot of cache activity.
type Stats struct {
	Hits      uint64
	Misses    uint64
	Evictions uint64
	Size      int
}

// Stats returns a snapshot of the cache's hit/miss/eviction counters.
func (c *Cache) Stats() Stats {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return Stats{
		Hits:      c.hits,
		Misses:    c.misses,
		Evictions: c.evictions,
		Size:      c.order.Len(),
	}
}

// ResetStats zeroes the hit/miss/eviction counters without touching cache
// contents.
func (c *Cache) ResetStats() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.hits, c.misses, c.evictions = 0, 0, 0
}

// Clear empties the cache entirely and resets state-id allocation.
func (c *Cache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[StateKey]*list.Element, c.capacity)
	c.order.Init()
	c.nextID = reservedIDs
}
