package lru

import (
	"errors"
	"fmt"
	"sync"
)

// ErrBadCapacity indicates a capacity below one.
var ErrBadCapacity = errors.New("lru: capacity must be positive")

// Option configures a Cache.
type Option[K comparable, V any] func(*options[K, V])

type options[K comparable, V any] struct {
	onEvict func(K, V)
	onLook  func(hit bool)
}

// WithOnEvict registers fn to run after an entry is evicted for capacity.
// fn runs with the cache lock held and must not call back into the cache.
func WithOnEvict[K comparable, V any](fn func(key K, value V)) Option[K, V] {
	return func(o *options[K, V]) { o.onEvict = fn }
}

// WithStatsHook registers fn to observe every Get as a hit or miss.
func WithStatsHook[K comparable, V any](fn func(hit bool)) Option[K, V] {
	return func(o *options[K, V]) { o.onLook = fn }
}

// Cache is a thread-safe LRU cache.
type Cache[K comparable, V any] struct {
	mu       sync.Mutex
	capacity int
	items    map[K]*node[K, V]
	order    *list[K, V]
	opts     options[K, V]
}

// New returns an empty cache holding at most capacity entries.
func New[K comparable, V any](capacity int, opts ...Option[K, V]) (*Cache[K, V], error) {
	if capacity < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrBadCapacity, capacity)
	}
	c := &Cache[K, V]{
		capacity: capacity,
		items:    make(map[K]*node[K, V], capacity),
		order:    newList[K, V](),
	}
	for _, opt := range opts {
		opt(&c.opts)
	}
	return c, nil
}

// Get returns the value for key and marks it most recently used.
// A miss returns the zero value and false.
func (c *Cache[K, V]) Get(key K) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	n, ok := c.items[key]
	if c.opts.onLook != nil {
		c.opts.onLook(ok)
	}
	if !ok {
		var zero V
		return zero, false
	}
	c.order.moveToFront(n)
	return n.value, true
}

// Put inserts or updates key and marks it most recently used, evicting
// the least recently used entry if the cache is over capacity.
func (c *Cache[K, V]) Put(key K, value V) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if n, ok := c.items[key]; ok {
		n.value = value
		c.order.moveToFront(n)
		return
	}

	n := &node[K, V]{key: key, value: value}
	c.items[key] = n
	c.order.pushFront(n)

	if len(c.items) > c.capacity {
		lru := c.order.back()
		c.order.remove(lru)
		delete(c.items, lru.key)
		if c.opts.onEvict != nil {
			c.opts.onEvict(lru.key, lru.value)
		}
	}
}

// Peek returns the value for key without touching recency.
func (c *Cache[K, V]) Peek(key K) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if n, ok := c.items[key]; ok {
		return n.value, true
	}
	var zero V
	return zero, false
}

// Delete removes key and reports whether it was present.
func (c *Cache[K, V]) Delete(key K) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	n, ok := c.items[key]
	if !ok {
		return false
	}
	c.order.remove(n)
	delete(c.items, key)
	return true
}

// Len returns the number of cached entries.
func (c *Cache[K, V]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.items)
}

// Cap returns the configured capacity.
func (c *Cache[K, V]) Cap() int { return c.capacity }

// Keys lists keys from most to least recently used.
func (c *Cache[K, V]) Keys() []K {
	c.mu.Lock()
	defer c.mu.Unlock()

	keys := make([]K, 0, len(c.items))
	for n := c.order.head.next; n != c.order.tail; n = n.next {
		keys = append(keys, n.key)
	}
	return keys
}
