package kvstore

import (
	"container/heap"
	"context"
	"errors"
	"fmt"
	"sync"
	"time"
)

var (
	// ErrBadTTL indicates a zero or negative TTL.
	ErrBadTTL = errors.New("kvstore: ttl must be positive")

	// ErrEmptyKey indicates an empty key.
	ErrEmptyKey = errors.New("kvstore: key is empty")
)

// Option configures a Store.
type Option func(*options)

type options struct {
	clock func() time.Time
}

// WithClock replaces time.Now. A nil clock is ignored.
func WithClock(now func() time.Time) Option {
	return func(o *options) {
		if now != nil {
			o.clock = now
		}
	}
}

type entry[V any] struct {
	value    V
	expireAt time.Time
	gen      uint64
}

// Store is a TTL key-value store.
type Store[V any] struct {
	mu    sync.Mutex
	items map[string]entry[V]
	queue expiryHeap
	gen   uint64
	now   func() time.Time
}

// New returns an empty Store.
func New[V any](opts ...Option) *Store[V] {
	cfg := options{clock: time.Now}
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Store[V]{items: make(map[string]entry[V]), now: cfg.clock}
}

// Put inserts or replaces key, expiring ttl from now.
func (s *Store[V]) Put(key string, value V, ttl time.Duration) error {
	if key == "" {
		return ErrEmptyKey
	}
	if ttl <= 0 {
		return fmt.Errorf("%w: got %s", ErrBadTTL, ttl)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.gen++
	at := s.now().Add(ttl)
	s.items[key] = entry[V]{value: value, expireAt: at, gen: s.gen}
	heap.Push(&s.queue, expiry{at: at, key: key, gen: s.gen})
	if len(s.queue) > 2*len(s.items)+compactSlack {
		s.compact()
	}
	return nil
}

// compactSlack keeps small stores from rebuilding the queue on every Put.
const compactSlack = 64

// compact rebuilds the queue from live entries, dropping the stale ones
// left behind by overwrites and deletes. Callers hold s.mu.
func (s *Store[V]) compact() {
	q := make(expiryHeap, 0, len(s.items))
	for key, e := range s.items {
		q = append(q, expiry{at: e.expireAt, key: key, gen: e.gen})
	}
	heap.Init(&q)
	s.queue = q
}

// Get returns the live value for key.
func (s *Store[V]) Get(key string) (V, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	s.cleanup(now)

	e, ok := s.items[key]
	if !ok || !e.expireAt.After(now) {
		delete(s.items, key)
		var zero V
		return zero, false
	}
	return e.value, true
}

// TTL returns the time key has left to live.
func (s *Store[V]) TTL(key string) (time.Duration, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	e, ok := s.items[key]
	if !ok || !e.expireAt.After(now) {
		return 0, false
	}
	return e.expireAt.Sub(now), true
}

// Delete removes key and reports whether a live entry was removed.
func (s *Store[V]) Delete(key string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.items[key]
	delete(s.items, key)
	return ok && e.expireAt.After(s.now())
}

// Len returns the number of live entries.
func (s *Store[V]) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.cleanup(s.now())
	return len(s.items)
}

// Cleanup deletes every expired entry and returns how many it removed.
func (s *Store[V]) Cleanup() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cleanup(s.now())
}

// cleanup pops due heap entries. Callers hold s.mu.
func (s *Store[V]) cleanup(now time.Time) int {
	removed := 0
	for s.queue.Len() > 0 && !s.queue[0].at.After(now) {
		due := heap.Pop(&s.queue).(expiry)
		if e, ok := s.items[due.key]; ok && e.gen == due.gen {
			delete(s.items, due.key)
			removed++
		}
	}
	return removed
}

// Janitor runs Cleanup every interval until ctx is done. onSweep, if not
// nil, receives the number of entries removed by each pass.
func (s *Store[V]) Janitor(ctx context.Context, interval time.Duration, onSweep func(removed int)) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			n := s.Cleanup()
			if onSweep != nil {
				onSweep(n)
			}
		}
	}
}
