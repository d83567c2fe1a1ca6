package ratelimit

import (
	"context"
	"sync"
	"time"
)

// keyed pairs one key's log with the lock that serialises it.
type keyed struct {
	mu   sync.Mutex
	log  log
	dead bool // set by Sweep after the entry left the map
}

// Limiter is a sliding-window limiter safe for concurrent use.
type Limiter struct {
	max    int
	window time.Duration
	clock  Clock

	mu   sync.Mutex // guards keys; held only to look up or create an entry
	keys map[string]*keyed
}

// New returns a Limiter allowing max requests per window per key.
func New(max int, window time.Duration, opts ...Option) (*Limiter, error) {
	if err := validate(max, window); err != nil {
		return nil, err
	}
	cfg := defaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Limiter{max: max, window: window, clock: cfg.clock, keys: make(map[string]*keyed)}, nil
}

// entry returns the state for key, creating it once.
func (l *Limiter) entry(key string) *keyed {
	l.mu.Lock()
	defer l.mu.Unlock()

	k, ok := l.keys[key]
	if !ok {
		k = &keyed{}
		l.keys[key] = k
	}
	return k
}

// Allow decides for key at the clock's current time.
func (l *Limiter) Allow(key string) bool {
	return l.AllowAt(key, l.clock())
}

// AllowAt decides for key at now. Cleanup, count and record happen under
// the key's lock.
func (l *Limiter) AllowAt(key string, now time.Time) bool {
	for {
		k := l.entry(key)
		k.mu.Lock()
		if k.dead {
			k.mu.Unlock()
			continue
		}
		ok := k.log.admit(now, l.window, l.max)
		k.mu.Unlock()
		return ok
	}
}

// Remaining reports how many more requests key may make at now.
// Unknown keys are not tracked by the query.
func (l *Limiter) Remaining(key string, now time.Time) int {
	l.mu.Lock()
	k, ok := l.keys[key]
	l.mu.Unlock()
	if !ok {
		return l.max
	}

	k.mu.Lock()
	defer k.mu.Unlock()
	if k.dead {
		return l.max
	}
	k.log.evict(now, l.window)
	return l.max - len(k.log.stamps)
}

// Sweep forgets keys with no requests left in the window at now and
// returns how many were dropped.
func (l *Limiter) Sweep(now time.Time) int {
	l.mu.Lock()
	defer l.mu.Unlock()

	dropped := 0
	for key, k := range l.keys {
		k.mu.Lock()
		k.log.evict(now, l.window)
		if len(k.log.stamps) == 0 {
			k.dead = true
			delete(l.keys, key)
			dropped++
		}
		k.mu.Unlock()
	}
	return dropped
}

// Janitor calls Sweep every interval until ctx is done. onSweep, when
// non-nil, receives the number of keys dropped by each pass.
func (l *Limiter) Janitor(ctx context.Context, interval time.Duration, onSweep func(dropped int)) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			n := l.Sweep(l.clock())
			if onSweep != nil {
				onSweep(n)
			}
		}
	}
}

// Keys returns the number of tracked keys.
func (l *Limiter) Keys() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.keys)
}

// AsDecider adapts l to the Decider interface. It never returns an error.
func AsDecider(l *Limiter) Decider { return local{l} }

type local struct{ l *Limiter }

func (d local) Allow(ctx context.Context, key string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	return d.l.Allow(key), nil
}
