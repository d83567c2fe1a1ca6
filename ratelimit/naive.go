package ratelimit

import "time"

// NaiveLimiter is the unsynchronised sliding window. Not safe for concurrent
// use; see Limiter.
type NaiveLimiter struct {
	max    int
	window time.Duration
	clock  Clock
	logs   map[string]*log
}

// NewNaive returns a NaiveLimiter allowing max requests per window per key.
func NewNaive(max int, window time.Duration, opts ...Option) (*NaiveLimiter, error) {
	if err := validate(max, window); err != nil {
		return nil, err
	}
	cfg := defaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	return &NaiveLimiter{max: max, window: window, clock: cfg.clock, logs: make(map[string]*log)}, nil
}

// Allow decides for key at the clock's current time.
func (n *NaiveLimiter) Allow(key string) bool {
	return n.AllowAt(key, n.clock())
}

// AllowAt decides for key at now.
func (n *NaiveLimiter) AllowAt(key string, now time.Time) bool {
	l, ok := n.logs[key]
	if !ok {
		l = &log{}
		n.logs[key] = l
	}
	return l.admit(now, n.window, n.max)
}
