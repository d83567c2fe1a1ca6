package ratelimit

import (
	"context"
	"errors"
	"time"
)

var (
	// ErrBadMax indicates Max below one.
	ErrBadMax = errors.New("ratelimit: max requests must be positive")

	// ErrBadWindow indicates a non-positive window.
	ErrBadWindow = errors.New("ratelimit: window must be positive")

	// ErrNilClient indicates a nil Redis client.
	ErrNilClient = errors.New("ratelimit: redis client is nil")
)

// Decider answers whether a request for key may proceed now.
type Decider interface {
	Allow(ctx context.Context, key string) (bool, error)
}

// Clock reports the current time.
type Clock func() time.Time

// Option configures the limiters.
type Option func(*options)

type options struct {
	clock  Clock
	prefix string
}

func defaultOptions() options {
	return options{clock: time.Now, prefix: "ratelimit:"}
}

// WithClock replaces time.Now. A nil clock is ignored.
func WithClock(c Clock) Option {
	return func(o *options) {
		if c != nil {
			o.clock = c
		}
	}
}

// WithKeyPrefix sets the Redis key prefix used by RedisLimiter.
func WithKeyPrefix(p string) Option {
	return func(o *options) { o.prefix = p }
}

func validate(max int, window time.Duration) error {
	if max < 1 {
		return ErrBadMax
	}
	if window <= 0 {
		return ErrBadWindow
	}
	return nil
}
