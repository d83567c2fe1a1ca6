package ratelimit

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// RedisLimiter keeps each key's log in a sorted set scored by request time
// in microseconds, so limits hold across processes sharing one Redis.
type RedisLimiter struct {
	client redis.Cmdable
	max    int
	window time.Duration
	clock  Clock
	prefix string
}

// NewRedis returns a RedisLimiter on client.
func NewRedis(client redis.Cmdable, max int, window time.Duration, opts ...Option) (*RedisLimiter, error) {
	if client == nil {
		return nil, ErrNilClient
	}
	if err := validate(max, window); err != nil {
		return nil, err
	}
	cfg := defaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	return &RedisLimiter{client: client, max: max, window: window, clock: cfg.clock, prefix: cfg.prefix}, nil
}

// Allow decides for key at the clock's current time.
func (r *RedisLimiter) Allow(ctx context.Context, key string) (bool, error) {
	return r.AllowAt(ctx, key, r.clock())
}

// AllowAt decides for key at now.
//
// Cleanup, count and record run in one MULTI/EXEC. The request is recorded
// optimistically; when the count taken before the insert was already at
// Max the member is removed again and the request denied. Concurrent
// callers may therefore see a count briefly above Max and be denied, but
// never more than Max requests are allowed.
func (r *RedisLimiter) AllowAt(ctx context.Context, key string, now time.Time) (bool, error) {
	rkey := r.prefix + key
	at := now.UnixMicro()
	floor := "(" + strconv.FormatInt(at-r.window.Microseconds(), 10)
	member := strconv.FormatInt(at, 10) + ":" + uuid.NewString()

	var card *redis.IntCmd
	_, err := r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.ZRemRangeByScore(ctx, rkey, "-inf", floor)
		card = pipe.ZCard(ctx, rkey)
		pipe.ZAdd(ctx, rkey, redis.Z{Score: float64(at), Member: member})
		pipe.PExpire(ctx, rkey, r.window+time.Second)
		return nil
	})
	if err != nil {
		return false, fmt.Errorf("ratelimit: redis transaction for %q: %w", key, err)
	}

	if card.Val() < int64(r.max) {
		return true, nil
	}
	if err := r.client.ZRem(ctx, rkey, member).Err(); err != nil {
		return false, fmt.Errorf("ratelimit: redis rollback for %q: %w", key, err)
	}
	return false, nil
}

// Reset drops all recorded requests for key.
func (r *RedisLimiter) Reset(ctx context.Context, key string) error {
	return r.client.Del(ctx, r.prefix+key).Err()
}
