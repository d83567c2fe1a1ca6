package ratelimit_test

import (
	"context"
	"os"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/drills/ratelimit"
)

// redisClient connects to DRILLS_REDIS_ADDR when set and to an in-process
// miniredis otherwise.
func redisClient(t *testing.T) *redis.Client {
	t.Helper()
	addr := os.Getenv("DRILLS_REDIS_ADDR")
	if addr == "" {
		return miniClient(t, miniredis.RunT(t))
	}
	client := redis.NewClient(&redis.Options{Addr: addr})
	if err := client.Ping(context.Background()).Err(); err != nil {
		t.Skipf("redis unreachable: %v", err)
	}
	t.Cleanup(func() { _ = client.Close() })
	return client
}

func miniClient(t *testing.T, mr *miniredis.Miniredis) *redis.Client {
	t.Helper()
	client := redis.NewClient(&redis.Options{Addr: mr.Addr(), MaxRetries: -1})
	t.Cleanup(func() { _ = client.Close() })
	return client
}

func TestRedisLimiter_SlidingWindow(t *testing.T) {
	client := redisClient(t)
	ctx := context.Background()
	prefix := "test:" + uuid.NewString() + ":"
	l, err := ratelimit.NewRedis(client, 3, 10*time.Second, ratelimit.WithKeyPrefix(prefix))
	require.NoError(t, err)
	t.Cleanup(func() { _ = l.Reset(ctx, "user1") })

	for i, want := range []bool{true, true, true, false} {
		ok, err := l.AllowAt(ctx, "user1", at(float64(i)))
		require.NoError(t, err)
		assert.Equal(t, want, ok, "request %d", i)
	}
	ok, err := l.AllowAt(ctx, "user1", at(11))
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestRedisLimiter_Concurrent(t *testing.T) {
	client := redisClient(t)
	ctx := context.Background()
	l, err := ratelimit.NewRedis(client, 20, time.Minute, ratelimit.WithKeyPrefix("test:"+uuid.NewString()+":"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = l.Reset(ctx, "shared") })

	var allowed int64
	var wg sync.WaitGroup
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 10; i++ {
				ok, err := l.Allow(ctx, "shared")
				if err == nil && ok {
					atomic.AddInt64(&allowed, 1)
				}
			}
		}()
	}
	wg.Wait()
	assert.LessOrEqual(t, allowed, int64(20))
}

func TestRedisLimiter_Boundary(t *testing.T) {
	mr := miniredis.RunT(t)
	ctx := context.Background()
	l, err := ratelimit.NewRedis(miniClient(t, mr), 1, 10*time.Second)
	require.NoError(t, err)

	ok, err := l.AllowAt(ctx, "k", at(0))
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = l.AllowAt(ctx, "k", at(10))
	require.NoError(t, err)
	assert.False(t, ok, "exactly one window old still counts")

	ok, err = l.AllowAt(ctx, "k", at(10.001))
	require.NoError(t, err)
	assert.True(t, ok)

	members, err := mr.ZMembers("ratelimit:k")
	require.NoError(t, err)
	assert.Len(t, members, 1, "the t=0 entry is trimmed once outside the window")
}

func TestRedisLimiter_DeniedRequestsAreRolledBack(t *testing.T) {
	mr := miniredis.RunT(t)
	ctx := context.Background()
	l, err := ratelimit.NewRedis(miniClient(t, mr), 2, time.Minute, ratelimit.WithKeyPrefix("rl:"))
	require.NoError(t, err)

	for i, want := range []bool{true, true, false, false, false} {
		ok, err := l.AllowAt(ctx, "user", at(float64(i)))
		require.NoError(t, err)
		assert.Equal(t, want, ok, "request %d", i)
	}

	members, err := mr.ZMembers("rl:user")
	require.NoError(t, err)
	assert.Len(t, members, 2)
	assert.Equal(t, time.Minute+time.Second, mr.TTL("rl:user"))

	require.NoError(t, l.Reset(ctx, "user"))
	assert.False(t, mr.Exists("rl:user"))
	ok, err := l.AllowAt(ctx, "user", at(5))
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestRedisLimiter_BackendDown(t *testing.T) {
	mr := miniredis.RunT(t)
	l, err := ratelimit.NewRedis(miniClient(t, mr), 1, time.Second)
	require.NoError(t, err)
	mr.Close()

	ok, err := l.Allow(context.Background(), "k")
	assert.Error(t, err)
	assert.False(t, ok)
}
