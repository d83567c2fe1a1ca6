package ratelimit_test

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/drills/ratelimit"
)

var base = time.Unix(1000, 0)

func at(sec float64) time.Time {
	return base.Add(time.Duration(sec * float64(time.Second)))
}

func TestNew_Validation(t *testing.T) {
	_, err := ratelimit.New(0, time.Second)
	assert.ErrorIs(t, err, ratelimit.ErrBadMax)
	_, err = ratelimit.New(1, 0)
	assert.ErrorIs(t, err, ratelimit.ErrBadWindow)
	_, err = ratelimit.NewNaive(-1, time.Second)
	assert.ErrorIs(t, err, ratelimit.ErrBadMax)
	_, err = ratelimit.NewRedis(nil, 1, time.Second)
	assert.ErrorIs(t, err, ratelimit.ErrNilClient)
}

// allowAt is the common surface of Limiter and NaiveLimiter.
type allowAt interface {
	AllowAt(key string, now time.Time) bool
}

func TestSlidingWindow(t *testing.T) {
	naive, err := ratelimit.NewNaive(3, 10*time.Second)
	require.NoError(t, err)
	safe, err := ratelimit.New(3, 10*time.Second)
	require.NoError(t, err)

	for name, l := range map[string]allowAt{"naive": naive, "safe": safe} {
		t.Run(name, func(t *testing.T) {
			assert.True(t, l.AllowAt("user1", at(0)))
			assert.True(t, l.AllowAt("user1", at(1)))
			assert.True(t, l.AllowAt("user1", at(2)))
			assert.False(t, l.AllowAt("user1", at(3)))

			// Window slides: the t=0 request is 11s old.
			assert.True(t, l.AllowAt("user1", at(11)))

			// Other keys have their own budget.
			assert.True(t, l.AllowAt("user2", at(0)))
			assert.True(t, l.AllowAt("user2", at(1)))
		})
	}
}

func TestSlidingWindow_Boundary(t *testing.T) {
	l, _ := ratelimit.New(1, 10*time.Second)
	require.True(t, l.AllowAt("k", at(0)))
	assert.False(t, l.AllowAt("k", at(10)), "exactly one window old still counts")
	assert.True(t, l.AllowAt("k", at(10.001)))
}

func TestDeniedRequestsAreNotRecorded(t *testing.T) {
	l, _ := ratelimit.New(2, 10*time.Second)
	assert.True(t, l.AllowAt("k", at(0)))
	assert.True(t, l.AllowAt("k", at(5)))
	for i := 6; i < 10; i++ {
		assert.False(t, l.AllowAt("k", at(float64(i))))
	}
	// Only t=0 and t=5 were recorded, so t=10.5 frees one slot.
	assert.True(t, l.AllowAt("k", at(10.5)))
	assert.Equal(t, 0, l.Remaining("k", at(10.5)))
}

func TestWithClock(t *testing.T) {
	now := base
	l, err := ratelimit.New(1, time.Minute, ratelimit.WithClock(func() time.Time { return now }))
	require.NoError(t, err)
	assert.True(t, l.Allow("k"))
	assert.False(t, l.Allow("k"))
	now = now.Add(61 * time.Second)
	assert.True(t, l.Allow("k"))
}

func TestSweep(t *testing.T) {
	l, _ := ratelimit.New(5, 10*time.Second)
	l.AllowAt("old", at(0))
	l.AllowAt("fresh", at(8))
	assert.Equal(t, 2, l.Keys())
	assert.Equal(t, 1, l.Sweep(at(15)))
	assert.Equal(t, 1, l.Keys())
	assert.Equal(t, 4, l.Remaining("fresh", at(15)))
}

func TestRemaining_DoesNotTrackUnknownKeys(t *testing.T) {
	l, _ := ratelimit.New(3, 10*time.Second)
	assert.Equal(t, 3, l.Remaining("ghost", at(0)))
	assert.Zero(t, l.Keys())

	l.AllowAt("k", at(0))
	assert.Equal(t, 2, l.Remaining("k", at(1)))
	assert.Equal(t, 1, l.Keys())
}

func TestLimiter_Janitor(t *testing.T) {
	l, err := ratelimit.New(5, 10*time.Millisecond)
	require.NoError(t, err)
	for _, key := range []string{"a", "b", "c"} {
		require.True(t, l.Allow(key))
	}
	require.Equal(t, 3, l.Keys())

	ctx, cancel := context.WithCancel(context.Background())
	swept := make(chan int, 16)
	done := make(chan struct{})
	go func() {
		l.Janitor(ctx, 5*time.Millisecond, func(n int) {
			if n > 0 {
				swept <- n
			}
		})
		close(done)
	}()

	total := 0
	for total < 3 {
		select {
		case n := <-swept:
			total += n
		case <-time.After(2 * time.Second):
			t.Fatal("janitor never swept")
		}
	}
	cancel()
	<-done
	assert.Equal(t, 3, total)
	assert.Zero(t, l.Keys())
}

// TestLimiter_Concurrent checks that parallel callers on one key never
// get more than Max admissions.
func TestLimiter_Concurrent(t *testing.T) {
	const max = 50
	l, _ := ratelimit.New(max, time.Hour)
	var allowed int64
	var wg sync.WaitGroup
	for g := 0; g < 16; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 100; i++ {
				if l.AllowAt("shared", base) {
					atomic.AddInt64(&allowed, 1)
				}
				if i%25 == 0 {
					l.Sweep(base)
				}
			}
		}()
	}
	wg.Wait()
	assert.Equal(t, int64(max), allowed)
}

func TestAsDecider(t *testing.T) {
	l, _ := ratelimit.New(1, time.Minute)
	d := ratelimit.AsDecider(l)

	ok, err := d.Allow(context.Background(), "k")
	require.NoError(t, err)
	assert.True(t, ok)
	ok, err = d.Allow(context.Background(), "k")
	require.NoError(t, err)
	assert.False(t, ok)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = d.Allow(ctx, "other")
	assert.ErrorIs(t, err, context.Canceled)
}
