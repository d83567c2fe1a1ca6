package kvstore_test

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/drills/kvstore"
)

// fakeClock is advanced by hand.
type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	c.now = c.now.Add(d)
	c.mu.Unlock()
}

func newStore(t *testing.T) (*kvstore.Store[string], *fakeClock) {
	t.Helper()
	clk := &fakeClock{now: time.Unix(1_700_000_000, 0)}
	return kvstore.New[string](kvstore.WithClock(clk.Now)), clk
}

func TestStore_Validation(t *testing.T) {
	s, _ := newStore(t)
	assert.ErrorIs(t, s.Put("k", "v", 0), kvstore.ErrBadTTL)
	assert.ErrorIs(t, s.Put("k", "v", -time.Second), kvstore.ErrBadTTL)
	assert.ErrorIs(t, s.Put("", "v", time.Second), kvstore.ErrEmptyKey)
}

func TestStore_SessionExpires(t *testing.T) {
	s, clk := newStore(t)
	require.NoError(t, s.Put("session", "abc123", 3*time.Second))

	v, ok := s.Get("session")
	assert.True(t, ok)
	assert.Equal(t, "abc123", v)

	clk.Advance(4 * time.Second)
	_, ok = s.Get("session")
	assert.False(t, ok)
}

func TestStore_IndependentTTLs(t *testing.T) {
	s, clk := newStore(t)
	require.NoError(t, s.Put("k1", "v1", 10*time.Second))
	require.NoError(t, s.Put("k2", "v2", time.Second))

	clk.Advance(2 * time.Second)
	v, ok := s.Get("k1")
	assert.True(t, ok)
	assert.Equal(t, "v1", v)
	_, ok = s.Get("k2")
	assert.False(t, ok)
	assert.Equal(t, 1, s.Len())
}

func TestStore_ExpiresAtExactDeadline(t *testing.T) {
	s, clk := newStore(t)
	require.NoError(t, s.Put("k", "v", time.Second))
	clk.Advance(time.Second)
	_, ok := s.Get("k")
	assert.False(t, ok)
}

// TestStore_OverwriteKeepsNewTTL checks a stale heap entry from the first
// Put does not delete the rewritten key.
func TestStore_OverwriteKeepsNewTTL(t *testing.T) {
	s, clk := newStore(t)
	require.NoError(t, s.Put("k", "old", time.Second))
	require.NoError(t, s.Put("k", "new", 10*time.Second))

	clk.Advance(2 * time.Second)
	assert.Equal(t, 0, s.Cleanup())
	v, ok := s.Get("k")
	assert.True(t, ok)
	assert.Equal(t, "new", v)

	left, ok := s.TTL("k")
	assert.True(t, ok)
	assert.Equal(t, 8*time.Second, left)
}

func TestStore_DeleteThenReput(t *testing.T) {
	s, clk := newStore(t)
	require.NoError(t, s.Put("k", "a", time.Second))
	assert.True(t, s.Delete("k"))
	assert.False(t, s.Delete("k"))

	require.NoError(t, s.Put("k", "b", 5*time.Second))
	clk.Advance(2 * time.Second)
	v, ok := s.Get("k")
	assert.True(t, ok)
	assert.Equal(t, "b", v)
}

func TestStore_Cleanup(t *testing.T) {
	s, clk := newStore(t)
	for i := 0; i < 10; i++ {
		require.NoError(t, s.Put(fmt.Sprint(i), "v", time.Duration(i+1)*time.Second))
	}
	clk.Advance(5 * time.Second)
	assert.Equal(t, 5, s.Cleanup())
	assert.Equal(t, 5, s.Len())
	_, ok := s.TTL("0")
	assert.False(t, ok)
}

func TestStore_Janitor(t *testing.T) {
	s := kvstore.New[int]()
	require.NoError(t, s.Put("short", 1, 10*time.Millisecond))
	require.NoError(t, s.Put("long", 2, time.Hour))

	ctx, cancel := context.WithCancel(context.Background())
	swept := make(chan int, 16)
	done := make(chan struct{})
	go func() {
		s.Janitor(ctx, 5*time.Millisecond, func(n int) {
			if n > 0 {
				swept <- n
			}
		})
		close(done)
	}()

	select {
	case n := <-swept:
		assert.Equal(t, 1, n)
	case <-time.After(2 * time.Second):
		t.Fatal("janitor never swept")
	}
	cancel()
	<-done
	assert.Equal(t, 1, s.Len())
}

func TestStore_Concurrent(t *testing.T) {
	s := kvstore.New[int]()
	var wg sync.WaitGroup
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func(g int) {
			defer wg.Done()
			for i := 0; i < 200; i++ {
				k := fmt.Sprint(i % 20)
				_ = s.Put(k, g, time.Minute)
				s.Get(k)
				if i%9 == 0 {
					s.Delete(k)
				}
			}
		}(g)
	}
	wg.Wait()
	assert.LessOrEqual(t, s.Len(), 20)
}
