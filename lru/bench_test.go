package lru_test

import (
	"testing"

	"github.com/katalvlaran/drills/lru"
)

func BenchmarkCache_PutGet(b *testing.B) {
	c, _ := lru.New[int, int](1024)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		c.Put(i%4096, i)
		c.Get((i * 7) % 4096)
	}
}
