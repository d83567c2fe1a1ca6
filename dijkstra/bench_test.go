package dijkstra_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/drills/dijkstra"
)

// BenchmarkShortestPaths_Grid runs on a 50x50 grid with right/down edges.
func BenchmarkShortestPaths_Grid(b *testing.B) {
	const n = 50
	g := make(map[string][]dijkstra.Edge, n*n)
	id := func(r, c int) string { return fmt.Sprintf("%d,%d", r, c) }
	for r := 0; r < n; r++ {
		for c := 0; c < n; c++ {
			var edges []dijkstra.Edge
			if r+1 < n {
				edges = append(edges, dijkstra.Edge{To: id(r+1, c), Weight: int64(1 + (r*c)%7)})
			}
			if c+1 < n {
				edges = append(edges, dijkstra.Edge{To: id(r, c+1), Weight: int64(1 + (r+c)%5)})
			}
			g[id(r, c)] = edges
		}
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := dijkstra.ShortestPaths(g, "0,0"); err != nil {
			b.Fatal(err)
		}
	}
}
