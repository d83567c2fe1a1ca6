package dijkstra

import (
	"container/heap"
	"fmt"
	"slices"
)

// Result holds the distances found by ShortestPaths.
type Result struct {
	// Dist maps every vertex to its distance from the source, or Unreachable.
	Dist map[string]int64

	source string
	prev   map[string]string // nil unless WithReturnPath
}

// Path returns the vertices on one shortest path from the source to to,
// both ends included. It returns nil when to is unreachable, unknown, or
// when the result was computed without WithReturnPath.
func (r Result) Path(to string) []string {
	if r.prev == nil {
		return nil
	}
	if d, ok := r.Dist[to]; !ok || d == Unreachable {
		return nil
	}

	path := []string{to}
	for v := to; v != r.source; {
		v = r.prev[v]
		path = append(path, v)
	}
	slices.Reverse(path)

	return path
}

// ShortestPaths runs Dijkstra from source over g.
//
// Validation order:
//  1. source must be non-empty (ErrEmptySource).
//  2. source must be a vertex of g (ErrVertexNotFound).
//  3. no edge may have a negative weight (ErrNegativeWeight).
func ShortestPaths(g map[string][]Edge, source string, opts ...Option) (Result, error) {
	// 1) Apply options.
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Validate input and collect the vertex set.
	if source == "" {
		return Result{}, ErrEmptySource
	}
	vertices := make(map[string]struct{}, len(g))
	for u, edges := range g {
		vertices[u] = struct{}{}
		for _, e := range edges {
			if e.Weight < 0 {
				return Result{}, fmt.Errorf("%w: edge %s→%s weight=%d", ErrNegativeWeight, u, e.To, e.Weight)
			}
			vertices[e.To] = struct{}{}
		}
	}
	if _, ok := vertices[source]; !ok {
		return Result{}, fmt.Errorf("%w: %q", ErrVertexNotFound, source)
	}

	// 3) Run.
	r := &runner{
		g:       g,
		options: cfg,
		dist:    make(map[string]int64, len(vertices)),
		visited: make(map[string]bool, len(vertices)),
	}
	if cfg.ReturnPath {
		r.prev = make(map[string]string, len(vertices))
	}
	for v := range vertices {
		r.dist[v] = Unreachable
	}
	r.dist[source] = 0
	heap.Push(&r.pq, &nodeItem{id: source, dist: 0})
	r.process()

	return Result{Dist: r.dist, source: source, prev: r.prev}, nil
}

// runner holds the mutable state for one run.
type runner struct {
	g       map[string][]Edge
	options Options
	dist    map[string]int64
	prev    map[string]string
	visited map[string]bool
	pq      nodePQ
}

// process settles vertices in order of distance until the heap drains or
// the nearest candidate lies beyond MaxDistance.
func (r *runner) process() {
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(*nodeItem)
		if r.visited[item.id] {
			continue // stale entry
		}
		if item.dist > r.options.MaxDistance {
			break
		}
		r.visited[item.id] = true
		r.relax(item.id)
	}
}

// relax tries to improve every neighbour of a settled vertex u.
func (r *runner) relax(u string) {
	for _, e := range r.g[u] {
		if e.Weight >= r.options.InfEdgeThreshold {
			continue
		}
		// Compare against the remaining budget so the sum never overflows.
		if e.Weight > r.options.MaxDistance-r.dist[u] {
			continue
		}
		nd := r.dist[u] + e.Weight
		if nd >= r.dist[e.To] {
			continue
		}
		r.dist[e.To] = nd
		if r.prev != nil {
			r.prev[e.To] = u
		}
		heap.Push(&r.pq, &nodeItem{id: e.To, dist: nd})
	}
}

// nodeItem is a heap entry; duplicates per vertex are allowed.
type nodeItem struct {
	id   string
	dist int64
}

// nodePQ is a min-heap of *nodeItem ordered by dist, then id for stable ties.
type nodePQ []*nodeItem

func (pq nodePQ) Len() int { return len(pq) }
func (pq nodePQ) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}
	return pq[i].id < pq[j].id
}
func (pq nodePQ) Swap(i, j int)       { pq[i], pq[j] = pq[j], pq[i] }
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }
func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
