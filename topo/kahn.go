package topo

import (
	"container/heap"
	"fmt"
	"slices"
	"strings"
)

// graph is the adjacency built from a dependency map.
type graph struct {
	dependents map[string][]string // dep → libraries that need it
	indegree   map[string]int      // library → unmet dependencies
}

// build validates names and derives the adjacency. Duplicate entries in a
// dependency list count once.
func build(deps map[string][]string) (*graph, error) {
	g := &graph{
		dependents: make(map[string][]string),
		indegree:   make(map[string]int),
	}
	for lib, needs := range deps {
		if lib == "" {
			return nil, ErrEmptyName
		}
		if _, ok := g.indegree[lib]; !ok {
			g.indegree[lib] = 0
		}
		seen := make(map[string]struct{}, len(needs))
		for _, dep := range needs {
			if dep == "" {
				return nil, fmt.Errorf("%w: dependency of %q", ErrEmptyName, lib)
			}
			if _, dup := seen[dep]; dup {
				continue
			}
			seen[dep] = struct{}{}
			if _, ok := g.indegree[dep]; !ok {
				g.indegree[dep] = 0
			}
			g.dependents[dep] = append(g.dependents[dep], lib)
			g.indegree[lib]++
		}
	}
	return g, nil
}

// ready is a min-heap of library names.
type ready []string

func (r ready) Len() int           { return len(r) }
func (r ready) Less(i, j int) bool { return r[i] < r[j] }
func (r ready) Swap(i, j int)      { r[i], r[j] = r[j], r[i] }
func (r *ready) Push(x any)        { *r = append(*r, x.(string)) }
func (r *ready) Pop() any {
	old := *r
	v := old[len(old)-1]
	*r = old[:len(old)-1]
	return v
}

// Sort returns an installation order for deps where every library follows
// all of its dependencies. Libraries that appear only as dependencies are
// included. An empty or nil map yields an empty order.
func Sort(deps map[string][]string, opts ...Option) ([]string, error) {
	cfg := defaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 1) Build adjacency and in-degrees.
	g, err := build(deps)
	if err != nil {
		return nil, err
	}

	// 2) Seed with libraries that need nothing.
	q := make(ready, 0)
	for lib, d := range g.indegree {
		if d == 0 {
			q = append(q, lib)
		}
	}
	heap.Init(&q)

	// 3) Release libraries as their dependencies get installed.
	order := make([]string, 0, len(g.indegree))
	for q.Len() > 0 {
		if err := cfg.ctx.Err(); err != nil {
			return nil, err
		}
		lib := heap.Pop(&q).(string)
		order = append(order, lib)
		for _, dependent := range g.dependents[lib] {
			g.indegree[dependent]--
			if g.indegree[dependent] == 0 {
				heap.Push(&q, dependent)
			}
		}
	}

	// 4) Anything left still waits on a cycle.
	if len(order) != len(g.indegree) {
		stuck := make([]string, 0, len(g.indegree)-len(order))
		for lib, d := range g.indegree {
			if d > 0 {
				stuck = append(stuck, lib)
			}
		}
		slices.Sort(stuck)
		return nil, fmt.Errorf("%w: %s", ErrCycleDetected, strings.Join(stuck, ", "))
	}

	return order, nil
}
