// Package dijkstra computes single-source shortest paths over a weighted
// adjacency map with non-negative edge weights.
//
// The graph is a map from vertex to its outgoing edges:
//
//	g := map[string][]dijkstra.Edge{
//	    "A": {{To: "B", Weight: 1}, {To: "C", Weight: 4}},
//	    "B": {{To: "C", Weight: 2}, {To: "D", Weight: 5}},
//	    "C": {{To: "D", Weight: 1}},
//	}
//
// A vertex that only appears as an edge target ("D" above) is still part of
// the graph. Unreachable vertices report math.MaxInt64.
//
// Complexity:
//
//   - Time:  O((V + E) log V), lazy decrease-key on a binary heap.
//   - Space: O(V + E).
//
// Errors:
//
//   - ErrEmptySource     if source is "".
//   - ErrVertexNotFound  if source is neither a key nor an edge target.
//   - ErrNegativeWeight  if any edge weight is negative (checked up front).
//   - ErrBadMaxDistance  (panic) from WithMaxDistance(x < 0).
//   - ErrBadInfThreshold (panic) from WithInfEdgeThreshold(t <= 0).
package dijkstra
