// Package drills is a collection of classic algorithm and data-structure
// exercises, each in its own package with its own tests and examples.
//
// Nothing here imports another kata; pick the package you want:
//
//	sorting/    merge, merge sort, Lomuto pivot, quick sort
//	recursion/  factorial, power, Collatz, grid paths, prefix reductions, triangles
//	bst/        binary search tree with BFS and depth-first traversals
//	arrays/     two sum, stock profit, duplicates, sliding windows
//	strs/       anagram groups, unique substrings, run-length coding
//	stacks/     bracket matching, reversal inside parentheses, Polish notation
//	heaps/      k largest/smallest, top-k frequent, running median, k-way merge
//	topo/       Kahn topological sort of library dependencies
//	dijkstra/   shortest paths over an adjacency map
//	islands/    connected land regions in a grid
//	lru/        thread-safe least-recently-used cache
//	ratelimit/  sliding-window-log limiter: naive, per-key locked, Redis
//	kvstore/    key-value store with TTL and a min-heap of expiries
//	catalog/    paginated, searchable, sortable product listing
//	rewards/    points ledger and peer recognition
//	notify/     pluggable notification channels
//	fetch/      URL fetcher with timeout, pooling and backoff retries
//
// The stateful katas can also be served over HTTP:
//
//	go run ./cmd/katas serve --address :8080
//	go run ./cmd/katas run lru
package drills
