// Package heaps holds priority-queue exercises built on container/heap:
//
//   - KLargest / KSmallest:     bounded heap of size k over a stream of ints.
//   - KthLargest / KthSmallest: the k-th order statistic through the same heap.
//   - TopKFrequent:             k most frequent values.
//   - MedianFinder:             running median with two balanced heaps.
//   - MergeIterator / MergeK:   lazy k-way merge of sorted slices.
//
// Complexity: bounded-heap queries run in O(n log k) time and O(k) memory;
// MedianFinder.Add is O(log n); each MergeIterator.Next is O(log k).
package heaps

import "errors"

var (
	// ErrBadK indicates k outside the range the query supports.
	ErrBadK = errors.New("heaps: k out of range")

	// ErrEmpty indicates a median requested before any value was added.
	ErrEmpty = errors.New("heaps: no values")

	// ErrExhausted indicates Next was called after the last element.
	ErrExhausted = errors.New("heaps: iterator exhausted")
)
