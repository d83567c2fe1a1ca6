package heaps

import "container/heap"

// MedianFinder maintains the running median of a stream of ints.
// low is a max-heap holding the smaller half and high a min-heap holding
// the larger half; low is allowed one extra element.
//
// MedianFinder is not safe for concurrent use.
type MedianFinder struct {
	low  *lessHeap[int]
	high *lessHeap[int]
}

// NewMedianFinder returns an empty finder.
func NewMedianFinder() *MedianFinder {
	return &MedianFinder{
		low:  newHeap[int](nil, func(a, b int) bool { return a > b }),
		high: newHeap[int](nil, func(a, b int) bool { return a < b }),
	}
}

// Add inserts n in O(log n).
func (m *MedianFinder) Add(n int) {
	// 1) Route through low so its max moves up to high.
	heap.Push(m.low, n)
	heap.Push(m.high, heap.Pop(m.low))
	// 2) Rebalance: low keeps the extra element.
	if m.high.Len() > m.low.Len() {
		heap.Push(m.low, heap.Pop(m.high))
	}
}

// Median returns the current median or ErrEmpty.
func (m *MedianFinder) Median() (float64, error) {
	if m.low.Len() == 0 {
		return 0, ErrEmpty
	}
	if m.low.Len() > m.high.Len() {
		return float64(m.low.top()), nil
	}
	return (float64(m.low.top()) + float64(m.high.top())) / 2, nil
}

// Len returns how many values were added.
func (m *MedianFinder) Len() int { return m.low.Len() + m.high.Len() }
