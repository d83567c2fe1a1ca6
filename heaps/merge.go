package heaps

import "container/heap"

// cursor is a heap entry: the head value of source src at position pos.
type cursor struct {
	value, src, pos int
}

// MergeIterator yields the union of several ascending slices in ascending
// order. Only the current head of each source is held in the heap, so
// memory is O(k) regardless of the total length.
type MergeIterator struct {
	sources [][]int
	h       *lessHeap[cursor]
}

// NewMergeIterator seeds the heap with the first element of every
// non-empty source. Sources must be sorted ascending; they are not copied.
func NewMergeIterator(sources [][]int) *MergeIterator {
	seed := make([]cursor, 0, len(sources))
	for i, s := range sources {
		if len(s) > 0 {
			seed = append(seed, cursor{value: s[0], src: i})
		}
	}
	// Ties resolve by source index so equal values keep source order.
	less := func(a, b cursor) bool {
		if a.value != b.value {
			return a.value < b.value
		}
		return a.src < b.src
	}
	return &MergeIterator{sources: sources, h: newHeap(seed, less)}
}

// HasNext reports whether Next will return a value.
func (it *MergeIterator) HasNext() bool { return it.h.Len() > 0 }

// Next returns the smallest remaining value and advances that source.
func (it *MergeIterator) Next() (int, error) {
	if !it.HasNext() {
		return 0, ErrExhausted
	}
	c := heap.Pop(it.h).(cursor)
	if next := c.pos + 1; next < len(it.sources[c.src]) {
		heap.Push(it.h, cursor{value: it.sources[c.src][next], src: c.src, pos: next})
	}
	return c.value, nil
}

// Drain consumes the iterator into a slice.
func (it *MergeIterator) Drain() []int {
	out := make([]int, 0)
	for it.HasNext() {
		v, _ := it.Next()
		out = append(out, v)
	}
	return out
}

// MergeK merges sorted slices into one sorted slice.
func MergeK(sources [][]int) []int {
	return NewMergeIterator(sources).Drain()
}
