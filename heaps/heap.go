package heaps

import "container/heap"

// lessHeap adapts a slice and an ordering to heap.Interface.
// With less = a < b it is a min-heap; with a > b a max-heap.
type lessHeap[T any] struct {
	items []T
	less  func(a, b T) bool
}

func (h *lessHeap[T]) Len() int           { return len(h.items) }
func (h *lessHeap[T]) Less(i, j int) bool { return h.less(h.items[i], h.items[j]) }
func (h *lessHeap[T]) Swap(i, j int)      { h.items[i], h.items[j] = h.items[j], h.items[i] }
func (h *lessHeap[T]) Push(x any)         { h.items = append(h.items, x.(T)) }
func (h *lessHeap[T]) Pop() any {
	old := h.items
	n := len(old)
	v := old[n-1]
	h.items = old[:n-1]
	return v
}

// newHeap returns an initialised heap over a copy of items.
func newHeap[T any](items []T, less func(a, b T) bool) *lessHeap[T] {
	h := &lessHeap[T]{items: append([]T(nil), items...), less: less}
	heap.Init(h)
	return h
}

// top returns the root without removing it. The heap must be non-empty.
func (h *lessHeap[T]) top() T { return h.items[0] }

// replaceTop swaps the root for v and restores order, the heappushpop idiom.
func (h *lessHeap[T]) replaceTop(v T) {
	h.items[0] = v
	heap.Fix(h, 0)
}
