package heaps

import (
	"cmp"
	"container/heap"
	"fmt"
	"slices"
)

// KLargest returns the k largest values of nums, largest first.
// A min-heap of size k keeps the best k seen so far; its root is the
// smallest of them and is replaced whenever a bigger value arrives.
// k larger than len(nums) returns every value; k < 0 is ErrBadK.
func KLargest(nums []int, k int) ([]int, error) {
	if k < 0 {
		return nil, fmt.Errorf("%w: k=%d", ErrBadK, k)
	}
	k = min(k, len(nums))
	if k == 0 {
		return []int{}, nil
	}
	h := newHeap(nums[:k], func(a, b int) bool { return a < b })
	for _, n := range nums[k:] {
		if n > h.top() {
			h.replaceTop(n)
		}
	}
	out := h.items
	slices.SortFunc(out, func(a, b int) int { return cmp.Compare(b, a) })
	return out, nil
}

// KSmallest returns the k smallest values of nums, smallest first, using a
// max-heap of size k.
func KSmallest(nums []int, k int) ([]int, error) {
	if k < 0 {
		return nil, fmt.Errorf("%w: k=%d", ErrBadK, k)
	}
	k = min(k, len(nums))
	if k == 0 {
		return []int{}, nil
	}
	h := newHeap(nums[:k], func(a, b int) bool { return a > b })
	for _, n := range nums[k:] {
		if n < h.top() {
			h.replaceTop(n)
		}
	}
	out := h.items
	slices.Sort(out)
	return out, nil
}

// KthLargest returns the k-th largest value (1-based) of nums.
func KthLargest(nums []int, k int) (int, error) {
	if k < 1 || k > len(nums) {
		return 0, fmt.Errorf("%w: k=%d len=%d", ErrBadK, k, len(nums))
	}
	top, _ := KLargest(nums, k)
	return top[k-1], nil
}

// KthSmallest returns the k-th smallest value (1-based) of nums.
func KthSmallest(nums []int, k int) (int, error) {
	if k < 1 || k > len(nums) {
		return 0, fmt.Errorf("%w: k=%d len=%d", ErrBadK, k, len(nums))
	}
	low, _ := KSmallest(nums, k)
	return low[k-1], nil
}

// freqItem pairs a value with its occurrence count.
type freqItem struct {
	value, count int
}

// TopKFrequent returns the k most frequent values ordered by frequency
// descending, ties broken by smaller value first.
func TopKFrequent(nums []int, k int) ([]int, error) {
	if k < 0 {
		return nil, fmt.Errorf("%w: k=%d", ErrBadK, k)
	}
	freq := make(map[int]int)
	for _, n := range nums {
		freq[n]++
	}

	// "worse" sits at the root: lower count, or equal count and larger value.
	worse := func(a, b freqItem) bool {
		if a.count != b.count {
			return a.count < b.count
		}
		return a.value > b.value
	}
	h := newHeap[freqItem](nil, worse)
	for v, c := range freq {
		heap.Push(h, freqItem{value: v, count: c})
		if h.Len() > k {
			heap.Pop(h)
		}
	}

	// Pop worst-first, fill from the back.
	out := make([]int, h.Len())
	for i := len(out) - 1; i >= 0; i-- {
		out[i] = heap.Pop(h).(freqItem).value
	}
	return out, nil
}
