package sorting

import "cmp"

// Merge combines two sorted slices a and b into a new sorted slice.
// Inputs must already be sorted ascending; Merge does not check it.
// On ties the element of b is taken first.
//
// Complexity: O(len(a)+len(b)) time and memory.
func Merge[T cmp.Ordered](a, b []T) []T {
	combined := make([]T, 0, len(a)+len(b))
	i, j := 0, 0

	// 1) Walk both slices while each still has items.
	for i < len(a) && j < len(b) {
		if a[i] < b[j] {
			combined = append(combined, a[i])
			i++
		} else {
			combined = append(combined, b[j])
			j++
		}
	}
	// 2) At most one of the tails is non-empty.
	combined = append(combined, a[i:]...)
	combined = append(combined, b[j:]...)

	return combined
}

// MergeSort returns a sorted copy of s. The input is never modified.
//
// Complexity: O(n log n) time, O(n) extra memory per recursion level.
func MergeSort[T cmp.Ordered](s []T) []T {
	if len(s) <= 1 {
		out := make([]T, len(s))
		copy(out, s)
		return out
	}
	mid := len(s) / 2

	return Merge(MergeSort(s[:mid]), MergeSort(s[mid:]))
}
