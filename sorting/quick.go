package sorting

import "cmp"

// Swap exchanges s[i] and s[j].
func Swap[T any](s []T, i, j int) {
	s[i], s[j] = s[j], s[i]
}

// Pivot partitions s[pivot..end] around the value s[pivot] so that every
// element smaller than it ends up on its left and the rest on its right.
// It returns the final index of the pivot value (not the value itself).
//
// Indices must satisfy 0 <= pivot <= end < len(s).
func Pivot[T cmp.Ordered](s []T, pivot, end int) int {
	swapIdx := pivot
	// 1) Grow the "smaller than pivot" prefix right after the pivot.
	for i := pivot + 1; i <= end; i++ {
		if s[i] < s[pivot] {
			swapIdx++
			Swap(s, swapIdx, i)
		}
	}
	// 2) Drop the pivot between the two halves.
	Swap(s, pivot, swapIdx)

	return swapIdx
}

// QuickSort sorts s in place and returns it for convenience.
// The first element of each range is used as pivot, so sorted input
// degrades to O(n²); use MergeSort when input is likely ordered.
func QuickSort[T cmp.Ordered](s []T) []T {
	quickSort(s, 0, len(s)-1)
	return s
}

// quickSort recursively sorts s[left..right].
func quickSort[T cmp.Ordered](s []T, left, right int) {
	if left >= right {
		return
	}
	p := Pivot(s, left, right)
	quickSort(s, left, p-1)
	quickSort(s, p+1, right)
}
