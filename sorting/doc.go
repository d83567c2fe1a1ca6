// Package sorting implements the two classic divide-and-conquer sorts on
// ordered slices: merge sort and quick sort, together with their building
// blocks Merge and Pivot.
//
// What:
//
//   - Merge:     combine two already-sorted slices into one sorted slice.
//   - MergeSort: split in halves, sort recursively, Merge the halves.
//   - Pivot:     rearrange s[pivot..end] as [smaller] | pivot | [greater or equal]
//     and report where the pivot landed.
//   - QuickSort: Pivot, then recurse on both sides, in place.
//
// Complexity:
//
//   - Merge:     Time O(n+m),      Memory O(n+m)
//   - MergeSort: Time O(n log n),  Memory O(n) per level (new slices)
//   - QuickSort: Time O(n log n) average, O(n²) on already-sorted input
//     (the first element is always the pivot), Memory O(log n) stack.
//
// All functions are generic over cmp.Ordered.
package sorting
