package sorting_test

import (
	"fmt"

	"github.com/katalvlaran/drills/sorting"
)

// ExampleMergeSort sorts a small slice without touching the input.
func ExampleMergeSort() {
	fmt.Println(sorting.MergeSort([]int{3, 1, 4, 2, 7, 8, 19, 5}))
	// Output: [1 2 3 4 5 7 8 19]
}

// ExampleQuickSort sorts in place.
func ExampleQuickSort() {
	s := []int{4, 6, 1, 7, 3, 2, 5, 13, 88888, 2342, 453, 111, 34343}
	sorting.QuickSort(s)
	fmt.Println(s)
	// Output: [1 2 3 4 5 6 7 13 111 453 2342 34343 88888]
}
