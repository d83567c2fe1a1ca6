package heaps_test

import (
	"fmt"

	"github.com/katalvlaran/drills/heaps"
)

func ExampleMedianFinder() {
	mf := heaps.NewMedianFinder()
	for _, n := range []int{5, 15, 1, 3} {
		mf.Add(n)
	}
	m, _ := mf.Median()
	fmt.Println(m)
	// Output: 4
}

func ExampleMergeIterator() {
	it := heaps.NewMergeIterator([][]int{{1, 4, 7}, {2, 5, 8}, {3, 6, 9}})
	for it.HasNext() {
		v, _ := it.Next()
		fmt.Print(v, " ")
	}
	fmt.Println()
	// Output: 1 2 3 4 5 6 7 8 9
}
