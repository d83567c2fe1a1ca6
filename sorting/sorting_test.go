package sorting_test

import (
	"math/rand"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/drills/sorting"
)

// TestMerge_Basic verifies two interleaved sorted slices merge in order.
func TestMerge_Basic(t *testing.T) {
	got := sorting.Merge([]int{1, 2, 7, 8}, []int{3, 4, 5, 6})
	assert.Equal(t, []int{1, 2, 3, 4, 5, 6, 7, 8}, got)
}

// TestMerge_EmptySides covers one or both inputs being empty.
func TestMerge_EmptySides(t *testing.T) {
	assert.Equal(t, []int{1, 2}, sorting.Merge([]int{1, 2}, nil))
	assert.Equal(t, []int{1, 2}, sorting.Merge(nil, []int{1, 2}))
	assert.Empty(t, sorting.Merge[int](nil, nil))
}

// TestMerge_Duplicates keeps every duplicate.
func TestMerge_Duplicates(t *testing.T) {
	got := sorting.Merge([]int{1, 3, 3}, []int{3, 3, 4})
	assert.Equal(t, []int{1, 3, 3, 3, 3, 4}, got)
}

// TestMergeSort_Cases runs a small table of inputs.
func TestMergeSort_Cases(t *testing.T) {
	cases := []struct {
		name string
		in   []int
		want []int
	}{
		{"empty", []int{}, []int{}},
		{"single", []int{5}, []int{5}},
		{"classic", []int{3, 1, 4, 2, 7, 8, 19, 5}, []int{1, 2, 3, 4, 5, 7, 8, 19}},
		{"reversed", []int{5, 4, 3, 2, 1}, []int{1, 2, 3, 4, 5}},
		{"negatives", []int{0, -3, 2, -1}, []int{-3, -1, 0, 2}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, sorting.MergeSort(tc.in))
		})
	}
}

// TestMergeSort_DoesNotMutate ensures the input slice is left untouched.
func TestMergeSort_DoesNotMutate(t *testing.T) {
	in := []int{3, 1, 2}
	_ = sorting.MergeSort(in)
	assert.Equal(t, []int{3, 1, 2}, in)
}

// TestPivot_Partition checks the classic example from the pivot exercise.
func TestPivot_Partition(t *testing.T) {
	s := []int{4, 6, 1, 7, 3, 2, 5}
	p := sorting.Pivot(s, 0, len(s)-1)
	require.Equal(t, 3, p)
	assert.Equal(t, 4, s[p])
	for i := 0; i < p; i++ {
		assert.Less(t, s[i], s[p])
	}
	for i := p + 1; i < len(s); i++ {
		assert.GreaterOrEqual(t, s[i], s[p])
	}
}

// TestQuickSort_Strings sorts a generic slice of strings.
func TestQuickSort_Strings(t *testing.T) {
	got := sorting.QuickSort([]string{"pear", "apple", "fig", "banana"})
	assert.Equal(t, []string{"apple", "banana", "fig", "pear"}, got)
}

// TestSorts_RandomAgreement compares both sorts against slices.Sort.
func TestSorts_RandomAgreement(t *testing.T) {
	r := rand.New(rand.NewSource(42))
	for n := 0; n < 50; n++ {
		in := make([]int, n)
		for i := range in {
			in[i] = r.Intn(100) - 50
		}
		want := slices.Clone(in)
		slices.Sort(want)

		assert.Equal(t, want, sorting.MergeSort(in), "merge sort n=%d", n)
		assert.Equal(t, want, sorting.QuickSort(slices.Clone(in)), "quick sort n=%d", n)
	}
}
