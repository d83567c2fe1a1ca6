package arrays

// TwoSum returns indices i < j with nums[i]+nums[j] == target using a single
// pass over nums and a value→index map. ok is false when no pair exists.
//
// Complexity: O(n) time, O(n) memory.
func TwoSum(nums []int, target int) (i, j int, ok bool) {
	seen := make(map[int]int, len(nums))
	for idx, n := range nums {
		// Look for the complement before recording n, so n never pairs with itself.
		if prev, found := seen[target-n]; found {
			return prev, idx, true
		}
		seen[n] = idx
	}
	return -1, -1, false
}

// TwoSumBrute is the O(n²) reference for TwoSum. It returns the pair with
// the smallest first index, then smallest second index.
func TwoSumBrute(nums []int, target int) (i, j int, ok bool) {
	for a := 0; a < len(nums); a++ {
		for b := a + 1; b < len(nums); b++ {
			if nums[a]+nums[b] == target {
				return a, b, true
			}
		}
	}
	return -1, -1, false
}

// FindDuplicates returns every element of b that also occurs in a, in the
// order they appear in b. Repeats in b are reported each time.
func FindDuplicates(a, b []int) []int {
	set := make(map[int]struct{}, len(a))
	for _, v := range a {
		set[v] = struct{}{}
	}
	dups := make([]int, 0)
	for _, v := range b {
		if _, ok := set[v]; ok {
			dups = append(dups, v)
		}
	}
	return dups
}
