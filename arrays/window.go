package arrays

import "fmt"

// MaxSumWindow returns the maximum sum over all contiguous windows of
// exactly k elements.
//
// Complexity: O(n) time, O(1) memory.
func MaxSumWindow(nums []int, k int) (int, error) {
	if k < 1 || k > len(nums) {
		return 0, fmt.Errorf("%w: k=%d len=%d", ErrWindow, k, len(nums))
	}
	// 1) Sum of the first window.
	sum := 0
	for _, v := range nums[:k] {
		sum += v
	}
	best := sum
	// 2) Slide: add the entering element, drop the leaving one.
	for i := k; i < len(nums); i++ {
		sum += nums[i] - nums[i-k]
		best = max(best, sum)
	}
	return best, nil
}

// LongestSumAtMost returns the length of the longest contiguous window whose
// sum is <= k, together with the first such window. All elements must be
// non-negative; otherwise shrinking the window would not be monotone and
// ErrNegativeValue is returned.
//
// Complexity: O(n) time, O(1) memory besides the returned copy.
func LongestSumAtMost(nums []int, k int) (int, []int, error) {
	for i, v := range nums {
		if v < 0 {
			return 0, nil, fmt.Errorf("%w: nums[%d]=%d", ErrNegativeValue, i, v)
		}
	}

	left, sum := 0, 0
	bestLen, bestLeft := 0, 0
	for right, v := range nums {
		sum += v
		// Shrink from the left until the window fits again.
		for sum > k && left <= right {
			sum -= nums[left]
			left++
		}
		if n := right - left + 1; n > bestLen {
			bestLen, bestLeft = n, left
		}
	}

	sub := make([]int, bestLen)
	copy(sub, nums[bestLeft:bestLeft+bestLen])

	return bestLen, sub, nil
}
