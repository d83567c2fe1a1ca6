// Package arrays holds integer-array exercises built on hashing and
// sliding windows:
//
//   - TwoSum / TwoSumBrute:        indices of two values adding up to a target.
//   - MaxProfit / MaxProfitBrute:  best single buy-then-sell profit.
//   - FindDuplicates:              values of one array present in another.
//   - MaxSumWindow:                maximum sum of a fixed-size window.
//   - LongestSumAtMost:            longest window whose sum stays <= k.
//
// The brute-force variants are kept next to the optimal ones; tests check
// that both agree.
package arrays

import "errors"

var (
	// ErrWindow indicates a window size outside [1, len(nums)].
	ErrWindow = errors.New("arrays: window size out of range")

	// ErrNegativeValue indicates a negative element where the sliding window
	// requires non-negative input.
	ErrNegativeValue = errors.New("arrays: negative value in non-negative window")
)
