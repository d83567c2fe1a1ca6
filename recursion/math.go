package recursion

import (
	"fmt"
	"math"
)

// Factorial returns n! computed recursively. 0! and 1! are both 1.
// Returns ErrNegative for n < 0 and ErrOverflow for n > 20.
func Factorial(n int) (uint64, error) {
	if n < 0 {
		return 0, fmt.Errorf("%w: n=%d", ErrNegative, n)
	}
	if n > maxFactorial {
		return 0, fmt.Errorf("%w: %d!", ErrOverflow, n)
	}

	return factorial(uint64(n)), nil
}

func factorial(n uint64) uint64 {
	if n <= 1 {
		return 1
	}
	return n * factorial(n-1)
}

// Power returns base^p by peeling one multiplication per call.
// Returns ErrNegative for p < 0.
func Power(base float64, p int) (float64, error) {
	if p < 0 {
		return 0, fmt.Errorf("%w: power=%d", ErrNegative, p)
	}

	return power(base, p), nil
}

func power(base float64, p int) float64 {
	if p == 0 {
		return 1
	}
	return base * power(base, p-1)
}

// Collatz returns the 3n+1 sequence starting at n and ending at 1.
// Returns ErrNonPositive for n < 1 and ErrOverflow when an odd term's
// successor 3n+1 does not fit into int.
func Collatz(n int) ([]int, error) {
	if n < 1 {
		return nil, fmt.Errorf("%w: n=%d", ErrNonPositive, n)
	}

	return collatz(n, nil)
}

// maxOddCollatz is the largest odd term whose successor fits into int.
const maxOddCollatz = (math.MaxInt - 1) / 3

func collatz(n int, acc []int) ([]int, error) {
	acc = append(acc, n)
	if n == 1 {
		return acc, nil
	}
	if n%2 == 0 {
		return collatz(n/2, acc)
	}
	if n > maxOddCollatz {
		return nil, fmt.Errorf("%w: 3*%d+1", ErrOverflow, n)
	}
	return collatz(3*n+1, acc)
}

// CollatzLen returns the number of terms in the 3n+1 sequence of n,
// counting both n and the final 1.
func CollatzLen(n int) (int, error) {
	if n < 1 {
		return 0, fmt.Errorf("%w: n=%d", ErrNonPositive, n)
	}

	return collatzLen(n)
}

func collatzLen(n int) (int, error) {
	if n == 1 {
		return 1, nil
	}
	next := n / 2
	if n%2 != 0 {
		if n > maxOddCollatz {
			return 0, fmt.Errorf("%w: 3*%d+1", ErrOverflow, n)
		}
		next = 3*n + 1
	}
	rest, err := collatzLen(next)
	if err != nil {
		return 0, err
	}
	return 1 + rest, nil
}

// GridPaths counts monotone lattice paths when m steps down and n steps right
// remain: paths(m, n) = paths(m-1, n) + paths(m, n-1), with a single path once
// either side reaches zero. Intermediate results are memoized.
// Negative sizes yield 0.
func GridPaths(m, n int) int {
	if m < 0 || n < 0 {
		return 0
	}
	memo := make(map[[2]int]int)

	return gridPaths(m, n, memo)
}

func gridPaths(m, n int, memo map[[2]int]int) int {
	if m == 0 || n == 0 {
		return 1
	}
	key := [2]int{m, n}
	if v, ok := memo[key]; ok {
		return v
	}
	v := gridPaths(m-1, n, memo) + gridPaths(m, n-1, memo)
	memo[key] = v

	return v
}

// ProductExceptSelf returns res where res[i] is the product of every
// element of nums except nums[i], without using division.
//
// Complexity: O(n) time, O(1) extra memory besides the result.
func ProductExceptSelf(nums []int) []int {
	res := make([]int, len(nums))

	// 1) Left pass: res[i] = product of nums[:i].
	pre := 1
	for i := range nums {
		res[i] = pre
		pre *= nums[i]
	}
	// 2) Right pass: multiply in product of nums[i+1:].
	post := 1
	for i := len(nums) - 1; i >= 0; i-- {
		res[i] *= post
		post *= nums[i]
	}

	return res
}
