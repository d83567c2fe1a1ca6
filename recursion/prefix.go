package recursion

import "fmt"

// checkPrefix validates a prefix length n against a slice length.
func checkPrefix(n, size int) error {
	if n < 0 || n > size {
		return fmt.Errorf("%w: n=%d len=%d", ErrLength, n, size)
	}
	return nil
}

// Max returns the largest of s[:n], computed recursively.
// The maximum of an empty prefix is 0.
func Max(s []int, n int) (int, error) {
	if err := checkPrefix(n, len(s)); err != nil {
		return 0, err
	}

	return maxOf(s, n), nil
}

func maxOf(s []int, n int) int {
	if n == 0 {
		return 0
	}
	if n == 1 {
		return s[0]
	}
	return max(maxOf(s, n-1), s[n-1])
}

// Sum returns the sum of s[:n], computed recursively.
func Sum(s []int, n int) (int, error) {
	if err := checkPrefix(n, len(s)); err != nil {
		return 0, err
	}

	return sumOf(s, n), nil
}

func sumOf(s []int, n int) int {
	if n == 0 {
		return 0
	}
	return sumOf(s, n-1) + s[n-1]
}

// Avg returns the arithmetic mean of s[:n] as a recursive running mean:
// avg(n) = (avg(n-1)·(n-1) + s[n-1]) / n. The mean of an empty prefix is 0.
func Avg(s []float64, n int) (float64, error) {
	if err := checkPrefix(n, len(s)); err != nil {
		return 0, err
	}

	return avgOf(s, n), nil
}

func avgOf(s []float64, n int) float64 {
	if n == 0 {
		return 0
	}
	prev := avgOf(s, n-1)
	return (prev*float64(n-1) + s[n-1]) / float64(n)
}
