package strs

import (
	"errors"
	"io"
)

// FirstUnique returns the first rune of s that occurs exactly once.
// ok is false when every rune repeats or s is empty.
func FirstUnique(s string) (r rune, ok bool) {
	counts := make(map[rune]int)
	for _, c := range s {
		counts[c]++
	}
	for _, c := range s {
		if counts[c] == 1 {
			return c, true
		}
	}
	return 0, false
}

// LongestUniqueLen returns the length, in runes, of the longest substring of
// s without repeating characters. A last-seen index map lets the left edge
// jump straight past a duplicate instead of shrinking one step at a time.
//
// Complexity: O(n) time, O(k) memory for k distinct runes.
func LongestUniqueLen(s string) int {
	_, n := longestUnique([]rune(s))
	return n
}

// LongestUnique returns the first longest substring of s without repeating
// characters.
func LongestUnique(s string) string {
	rs := []rune(s)
	start, n := longestUnique(rs)
	return string(rs[start : start+n])
}

// longestUnique returns the start and length of the best window.
func longestUnique(rs []rune) (start, length int) {
	lastSeen := make(map[rune]int)
	left := 0
	for right, c := range rs {
		if prev, ok := lastSeen[c]; ok && prev >= left {
			left = prev + 1
		}
		lastSeen[c] = right
		if n := right - left + 1; n > length {
			start, length = left, n
		}
	}
	return start, length
}

// LongestUniqueLenSet solves the same problem with a set. On a duplicate the
// window shrinks one rune at a time, which is still O(n) amortized.
func LongestUniqueLenSet(s string) int {
	rs := []rune(s)
	seen := make(map[rune]struct{})
	left, best := 0, 0
	for right, c := range rs {
		for {
			if _, dup := seen[c]; !dup {
				break
			}
			delete(seen, rs[left])
			left++
		}
		seen[c] = struct{}{}
		best = max(best, right-left+1)
	}
	return best
}

// LongestUniqueLenStream consumes runes from r until io.EOF and returns the
// longest run without repeats. It keeps its own running index, so it works
// on sources that cannot be indexed such as sockets or files.
func LongestUniqueLenStream(r io.RuneReader) (int, error) {
	lastSeen := make(map[rune]int)
	left, best := 0, 0
	for idx := 0; ; idx++ {
		c, _, err := r.ReadRune()
		if errors.Is(err, io.EOF) {
			return best, nil
		}
		if err != nil {
			return best, err
		}
		if prev, ok := lastSeen[c]; ok && prev >= left {
			left = prev + 1
		}
		lastSeen[c] = idx
		best = max(best, idx-left+1)
	}
}
