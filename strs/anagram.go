package strs

import (
	"fmt"
	"slices"
)

// GroupAnagrams groups words that are anagrams of each other, keyed by
// their sorted letters ("eat" -> "aet"). Groups are returned in the order
// their first word appears, and words keep their input order within a group.
//
// Complexity: O(n·k log k) for n words of length k.
func GroupAnagrams(words []string) [][]string {
	out, _ := groupBy(words, func(w string) (string, error) {
		r := []rune(w)
		slices.Sort(r)
		return string(r), nil
	})
	return out
}

// GroupAnagramsFreq groups anagrams by a 26-slot letter-count key instead of
// sorting, which is O(n·k). Only lowercase ASCII letters are accepted.
func GroupAnagramsFreq(words []string) ([][]string, error) {
	return groupBy(words, func(w string) ([26]int, error) {
		var freq [26]int
		for _, r := range w {
			if r < 'a' || r > 'z' {
				return freq, fmt.Errorf("%w: %q in %q", ErrNotLowercase, r, w)
			}
			freq[r-'a']++
		}
		return freq, nil
	})
}

// groupBy buckets words by key while remembering first-seen key order.
func groupBy[K comparable](words []string, key func(string) (K, error)) ([][]string, error) {
	index := make(map[K]int)
	out := make([][]string, 0)
	for _, w := range words {
		k, err := key(w)
		if err != nil {
			return nil, err
		}
		i, ok := index[k]
		if !ok {
			i = len(out)
			index[k] = i
			out = append(out, nil)
		}
		out[i] = append(out[i], w)
	}
	return out, nil
}
