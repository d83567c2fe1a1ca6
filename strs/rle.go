package strs

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

// Compress run-length encodes s as <char><count> pairs:
// "aaabbbccd" -> "a3b3c2d1". Counts may have several digits.
// Input containing digits is rejected with ErrDigitInput.
func Compress(s string) (string, error) {
	rs := []rune(s)
	var b strings.Builder
	for i := 0; i < len(rs); {
		if unicode.IsDigit(rs[i]) {
			return "", fmt.Errorf("%w: %q at %d", ErrDigitInput, rs[i], i)
		}
		// Count the run starting at i.
		j := i + 1
		for j < len(rs) && rs[j] == rs[i] {
			j++
		}
		b.WriteRune(rs[i])
		b.WriteString(strconv.Itoa(j - i))
		i = j
	}
	return b.String(), nil
}

// MaxDecodedRunes caps the output of Decompress.
const MaxDecodedRunes = 1 << 24

// Decompress expands an encoded string back: "a12" -> twelve 'a'.
// A character with no trailing count expands to nothing. A digit where a
// character is expected, or counts adding up to more than MaxDecodedRunes,
// yield ErrMalformed.
func Decompress(s string) (string, error) {
	rs := []rune(s)
	var b strings.Builder
	produced := 0
	for i := 0; i < len(rs); {
		c := rs[i]
		if unicode.IsDigit(c) {
			return "", fmt.Errorf("%w: count without character at %d", ErrMalformed, i)
		}
		// Accumulate a multi-digit count: "12" -> 1*10 + 2.
		count := 0
		i++
		for i < len(rs) && rs[i] >= '0' && rs[i] <= '9' {
			count = count*10 + int(rs[i]-'0')
			if count > MaxDecodedRunes-produced {
				return "", fmt.Errorf("%w: output exceeds %d runes at %d", ErrMalformed, MaxDecodedRunes, i)
			}
			i++
		}
		produced += count
		b.WriteString(strings.Repeat(string(c), count))
	}
	return b.String(), nil
}
