// Package strs holds string exercises built on hashing and two pointers:
// anagram grouping, first unique character, longest substring without
// repeating characters (four variants) and run-length compression.
//
// All functions operate on runes, so multi-byte UTF-8 input such as
// "你好吗你好" is handled without special casing.
package strs

import "errors"

var (
	// ErrNotLowercase indicates a rune outside 'a'..'z' given to a function
	// that keys on a fixed 26-letter alphabet.
	ErrNotLowercase = errors.New("strs: only lowercase ASCII letters are supported")

	// ErrDigitInput indicates Compress input containing a digit, which would
	// make the encoded counts ambiguous.
	ErrDigitInput = errors.New("strs: input must not contain digits")

	// ErrMalformed indicates an encoded string that does not follow the
	// <char><count> layout.
	ErrMalformed = errors.New("strs: malformed encoded string")
)
