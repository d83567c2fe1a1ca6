package recursion

import "strings"

// Triangle returns the rows of a left-aligned star triangle growing from
// one star to levels stars. Non-positive levels yield no rows.
func Triangle(levels int) []string {
	if levels <= 0 {
		return nil
	}
	// Build the smaller triangle first, then add this level below it.
	return append(Triangle(levels-1), strings.Repeat("*", levels))
}

// ReverseTriangle returns the rows of a star triangle shrinking from levels
// stars down to one.
func ReverseTriangle(levels int) []string {
	if levels <= 0 {
		return nil
	}
	return append([]string{strings.Repeat("*", levels)}, ReverseTriangle(levels-1)...)
}
