// Package recursion collects small warm-up exercises whose natural solution
// is a recursive definition: factorial, integer powers, recursive reductions
// over a prefix of a slice, the 3n+1 (Collatz) sequence, lattice paths in an
// m×n grid, and star triangles. ProductExceptSelf lives here too as the
// iterative counterpart shown next to the grid-path recurrence.
//
// Each function validates its input and returns a sentinel error instead of
// recursing forever or overflowing silently.
package recursion
