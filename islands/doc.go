// Package islands counts connected regions of land in a character grid.
//
// Land is '1', water is '0'. Cells join an island through horizontal and
// vertical neighbours; WithDiagonals adds the four diagonal directions.
// Each island is flooded once with a breadth-first queue, so a grid of
// R rows and C columns costs O(R·C) time and O(R·C) space for the seen set.
// The input grid is never modified.
package islands
