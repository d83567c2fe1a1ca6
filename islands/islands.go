package islands

import (
	"errors"
	"fmt"
	"slices"
)

var (
	// ErrNonRectangular indicates rows of different lengths.
	ErrNonRectangular = errors.New("islands: grid rows differ in length")

	// ErrBadCell indicates a byte other than '0' or '1'.
	ErrBadCell = errors.New("islands: cell must be '0' or '1'")
)

const (
	land  byte = '1'
	water byte = '0'
)

// Option configures connectivity.
type Option func(*options)

type options struct {
	offsets [][2]int
}

var (
	orthogonal = [][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}
	diagonal   = [][2]int{{1, 1}, {1, -1}, {-1, 1}, {-1, -1}}
)

// WithDiagonals makes diagonally adjacent land part of the same island.
func WithDiagonals() Option {
	return func(o *options) {
		o.offsets = slices.Concat(orthogonal, diagonal)
	}
}

// Count returns the number of islands in grid. An empty grid has none.
func Count(grid [][]byte, opts ...Option) (int, error) {
	sizes, err := Sizes(grid, opts...)
	return len(sizes), err
}

// Sizes returns the cell count of every island, in the row-major order of
// each island's first cell.
func Sizes(grid [][]byte, opts ...Option) ([]int, error) {
	cfg := options{offsets: orthogonal}
	for _, opt := range opts {
		opt(&cfg)
	}

	// 1) Validate shape and cell values.
	rows := len(grid)
	if rows == 0 {
		return []int{}, nil
	}
	cols := len(grid[0])
	for r, row := range grid {
		if len(row) != cols {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrNonRectangular, r, len(row), cols)
		}
		for c, b := range row {
			if b != land && b != water {
				return nil, fmt.Errorf("%w: (%d,%d)=%q", ErrBadCell, r, c, b)
			}
		}
	}

	// 2) Flood every unseen land cell.
	seen := make([]bool, rows*cols)
	sizes := []int{}
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			if grid[r][c] != land || seen[r*cols+c] {
				continue
			}
			queue := [][2]int{{r, c}}
			seen[r*cols+c] = true
			for qi := 0; qi < len(queue); qi++ {
				ur, uc := queue[qi][0], queue[qi][1]
				for _, d := range cfg.offsets {
					vr, vc := ur+d[0], uc+d[1]
					if vr < 0 || vr >= rows || vc < 0 || vc >= cols {
						continue
					}
					if grid[vr][vc] != land || seen[vr*cols+vc] {
						continue
					}
					seen[vr*cols+vc] = true
					queue = append(queue, [2]int{vr, vc})
				}
			}
			sizes = append(sizes, len(queue))
		}
	}

	return sizes, nil
}

// Parse turns lines such as "11000" into a grid.
func Parse(lines ...string) [][]byte {
	grid := make([][]byte, len(lines))
	for i, l := range lines {
		grid[i] = []byte(l)
	}
	return grid
}
