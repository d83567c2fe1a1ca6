package islands_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/drills/islands"
)

func sampleGrid() [][]byte {
	return islands.Parse(
		"11000",
		"11000",
		"00100",
		"00011",
	)
}

func TestCount_Sample(t *testing.T) {
	n, err := islands.Count(sampleGrid())
	require.NoError(t, err)
	assert.Equal(t, 3, n)
}

func TestCount_DoesNotMutate(t *testing.T) {
	g := sampleGrid()
	_, err := islands.Count(g)
	require.NoError(t, err)
	assert.Equal(t, sampleGrid(), g)
}

func TestCount_Table(t *testing.T) {
	tests := []struct {
		name string
		grid [][]byte
		want int
	}{
		{"nil", nil, 0},
		{"empty rows", [][]byte{{}, {}}, 0},
		{"all water", islands.Parse("000", "000"), 0},
		{"all land", islands.Parse("111", "111"), 1},
		{"single cell", islands.Parse("1"), 1},
		{"diagonal only", islands.Parse("101", "010", "101"), 5},
		{"ring", islands.Parse("111", "101", "111"), 1},
		{"snake", islands.Parse("11111", "00001", "11111", "10000", "11111"), 1},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			n, err := islands.Count(tc.grid)
			require.NoError(t, err)
			assert.Equal(t, tc.want, n)
		})
	}
}

func TestCount_Diagonals(t *testing.T) {
	n, err := islands.Count(islands.Parse("101", "010", "101"), islands.WithDiagonals())
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	n, err = islands.Count(sampleGrid(), islands.WithDiagonals())
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestSizes(t *testing.T) {
	sizes, err := islands.Sizes(sampleGrid())
	require.NoError(t, err)
	assert.Equal(t, []int{4, 1, 2}, sizes)
}

func TestCount_Errors(t *testing.T) {
	_, err := islands.Count(islands.Parse("110", "1"))
	assert.ErrorIs(t, err, islands.ErrNonRectangular)

	_, err = islands.Count(islands.Parse("1x0"))
	assert.ErrorIs(t, err, islands.ErrBadCell)
}
