package islands_test

import (
	"fmt"

	"github.com/katalvlaran/drills/islands"
)

func ExampleCount() {
	grid := islands.Parse(
		"11000",
		"11000",
		"00100",
		"00011",
	)
	n, err := islands.Count(grid)
	fmt.Println(n, err)
	// Output: 3 <nil>
}
