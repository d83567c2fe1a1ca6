package recursion_test

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/drills/recursion"
)

func ExampleCollatz() {
	seq, _ := recursion.Collatz(3)
	fmt.Println(seq)
	// Output: [3 10 5 16 8 4 2 1]
}

func ExampleTriangle() {
	fmt.Println(strings.Join(recursion.Triangle(4), "\n"))
	// Output:
	// *
	// **
	// ***
	// ****
}
