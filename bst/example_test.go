package bst_test

import (
	"fmt"

	"github.com/katalvlaran/drills/bst"
)

func ExampleTree_PreOrder() {
	tr := bst.New(47, 21, 76, 82, 52, 18, 27)
	fmt.Println(tr.PreOrder())
	// Output: [47 21 18 27 76 52 82]
}
