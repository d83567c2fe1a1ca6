package rewards_test

import (
	"fmt"

	"github.com/katalvlaran/drills/rewards"
)

func ExampleEngine() {
	e := rewards.NewEngine()
	_ = e.AddPoints("user-1", 100)
	_ = e.Redeem("user-1", 40)
	fmt.Println(e.Balance("user-1"))
	fmt.Println(e.Redeem("user-1", 100))
	// Output:
	// 60
	// rewards: insufficient points: user user-1 has 60, wants 100
}
