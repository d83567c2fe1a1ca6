package arrays

// MaxProfit returns the best profit from one buy followed by one later sell.
// It is 0 when prices only fall.
//
//	day   price  min so far  profit today  best
//	0     7      7           0             0
//	1     1      1           0             0
//	2     5      1           4             4
//	3     3      1           2             4
//	4     6      1           5             5
//	5     4      1           3             5
func MaxProfit(prices []int) int {
	if len(prices) == 0 {
		return 0
	}
	minSoFar := prices[0]
	best := 0
	for _, p := range prices[1:] {
		best = max(best, p-minSoFar)
		minSoFar = min(minSoFar, p)
	}
	return best
}

// MaxProfitBrute checks every (buy, sell) pair.
func MaxProfitBrute(prices []int) int {
	best := 0
	for i := range prices {
		for j := i + 1; j < len(prices); j++ {
			best = max(best, prices[j]-prices[i])
		}
	}
	return best
}
