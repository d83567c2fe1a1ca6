package main

import (
	"fmt"
	"io"
	"slices"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/drills/arrays"
	"github.com/katalvlaran/drills/bst"
	"github.com/katalvlaran/drills/catalog"
	"github.com/katalvlaran/drills/dijkstra"
	"github.com/katalvlaran/drills/heaps"
	"github.com/katalvlaran/drills/islands"
	"github.com/katalvlaran/drills/kvstore"
	"github.com/katalvlaran/drills/lru"
	"github.com/katalvlaran/drills/notify"
	"github.com/katalvlaran/drills/ratelimit"
	"github.com/katalvlaran/drills/recursion"
	"github.com/katalvlaran/drills/rewards"
	"github.com/katalvlaran/drills/sorting"
	"github.com/katalvlaran/drills/stacks"
	"github.com/katalvlaran/drills/strs"
	"github.com/katalvlaran/drills/topo"
)

// kata is one runnable demo.
type kata struct {
	short string
	run   func(w io.Writer) error
}

var katas = map[string]kata{
	"sorting":   {"merge sort and quick sort", runSorting},
	"recursion": {"factorial, power, Collatz, grid paths", runRecursion},
	"bst":       {"binary search tree traversals", runBST},
	"arrays":    {"two sum, stock profit, sliding windows", runArrays},
	"strs":      {"anagrams, unique substrings, run-length coding", runStrs},
	"stacks":    {"parentheses and Polish notation", runStacks},
	"heaps":     {"k largest, top-k frequent, median, k-way merge", runHeaps},
	"topo":      {"library install order (Kahn)", runTopo},
	"dijkstra":  {"shortest paths", runDijkstra},
	"islands":   {"count islands in a grid", runIslands},
	"lru":       {"least-recently-used cache", runLRU},
	"ratelimit": {"sliding-window rate limiter", runRateLimit},
	"kvstore":   {"key-value store with TTL", runKVStore},
	"catalog":   {"paginated product listing", runCatalog},
	"rewards":   {"points ledger and recognitions", runRewards},
	"notify":    {"multi-channel notifications", runNotify},
}

func kataNames() []string {
	names := make([]string, 0, len(katas))
	for n := range katas {
		names = append(names, n)
	}
	slices.Sort(names)
	return names
}

func newRunCmd(a *app) *cobra.Command {
	var all bool
	cmd := &cobra.Command{
		Use:       "run [kata]",
		Short:     "Run a kata demo, or list katas when none is given",
		ValidArgs: kataNames(),
		Args:      cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			switch {
			case all:
				for _, n := range kataNames() {
					fmt.Fprintf(out, "== %s ==\n", n)
					if err := katas[n].run(out); err != nil {
						return fmt.Errorf("%s: %w", n, err)
					}
				}
				return nil
			case len(args) == 0:
				for _, n := range kataNames() {
					fmt.Fprintf(out, "%-10s %s\n", n, katas[n].short)
				}
				return nil
			}

			k, ok := katas[args[0]]
			if !ok {
				return fmt.Errorf("unknown kata %q (have %s)", args[0], strings.Join(kataNames(), ", "))
			}
			a.log.Debug().Str("kata", args[0]).Msg("running kata")
			return k.run(out)
		},
	}
	cmd.Flags().BoolVar(&all, "all", false, "run every kata")
	return cmd
}

func runSorting(w io.Writer) error {
	in := []int{5, 2, 9, 1, 5, 6}
	fmt.Fprintln(w, "merge sort:", sorting.MergeSort(in))
	fmt.Fprintln(w, "quick sort:", sorting.QuickSort(slices.Clone(in)))
	return nil
}

func runRecursion(w io.Writer) error {
	f, err := recursion.Factorial(10)
	if err != nil {
		return err
	}
	p, err := recursion.Power(2, 10)
	if err != nil {
		return err
	}
	c, err := recursion.Collatz(6)
	if err != nil {
		return err
	}
	fmt.Fprintln(w, "10! =", f)
	fmt.Fprintln(w, "2^10 =", p)
	fmt.Fprintln(w, "collatz(6):", c)
	fmt.Fprintln(w, "paths in 3x3 grid:", recursion.GridPaths(3, 3))
	fmt.Fprintln(w, "product except self:", recursion.ProductExceptSelf([]int{1, 2, 3, 4}))
	for _, row := range recursion.Triangle(3) {
		fmt.Fprintln(w, row)
	}
	return nil
}

func runBST(w io.Writer) error {
	t := bst.New(8, 3, 10, 1, 6, 14)
	fmt.Fprintln(w, "bfs:", t.BFS())
	fmt.Fprintln(w, "pre:", t.PreOrder())
	fmt.Fprintln(w, "in:", t.InOrder())
	fmt.Fprintln(w, "post:", t.PostOrder())
	return nil
}

func runArrays(w io.Writer) error {
	i, j, ok := arrays.TwoSum([]int{2, 7, 11, 15}, 9)
	fmt.Fprintln(w, "two sum:", i, j, ok)
	fmt.Fprintln(w, "max profit:", arrays.MaxProfit([]int{7, 1, 5, 3, 6, 4}))
	fmt.Fprintln(w, "duplicates:", arrays.FindDuplicates([]int{1, 2, 3, 4}, []int{3, 4, 5}))
	s, err := arrays.MaxSumWindow([]int{2, 1, 5, 1, 3, 2}, 3)
	if err != nil {
		return err
	}
	n, sub, err := arrays.LongestSumAtMost([]int{1, 2, 1, 0, 1, 1, 0}, 4)
	if err != nil {
		return err
	}
	fmt.Fprintln(w, "max window sum:", s)
	fmt.Fprintln(w, "longest sum<=4:", n, sub)
	return nil
}

func runStrs(w io.Writer) error {
	fmt.Fprintln(w, "anagrams:", strs.GroupAnagrams([]string{"eat", "tea", "tan", "ate", "nat", "bat"}))
	fmt.Fprintln(w, "longest unique:", strs.LongestUnique("abcabcbb"))
	c, err := strs.Compress("aaabccdddd")
	if err != nil {
		return err
	}
	d, err := strs.Decompress(c)
	if err != nil {
		return err
	}
	fmt.Fprintln(w, "rle:", c, "->", d)
	return nil
}

func runStacks(w io.Writer) error {
	fmt.Fprintln(w, "valid ({[]}):", stacks.ValidParentheses("({[]})"))
	r, err := stacks.ReverseParentheses("(u(love)i)")
	if err != nil {
		return err
	}
	v, err := stacks.EvalPolish(strings.Fields("+ 3 * 4 5"))
	if err != nil {
		return err
	}
	fmt.Fprintln(w, "reverse:", r)
	fmt.Fprintln(w, "polish + 3 * 4 5 =", v)
	return nil
}

func runHeaps(w io.Writer) error {
	nums := []int{3, 2, 1, 5, 6, 4}
	kl, err := heaps.KLargest(nums, 2)
	if err != nil {
		return err
	}
	top, err := heaps.TopKFrequent([]int{1, 1, 1, 2, 2, 3}, 2)
	if err != nil {
		return err
	}
	mf := heaps.NewMedianFinder()
	for _, n := range []int{5, 15, 1, 3} {
		mf.Add(n)
	}
	med, err := mf.Median()
	if err != nil {
		return err
	}
	fmt.Fprintln(w, "2 largest:", kl)
	fmt.Fprintln(w, "top 2 frequent:", top)
	fmt.Fprintln(w, "median:", med)
	fmt.Fprintln(w, "merged:", heaps.MergeK([][]int{{1, 4, 7}, {2, 5, 8}, {3, 6, 9}}))
	return nil
}

func runTopo(w io.Writer) error {
	order, err := topo.Sort(map[string][]string{"B": {"A"}, "C": {"A"}, "D": {"B", "C"}, "E": {"D"}})
	if err != nil {
		return err
	}
	fmt.Fprintln(w, "install order:", order)
	return nil
}

func runDijkstra(w io.Writer) error {
	res, err := dijkstra.ShortestPaths(map[string][]dijkstra.Edge{
		"A": {{To: "B", Weight: 1}, {To: "C", Weight: 4}},
		"B": {{To: "C", Weight: 2}, {To: "D", Weight: 5}},
		"C": {{To: "D", Weight: 1}},
	}, "A", dijkstra.WithReturnPath())
	if err != nil {
		return err
	}
	for _, v := range []string{"A", "B", "C", "D"} {
		fmt.Fprintf(w, "%s: %d via %v\n", v, res.Dist[v], res.Path(v))
	}
	return nil
}

func runIslands(w io.Writer) error {
	n, err := islands.Count(islands.Parse("11000", "11000", "00100", "00011"))
	if err != nil {
		return err
	}
	fmt.Fprintln(w, "islands:", n)
	return nil
}

func runLRU(w io.Writer) error {
	c, err := lru.New[int, int](2)
	if err != nil {
		return err
	}
	c.Put(1, 1)
	c.Put(2, 2)
	c.Get(1)
	c.Put(3, 3)
	_, ok := c.Get(2)
	fmt.Fprintln(w, "2 cached after evict:", ok, "keys:", c.Keys())
	return nil
}

func runRateLimit(w io.Writer) error {
	l, err := ratelimit.New(3, 10*time.Second)
	if err != nil {
		return err
	}
	t0 := time.Unix(1000, 0)
	for _, sec := range []int{0, 1, 2, 3, 11} {
		fmt.Fprintf(w, "t=%-2d allowed=%v\n", sec, l.AllowAt("user1", t0.Add(time.Duration(sec)*time.Second)))
	}
	return nil
}

func runKVStore(w io.Writer) error {
	now := time.Unix(0, 0)
	s := kvstore.New[string](kvstore.WithClock(func() time.Time { return now }))
	if err := s.Put("session", "abc123", 3*time.Second); err != nil {
		return err
	}
	v, ok := s.Get("session")
	fmt.Fprintln(w, "get:", v, ok)
	now = now.Add(4 * time.Second)
	_, ok = s.Get("session")
	fmt.Fprintln(w, "after expiry:", ok)
	return nil
}

func runCatalog(w io.Writer) error {
	c := catalog.New(seedProducts)
	for page := 1; ; page++ {
		p, err := c.List(catalog.Query{Page: page, Limit: 2, Search: "a", SortBy: "price"})
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "page %d/%d: %v\n", p.Page, p.TotalPages, p.Items)
		if !p.HasNext {
			return nil
		}
	}
}

func runRewards(w io.Writer) error {
	e := rewards.NewEngine()
	if err := e.AddPoints("user-1", 100); err != nil {
		return err
	}
	if err := e.Redeem("user-1", 40); err != nil {
		return err
	}
	fmt.Fprintln(w, "balance:", e.Balance("user-1"))

	s := rewards.NewRecognitionService(nil)
	alice := rewards.Employee{ID: "1", Name: "Alice"}
	bob := rewards.Employee{ID: "2", Name: "Bob"}
	if _, err := s.Recognize(alice, bob, "Great job on the Q4 project!"); err != nil {
		return err
	}
	fmt.Fprintln(w, "recognitions for Bob:", len(s.For(bob.ID)))
	return nil
}

func runNotify(w io.Writer) error {
	s := notify.NewService()
	s.Register("email", notify.Email(w))
	s.Register("slack", notify.Slack(w))
	s.Register("push", notify.Push(w))
	if err := s.Notify("email", "user@example.com", "Welcome!"); err != nil {
		return err
	}
	if err := s.Notify("slack", "#engineering", "Deployment successful"); err != nil {
		return err
	}
	return s.Notify("push", "device-id-123", "You have a new reward!")
}
