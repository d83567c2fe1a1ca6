// Command katas serves the stateful katas over HTTP, runs kata demos and
// fetches URLs with the retrying fetcher.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "katas:", err)
		os.Exit(1)
	}
}
