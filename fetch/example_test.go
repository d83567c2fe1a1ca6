package fetch_test

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"time"

	"github.com/katalvlaran/drills/fetch"
)

func ExampleFetcher_Fetch() {
	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		if calls == 1 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		fmt.Fprint(w, "payload")
	}))
	defer srv.Close()

	f := fetch.New(fetch.WithBackoff(time.Millisecond))
	body, err := f.Fetch(context.Background(), srv.URL)
	fmt.Println(body, err, calls)
	// Output: payload <nil> 2
}
