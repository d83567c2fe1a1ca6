package main

import (
	"bytes"
	"fmt"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// execute runs the root command with args and returns stdout.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	root := newRootCmd()
	root.SetOut(&out)
	root.SetErr(&errOut)
	noEnv := filepath.Join(t.TempDir(), "none.env")
	root.SetArgs(append([]string{"--env-file", noEnv}, args...))
	err := root.Execute()
	return out.String(), err
}

func TestRun_List(t *testing.T) {
	out, err := execute(t, "run")
	require.NoError(t, err)
	for _, n := range kataNames() {
		assert.Contains(t, out, n)
	}
}

func TestRun_Each(t *testing.T) {
	for _, n := range kataNames() {
		t.Run(n, func(t *testing.T) {
			out, err := execute(t, "run", n)
			require.NoError(t, err)
			assert.NotEmpty(t, out)
		})
	}
}

func TestRun_Outputs(t *testing.T) {
	out, err := execute(t, "run", "topo")
	require.NoError(t, err)
	assert.Equal(t, "install order: [A B C D E]\n", out)

	out, err = execute(t, "run", "islands")
	require.NoError(t, err)
	assert.Equal(t, "islands: 3\n", out)
}

func TestRun_All(t *testing.T) {
	out, err := execute(t, "run", "--all")
	require.NoError(t, err)
	assert.Contains(t, out, "== sorting ==")
	assert.Contains(t, out, "== notify ==")
}

func TestRun_Unknown(t *testing.T) {
	_, err := execute(t, "run", "bogus")
	assert.ErrorContains(t, err, "unknown kata")
}

func TestFetch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, "fetched")
	}))
	defer srv.Close()

	out, err := execute(t, "fetch", srv.URL)
	require.NoError(t, err)
	assert.Equal(t, "fetched", out)

	_, err = execute(t, "fetch")
	assert.Error(t, err)
}

func TestFetch_MetricsCountRetries(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) == 1 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		fmt.Fprint(w, "recovered")
	}))
	defer srv.Close()
	t.Setenv("DRILLS_FETCH_BACKOFF", "1ms")

	var out, errOut bytes.Buffer
	root := newRootCmd()
	root.SetOut(&out)
	root.SetErr(&errOut)
	noEnv := filepath.Join(t.TempDir(), "none.env")
	root.SetArgs([]string{"--env-file", noEnv, "fetch", "--metrics", srv.URL})
	require.NoError(t, root.Execute())

	assert.Equal(t, "recovered", out.String())
	assert.Contains(t, errOut.String(), "fetch_retries_total 1")
	assert.Equal(t, int32(2), calls.Load())
}

func TestBadConfig(t *testing.T) {
	t.Setenv("DRILLS_LRU_CAPACITY", "0")
	_, err := execute(t, "run")
	assert.ErrorContains(t, err, "lru.capacity")
}
