// Package httpapi exposes the stateful katas (TTL store, product catalog
// with an LRU lookup cache) over HTTP behind a per-client rate limiter.
package httpapi

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/drills/catalog"
	"github.com/katalvlaran/drills/internal/metrics"
	"github.com/katalvlaran/drills/kvstore"
	"github.com/katalvlaran/drills/lru"
	"github.com/katalvlaran/drills/ratelimit"
)

// Deps are the components a Server routes to. All fields are required.
type Deps struct {
	Store      *kvstore.Store[string]
	Catalog    *catalog.Catalog
	Products   *lru.Cache[int, catalog.Product]
	Limiter    ratelimit.Decider
	Metrics    *metrics.Metrics
	Log        zerolog.Logger
	DefaultTTL time.Duration
}

// Server owns the router and the listener.
type Server struct {
	deps Deps
	srv  *http.Server
}

// New wires the router for addr.
func New(addr string, deps Deps) *Server {
	s := &Server{deps: deps}
	s.srv = &http.Server{
		Addr:              addr,
		Handler:           s.Router(),
		ReadHeaderTimeout: 5 * time.Second,
	}
	return s
}

// Run serves until ctx is done, then shuts down within grace.
func (s *Server) Run(ctx context.Context, grace time.Duration) error {
	errCh := make(chan error, 1)
	go func() {
		s.deps.Log.Info().Str("addr", s.srv.Addr).Msg("http server listening")
		if err := s.srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	s.deps.Log.Info().Msg("shutting down http server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), grace)
	defer cancel()
	if err := s.srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	return <-errCh
}
