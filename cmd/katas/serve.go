package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/drills/catalog"
	"github.com/katalvlaran/drills/internal/httpapi"
	"github.com/katalvlaran/drills/internal/metrics"
	"github.com/katalvlaran/drills/kvstore"
	"github.com/katalvlaran/drills/lru"
	"github.com/katalvlaran/drills/ratelimit"
)

// seedProducts is the catalog served by `katas serve`.
var seedProducts = []catalog.Product{
	{ID: 1, Name: "Apple", Price: 3},
	{ID: 2, Name: "Banana", Price: 1},
	{ID: 3, Name: "Carrot", Price: 2},
	{ID: 4, Name: "Apricot", Price: 5},
	{ID: 5, Name: "Avocado", Price: 4},
}

func newServeCmd(a *app) *cobra.Command {
	var addr string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the KV store and product catalog over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if addr != "" {
				a.cfg.Server.Addr = addr
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			return a.serve(ctx)
		},
	}
	cmd.Flags().StringVarP(&addr, "address", "a", "", "listen address (overrides config)")
	return cmd
}

// serve wires every dependency from config and blocks until ctx is done.
func (a *app) serve(ctx context.Context) error {
	m := metrics.New()

	limiter, closeLimiter, err := a.limiter(ctx)
	if err != nil {
		return err
	}
	defer closeLimiter()

	products, err := lru.New[int, catalog.Product](a.cfg.LRU.Capacity,
		lru.WithStatsHook[int, catalog.Product](m.CacheLookup),
		lru.WithOnEvict[int, catalog.Product](func(int, catalog.Product) { m.CacheEvicted() }),
	)
	if err != nil {
		return err
	}

	store := kvstore.New[string]()
	go store.Janitor(ctx, a.cfg.KV.SweepInterval, func(removed int) {
		m.KVSwept(removed, store.Len())
		if removed > 0 {
			a.log.Debug().Int("removed", removed).Msg("kv sweep")
		}
	})

	srv := httpapi.New(a.cfg.Server.Addr, httpapi.Deps{
		Store:      store,
		Catalog:    catalog.New(seedProducts),
		Products:   products,
		Limiter:    limiter,
		Metrics:    m,
		Log:        a.log,
		DefaultTTL: a.cfg.KV.DefaultTTL,
	})
	return srv.Run(ctx, a.cfg.Server.ShutdownTimeout)
}

// limiter builds the configured rate-limit backend.
func (a *app) limiter(ctx context.Context) (ratelimit.Decider, func(), error) {
	rl := a.cfg.RateLimit
	switch rl.Backend {
	case "redis":
		opts, err := redis.ParseURL(rl.RedisURL)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to parse redis url: %w", err)
		}
		client := redis.NewClient(opts)
		if err := client.Ping(ctx).Err(); err != nil {
			_ = client.Close()
			return nil, nil, fmt.Errorf("failed to connect to redis: %w", err)
		}
		d, err := ratelimit.NewRedis(client, rl.MaxRequests, rl.Window)
		if err != nil {
			_ = client.Close()
			return nil, nil, err
		}
		a.log.Info().Str("backend", "redis").Int("max", rl.MaxRequests).Dur("window", rl.Window).Msg("rate limiter ready")
		return d, func() { _ = client.Close() }, nil
	default:
		l, err := ratelimit.New(rl.MaxRequests, rl.Window)
		if err != nil {
			return nil, nil, err
		}
		// Idle clients are forgotten once their window has fully passed.
		go l.Janitor(ctx, rl.Window, func(dropped int) {
			if dropped > 0 {
				a.log.Debug().Int("dropped", dropped).Int("tracked", l.Keys()).Msg("rate limiter sweep")
			}
		})
		a.log.Info().Str("backend", "memory").Int("max", rl.MaxRequests).Dur("window", rl.Window).Msg("rate limiter ready")
		return ratelimit.AsDecider(l), func() {}, nil
	}
}
