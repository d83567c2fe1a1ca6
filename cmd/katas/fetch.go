package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/drills/fetch"
	"github.com/katalvlaran/drills/internal/metrics"
)

func newFetchCmd(a *app) *cobra.Command {
	var dumpMetrics bool
	cmd := &cobra.Command{
		Use:   "fetch <url>",
		Short: "GET a URL with timeout and backoff retries and print the body",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m := metrics.New()
			f := fetch.New(
				fetch.WithTimeout(a.cfg.Fetch.Timeout),
				fetch.WithRetries(a.cfg.Fetch.Retries),
				fetch.WithBackoff(a.cfg.Fetch.Backoff),
				fetch.WithOnRetry(func(err error, wait time.Duration) {
					m.FetchRetried()
					a.log.Warn().Err(err).Dur("wait", wait).Str("url", args[0]).Msg("retrying fetch")
				}),
			)
			body, err := f.Fetch(cmd.Context(), args[0])
			if dumpMetrics {
				if werr := m.WriteText(cmd.ErrOrStderr()); werr != nil {
					a.log.Error().Err(werr).Msg("failed to write metrics")
				}
			}
			if err != nil {
				return fmt.Errorf("failed to fetch %s: %w", args[0], err)
			}
			_, err = fmt.Fprint(cmd.OutOrStdout(), body)
			return err
		},
	}
	cmd.Flags().BoolVar(&dumpMetrics, "metrics", false, "write Prometheus metrics to stderr when done")
	return cmd
}
