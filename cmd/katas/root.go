package main

import (
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/drills/internal/config"
	"github.com/katalvlaran/drills/internal/logger"
)

// app carries what every subcommand needs once flags are parsed.
type app struct {
	configPath string
	envFile    string

	cfg *config.Config
	log zerolog.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:           "katas",
		Short:         "Algorithm and data-structure drills",
		Long:          "Run kata demos, serve the TTL store and product catalog over HTTP, or fetch a URL with retries.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(a.configPath, a.envFile)
			if err != nil {
				return err
			}
			l, err := logger.Init(cfg.Log, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			a.cfg, a.log = cfg, l
			return nil
		},
	}
	root.PersistentFlags().StringVarP(&a.configPath, "config", "c", "", "YAML config file")
	root.PersistentFlags().StringVar(&a.envFile, "env-file", ".env", "dotenv file loaded before reading DRILLS_* variables")

	root.AddCommand(
		newServeCmd(a),
		newRunCmd(a),
		newFetchCmd(a),
	)
	return root
}
