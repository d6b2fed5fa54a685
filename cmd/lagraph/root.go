package main

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/lagraph/bfs"
	"github.com/katalvlaran/lagraph/internal/config"
)

// app carries what every subcommand needs once the root has resolved
// configuration.
type app struct {
	cfg *config.Config
	log *logrus.Logger

	flagConfig   string
	flagLogLevel string
	flagWorkers  int
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:          "lagraph",
		Short:        "Direction-optimizing BFS and shortest paths over edge lists",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.flagConfig, "config", "", "YAML config file")
	pf.StringVar(&a.flagLogLevel, "log-level", "", "log level (env: "+config.EnvLogLevel+")")
	pf.IntVar(&a.flagWorkers, "workers", 0, "pull-step workers (env: "+config.EnvWorkers+")")

	root.AddCommand(newBFSCmd(a))
	root.AddCommand(newPathCmd(a))

	return root
}

// setup loads configuration, applies flag overrides and builds the logger.
// Flags win over the environment, which wins over the file.
func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(a.flagConfig)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("log-level") {
		cfg.LogLevel = a.flagLogLevel
	}
	if cmd.Flags().Changed("workers") {
		cfg.Workers = a.flagWorkers
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	log := logrus.New()
	log.SetOutput(cmd.ErrOrStderr())
	log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	log.SetLevel(cfg.Level())

	a.cfg, a.log = cfg, log

	return nil
}

// traversalOptions are the engine settings shared by every subcommand.
func (a *app) traversalOptions() []bfs.Option {
	return []bfs.Option{
		bfs.WithTuning(a.cfg.Tuning),
		bfs.WithWorkers(a.cfg.Workers),
		bfs.WithLogger(a.log),
	}
}
