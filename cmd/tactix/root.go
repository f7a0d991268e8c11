package main

import (
	"dilemma-tactix/internal/cli"
	"dilemma-tactix/internal/config"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// gameFlags are the persistent flags shared by every subcommand.
type gameFlags struct {
	logLevel    string
	configPath  string
	seed        int64
	low, high   int
	cooperate   string
	defect      string
	randomNames bool
}

func newRootCmd(log *logrus.Logger) *cobra.Command {
	flags := &gameFlags{}

	root := &cobra.Command{
		Use:   "tactix",
		Short: "tactix plays the iterated Prisoner's Dilemma",
		Long: `tactix builds a 2×2 payoff grid, either the classic one or one sampled
from a payoff range, and plays it interactively or benchmarks bots against it.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level, err := logrus.ParseLevel(flags.logLevel)
			if err != nil {
				level = logrus.InfoLevel
			}
			log.SetLevel(level)
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&flags.logLevel, "loglevel", "info", "Set logging level (debug, info, warn, error)")
	pf.StringVar(&flags.configPath, "config", "", "Game config file (YAML, or JSON by extension)")
	pf.Int64Var(&flags.seed, "seed", 0, "Seed for reproducible payoffs (0 = non-deterministic)")
	pf.IntVar(&flags.low, "low", 1, "Lowest sampled payoff")
	pf.IntVar(&flags.high, "high", 10, "Highest sampled payoff")
	pf.StringVar(&flags.cooperate, "cooperate", "", "Display name for cooperation")
	pf.StringVar(&flags.defect, "defect", "", "Display name for defection")
	pf.BoolVar(&flags.randomNames, "random-names", false, "Pick choice names from the built-in catalogue")

	newCLI := func(cmd *cobra.Command) *cli.CLI {
		return cli.NewCLI(log, cmd.OutOrStdout())
	}
	root.AddCommand(
		newGridCmd(flags, newCLI),
		newPlayCmd(flags, newCLI),
		newBenchCmd(flags, newCLI),
	)
	return root
}

// loadGameConfig layers explicitly set flags over the config file. Without a
// file, setting either bound switches from the classic grid to a sampled one.
func loadGameConfig(cmd *cobra.Command, flags *gameFlags) (*config.GameConfig, error) {
	changed := cmd.Flags().Changed

	var cfg *config.GameConfig
	switch {
	case flags.configPath != "":
		loaded, err := config.Load(flags.configPath)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	case changed("low") || changed("high"):
		cfg = &config.GameConfig{
			Bounds: &config.Bounds{Low: flags.low, High: flags.high},
			Rounds: config.DefaultRounds,
		}
	default:
		cfg = config.Default()
	}

	if changed("low") || changed("high") {
		if cfg.Bounds == nil {
			cfg.Bounds = &config.Bounds{Low: flags.low, High: flags.high}
		}
		if changed("low") {
			cfg.Bounds.Low = flags.low
		}
		if changed("high") {
			cfg.Bounds.High = flags.high
		}
	}
	if changed("seed") {
		cfg.Seed = nil
		if flags.seed != 0 {
			seed := flags.seed
			cfg.Seed = &seed
		}
	}
	if changed("cooperate") || changed("defect") {
		names := config.Default().Names
		if cfg.Names != nil {
			names = cfg.Names
		}
		if changed("cooperate") {
			names.Cooperate = flags.cooperate
		}
		if changed("defect") {
			names.Defect = flags.defect
		}
		cfg.Names = names
	}
	if flags.randomNames {
		cfg.Names = nil
		cfg.RandomNames = true
	}
	return cfg, nil
}
