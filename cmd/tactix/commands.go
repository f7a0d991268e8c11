package main

import (
	"dilemma-tactix/internal/ai"
	"dilemma-tactix/internal/bench"
	"dilemma-tactix/internal/cli"
	"dilemma-tactix/internal/config"
	"dilemma-tactix/internal/payoff"

	"github.com/spf13/cobra"
)

type cliFactory func(cmd *cobra.Command) *cli.CLI

func seedOf(cfg *config.GameConfig) int64 {
	if cfg.Seed == nil {
		return 0
	}
	return *cfg.Seed
}

// benchSeed is the configured seed, or a fresh entropy seed when none is set
// so unseeded benches differ between runs.
func benchSeed(cfg *config.GameConfig) int64 {
	if seed := seedOf(cfg); seed != 0 {
		return seed
	}
	return payoff.NewEntropySource().Seed()
}

func newGridCmd(flags *gameFlags, newCLI cliFactory) *cobra.Command {
	return &cobra.Command{
		Use:   "grid",
		Short: "Build the payoff grid and print it",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadGameConfig(cmd, flags)
			if err != nil {
				return err
			}
			return newCLI(cmd).RunGrid(cfg.Builder())
		},
	}
}

func newPlayCmd(flags *gameFlags, newCLI cliFactory) *cobra.Command {
	var (
		opponent string
		rounds   int
		name     string
	)
	cmd := &cobra.Command{
		Use:   "play",
		Short: "Play an interactive match against a bot",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, err := ai.ParseKind(opponent)
			if err != nil {
				return err
			}
			cfg, err := loadGameConfig(cmd, flags)
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("rounds") {
				rounds = cfg.Rounds
			}
			return newCLI(cmd).RunPlay(cmd.Context(), cfg.Builder(), cli.PlayOptions{
				PlayerName: name,
				Opponent:   kind,
				Rounds:     rounds,
				Seed:       seedOf(cfg),
			})
		},
	}
	cmd.Flags().StringVar(&opponent, "opponent", string(ai.KindRandom), "Opponent: cooperate, defect or random")
	cmd.Flags().IntVar(&rounds, "rounds", 10, "Rounds to play")
	cmd.Flags().StringVar(&name, "name", "You", "Your name in the score line")
	return cmd
}

func newBenchCmd(flags *gameFlags, newCLI cliFactory) *cobra.Command {
	var (
		a, b    string
		matches int
		rounds  int
		workers int
	)
	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Run many bot-vs-bot matches and report statistics",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			kindA, err := ai.ParseKind(a)
			if err != nil {
				return err
			}
			kindB, err := ai.ParseKind(b)
			if err != nil {
				return err
			}
			cfg, err := loadGameConfig(cmd, flags)
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("rounds") {
				rounds = cfg.Rounds
			}
			_, err = newCLI(cmd).RunBench(cmd.Context(), cfg.Builder(), bench.Config{
				A:        kindA,
				B:        kindB,
				Matches:  matches,
				Rounds:   rounds,
				Workers:  workers,
				BaseSeed: benchSeed(cfg),
			})
			return err
		},
	}
	cmd.Flags().StringVar(&a, "a", string(ai.KindRandom), "Bot kind in seat A")
	cmd.Flags().StringVar(&b, "b", string(ai.KindRandom), "Bot kind in seat B")
	cmd.Flags().IntVar(&matches, "matches", 100, "Matches to play")
	cmd.Flags().IntVar(&rounds, "rounds", 10, "Rounds per match")
	cmd.Flags().IntVar(&workers, "workers", 0, "Worker goroutines (0 = one per CPU)")
	return cmd
}
