package cli

import (
	"context"
	"errors"
	"fmt"
	"io"

	"dilemma-tactix/internal/ai"
	"dilemma-tactix/internal/bench"
	"dilemma-tactix/internal/game"
	"dilemma-tactix/internal/payoff"
	"dilemma-tactix/internal/player"

	"github.com/peterh/liner"
	"github.com/sirupsen/logrus"
)

// CLI manages all command-line interactions.
type CLI struct {
	log *logrus.Logger
	out io.Writer
	// newLine opens the line editor for interactive play.
	newLine func() (LineReader, func() error)
}

// NewCLI creates a new command-line interface manager.
func NewCLI(log *logrus.Logger, out io.Writer) *CLI {
	return &CLI{
		log: log,
		out: out,
		newLine: func() (LineReader, func() error) {
			line := liner.NewLiner()
			line.SetCtrlCAborts(true)
			return line, line.Close
		},
	}
}

// WithLineReader replaces the terminal line editor, for tests and scripted input.
func (c *CLI) WithLineReader(r LineReader) *CLI {
	c.newLine = func() (LineReader, func() error) {
		return r, func() error { return nil }
	}
	return c
}

// PlayOptions configures an interactive match.
type PlayOptions struct {
	PlayerName string
	Opponent   ai.Kind
	Rounds     int
	Seed       int64 // 0 draws opponent randomness from entropy
}

// RunGrid builds the grid and renders it.
func (c *CLI) RunGrid(b *payoff.Builder) error {
	grid, err := b.WithLogger(c.log).Build()
	if err != nil {
		return fmt.Errorf("failed to build grid: %w", err)
	}
	C.Header.Fprintln(c.out, "--- Game Grid ---")
	RenderGrid(c.out, grid)
	c.log.Debugf("Built %s", grid)
	return nil
}

// RunPlay runs an interactive match between the person at the terminal and a bot.
func (c *CLI) RunPlay(ctx context.Context, b *payoff.Builder, opts PlayOptions) error {
	grid, err := b.WithLogger(c.log).Build()
	if err != nil {
		return fmt.Errorf("failed to build grid: %w", err)
	}

	line, closeLine := c.newLine()
	defer closeLine()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	prompter := NewLinePrompter(line, c.out, cancel)

	var src payoff.Source = payoff.NewEntropySource()
	if opts.Seed != 0 {
		src = payoff.NewDeterministicSource(opts.Seed)
	}

	name := opts.PlayerName
	if name == "" {
		name = "You"
	}
	builder := game.NewBuilder(grid, c.log, src)
	builder.EventManager().Subscribe(&MatchRenderer{Out: c.out})
	printPlayHelp(c.out, grid.Names())

	match, err := builder.
		WithPlayer(player.NewHumanPlayer(name, grid.Names(), prompter)).
		WithBot(fmt.Sprintf("Bot (%s)", opts.Opponent), opts.Opponent).
		WithRounds(opts.Rounds).
		Build()
	if err != nil {
		return fmt.Errorf("failed to build match: %w", err)
	}

	res, err := match.Run(ctx)
	if errors.Is(prompter.Err, ErrQuit) {
		C.Info.Fprintf(c.out, "\nGoodbye! Score after %d rounds: %d-%d\n", res.Rounds, res.ScoreA, res.ScoreB)
		return nil
	}
	if prompter.Err != nil {
		return prompter.Err
	}
	return err
}

// RunBench runs a batch of bot-vs-bot matches and renders the report.
func (c *CLI) RunBench(ctx context.Context, b *payoff.Builder, cfg bench.Config) (*bench.Report, error) {
	grid, err := b.WithLogger(c.log).Build()
	if err != nil {
		return nil, fmt.Errorf("failed to build grid: %w", err)
	}
	cfg.Grid = grid

	C.Header.Fprintln(c.out, "--- Running Bench ---")
	RenderGrid(c.out, grid)
	report, err := bench.Run(ctx, cfg, c.log)
	if err != nil {
		return nil, err
	}
	RenderReport(c.out, report)
	return report, nil
}
