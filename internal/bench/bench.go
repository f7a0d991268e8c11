package bench

import (
	"context"
	"errors"
	"fmt"
	"io"
	"runtime"
	"sync"

	"dilemma-tactix/internal/ai"
	"dilemma-tactix/internal/game"
	"dilemma-tactix/internal/payoff"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

// Config describes a batch of seeded matches between two bot kinds.
type Config struct {
	Grid     *payoff.Grid
	A, B     ai.Kind
	Matches  int
	Rounds   int
	Workers  int // <= 0 uses runtime.NumCPU()
	BaseSeed int64
}

// Report aggregates every match in a run.
type Report struct {
	A, B           ai.Kind
	Matches        int
	Rounds         int
	TotalA, TotalB int64
	WinsA, WinsB   int
	Draws          int
	MeanA, MeanB   decimal.Decimal // per match
	PerRoundA      decimal.Decimal
	PerRoundB      decimal.Decimal
	MinA, MaxA     int
	MinB, MaxB     int
}

type task struct {
	index int
}

type outcome struct {
	index  int
	result game.Result
	err    error
}

// Run plays cfg.Matches matches on a worker pool. Match i draws from a private
// source seeded BaseSeed+i, so the report does not depend on Workers.
func Run(ctx context.Context, cfg Config, log *logrus.Logger) (*Report, error) {
	if cfg.Grid == nil {
		return nil, errors.New("bench: no payoff grid")
	}
	if cfg.Matches < 1 || cfg.Rounds < 1 {
		return nil, fmt.Errorf("bench: need at least one match and one round, got %d/%d", cfg.Matches, cfg.Rounds)
	}
	workers := cfg.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if workers > cfg.Matches {
		workers = cfg.Matches
	}

	tasks := make(chan task, cfg.Matches)
	results := make(chan outcome, cfg.Matches)

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go worker(ctx, cfg, log, tasks, results, &wg)
	}

	for i := 0; i < cfg.Matches; i++ {
		tasks <- task{index: i}
	}
	close(tasks)

	go func() {
		wg.Wait()
		close(results)
	}()

	ordered := make([]game.Result, cfg.Matches)
	var errs []error
	for o := range results {
		if o.err != nil {
			errs = append(errs, fmt.Errorf("match %d: %w", o.index, o.err))
			continue
		}
		ordered[o.index] = o.result
	}
	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}

	report := summarize(cfg, ordered)
	log.WithFields(logrus.Fields{
		"a":       cfg.A,
		"b":       cfg.B,
		"matches": report.Matches,
		"rounds":  report.Rounds,
		"seed":    cfg.BaseSeed,
	}).Infof("Bench finished: mean %s vs %s", report.MeanA, report.MeanB)
	return report, nil
}

func worker(ctx context.Context, cfg Config, log *logrus.Logger, tasks <-chan task, results chan<- outcome, wg *sync.WaitGroup) {
	defer wg.Done()
	for t := range tasks {
		if err := ctx.Err(); err != nil {
			results <- outcome{index: t.index, err: err}
			continue
		}
		res, err := playOne(ctx, cfg, log, t.index)
		results <- outcome{index: t.index, result: res, err: err}
	}
}

func playOne(ctx context.Context, cfg Config, log *logrus.Logger, index int) (game.Result, error) {
	src := payoff.NewDeterministicSource(cfg.BaseSeed + int64(index))
	match, err := game.NewBuilder(cfg.Grid, log, src).
		WithBot("A:"+string(cfg.A), cfg.A).
		WithBot("B:"+string(cfg.B), cfg.B).
		WithRounds(cfg.Rounds).
		Build()
	if err != nil {
		return game.Result{}, err
	}
	res, err := match.Run(ctx)
	if err != nil {
		return game.Result{}, err
	}
	log.WithField("match", index).Debugf("Score %d-%d", res.ScoreA, res.ScoreB)
	return res, nil
}

func summarize(cfg Config, results []game.Result) *Report {
	r := &Report{A: cfg.A, B: cfg.B, Matches: len(results), Rounds: cfg.Rounds}
	for i, res := range results {
		r.TotalA += int64(res.ScoreA)
		r.TotalB += int64(res.ScoreB)
		switch {
		case res.ScoreA > res.ScoreB:
			r.WinsA++
		case res.ScoreB > res.ScoreA:
			r.WinsB++
		default:
			r.Draws++
		}
		if i == 0 || res.ScoreA < r.MinA {
			r.MinA = res.ScoreA
		}
		if i == 0 || res.ScoreA > r.MaxA {
			r.MaxA = res.ScoreA
		}
		if i == 0 || res.ScoreB < r.MinB {
			r.MinB = res.ScoreB
		}
		if i == 0 || res.ScoreB > r.MaxB {
			r.MaxB = res.ScoreB
		}
	}

	matches := decimal.NewFromInt(int64(r.Matches))
	rounds := decimal.NewFromInt(int64(r.Matches) * int64(r.Rounds))
	r.MeanA = decimal.NewFromInt(r.TotalA).DivRound(matches, 3)
	r.MeanB = decimal.NewFromInt(r.TotalB).DivRound(matches, 3)
	r.PerRoundA = decimal.NewFromInt(r.TotalA).DivRound(rounds, 3)
	r.PerRoundB = decimal.NewFromInt(r.TotalB).DivRound(rounds, 3)
	return r
}

// Discard returns a logger that drops everything, for callers that only want
// the report.
func Discard() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}
