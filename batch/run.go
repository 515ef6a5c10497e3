package batch

import (
	"context"
	"fmt"
	"runtime"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"chess-eval/board"
	"chess-eval/engine"
)

type Config struct {
	Backend   board.Backend
	Evaluator *engine.Evaluator
	// Workers defaults to GOMAXPROCS.
	Workers int
	Logger  zerolog.Logger
}

type Result struct {
	Entry     Entry
	Breakdown engine.Breakdown
}

func (r Result) Score() engine.Score { return r.Breakdown.Final }

// Run evaluates entries on cfg.Workers goroutines. Results are returned in input order.
// The first parse failure cancels the remaining work.
func Run(ctx context.Context, entries []Entry, cfg Config) ([]Result, error) {
	workers := cfg.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	eval := cfg.Evaluator
	if eval == nil {
		eval = engine.New()
	}

	cfg.Logger.Info().
		Int("positions", len(entries)).
		Int("workers", workers).
		Str("backend", string(cfg.Backend)).
		Msg("batch evaluation started")

	results := make([]Result, len(entries))
	g, ctx := errgroup.WithContext(ctx)
	jobs := make(chan int, 128)

	g.Go(func() error {
		defer close(jobs)
		for i := range entries {
			select {
			case jobs <- i:
			case <-ctx.Done():
				return ctx.Err()
			}
		}
		return nil
	})

	for w := 0; w < workers; w++ {
		log := cfg.Logger.With().Int("worker_id", w).Logger()
		g.Go(func() error {
			for i := range jobs {
				if err := ctx.Err(); err != nil {
					return err
				}
				e := entries[i]
				snap, err := board.FromFEN(cfg.Backend, e.FEN)
				if err != nil {
					log.Error().Err(err).Int("line", e.Line).Msg("position rejected")
					return fmt.Errorf("line %d: %w", e.Line, err)
				}
				bd := eval.Explain(snap)
				log.Debug().
					Int("line", e.Line).
					Str("fen", e.FEN).
					Int32("score", int32(bd.Final)).
					Str("outcome", bd.Outcome.String()).
					Msg("evaluated")
				results[i] = Result{Entry: e, Breakdown: bd}
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	cfg.Logger.Info().Int("positions", len(results)).Msg("batch evaluation finished")
	return results, nil
}
