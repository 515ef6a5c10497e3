package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"runtime/pprof"
	"time"

	"github.com/rs/zerolog"

	"chess-eval/batch"
	"chess-eval/board"
	"chess-eval/engine"
)

func main() {
	fen := flag.String("fen", "", "FEN to evaluate (defaults to the initial position when -epd is not set)")
	epd := flag.String("epd", "", "File with one FEN/EPD position per line; 'ce' opcodes are compared")
	backendName := flag.String("backend", string(board.Dragon), "Rules backend: dragon, goose or notnil")
	workers := flag.Int("workers", 0, "Concurrent evaluators for -epd (0 = GOMAXPROCS)")
	legacy := flag.Bool("legacy-material", false, "Use the historical material formula (rooks and queens unweighted)")
	legacyTables := flag.Bool("legacy-tables", false, "Read the piece-square tables upside down like the historical scorer")
	breakdown := flag.Bool("breakdown", false, "Print the per-piece breakdown")
	symmetry := flag.Bool("symmetry", false, "Also evaluate the color-flipped position and warn on mismatch")
	logLevel := flag.String("log-level", "info", "Log level: debug, info, warn, error")
	cpuProf := flag.String("cpuprofile", "", "Write CPU profile to file during run")
	flag.Parse()

	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}).With().Timestamp().Logger()
	if lvl, err := zerolog.ParseLevel(*logLevel); err == nil {
		log = log.Level(lvl)
	} else {
		log.Warn().Str("level", *logLevel).Msg("unknown log level, using info")
	}

	backend, err := board.ParseBackend(*backendName)
	if err != nil {
		log.Error().Err(err).Msg("bad -backend")
		os.Exit(2)
	}

	var opts []engine.Option
	if *legacy {
		opts = append(opts, engine.WithLegacyMaterial())
	}
	if *legacyTables {
		opts = append(opts, engine.WithLegacyTables())
	}
	eval := engine.New(opts...)

	if *cpuProf != "" {
		f, err := os.Create(*cpuProf)
		if err != nil {
			log.Error().Err(err).Msg("creating cpuprofile")
			os.Exit(1)
		}
		defer f.Close()
		if err := pprof.StartCPUProfile(f); err != nil {
			log.Error().Err(err).Msg("starting cpuprofile")
			os.Exit(1)
		}
		defer pprof.StopCPUProfile()
	}

	if *epd != "" {
		if err := runBatch(*epd, backend, eval, *workers, log); err != nil {
			log.Error().Err(err).Str("file", *epd).Msg("batch evaluation failed")
			os.Exit(1)
		}
		return
	}

	if *fen == "" {
		*fen = board.StartFEN
	}
	if err := runSingle(*fen, backend, eval, *breakdown, *symmetry, log); err != nil {
		log.Error().Err(err).Msg("evaluation failed")
		os.Exit(1)
	}
}

func runSingle(fen string, backend board.Backend, eval *engine.Evaluator, breakdown, symmetry bool, log zerolog.Logger) error {
	snap, err := board.FromFEN(backend, fen)
	if err != nil {
		return err
	}
	start := time.Now()
	bd := eval.Explain(snap)
	log.Debug().Dur("elapsed", time.Since(start)).Msg("evaluated")

	if breakdown {
		fmt.Print(bd)
	}
	fmt.Printf("score %d\n", bd.Final)

	if !symmetry {
		return nil
	}
	mirrored, err := board.MirrorFEN(fen)
	if err != nil {
		return err
	}
	msnap, err := board.FromFEN(backend, mirrored)
	if err != nil {
		return err
	}
	if ms := eval.Evaluate(msnap); ms != bd.Final {
		log.Warn().
			Str("fen", fen).
			Str("mirrored", mirrored).
			Int32("score", int32(bd.Final)).
			Int32("mirrored_score", int32(ms)).
			Msg("evaluation is not color symmetric")
	} else {
		log.Info().Str("mirrored", mirrored).Msg("symmetry check passed")
	}
	return nil
}

func runBatch(path string, backend board.Backend, eval *engine.Evaluator, workers int, log zerolog.Logger) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	entries, err := batch.Read(f)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	start := time.Now()
	results, err := batch.Run(ctx, entries, batch.Config{
		Backend:   backend,
		Evaluator: eval,
		Workers:   workers,
		Logger:    log,
	})
	if err != nil {
		return err
	}
	for _, r := range results {
		id := r.Entry.ID
		if id == "" {
			id = fmt.Sprintf("line %d", r.Entry.Line)
		}
		fmt.Printf("%-12s %6d  %s\n", id, r.Score(), r.Entry.FEN)
	}
	fmt.Println(batch.Summarize(results))
	log.Info().Dur("elapsed", time.Since(start)).Msg("done")
	return nil
}
