package main

import (
	"bufio"
	"flag"
	"os"
	"strings"

	"github.com/rs/zerolog"

	"chess-eval/engine"
	"chess-eval/report"
)

func main() {
	out := flag.String("out", "", "Output file (defaults to stdout)")
	pieces := flag.String("pieces", "", "Comma separated piece kinds to draw (defaults to all)")
	black := flag.Bool("black", false, "Draw the tables as a black piece contributes them")
	cell := flag.Int("cell", 40, "Square size in pixels")
	flag.Parse()

	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	opts := report.Options{Cell: *cell}
	if *black {
		opts.Color = engine.Black
	}
	if *pieces != "" {
		for _, name := range strings.Split(*pieces, ",") {
			kind, ok := engine.ParsePieceKind(strings.ToLower(strings.TrimSpace(name)))
			if !ok {
				log.Error().Str("piece", name).Msg("unknown piece kind")
				os.Exit(2)
			}
			opts.Kinds = append(opts.Kinds, kind)
		}
	}

	w := os.Stdout
	if *out != "" {
		f, err := os.Create(*out)
		if err != nil {
			log.Error().Err(err).Str("file", *out).Msg("creating output")
			os.Exit(1)
		}
		defer f.Close()
		w = f
	}

	bw := bufio.NewWriter(w)
	report.WriteTablesSVG(bw, opts)
	if err := bw.Flush(); err != nil {
		log.Error().Err(err).Msg("writing svg")
		os.Exit(1)
	}
	if *out != "" {
		log.Info().Str("file", *out).Str("color", opts.Color.String()).Msg("wrote piece-square tables")
	}
}
