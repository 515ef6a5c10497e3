package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"

	"chess-eval/board"
	"chess-eval/engine"
)

func main() {
	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger().Level(zerolog.WarnLevel)
	uciLoop(os.Stdin, os.Stdout, log)
}

type shell struct {
	out     io.Writer
	log     zerolog.Logger
	backend board.Backend
	legacy  bool
	tables  bool
	game    *board.Game
}

func (s *shell) evaluator() *engine.Evaluator {
	var opts []engine.Option
	if s.legacy {
		opts = append(opts, engine.WithLegacyMaterial())
	}
	if s.tables {
		opts = append(opts, engine.WithLegacyTables())
	}
	return engine.New(opts...)
}

func (s *shell) reset() {
	g, err := board.NewGame(s.backend, board.StartFEN)
	if err != nil {
		// StartFEN is valid on every backend.
		panic(err)
	}
	s.game = g
}

func (s *shell) info(format string, args ...any) {
	fmt.Fprintf(s.out, "info string "+format+"\n", args...)
}

func uciLoop(in io.Reader, out io.Writer, log zerolog.Logger) {
	s := &shell{out: out, log: log, backend: board.Dragon}
	s.reset()

	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		line := scanner.Text()
		tokens := strings.Fields(line)
		if len(tokens) == 0 {
			continue
		}
		switch strings.ToLower(tokens[0]) {
		case "uci":
			fmt.Fprintln(out, "id name chess-eval")
			fmt.Fprintln(out, "id author chess-eval")
			fmt.Fprintf(out, "option name Backend type combo default %s var dragon var goose var notnil\n", board.Dragon)
			fmt.Fprintln(out, "option name LegacyMaterial type check default false")
			fmt.Fprintln(out, "option name LegacyTables type check default false")
			fmt.Fprintln(out, "uciok")
		case "isready":
			fmt.Fprintln(out, "readyok")
		case "ucinewgame":
			s.reset()
		case "quit":
			return
		case "position":
			s.position(tokens[1:])
		case "eval":
			s.eval(false)
		case "d":
			s.eval(true)
		case "setoption":
			s.setOption(tokens[1:])
		default:
			s.info("Unknown command: %s", line)
		}
	}
}

func (s *shell) position(args []string) {
	if len(args) == 0 {
		s.info("Malformed position command")
		return
	}
	var fen string
	rest := args[1:]
	switch strings.ToLower(args[0]) {
	case "startpos":
		fen = board.StartFEN
	case "fen":
		i := 0
		for i < len(rest) && strings.ToLower(rest[i]) != "moves" {
			i++
		}
		fen = strings.Join(rest[:i], " ")
		rest = rest[i:]
		if fen == "" {
			s.info("Invalid fen position")
			return
		}
	default:
		s.info("Invalid position subcommand")
		return
	}

	g, err := board.NewGame(s.backend, fen)
	if err != nil {
		s.info("Invalid fen position: %v", err)
		return
	}
	if len(rest) > 0 && strings.ToLower(rest[0]) == "moves" {
		for _, mv := range rest[1:] {
			if err := g.Play(strings.ToLower(mv)); err != nil {
				s.info("Move %s not played: %v", mv, err)
				break
			}
		}
	}
	s.game = g
	s.log.Debug().Str("fen", g.FEN()).Str("backend", string(s.backend)).Msg("position set")
}

func (s *shell) eval(verbose bool) {
	snap, err := s.game.Snapshot()
	if err != nil {
		s.info("Cannot evaluate: %v", err)
		return
	}
	bd := s.evaluator().Explain(snap)
	if verbose {
		fmt.Fprintln(s.out, "Fen:", s.game.FEN())
		fmt.Fprint(s.out, bd)
		return
	}
	if bd.Outcome != engine.Ongoing {
		s.info("%s", bd.Outcome)
	}
	fmt.Fprintf(s.out, "info score cp %d\n", bd.Final)
}

// setOption handles "setoption name <id> value <x>".
func (s *shell) setOption(args []string) {
	var name, value []string
	target := &name
	for _, tok := range args {
		switch strings.ToLower(tok) {
		case "name":
			target = &name
			continue
		case "value":
			target = &value
			continue
		}
		*target = append(*target, tok)
	}
	val := strings.ToLower(strings.Join(value, " "))

	switch strings.ToLower(strings.Join(name, " ")) {
	case "backend":
		b, err := board.ParseBackend(val)
		if err != nil {
			s.info("%v", err)
			return
		}
		fen := s.game.FEN()
		g, err := board.NewGame(b, fen)
		if err != nil {
			s.info("Cannot move position to %s: %v", b, err)
			return
		}
		s.backend, s.game = b, g
	case "legacymaterial":
		s.setCheck("LegacyMaterial", val, &s.legacy)
	case "legacytables":
		s.setCheck("LegacyTables", val, &s.tables)
	default:
		s.info("Unknown option: %s", strings.Join(name, " "))
	}
}

func (s *shell) setCheck(name, val string, dst *bool) {
	switch val {
	case "true":
		*dst = true
	case "false":
		*dst = false
	default:
		s.info("%s expects true or false, got %q", name, val)
	}
}
