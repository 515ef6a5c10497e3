package board

import "fmt"

type rules interface {
	snapshot() *Snapshot
	play(move string) error
	fen() string
}

// Game is a mutable position owned by one goroutine. Evaluators never see a Game,
// only the Snapshots taken from it.
type Game struct {
	backend Backend
	rules   rules
	// fen is the last position the library accepted. Errors quote it because a
	// library that panicked may no longer print its own board correctly.
	fen string
}

// NewGame sets up fen (four to six FEN fields) on the chosen backend.
func NewGame(backend Backend, fen string) (g *Game, err error) {
	norm, err := NormalizeFEN(fen)
	if err != nil {
		return nil, err
	}
	defer guard(norm, &err)

	var r rules
	switch backend {
	case Dragon:
		r, err = newDragonRules(norm)
	case Goose:
		r, err = newGooseRules(norm)
	case Notnil:
		r, err = newNotnilRules(norm)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, backend)
	}
	if err != nil {
		return nil, err
	}
	return &Game{backend: backend, rules: r, fen: r.fen()}, nil
}

func (g *Game) Backend() Backend { return g.backend }

// Play applies a move in UCI coordinate notation (e2e4, e7e8q).
func (g *Game) Play(move string) (err error) {
	defer guard(g.fen, &err)
	if err := g.rules.play(move); err != nil {
		return err
	}
	g.fen = g.rules.fen()
	return nil
}

// Snapshot captures the current position for evaluation.
func (g *Game) Snapshot() (s *Snapshot, err error) {
	defer guard(g.fen, &err)
	return g.rules.snapshot(), nil
}

func (g *Game) FEN() string { return g.fen }
