package board

import (
	"fmt"

	"github.com/notnil/chess"

	"chess-eval/engine"
)

type notnilRules struct {
	g *chess.Game
}

func newNotnilRules(fen string) (*notnilRules, error) {
	opt, err := chess.FEN(fen)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %v", ErrInvalidFEN, fen, err)
	}
	return &notnilRules{g: chess.NewGame(opt)}, nil
}

var notnilKinds = map[chess.PieceType]engine.PieceKind{
	chess.Pawn:   engine.Pawn,
	chess.Knight: engine.Knight,
	chess.Bishop: engine.Bishop,
	chess.Rook:   engine.Rook,
	chess.Queen:  engine.Queen,
	chess.King:   engine.King,
}

// FromNotnil snapshots the current position of a notnil/chess game. All three
// terminal predicates come from the library: mate and stalemate from the position
// status, insufficient material from the game's draw method.
func FromNotnil(g *chess.Game) *Snapshot {
	pos := g.Position()
	var p Placement
	for sq, pc := range pos.Board().SquareMap() {
		kind, ok := notnilKinds[pc.Type()]
		if !ok {
			continue
		}
		c := engine.White
		if pc.Color() == chess.Black {
			c = engine.Black
		}
		p[c][kind] = p[c][kind].Add(engine.Square(sq))
	}

	side := engine.White
	if pos.Turn() == chess.Black {
		side = engine.Black
	}
	status := pos.Status()
	return NewSnapshot(p, side, Status{
		Checkmate:    status == chess.Checkmate,
		Stalemate:    status == chess.Stalemate,
		Insufficient: g.Method() == chess.InsufficientMaterial,
	})
}

func (r *notnilRules) snapshot() *Snapshot { return FromNotnil(r.g) }

func (r *notnilRules) play(move string) error {
	m, err := chess.UCINotation{}.Decode(r.g.Position(), move)
	if err != nil {
		return fmt.Errorf("%w: %s in %s: %v", ErrIllegalMove, move, r.g.FEN(), err)
	}
	if err := r.g.Move(m); err != nil {
		return fmt.Errorf("%w: %s in %s: %v", ErrIllegalMove, move, r.g.FEN(), err)
	}
	return nil
}

func (r *notnilRules) fen() string { return r.g.FEN() }
