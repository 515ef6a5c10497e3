package board

import (
	"fmt"
	"strings"

	"github.com/dylhunn/dragontoothmg"

	"chess-eval/engine"
)

type dragonRules struct {
	b dragontoothmg.Board
}

func newDragonRules(fen string) (*dragonRules, error) {
	return &dragonRules{b: dragontoothmg.ParseFen(fen)}, nil
}

// FromDragon snapshots a dragontoothmg board. dragontoothmg has no draw predicates, so
// mate and stalemate come from the legal move list and insufficient material is
// derived from the placement.
func FromDragon(b *dragontoothmg.Board) *Snapshot {
	var p Placement
	fillDragon(&p[engine.White], &b.White)
	fillDragon(&p[engine.Black], &b.Black)

	side := engine.Black
	if b.Wtomove {
		side = engine.White
	}
	noMoves := len(b.GenerateLegalMoves()) == 0
	inCheck := b.OurKingInCheck()
	return NewSnapshot(p, side, Status{
		Checkmate: noMoves && inCheck,
		Stalemate: noMoves && !inCheck,
		Derive:    true,
	})
}

func fillDragon(dst *[7]engine.SquareSet, bb *dragontoothmg.Bitboards) {
	dst[engine.Pawn] = engine.SquareSet(bb.Pawns)
	dst[engine.Knight] = engine.SquareSet(bb.Knights)
	dst[engine.Bishop] = engine.SquareSet(bb.Bishops)
	dst[engine.Rook] = engine.SquareSet(bb.Rooks)
	dst[engine.Queen] = engine.SquareSet(bb.Queens)
	dst[engine.King] = engine.SquareSet(bb.Kings)
}

func (r *dragonRules) snapshot() *Snapshot { return FromDragon(&r.b) }

func (r *dragonRules) play(move string) error {
	move = strings.ToLower(move)
	for _, m := range r.b.GenerateLegalMoves() {
		if m.String() == move {
			r.b.Apply(m)
			return nil
		}
	}
	return fmt.Errorf("%w: %s in %s", ErrIllegalMove, move, r.b.ToFen())
}

func (r *dragonRules) fen() string { return r.b.ToFen() }
