package board

import (
	"fmt"
	"strings"

	"github.com/Oliverans/GooseEngineMG/goosemg"

	"chess-eval/engine"
)

type gooseRules struct {
	b *goosemg.Board
}

func newGooseRules(fen string) (*gooseRules, error) {
	b, err := goosemg.ParseFEN(fen)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %v", ErrInvalidFEN, fen, err)
	}
	return &gooseRules{b: b}, nil
}

// FromGoose snapshots a goosemg board using its own mate and stalemate predicates.
func FromGoose(b *goosemg.Board) *Snapshot {
	var p Placement
	fillGoose(&p[engine.White], b.Bitboards(goosemg.White))
	fillGoose(&p[engine.Black], b.Bitboards(goosemg.Black))

	side := engine.White
	if b.SideToMove() == goosemg.Black {
		side = engine.Black
	}
	return NewSnapshot(p, side, Status{
		Checkmate: b.InCheckmate(),
		Stalemate: b.InStalemate(),
		Derive:    true,
	})
}

func fillGoose(dst *[7]engine.SquareSet, bb goosemg.Bitboards) {
	dst[engine.Pawn] = engine.SquareSet(bb.Pawns)
	dst[engine.Knight] = engine.SquareSet(bb.Knights)
	dst[engine.Bishop] = engine.SquareSet(bb.Bishops)
	dst[engine.Rook] = engine.SquareSet(bb.Rooks)
	dst[engine.Queen] = engine.SquareSet(bb.Queens)
	dst[engine.King] = engine.SquareSet(bb.Kings)
}

func (r *gooseRules) snapshot() *Snapshot { return FromGoose(r.b) }

func (r *gooseRules) play(move string) error {
	move = strings.ToLower(move)
	for _, m := range r.b.GenerateMoves() {
		if m.String() != move {
			continue
		}
		if ok, _ := r.b.MakeMove(m); !ok {
			break
		}
		return nil
	}
	return fmt.Errorf("%w: %s in %s", ErrIllegalMove, move, r.b.ToFEN())
}

func (r *gooseRules) fen() string { return r.b.ToFEN() }
