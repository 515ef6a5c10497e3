package engine

import (
	"fmt"
	"strings"
)

// Term is one piece kind's share of the absolute (White positive) score.
type Term struct {
	WhiteCount int
	BlackCount int
	Material   int
	Positional int
}

// Breakdown itemizes an evaluation. For finished games only Outcome, SideToMove and
// Final are filled in.
type Breakdown struct {
	Outcome    Outcome
	SideToMove Color
	Terms      [7]Term
	Material   int
	Positional int
	Absolute   Score
	Final      Score
}

// Explain evaluates pos and reports how the score was built. Final always equals
// e.Evaluate(pos).
func (e *Evaluator) Explain(pos Position) Breakdown {
	bd := Breakdown{SideToMove: pos.SideToMove()}
	score, outcome := classify(pos)
	if outcome != Ongoing {
		bd.Outcome = outcome
		bd.Final = score
		return bd
	}
	for _, kind := range PieceKinds {
		w := pos.Pieces(kind, White)
		b := pos.Pieces(kind, Black)
		t := Term{
			WhiteCount: w.Count(),
			BlackCount: b.Count(),
			Positional: e.positional(kind, w, b),
		}
		t.Material = e.material(kind, t.WhiteCount-t.BlackCount)
		bd.Terms[kind] = t
		bd.Material += t.Material
		bd.Positional += t.Positional
	}
	bd.Absolute = Score(bd.Material + bd.Positional)
	bd.Final = perspective(bd.Absolute, bd.SideToMove)
	return bd
}

func (bd Breakdown) String() string {
	var sb strings.Builder
	if bd.Outcome != Ongoing {
		fmt.Fprintf(&sb, "Outcome: %s (%s to move)\n", bd.Outcome, bd.SideToMove)
		fmt.Fprintf(&sb, "Final score: %d\n", bd.Final)
		return sb.String()
	}
	fmt.Fprintf(&sb, "%-8s %5s %5s %9s %10s\n", "Piece", "W", "B", "Material", "Positional")
	for _, kind := range PieceKinds {
		t := bd.Terms[kind]
		fmt.Fprintf(&sb, "%-8s %5d %5d %9d %10d\n", kind, t.WhiteCount, t.BlackCount, t.Material, t.Positional)
	}
	fmt.Fprintf(&sb, "%-8s %5s %5s %9d %10d\n", "Total", "", "", bd.Material, bd.Positional)
	fmt.Fprintf(&sb, "Absolute (white): %d\n", bd.Absolute)
	fmt.Fprintf(&sb, "Final score (%s to move): %d\n", bd.SideToMove, bd.Final)
	return sb.String()
}
