package engine

// Outcome names the terminal condition found by Classify.
type Outcome uint8

const (
	Ongoing Outcome = iota
	Checkmate
	Stalemate
	InsufficientMaterial
)

func (o Outcome) String() string {
	switch o {
	case Checkmate:
		return "checkmate"
	case Stalemate:
		return "stalemate"
	case InsufficientMaterial:
		return "insufficient material"
	default:
		return "ongoing"
	}
}

// Classify returns the score of a finished game. ok is false while the game is still
// being played, in which case the caller scores the position itself.
func Classify(pos Position) (score Score, ok bool) {
	score, outcome := classify(pos)
	return score, outcome != Ongoing
}

func classify(pos Position) (Score, Outcome) {
	if pos.IsCheckmate() {
		// The side to move is the one that got mated.
		if pos.SideToMove() == White {
			return -MateScore, Checkmate
		}
		return MateScore, Checkmate
	}
	if pos.IsStalemate() {
		return DrawScore, Stalemate
	}
	if pos.IsInsufficientMaterial() {
		return DrawScore, InsufficientMaterial
	}
	return 0, Ongoing
}
