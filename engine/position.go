package engine

// Position is the read-only view of a board the evaluator scores. Implementations own
// the rules of chess (legality, mate and draw detection); the evaluator only asks.
// A Position must not change while an evaluation over it is running.
type Position interface {
	// IsCheckmate reports whether the side to move has been mated.
	IsCheckmate() bool
	// IsStalemate reports whether the side to move has no legal move and is not in check.
	IsStalemate() bool
	// IsInsufficientMaterial reports whether neither side can force mate.
	IsInsufficientMaterial() bool
	SideToMove() Color
	// Pieces returns the squares occupied by pieces of the given kind and color.
	Pieces(kind PieceKind, c Color) SquareSet
}
