package engine

import "math/bits"

// MaterialFormula selects how the material term is summed.
type MaterialFormula uint8

const (
	// WeightedMaterial weighs every kind by PieceValue.
	WeightedMaterial MaterialFormula = iota
	// LegacyMaterial reproduces the material term of the historical scorer, whose rook
	// and queen terms were dropped by a broken line continuation, so only pawns,
	// knights and bishops carry material weight. Tables are unaffected; see
	// WithLegacyTables.
	LegacyMaterial
)

// Evaluator scores positions. The zero value is not usable; build one with New.
// An Evaluator is immutable and safe for concurrent use.
type Evaluator struct {
	values       [7]int
	formula      MaterialFormula
	legacyTables bool
}

type Option func(*Evaluator)

// WithLegacyMaterial switches the material term to LegacyMaterial.
func WithLegacyMaterial() Option {
	return func(e *Evaluator) { e.formula = LegacyMaterial }
}

// WithLegacyTables reads the piece-square tables the way the historical scorer did:
// rank 8 first with a1 as index 0. White pieces then score PSQT[sq.Mirror()] and
// Black pieces -PSQT[sq]. Combined with WithLegacyMaterial this reproduces the
// historical scores exactly.
func WithLegacyTables() Option {
	return func(e *Evaluator) { e.legacyTables = true }
}

// WithPieceValue overrides the base value of one kind.
func WithPieceValue(kind PieceKind, value int) Option {
	return func(e *Evaluator) {
		if kind >= Pawn && kind <= King {
			e.values[kind] = value
		}
	}
}

func New(opts ...Option) *Evaluator {
	e := &Evaluator{values: PieceValue}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

var defaultEvaluator = New()

// Evaluate scores pos with the default evaluator.
func Evaluate(pos Position) Score { return defaultEvaluator.Evaluate(pos) }

// Evaluate returns the score of pos from the side to move's point of view: the mate
// sentinels or zero for a finished game, otherwise material plus piece-square balance.
func (e *Evaluator) Evaluate(pos Position) Score {
	if score, ok := Classify(pos); ok {
		return score
	}
	return e.Score(pos)
}

// Score is the positional scorer alone. It does not look for terminal conditions.
func (e *Evaluator) Score(pos Position) Score {
	var material, psqt int
	for _, kind := range PieceKinds {
		w := pos.Pieces(kind, White)
		b := pos.Pieces(kind, Black)
		material += e.material(kind, w.Count()-b.Count())
		psqt += e.positional(kind, w, b)
	}
	return perspective(Score(material+psqt), pos.SideToMove())
}

func (e *Evaluator) material(kind PieceKind, diff int) int {
	if e.formula == LegacyMaterial && (kind == Rook || kind == Queen) {
		return 0
	}
	return diff * e.values[kind]
}

func (e *Evaluator) positional(kind PieceKind, w, b SquareSet) int {
	if e.legacyTables {
		// Reflecting both sets reads every table upside down for both colors.
		return countPieceTable(w.Mirror(), b.Mirror(), &PSQT[kind])
	}
	return countPieceTable(w, b, &PSQT[kind])
}

// countPieceTable sums one table over both colors, White positive.
func countPieceTable(w, b SquareSet, table *[64]int) (score int) {
	for x := uint64(w); x != 0; x &= x - 1 {
		score += table[bits.TrailingZeros64(x)]
	}
	for x := uint64(b); x != 0; x &= x - 1 {
		score -= table[Square(bits.TrailingZeros64(x)).Mirror()]
	}
	return score
}

func perspective(abs Score, side Color) Score {
	if side == Black {
		return -abs
	}
	return abs
}
