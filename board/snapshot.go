// Package board adapts chess rules libraries to the engine.Position interface.
//
// Every adapter reads the library board once and produces a Snapshot: an immutable copy
// of the placement, the side to move and the terminal predicates. Snapshots can be
// handed to concurrent evaluators without sharing library state.
package board

import "chess-eval/engine"

// Snapshot is an immutable engine.Position.
type Snapshot struct {
	pieces       [2][7]engine.SquareSet
	side         engine.Color
	checkmate    bool
	stalemate    bool
	insufficient bool
}

// Placement lists piece sets per color and kind, indexed [color][kind].
type Placement [2][7]engine.SquareSet

// Status carries the rule-derived predicates of a position.
type Status struct {
	Checkmate bool
	Stalemate bool
	// Insufficient is the insufficient-material draw. NewSnapshot derives it from the
	// placement when Derive is set.
	Insufficient bool
	Derive       bool
}

func NewSnapshot(p Placement, side engine.Color, st Status) *Snapshot {
	s := &Snapshot{
		pieces:       p,
		side:         side,
		checkmate:    st.Checkmate,
		stalemate:    st.Stalemate,
		insufficient: st.Insufficient,
	}
	if st.Derive {
		s.insufficient = InsufficientMaterial(p)
	}
	return s
}

func (s *Snapshot) IsCheckmate() bool            { return s.checkmate }
func (s *Snapshot) IsStalemate() bool            { return s.stalemate }
func (s *Snapshot) IsInsufficientMaterial() bool { return s.insufficient }
func (s *Snapshot) SideToMove() engine.Color     { return s.side }

func (s *Snapshot) Pieces(kind engine.PieceKind, c engine.Color) engine.SquareSet {
	return s.pieces[c][kind]
}

// Placement returns a copy of the piece sets.
func (s *Snapshot) Placement() Placement { return s.pieces }

// Occupied returns every occupied square of one color.
func (s *Snapshot) Occupied(c engine.Color) (all engine.SquareSet) {
	for _, kind := range engine.PieceKinds {
		all |= s.pieces[c][kind]
	}
	return all
}

// Mirror swaps the colors, reflects every square and passes the move to the other
// side. Terminal predicates are preserved: they are symmetric under that transform.
func (s *Snapshot) Mirror() *Snapshot {
	m := *s
	m.side = s.side.Other()
	for _, kind := range engine.PieceKinds {
		m.pieces[engine.White][kind] = s.pieces[engine.Black][kind].Mirror()
		m.pieces[engine.Black][kind] = s.pieces[engine.White][kind].Mirror()
	}
	return &m
}
