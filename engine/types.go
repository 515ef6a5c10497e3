package engine

import (
	"errors"
	"math/bits"
)

// Square indexes the board rank-major from White's side: a1 = 0, b1 = 1, ..., h1 = 7,
// a2 = 8, ..., h8 = 63. dragontoothmg, goosemg and notnil/chess share this layout.
type Square uint8

const (
	A1 Square = 0
	E1 Square = 4
	H1 Square = 7
	A8 Square = 56
	E8 Square = 60
	H8 Square = 63

	NumSquares = 64
)

var ErrInvalidSquare = errors.New("invalid algebraic square")

// Mirror reflects the square across the board's horizontal axis (a1 <-> a8, e2 <-> e7).
func (sq Square) Mirror() Square { return sq ^ 56 }

func (sq Square) File() int { return int(sq & 7) }

func (sq Square) Rank() int { return int(sq >> 3) }

// IsLight reports whether the square is a light square (h1 is light, a1 is dark).
func (sq Square) IsLight() bool { return (sq.File()+sq.Rank())%2 == 1 }

func (sq Square) String() string {
	if sq >= NumSquares {
		return "-"
	}
	return string([]byte{'a' + byte(sq.File()), '1' + byte(sq.Rank())})
}

// ParseSquare converts a coordinate like "e4" into a Square.
func ParseSquare(coord string) (Square, error) {
	if len(coord) != 2 {
		return 0, ErrInvalidSquare
	}
	file, rank := coord[0], coord[1]
	if file < 'a' || file > 'h' || rank < '1' || rank > '8' {
		return 0, ErrInvalidSquare
	}
	return Square(int(rank-'1')*8 + int(file-'a')), nil
}

type Color uint8

const (
	White Color = 0
	Black Color = 1
)

func (c Color) Other() Color { return c ^ 1 }

func (c Color) String() string {
	if c == White {
		return "white"
	}
	return "black"
}

// PieceKind is a colorless piece type. Zero is reserved so tables can be laid out as
// [7]T indexed directly by kind.
type PieceKind uint8

const (
	NoKind PieceKind = iota
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
)

// PieceKinds lists every real kind in table order.
var PieceKinds = [6]PieceKind{Pawn, Knight, Bishop, Rook, Queen, King}

var kindNames = [7]string{"none", "pawn", "knight", "bishop", "rook", "queen", "king"}

func (k PieceKind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "invalid"
}

// ParsePieceKind accepts a kind name ("knight") or its FEN letter in either case ("n").
func ParsePieceKind(s string) (PieceKind, bool) {
	for k := Pawn; k <= King; k++ {
		if s == kindNames[k] {
			return k, true
		}
	}
	if len(s) == 1 {
		switch s[0] | 0x20 {
		case 'p':
			return Pawn, true
		case 'n':
			return Knight, true
		case 'b':
			return Bishop, true
		case 'r':
			return Rook, true
		case 'q':
			return Queen, true
		case 'k':
			return King, true
		}
	}
	return NoKind, false
}

// SquareSet is a bitboard: bit n set means Square(n) is a member.
type SquareSet uint64

func (s SquareSet) Has(sq Square) bool { return s&(1<<sq) != 0 }

func (s SquareSet) Add(sq Square) SquareSet { return s | 1<<sq }

func (s SquareSet) Count() int { return bits.OnesCount64(uint64(s)) }

// Squares lists the members in ascending order.
func (s SquareSet) Squares() []Square {
	out := make([]Square, 0, s.Count())
	for x := s; x != 0; x &= x - 1 {
		out = append(out, Square(bits.TrailingZeros64(uint64(x))))
	}
	return out
}

// Mirror reflects every member with Square.Mirror; for a bitboard that is a byte swap.
func (s SquareSet) Mirror() SquareSet { return SquareSet(bits.ReverseBytes64(uint64(s))) }

// Score is a centipawn evaluation.
type Score int32

const (
	// MateScore dominates any material plus positional sum.
	MateScore Score = 9999
	DrawScore Score = 0
)
