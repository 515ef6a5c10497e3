package engine

import (
	"strings"
	"testing"
)

const startFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// testPosition is a hand-built Position. Terminal flags are set by the test, not
// derived from the placement.
type testPosition struct {
	pieces       [2][7]SquareSet
	side         Color
	checkmate    bool
	stalemate    bool
	insufficient bool
}

func (p *testPosition) IsCheckmate() bool            { return p.checkmate }
func (p *testPosition) IsStalemate() bool            { return p.stalemate }
func (p *testPosition) IsInsufficientMaterial() bool { return p.insufficient }
func (p *testPosition) SideToMove() Color            { return p.side }
func (p *testPosition) Pieces(kind PieceKind, c Color) SquareSet {
	return p.pieces[c][kind]
}

// mirrored swaps colors, reflects every square and hands the move to the other side.
func (p *testPosition) mirrored() *testPosition {
	m := &testPosition{side: p.side.Other()}
	for _, kind := range PieceKinds {
		m.pieces[White][kind] = p.pieces[Black][kind].Mirror()
		m.pieces[Black][kind] = p.pieces[White][kind].Mirror()
	}
	return m
}

// positionFromFEN reads the placement and side-to-move fields of a FEN.
func positionFromFEN(t *testing.T, fen string) *testPosition {
	t.Helper()
	fields := strings.Fields(fen)
	if len(fields) < 2 {
		t.Fatalf("short FEN %q", fen)
	}
	p := &testPosition{}
	rank, file := 7, 0
	for _, ch := range fields[0] {
		switch {
		case ch == '/':
			rank--
			file = 0
		case ch >= '1' && ch <= '8':
			file += int(ch - '0')
		default:
			kind, ok := ParsePieceKind(string(ch))
			if !ok {
				t.Fatalf("bad piece %q in %q", ch, fen)
			}
			c := White
			if ch >= 'a' {
				c = Black
			}
			sq := Square(rank*8 + file)
			p.pieces[c][kind] = p.pieces[c][kind].Add(sq)
			file++
		}
	}
	if fields[1] == "b" {
		p.side = Black
	}
	return p
}
