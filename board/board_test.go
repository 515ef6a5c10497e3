package board

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"chess-eval/engine"
)

const (
	foolsMate        = "rnb1kbnr/pppp1ppp/8/4p3/6Pq/5P2/PPPPP2P/RNBQKBNR w KQkq - 1 3"
	blackMated       = "rnbqkbnr/ppppp2p/8/5ppQ/4PP2/8/PPPP2PP/RNB1KBNR b KQkq - 1 3"
	blackStalemated  = "7k/5Q2/6K1/8/8/8/8/8 b - - 0 1"
	whiteStalemated  = "2k5/8/8/8/8/1q6/r7/2K5 w - - 0 1"
	bareKings        = "8/8/4k3/8/8/3K4/8/8 w - - 0 1"
	kingKnightVsKing = "8/8/4k3/8/8/3K4/8/6N1 b - - 0 1"
	extraPawnE4      = "rnbqkbnr/pppppppp/8/8/4P3/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"
	kiwipete         = "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1"
)

func forEachBackend(t *testing.T, fn func(t *testing.T, backend Backend)) {
	for _, backend := range Backends {
		backend := backend
		t.Run(string(backend), func(t *testing.T) { fn(t, backend) })
	}
}

func mustSnapshot(t *testing.T, backend Backend, fen string) *Snapshot {
	t.Helper()
	s, err := FromFEN(backend, fen)
	require.NoError(t, err, fen)
	return s
}

func TestStartPosition(t *testing.T) {
	forEachBackend(t, func(t *testing.T, backend Backend) {
		s := mustSnapshot(t, backend, StartFEN)
		assert.Equal(t, engine.White, s.SideToMove())
		assert.False(t, s.IsCheckmate())
		assert.False(t, s.IsStalemate())
		assert.False(t, s.IsInsufficientMaterial())
		assert.Equal(t, engine.SquareSet(0xff00), s.Pieces(engine.Pawn, engine.White))
		assert.Equal(t, engine.SquareSet(0x00ff000000000000), s.Pieces(engine.Pawn, engine.Black))
		assert.Equal(t, engine.SquareSet(1<<engine.E1), s.Pieces(engine.King, engine.White))
		assert.Equal(t, engine.SquareSet(1<<engine.E8), s.Pieces(engine.King, engine.Black))
		assert.Equal(t, 16, s.Occupied(engine.White).Count())
		assert.Equal(t, engine.Score(0), engine.Evaluate(s))
	})
}

func TestBackendsAgreeOnPlacement(t *testing.T) {
	for _, fen := range []string{StartFEN, kiwipete, foolsMate, blackStalemated} {
		want := mustSnapshot(t, Dragon, fen)
		for _, backend := range Backends[1:] {
			got := mustSnapshot(t, backend, fen)
			assert.Equal(t, want.Placement(), got.Placement(), "%s: %s", backend, fen)
			assert.Equal(t, want.SideToMove(), got.SideToMove(), "%s: %s", backend, fen)
		}
	}
}

func TestTerminalPositions(t *testing.T) {
	tests := []struct {
		name  string
		fen   string
		mate  bool
		stale bool
		insuf bool
		score engine.Score
	}{
		{"white mated", foolsMate, true, false, false, -engine.MateScore},
		{"black mated", blackMated, true, false, false, engine.MateScore},
		{"black stalemated", blackStalemated, false, true, false, 0},
		{"white stalemated", whiteStalemated, false, true, false, 0},
		{"bare kings", bareKings, false, false, true, 0},
		{"king and knight", kingKnightVsKing, false, false, true, 0},
	}
	forEachBackend(t, func(t *testing.T, backend Backend) {
		for _, tt := range tests {
			s := mustSnapshot(t, backend, tt.fen)
			assert.Equal(t, tt.mate, s.IsCheckmate(), tt.name)
			assert.Equal(t, tt.stale, s.IsStalemate(), tt.name)
			assert.Equal(t, tt.insuf, s.IsInsufficientMaterial(), tt.name)
			assert.Equal(t, tt.score, engine.Evaluate(s), tt.name)
		}
	})
}

func TestExtraPawn(t *testing.T) {
	forEachBackend(t, func(t *testing.T, backend Backend) {
		s := mustSnapshot(t, backend, extraPawnE4)
		assert.Equal(t, engine.Score(120), engine.Evaluate(s))
	})
}

func TestSymmetryAcrossBackends(t *testing.T) {
	fens := []string{
		StartFEN,
		kiwipete,
		"r1bqkbnr/pppp1ppp/2n5/4p3/4P3/5N2/PPPP1PPP/RNBQKB1R w KQkq - 2 3",
		"8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1",
		"rnbqkbnr/ppp1p1pp/8/3pPp2/8/8/PPPP1PPP/RNBQKBNR w KQkq f6 0 3",
	}
	forEachBackend(t, func(t *testing.T, backend Backend) {
		for _, fen := range fens {
			mirrored, err := MirrorFEN(fen)
			require.NoError(t, err)
			s := mustSnapshot(t, backend, fen)
			m := mustSnapshot(t, backend, mirrored)
			assert.Equal(t, engine.Evaluate(s), engine.Evaluate(m), fen)
			assert.Equal(t, s.Mirror().Placement(), m.Placement(), fen)
		}
	})
}

func TestPlay(t *testing.T) {
	forEachBackend(t, func(t *testing.T, backend Backend) {
		g, err := NewGame(backend, StartFEN)
		require.NoError(t, err)
		assert.Equal(t, backend, g.Backend())

		for _, mv := range []string{"e2e4", "e7e5", "g1f3"} {
			require.NoError(t, g.Play(mv), mv)
		}
		s, err := g.Snapshot()
		require.NoError(t, err)
		assert.Equal(t, engine.Black, s.SideToMove())
		e4, _ := engine.ParseSquare("e4")
		f3, _ := engine.ParseSquare("f3")
		assert.True(t, s.Pieces(engine.Pawn, engine.White).Has(e4))
		assert.True(t, s.Pieces(engine.Knight, engine.White).Has(f3))

		err = g.Play("e5e3")
		assert.ErrorIs(t, err, ErrIllegalMove)
	})
}

func TestPlayIntoMate(t *testing.T) {
	forEachBackend(t, func(t *testing.T, backend Backend) {
		g, err := NewGame(backend, StartFEN)
		require.NoError(t, err)
		for _, mv := range []string{"f2f3", "e7e5", "g2g4", "d8h4"} {
			require.NoError(t, g.Play(mv), mv)
		}
		s, err := g.Snapshot()
		require.NoError(t, err)
		assert.True(t, s.IsCheckmate())
		assert.Equal(t, -engine.MateScore, engine.Evaluate(s))
	})
}

func TestFromFENErrors(t *testing.T) {
	_, err := FromFEN(Dragon, "not a fen")
	assert.ErrorIs(t, err, ErrInvalidFEN)

	_, err = FromFEN(Goose, "8/8/8/8/8/8/8/8 w - - 0 1")
	assert.ErrorIs(t, err, ErrInvalidFEN, "boards without kings are rejected")

	_, err = FromFEN(Backend("stockfish"), StartFEN)
	assert.ErrorIs(t, err, ErrUnknownBackend)
}

func TestParseBackend(t *testing.T) {
	b, err := ParseBackend(" Dragon ")
	require.NoError(t, err)
	assert.Equal(t, Dragon, b)

	_, err = ParseBackend("lc0")
	assert.ErrorIs(t, err, ErrUnknownBackend)
}

func TestSnapshotMirrorKeepsStatus(t *testing.T) {
	s := NewSnapshot(Placement{}, engine.White, Status{Checkmate: true})
	m := s.Mirror()
	assert.True(t, m.IsCheckmate())
	assert.Equal(t, engine.Black, m.SideToMove())
}
