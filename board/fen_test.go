package board

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeFEN(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{StartFEN, StartFEN},
		{"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq -", StartFEN},
		{"  7k/5Q2/6K1/8/8/8/8/8   b ", "7k/5Q2/6K1/8/8/8/8/8 b - - 0 1"},
		{"r3k2r/8/8/8/8/8/8/R3K2R b Kq", "r3k2r/8/8/8/8/8/8/R3K2R b Kq - 0 1"},
		{"rnbqkbnr/pppp1ppp/8/8/4p3/8/PPPPPPPP/RNBQKBNR b KQkq e3 5", "rnbqkbnr/pppp1ppp/8/8/4p3/8/PPPPPPPP/RNBQKBNR b KQkq e3 5 1"},
	}
	for _, tt := range tests {
		got, err := NormalizeFEN(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got)
	}

	for _, bad := range []string{
		"",
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP w KQkq - 0 1",
		"rnbqkbnr/pppppppp/9/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1",
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR x KQkq - 0 1",
		"rnbqkbnr/ppppxppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1",
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1 extra",
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQQBNR w KQkq - 0 1",
		// castling
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR b pv e7e5",
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR b zz -",
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KK - 0 1",
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w QK - 0 1",
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq- - 0 1",
		// en passant
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR b KQkq e9 0 1",
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq i6 0 1",
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq e3 0 1",
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR b KQkq e6 0 1",
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq e 0 1",
		// counters
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - -1 1",
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 x",
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - +3 1",
	} {
		_, err := NormalizeFEN(bad)
		assert.ErrorIs(t, err, ErrInvalidFEN, bad)
	}
}

func TestMirrorFEN(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{StartFEN, "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR b KQkq - 0 1"},
		{
			"rnbqkbnr/ppp1p1pp/8/3pPp2/8/8/PPPP1PPP/RNBQKBNR w KQkq f6 0 3",
			"rnbqkbnr/pppp1ppp/8/8/3PpP2/8/PPP1P1PP/RNBQKBNR b KQkq f3 0 3",
		},
		{"4k3/8/8/8/8/8/8/R3K3 w Q - 5 40", "r3k3/8/8/8/8/8/8/4K3 b q - 5 40"},
		{"r3k3/8/8/8/8/8/8/4K2R b Kq - 0 1", "4k2r/8/8/8/8/8/8/R3K3 w Qk - 0 1"},
	}
	for _, tt := range tests {
		got, err := MirrorFEN(tt.in)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got)

		back, err := MirrorFEN(got)
		require.NoError(t, err)
		norm, _ := NormalizeFEN(tt.in)
		assert.Equal(t, norm, back, "mirroring twice restores the position")
	}
}

func TestBackendsRejectTheSameFEN(t *testing.T) {
	for _, fen := range []string{
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR b pv e7e5",
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR b zz -",
		"8/8/4k3/8/8/3K4/8/8 b - e9 0 1",
	} {
		for _, backend := range Backends {
			_, err := FromFEN(backend, fen)
			assert.ErrorIs(t, err, ErrInvalidFEN, "%s: %s", backend, fen)
		}
	}
}

type panickingRules struct{}

func (panickingRules) snapshot() *Snapshot    { panic("index out of range") }
func (panickingRules) play(move string) error { panic("index out of range") }
func (panickingRules) fen() string            { return "8/8/8/8/8/8/8/8 b - - 0 0" }

func TestGameErrorsQuoteLastGoodFEN(t *testing.T) {
	const good = "8/8/4k3/8/8/3K4/8/8 b - - 0 1"
	g := &Game{backend: Dragon, rules: panickingRules{}, fen: good}

	_, err := g.Snapshot()
	require.ErrorIs(t, err, ErrInvalidFEN)
	assert.Contains(t, err.Error(), good)

	err = g.Play("e6e5")
	require.ErrorIs(t, err, ErrInvalidFEN)
	assert.Contains(t, err.Error(), good)
	assert.Equal(t, good, g.FEN())
}
