package board

import (
	"errors"
	"fmt"
	"strings"
)

// Backend names the rules library that backs a position.
type Backend string

const (
	Dragon Backend = "dragon" // github.com/dylhunn/dragontoothmg
	Goose  Backend = "goose"  // github.com/Oliverans/GooseEngineMG/goosemg
	Notnil Backend = "notnil" // github.com/notnil/chess
)

// StartFEN is the standard initial position.
const StartFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

var Backends = []Backend{Dragon, Goose, Notnil}

var (
	ErrUnknownBackend = errors.New("unknown board backend")
	ErrInvalidFEN     = errors.New("invalid FEN")
	ErrIllegalMove    = errors.New("illegal move")
)

func ParseBackend(name string) (Backend, error) {
	b := Backend(strings.ToLower(strings.TrimSpace(name)))
	for _, known := range Backends {
		if b == known {
			return b, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownBackend, name)
}

// FromFEN parses fen with the chosen library and snapshots the result.
func FromFEN(backend Backend, fen string) (*Snapshot, error) {
	g, err := NewGame(backend, fen)
	if err != nil {
		return nil, err
	}
	return g.Snapshot()
}

// guard turns a panic raised inside a rules library into an error. Libraries that
// index tables by king square panic on boards without kings.
func guard(fen string, err *error) {
	if r := recover(); r != nil {
		*err = fmt.Errorf("%w: %q: %v", ErrInvalidFEN, fen, r)
	}
}
