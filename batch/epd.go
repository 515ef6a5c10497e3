// Package batch evaluates many positions concurrently, one snapshot per worker.
package batch

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"chess-eval/board"
)

var ErrMalformedLine = errors.New("malformed position line")

// Entry is one position read from an EPD or FEN list.
type Entry struct {
	Line int
	ID   string
	FEN  string
	// Expected is the reference score from a "ce" opcode, side to move positive.
	Expected    int
	HasExpected bool
}

// ParseLine reads "<placement> <side> [castling ep [halfmove [fullmove]]] [op args;]...".
// Opcodes are only recognized after the four EPD position fields; a shorter line is
// a bare position. Supported opcodes are ce (centipawn evaluation) and id; others
// are ignored.
func ParseLine(line string) (Entry, error) {
	var e Entry
	pos, ops, _ := strings.Cut(line, ";")
	fields := strings.Fields(pos)
	if len(fields) < 2 {
		return e, fmt.Errorf("%w: %q", ErrMalformedLine, line)
	}

	n := len(fields)
	if n >= 4 {
		n = 4
		for n < len(fields) && n < 6 && isNumber(fields[n]) {
			n++
		}
	}
	e.FEN = strings.Join(fields[:n], " ")
	if _, err := board.NormalizeFEN(e.FEN); err != nil {
		return e, fmt.Errorf("%w: %w", ErrMalformedLine, err)
	}

	// The first operation shares the segment with the position fields.
	first := strings.Join(fields[n:], " ")
	if err := e.applyOp(first); err != nil {
		return e, fmt.Errorf("%w: %q: %v", ErrMalformedLine, line, err)
	}
	if ops != "" {
		for _, op := range strings.Split(ops, ";") {
			if err := e.applyOp(op); err != nil {
				return e, fmt.Errorf("%w: %q: %v", ErrMalformedLine, line, err)
			}
		}
	}
	return e, nil
}

func (e *Entry) applyOp(op string) error {
	opcode, operand, _ := strings.Cut(strings.TrimSpace(op), " ")
	operand = strings.TrimSpace(operand)
	switch opcode {
	case "ce":
		v, err := strconv.Atoi(operand)
		if err != nil {
			return fmt.Errorf("ce operand %q: %w", operand, err)
		}
		e.Expected, e.HasExpected = v, true
	case "id":
		e.ID = strings.Trim(operand, `"`)
	}
	return nil
}

func isNumber(s string) bool {
	_, err := strconv.Atoi(s)
	return err == nil
}

// Read parses every position in r. Blank lines and lines starting with '#' are skipped.
func Read(r io.Reader) ([]Entry, error) {
	var entries []Entry
	sc := bufio.NewScanner(r)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		e, err := ParseLine(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo, err)
		}
		e.Line = lineNo
		entries = append(entries, e)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return entries, nil
}
