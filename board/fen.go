package board

import (
	"fmt"
	"strings"
)

// NormalizeFEN checks every field of fen and fills in any missing castling, en
// passant and move counter fields, so EPD positions (four fields) are accepted by
// every backend and every backend sees the same input.
func NormalizeFEN(fen string) (string, error) {
	fields := strings.Fields(fen)
	if len(fields) < 2 || len(fields) > 6 {
		return "", fmt.Errorf("%w: %q: expected 2 to 6 fields, got %d", ErrInvalidFEN, fen, len(fields))
	}
	if err := checkPlacement(fields[0]); err != nil {
		return "", fmt.Errorf("%w: %q: %v", ErrInvalidFEN, fen, err)
	}
	if fields[1] != "w" && fields[1] != "b" {
		return "", fmt.Errorf("%w: %q: side to move must be w or b", ErrInvalidFEN, fen)
	}
	defaults := []string{"-", "-", "0", "1"}
	for len(fields) < 6 {
		fields = append(fields, defaults[len(fields)-2])
	}
	if !validCastling(fields[2]) {
		return "", fmt.Errorf("%w: %q: bad castling field %q", ErrInvalidFEN, fen, fields[2])
	}
	if !validEnPassant(fields[3], fields[1]) {
		return "", fmt.Errorf("%w: %q: bad en passant field %q", ErrInvalidFEN, fen, fields[3])
	}
	for _, counter := range fields[4:] {
		if !isCounter(counter) {
			return "", fmt.Errorf("%w: %q: bad move counter %q", ErrInvalidFEN, fen, counter)
		}
	}
	return strings.Join(fields, " "), nil
}

// validCastling accepts "-" or a non-empty subsequence of "KQkq".
func validCastling(s string) bool {
	if s == "-" {
		return true
	}
	if s == "" {
		return false
	}
	next := 0
	for i := 0; i < len(s); i++ {
		j := strings.IndexByte("KQkq"[next:], s[i])
		if j < 0 {
			return false
		}
		next += j + 1
	}
	return true
}

// validEnPassant accepts "-" or the square behind a pawn that just moved two ranks:
// rank 6 with White to move, rank 3 with Black to move.
func validEnPassant(s, side string) bool {
	if s == "-" {
		return true
	}
	if len(s) != 2 || s[0] < 'a' || s[0] > 'h' {
		return false
	}
	if side == "w" {
		return s[1] == '6'
	}
	return s[1] == '3'
}

func isCounter(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

func checkPlacement(placement string) error {
	ranks := strings.Split(placement, "/")
	if len(ranks) != 8 {
		return fmt.Errorf("expected 8 ranks, got %d", len(ranks))
	}
	kings := map[rune]int{}
	for i, rank := range ranks {
		files := 0
		for _, ch := range rank {
			switch {
			case ch >= '1' && ch <= '8':
				files += int(ch - '0')
			case strings.ContainsRune("pnbrqkPNBRQK", ch):
				files++
				if ch == 'k' || ch == 'K' {
					kings[ch]++
				}
			default:
				return fmt.Errorf("unexpected character %q", ch)
			}
		}
		if files != 8 {
			return fmt.Errorf("rank %d has %d files", 8-i, files)
		}
	}
	if kings['K'] != 1 || kings['k'] != 1 {
		return fmt.Errorf("each side needs exactly one king")
	}
	return nil
}

// MirrorFEN swaps the colors and reflects the board top to bottom: the same game
// seen from the other side. Castling rights and the en passant square follow the
// pieces; the move counters are kept.
func MirrorFEN(fen string) (string, error) {
	norm, err := NormalizeFEN(fen)
	if err != nil {
		return "", err
	}
	fields := strings.Fields(norm)

	ranks := strings.Split(fields[0], "/")
	for i, j := 0, len(ranks)-1; i < j; i, j = i+1, j-1 {
		ranks[i], ranks[j] = ranks[j], ranks[i]
	}
	fields[0] = swapCase(strings.Join(ranks, "/"))

	if fields[1] == "w" {
		fields[1] = "b"
	} else {
		fields[1] = "w"
	}

	if fields[2] != "-" {
		swapped := swapCase(fields[2])
		var sb strings.Builder
		for _, r := range "KQkq" {
			if strings.ContainsRune(swapped, r) {
				sb.WriteRune(r)
			}
		}
		fields[2] = sb.String()
	}

	if ep := fields[3]; len(ep) == 2 {
		fields[3] = string([]byte{ep[0], '1' + '8' - ep[1]})
	}
	return strings.Join(fields, " "), nil
}

func swapCase(s string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z':
			return r - 'a' + 'A'
		case r >= 'A' && r <= 'Z':
			return r - 'A' + 'a'
		}
		return r
	}, s)
}
