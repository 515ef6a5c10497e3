package batch

import (
	"fmt"

	"chess-eval/engine"
)

type Summary struct {
	Positions  int
	Mates      int
	Stalemates int
	// Insufficient counts insufficient-material draws.
	Insufficient int
	// Compared counts positions that carried a ce opcode.
	Compared int
	// MeanAbsError is the mean |score - ce| over compared positions.
	MeanAbsError float64
	MaxAbsError  int
}

func Summarize(results []Result) Summary {
	var s Summary
	var errSum int
	for _, r := range results {
		s.Positions++
		switch r.Breakdown.Outcome {
		case engine.Checkmate:
			s.Mates++
		case engine.Stalemate:
			s.Stalemates++
		case engine.InsufficientMaterial:
			s.Insufficient++
		}
		if !r.Entry.HasExpected {
			continue
		}
		diff := engine.Abs(int(r.Score()) - r.Entry.Expected)
		errSum += diff
		s.MaxAbsError = max(s.MaxAbsError, diff)
		s.Compared++
	}
	if s.Compared > 0 {
		s.MeanAbsError = float64(errSum) / float64(s.Compared)
	}
	return s
}

func (s Summary) String() string {
	out := fmt.Sprintf("positions: %d  mates: %d  stalemates: %d  insufficient: %d",
		s.Positions, s.Mates, s.Stalemates, s.Insufficient)
	if s.Compared > 0 {
		out += fmt.Sprintf("\nce compared: %d  mean abs error: %.2f  max abs error: %d",
			s.Compared, s.MeanAbsError, s.MaxAbsError)
	}
	return out
}
