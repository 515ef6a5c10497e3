package board

import "chess-eval/engine"

const (
	lightSquares engine.SquareSet = 0x55AA55AA55AA55AA
	darkSquares  engine.SquareSet = ^lightSquares
)

// InsufficientMaterial reports whether neither side has enough material to mate.
func InsufficientMaterial(p Placement) bool {
	return sideInsufficient(p, engine.White) && sideInsufficient(p, engine.Black)
}

func sideInsufficient(p Placement, c engine.Color) bool {
	us, them := p[c], p[c.Other()]
	if us[engine.Pawn]|us[engine.Rook]|us[engine.Queen] != 0 {
		return false
	}
	if us[engine.Knight] != 0 {
		// King and knight only mate when the defender has pieces that hem in its own king.
		var own engine.SquareSet
		for _, kind := range engine.PieceKinds {
			own |= us[kind]
		}
		blockers := them[engine.Pawn] | them[engine.Knight] | them[engine.Bishop] | them[engine.Rook]
		return own.Count() <= 2 && blockers == 0
	}
	if us[engine.Bishop] != 0 {
		bishops := us[engine.Bishop] | them[engine.Bishop]
		sameColor := bishops&lightSquares == 0 || bishops&darkSquares == 0
		return sameColor && us[engine.Pawn]|them[engine.Pawn]|us[engine.Knight]|them[engine.Knight] == 0
	}
	return true
}
