package engine

import (
	"minimax-chess/rules"
)

// =============================================================================
// SCORE CONSTANTS
// =============================================================================
const (
	// MateScore is returned for a checkmated side to move, negated for the mating side.
	MateScore = 100000
	DrawScore = 0

	// Infinity bounds the alpha-beta window; it is larger than any reachable score.
	Infinity = 1000000
)

// PieceValues is indexed by rules.PieceType. The king weight is a sentinel, not a mate signal.
var PieceValues = [7]int{
	rules.NoPieceType: 0,
	rules.Pawn:        100,
	rules.Knight:      320,
	rules.Bishop:      330,
	rules.Rook:        500,
	rules.Queen:       900,
	rules.King:        20000,
}

// Positional bonus tables from White's side, indexed [row][col] with row 0 = rank 8.
// Black reads them mirrored vertically.
var pawnTable = [8][8]int{
	{0, 0, 0, 0, 0, 0, 0, 0},
	{50, 50, 50, 50, 50, 50, 50, 50},
	{10, 10, 20, 30, 30, 20, 10, 10},
	{5, 5, 10, 25, 25, 10, 5, 5},
	{0, 0, 0, 20, 20, 0, 0, 0},
	{5, -5, -10, 0, 0, -10, -5, 5},
	{5, 10, 10, -20, -20, 10, 10, 5},
	{0, 0, 0, 0, 0, 0, 0, 0},
}

var knightTable = [8][8]int{
	{-50, -40, -30, -30, -30, -30, -40, -50},
	{-40, -20, 0, 0, 0, 0, -20, -40},
	{-30, 0, 10, 15, 15, 10, 0, -30},
	{-30, 5, 15, 20, 20, 15, 5, -30},
	{-30, 0, 15, 20, 20, 15, 0, -30},
	{-30, 5, 10, 15, 15, 10, 5, -30},
	{-40, -20, 0, 5, 5, 0, -20, -40},
	{-50, -40, -30, -30, -30, -30, -40, -50},
}

// Evaluate scores the position from the point of view of the side to move.
// Checkmate and stalemate override material: a mated side scores -MateScore
// and a stalemate scores exactly DrawScore.
func Evaluate(g *rules.Game) int {
	switch g.Status() {
	case rules.Checkmate:
		return -MateScore
	case rules.Stalemate:
		return DrawScore
	}
	score := Material(g)
	if g.Turn() == rules.Black {
		return -score
	}
	return score
}

// Material sums piece values and pawn/knight square bonuses, positive for White.
func Material(g *rules.Game) int {
	board := g.Board()
	score := 0
	for row := 0; row < 8; row++ {
		for col := 0; col < 8; col++ {
			p := board[row][col]
			if p == rules.NoPiece {
				continue
			}
			value := PieceValues[p.Type()]
			tableRow := row
			if p.Color() == rules.Black {
				tableRow = 7 - row
			}
			switch p.Type() {
			case rules.Pawn:
				value += pawnTable[tableRow][col]
			case rules.Knight:
				value += knightTable[tableRow][col]
			}
			if p.Color() == rules.White {
				score += value
			} else {
				score -= value
			}
		}
	}
	return score
}
