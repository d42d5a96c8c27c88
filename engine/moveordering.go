package engine

import "minimax-chess/rules"

type scoredMove struct {
	move  rules.Move
	score uint16
}

// Most Valuable Victim - Least Valuable Aggressor; indexed [victim][attacker]
var mvvLva = [7][7]uint16{
	{0, 0, 0, 0, 0, 0, 0},
	{0, 14, 13, 12, 11, 10, 0}, // victim Pawn
	{0, 24, 23, 22, 21, 20, 0}, // victim Knight
	{0, 34, 33, 32, 31, 30, 0}, // victim Bishop
	{0, 44, 43, 42, 41, 40, 0}, // victim Rook
	{0, 54, 53, 52, 51, 50, 0}, // victim Queen
	{0, 0, 0, 0, 0, 0, 0},      // victim King
}

/*
	Interior move ordering:
	- Promotions first, by the value of the new piece
	- Captures next, by MVV-LVA
	- Then the two killers of the ply, newest first
	- The rest in generation order
	The root list is never reordered here; its order comes from the shuffle.
*/
const (
	promotionOffset uint16 = 20000
	captureOffset   uint16 = 15000
	killerOffset    uint16 = 2000
)

// isCapture reports whether m takes a piece, en passant included.
func isCapture(g *rules.Game, m rules.Move) (victim rules.PieceType, ok bool) {
	if p := g.PieceAt(m.To); p != rules.NoPiece {
		return p.Type(), true
	}
	if g.PieceAt(m.From).Type() == rules.Pawn && m.To == g.EnPassantTarget() && m.From.Col != m.To.Col {
		return rules.Pawn, true
	}
	return rules.NoPieceType, false
}

func (s *Searcher) scoreMoves(g *rules.Game, moves []rules.Move, ply int) []scoredMove {
	list := make([]scoredMove, len(moves))
	for i, m := range moves {
		var score uint16
		if m.Promotion.IsPromotion() {
			score = promotionOffset + uint16(PieceValues[m.Promotion])
		} else if victim, ok := isCapture(g, m); ok {
			score = captureOffset + mvvLva[victim][g.PieceAt(m.From).Type()]
		} else if r := s.killers.rank(m, ply); r > 0 {
			score = killerOffset + uint16(r)*100
		}
		list[i] = scoredMove{move: m, score: score}
	}
	return list
}

// orderNextMove swaps the best scored remaining move into index cur. Picking
// one move at a time avoids sorting the tail of lists that end in a cutoff.
func orderNextMove(cur int, list []scoredMove) {
	best := cur
	for i := cur + 1; i < len(list); i++ {
		if list[i].score > list[best].score {
			best = i
		}
	}
	list[cur], list[best] = list[best], list[cur]
}
