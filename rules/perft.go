package rules

// Perft counts the leaf nodes of the legal move tree to the given depth.
func Perft(g *Game, depth int) uint64 {
	if depth == 0 {
		return 1
	}
	moves := g.LegalMoves()
	if depth == 1 {
		return uint64(len(moves))
	}
	var nodes uint64
	for _, m := range moves {
		st := g.PushLegal(m)
		nodes += Perft(g, depth-1)
		g.PopMove(st)
	}
	return nodes
}

// PerftDivide returns the perft count below each root move.
func PerftDivide(g *Game, depth int) map[Move]uint64 {
	result := make(map[Move]uint64)
	if depth <= 0 {
		return result
	}
	for _, m := range g.LegalMoves() {
		st := g.PushLegal(m)
		result[m] = Perft(g, depth-1)
		g.PopMove(st)
	}
	return result
}
