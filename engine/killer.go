package engine

import "minimax-chess/rules"

// killerTable remembers, per ply, the two most recent quiet moves that caused
// a beta cutoff. The zero Move never matches a legal move (from == to).
type killerTable [][2]rules.Move

func newKillerTable(depth int) killerTable {
	return make(killerTable, depth+1)
}

func (k killerTable) insert(m rules.Move, ply int) {
	if ply < 0 || ply >= len(k) {
		return
	}
	if m != k[ply][0] {
		k[ply][1] = k[ply][0]
		k[ply][0] = m
	}
}

// rank returns 2 for the newest killer at ply, 1 for the older one, else 0.
func (k killerTable) rank(m rules.Move, ply int) int {
	if ply < 0 || ply >= len(k) {
		return 0
	}
	switch m {
	case k[ply][0]:
		return 2
	case k[ply][1]:
		return 1
	}
	return 0
}
