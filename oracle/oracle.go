// Package oracle cross-checks the rules package against the dragontoothmg
// bitboard move generator. Both sides are compared through FEN and coordinate
// move strings, so neither generator depends on the other's types.
package oracle

import (
	"fmt"

	"github.com/dylhunn/dragontoothmg"
	"golang.org/x/exp/slices"

	"minimax-chess/rules"
)

// LegalMoves returns dragontoothmg's legal moves for fen in coordinate form, sorted.
func LegalMoves(fen string) []string {
	b := dragontoothmg.ParseFen(fen)
	return moveStrings(&b)
}

func moveStrings(b *dragontoothmg.Board) []string {
	moves := b.GenerateLegalMoves()
	out := make([]string, 0, len(moves))
	for i := range moves {
		out = append(out, moves[i].String())
	}
	slices.Sort(out)
	return out
}

// Diff compares the legal moves of g with the oracle's moves for the same
// position. missing holds moves only the oracle generates, extra holds moves
// only g generates.
func Diff(g *rules.Game) (missing, extra []string) {
	ours := make([]string, 0, 48)
	for _, m := range g.LegalMoves() {
		ours = append(ours, m.String())
	}
	slices.Sort(ours)
	theirs := LegalMoves(g.FEN())

	for _, s := range theirs {
		if _, found := slices.BinarySearch(ours, s); !found {
			missing = append(missing, s)
		}
	}
	for _, s := range ours {
		if _, found := slices.BinarySearch(theirs, s); !found {
			extra = append(extra, s)
		}
	}
	return missing, extra
}

// Perft counts leaf nodes with the oracle generator.
func Perft(fen string, depth int) uint64 {
	b := dragontoothmg.ParseFen(fen)
	return perft(&b, depth)
}

func perft(b *dragontoothmg.Board, depth int) uint64 {
	if depth <= 0 {
		return 1
	}
	moves := b.GenerateLegalMoves()
	if depth == 1 {
		return uint64(len(moves))
	}
	var nodes uint64
	for _, m := range moves {
		unapply := b.Apply(m)
		nodes += perft(b, depth-1)
		unapply()
	}
	return nodes
}

// Mismatch is a position where the two generators disagree.
type Mismatch struct {
	FEN     string
	Missing []string
	Extra   []string
}

func (m Mismatch) String() string {
	return fmt.Sprintf("%s: missing %v, extra %v", m.FEN, m.Missing, m.Extra)
}

// CrossCheck walks the move tree of g to depth plies and compares the legal
// move lists at every interior node. g is restored before returning.
func CrossCheck(g *rules.Game, depth int) []Mismatch {
	var out []Mismatch
	crossCheck(g, depth, &out)
	return out
}

func crossCheck(g *rules.Game, depth int, out *[]Mismatch) {
	if depth <= 0 {
		return
	}
	if missing, extra := Diff(g); len(missing) > 0 || len(extra) > 0 {
		*out = append(*out, Mismatch{FEN: g.FEN(), Missing: missing, Extra: extra})
		return
	}
	for _, m := range g.LegalMoves() {
		st := g.PushLegal(m)
		crossCheck(g, depth-1, out)
		g.PopMove(st)
	}
}
