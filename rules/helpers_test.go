package rules_test

import (
	"testing"

	"minimax-chess/rules"
)

func sq(t *testing.T, name string) rules.Position {
	t.Helper()
	p, err := rules.ParseSquare(name)
	if err != nil {
		t.Fatalf("ParseSquare(%q): %v", name, err)
	}
	return p
}

func mustFEN(t *testing.T, fen string) *rules.Game {
	t.Helper()
	g, err := rules.ParseFEN(fen)
	if err != nil {
		t.Fatalf("ParseFEN(%q): %v", fen, err)
	}
	return g
}

func play(t *testing.T, g *rules.Game, moves ...string) {
	t.Helper()
	for _, s := range moves {
		m, err := rules.ParseMove(s)
		if err != nil {
			t.Fatalf("ParseMove(%q): %v", s, err)
		}
		if !g.MakeMove(m.From, m.To, m.Promotion) {
			t.Fatalf("move %s rejected in %s", s, g.FEN())
		}
	}
}

// sameSquares compares two destination lists ignoring order.
func sameSquares(got []rules.Position, want ...rules.Position) bool {
	if len(got) != len(want) {
		return false
	}
	seen := make(map[rules.Position]int, len(want))
	for _, p := range want {
		seen[p]++
	}
	for _, p := range got {
		if seen[p] == 0 {
			return false
		}
		seen[p]--
	}
	return true
}

func hasSquare(list []rules.Position, p rules.Position) bool {
	for _, q := range list {
		if q == p {
			return true
		}
	}
	return false
}
