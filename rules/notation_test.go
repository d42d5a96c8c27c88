package rules_test

import (
	"errors"
	"testing"

	"minimax-chess/rules"
)

func TestSquareNames(t *testing.T) {
	for _, name := range []string{"a1", "a8", "h1", "h8", "e4", "d5"} {
		if got := sq(t, name).String(); got != name {
			t.Fatalf("square %s printed as %s", name, got)
		}
	}
	if rules.NoPosition.String() != "-" {
		t.Fatalf("NoPosition printed as %q", rules.NoPosition.String())
	}
	for _, bad := range []string{"", "e", "i1", "a9", "e44"} {
		if _, err := rules.ParseSquare(bad); !errors.Is(err, rules.ErrInvalidSquare) {
			t.Fatalf("ParseSquare(%q): got %v", bad, err)
		}
	}
}

func TestParseMove(t *testing.T) {
	m, err := rules.ParseMove("e7e8q")
	if err != nil {
		t.Fatalf("ParseMove: %v", err)
	}
	if m.From != sq(t, "e7") || m.To != sq(t, "e8") || m.Promotion != rules.Queen {
		t.Fatalf("parsed %+v", m)
	}
	if m.String() != "e7e8q" {
		t.Fatalf("String: %q", m.String())
	}
	m, err = rules.ParseMove("G1F3")
	if err != nil || m.String() != "g1f3" || m.Promotion != rules.NoPieceType {
		t.Fatalf("upper case move: %+v, %v", m, err)
	}
	for _, bad := range []string{"e2", "e2e9", "e7e8k", "e2e4e5"} {
		if _, err := rules.ParseMove(bad); !errors.Is(err, rules.ErrInvalidMove) {
			t.Fatalf("ParseMove(%q): got %v", bad, err)
		}
	}
}

func TestPieceEncoding(t *testing.T) {
	for _, c := range []rules.Color{rules.White, rules.Black} {
		for pt := rules.Pawn; pt <= rules.King; pt++ {
			p := rules.NewPiece(c, pt)
			if p.Type() != pt || p.Color() != c || !p.Is(c) || p.Is(c.Other()) {
				t.Fatalf("NewPiece(%v, %v) = %v", c, pt, p)
			}
		}
	}
	if rules.NewPiece(rules.Black, rules.NoPieceType) != rules.NoPiece {
		t.Fatalf("NoPieceType should make NoPiece")
	}
	if rules.BlackQueen.String() != "q" || rules.WhiteKnight.String() != "N" {
		t.Fatalf("piece letters: %s %s", rules.BlackQueen, rules.WhiteKnight)
	}
}
